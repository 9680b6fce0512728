package postgres

import (
	"math/rand"

	"github.com/oklog/ulid/v2"

	"github.com/valeriy-z/simplebank/internal/domain"
)

// ULIDGenerator generates ULID-based IDs for users.
type ULIDGenerator struct{}

// NewULIDGenerator creates a new ULIDGenerator.
func NewULIDGenerator() *ULIDGenerator {
	return &ULIDGenerator{}
}

// Generate generates a new ULID.
func (g *ULIDGenerator) Generate() string {
	return ulid.Make().String()
}

// AccountNumberGenerator draws random 10-digit account numbers.
// Uniqueness is enforced by the accounts table; collisions are resolved
// by the caller regenerating.
type AccountNumberGenerator struct{}

// NewAccountNumberGenerator creates a new AccountNumberGenerator.
func NewAccountNumberGenerator() *AccountNumberGenerator {
	return &AccountNumberGenerator{}
}

// Generate returns a candidate account number in [MinAccountNumber, MaxAccountNumber].
func (g *AccountNumberGenerator) Generate() int64 {
	span := domain.MaxAccountNumber - domain.MinAccountNumber + 1
	return domain.MinAccountNumber + rand.Int63n(span)
}
