package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
)

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	// Create persists a new account and fills in its generated ID.
	// Returns domain.ErrDuplicateAccountNumber on a number collision.
	Create(ctx context.Context, account *domain.Account) error
	GetByNumber(ctx context.Context, number int64) (*domain.Account, error)
	// GetByNumbersForUpdate locks the matching account rows for the
	// duration of tx. Callers must pass numbers in ascending order so
	// concurrent transfers acquire locks in a consistent order.
	GetByNumbersForUpdate(ctx context.Context, tx Tx, numbers []int64) ([]*domain.Account, error)
	UpdateBalance(ctx context.Context, tx Tx, id int64, balance decimal.Decimal, updatedAt time.Time) error
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Account, error)
}

// TransactionRepository defines data access for ledger entries.
type TransactionRepository interface {
	// Create appends a ledger entry inside tx and fills in its ID.
	Create(ctx context.Context, tx Tx, txn *domain.Transaction) error
	// ListByUser returns entries where either leg belongs to one of the
	// user's accounts, newest first.
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	// ListByAccount returns entries where the account is either leg,
	// newest first.
	ListByAccount(ctx context.Context, accountID int64, limit, offset int) ([]*domain.Transaction, error)
}

// LedgerRepository defines ledger-wide read operations.
type LedgerRepository interface {
	// FindBalanceMismatches returns accounts whose stored balance does
	// not equal the sum of their ledger entries.
	FindBalanceMismatches(ctx context.Context) ([]domain.BalanceMismatch, error)
}

// UserRepository defines data access for users.
type UserRepository interface {
	// Create persists a new user. Returns domain.ErrUsernameTaken when
	// the username is already registered.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// Tx represents a database transaction.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TxManager handles transaction lifecycle.
type TxManager interface {
	Begin(ctx context.Context) (Tx, error)
}

// Retrier retries an operation on transient store errors (deadlock,
// serialization failure).
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IDGenerator generates unique string IDs.
type IDGenerator interface {
	Generate() string
}

// NumberGenerator draws candidate account numbers from the 10-digit range.
type NumberGenerator interface {
	Generate() int64
}

// IdempotencyStore handles idempotency key storage for the HTTP surface.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
