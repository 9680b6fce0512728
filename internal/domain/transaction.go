package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry.
type TransactionType string

const (
	TransactionTypeDeposit    TransactionType = "deposit"
	TransactionTypeWithdrawal TransactionType = "withdrawal"

	// TransactionTypeTransfer is kept for schema compatibility. The
	// transfer engine always records a transfer as a paired
	// withdrawal/deposit and never emits this type itself.
	TransactionTypeTransfer TransactionType = "transfer"
)

// Transaction is a single immutable ledger entry recording one leg of a
// money movement. A withdrawal carries only FromAccountID, a deposit
// only ToAccountID. Entries are never updated or deleted.
type Transaction struct {
	ID          int64
	CreatedAt   time.Time
	Amount      decimal.Decimal
	Type        TransactionType
	Description *string
	Internal    bool

	FromAccountID *int64
	ToAccountID   *int64

	// Externally visible account numbers for the referenced legs,
	// resolved by read queries and by the transfer engine.
	FromAccountNumber *int64
	ToAccountNumber   *int64
}

// IsWithdrawal reports whether the entry debits an account.
func (t *Transaction) IsWithdrawal() bool {
	return t.Type == TransactionTypeWithdrawal
}

// IsDeposit reports whether the entry credits an account.
func (t *Transaction) IsDeposit() bool {
	return t.Type == TransactionTypeDeposit
}
