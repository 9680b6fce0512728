package domain

import "github.com/shopspring/decimal"

// BalanceMismatch reports an account whose stored balance has diverged
// from the sum of its ledger entries.
type BalanceMismatch struct {
	AccountNumber int64
	Balance       decimal.Decimal
	LedgerSum     decimal.Decimal
}
