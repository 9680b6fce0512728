package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountType classifies an account.
type AccountType string

const (
	AccountTypeSavings    AccountType = "savings"
	AccountTypeChecking   AccountType = "checking"
	AccountTypeLoan       AccountType = "loan"
	AccountTypeCreditCard AccountType = "credit_card"
)

var validAccountTypes = map[AccountType]bool{
	AccountTypeSavings:    true,
	AccountTypeChecking:   true,
	AccountTypeLoan:       true,
	AccountTypeCreditCard: true,
}

// IsValid checks if the account type is one of the supported types.
func (t AccountType) IsValid() bool {
	return validAccountTypes[t]
}

// Account number range. Numbers are 10 digits and never reused.
const (
	MinAccountNumber int64 = 1_000_000_000
	MaxAccountNumber int64 = 9_999_999_999
)

// Account represents a bank account owned by a single user.
// The balance is mutated only by the transfer engine and always equals
// the sum of deposits minus the sum of withdrawals recorded in the ledger.
type Account struct {
	ID        int64
	Number    int64
	Name      string
	Type      AccountType
	Balance   decimal.Decimal
	OwnerID   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateWithdrawal checks if the account holds enough funds to be
// debited by amount.
func (a *Account) ValidateWithdrawal(amount decimal.Decimal) error {
	if a.Balance.LessThan(amount) {
		return ErrInsufficientFunds
	}
	return nil
}

// ApplyDebit returns the balance after a debit.
func (a *Account) ApplyDebit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Sub(amount)
}

// ApplyCredit returns the balance after a credit.
func (a *Account) ApplyCredit(amount decimal.Decimal) decimal.Decimal {
	return a.Balance.Add(amount)
}
