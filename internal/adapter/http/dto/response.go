package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
)

// UserResponse represents a user in API responses. The password hash
// never leaves the server.
type UserResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	DateOfBirth string    `json:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at"`
}

// UserFromDomain converts a domain user to a response.
func UserFromDomain(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		DateOfBirth: u.DateOfBirth.Format(dateLayout),
		CreatedAt:   u.CreatedAt,
	}
}

// LoginResponse represents a successful login.
type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	Number    int64           `json:"account_number"`
	Name      string          `json:"name"`
	Type      string          `json:"type"`
	Balance   decimal.Decimal `json:"balance"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		Number:    a.Number,
		Name:      a.Name,
		Type:      string(a.Type),
		Balance:   a.Balance,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// ListAccountsResponse wraps an account listing.
type ListAccountsResponse struct {
	Accounts []*AccountResponse `json:"accounts"`
	Total    int64              `json:"total"`
}

// TransactionResponse represents a ledger entry in API responses.
// Exactly one of from_account and to_account is set.
type TransactionResponse struct {
	ID          int64           `json:"id"`
	CreatedAt   time.Time       `json:"created_at"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Description *string         `json:"description,omitempty"`
	Internal    bool            `json:"internal"`
	FromAccount *int64          `json:"from_account,omitempty"`
	ToAccount   *int64          `json:"to_account,omitempty"`
}

// TransactionFromDomain converts a domain ledger entry to a response.
func TransactionFromDomain(t *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ID:          t.ID,
		CreatedAt:   t.CreatedAt,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Description: t.Description,
		Internal:    t.Internal,
		FromAccount: t.FromAccountNumber,
		ToAccount:   t.ToAccountNumber,
	}
}

// TransactionsFromDomain converts domain ledger entries to responses.
func TransactionsFromDomain(transactions []*domain.Transaction) []*TransactionResponse {
	result := make([]*TransactionResponse, len(transactions))
	for i, t := range transactions {
		result[i] = TransactionFromDomain(t)
	}
	return result
}

// TransferResponse holds the two ledger entries created by a transfer.
type TransferResponse struct {
	Withdrawal *TransactionResponse `json:"withdrawal"`
	Deposit    *TransactionResponse `json:"deposit"`
}

// MismatchResponse represents one inconsistent account in a
// consistency report.
type MismatchResponse struct {
	AccountNumber int64           `json:"account_number"`
	Balance       decimal.Decimal `json:"balance"`
	LedgerSum     decimal.Decimal `json:"ledger_sum"`
}

// MismatchesFromDomain converts domain mismatches to responses.
func MismatchesFromDomain(mismatches []domain.BalanceMismatch) []MismatchResponse {
	result := make([]MismatchResponse, len(mismatches))
	for i, m := range mismatches {
		result[i] = MismatchResponse{
			AccountNumber: m.AccountNumber,
			Balance:       m.Balance,
			LedgerSum:     m.LedgerSum,
		}
	}
	return result
}

// ConsistencyResponse represents a ledger consistency report.
type ConsistencyResponse struct {
	Status     string             `json:"status"`
	Consistent bool               `json:"consistent"`
	Mismatches []MismatchResponse `json:"mismatches,omitempty"`
}

// ErrorResponse represents an error in API responses. Code is the
// stable machine-readable identifier of the failure kind.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}
