package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound        = errors.New("account not found")
	ErrDuplicateAccountNumber = errors.New("account number already exists")
	ErrInvalidAccountType     = errors.New("invalid account type")

	// Transfer errors
	ErrPermissionDenied  = errors.New("caller does not own the source account")
	ErrSameAccount       = errors.New("cannot transfer to same account")
	ErrInvalidAmount     = errors.New("amount must be positive")
	ErrInsufficientFunds = errors.New("insufficient funds")

	// User errors
	ErrUserNotFound       = errors.New("user not found")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Token errors
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")

	// ErrStore wraps failures of the underlying transactional store.
	// The operation aborts with no partial effect and may be retried.
	ErrStore = errors.New("store failure")
)
