package dto

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
)

// dateLayout is the wire format for dates (date of birth).
const dateLayout = "2006-01-02"

// RegisterRequest represents a request to register a user.
type RegisterRequest struct {
	Username    string `json:"username"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
}

// ToUseCaseInput converts to use case input.
func (r *RegisterRequest) ToUseCaseInput() (usecase.RegisterInput, error) {
	dob, err := parseDate(r.DateOfBirth)
	if err != nil {
		return usecase.RegisterInput{}, err
	}

	return usecase.RegisterInput{
		Username:    r.Username,
		Password:    r.Password,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: dob,
	}, nil
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileRequest represents a partial profile update. Absent
// fields are left unchanged; the username cannot be changed.
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name,omitempty"`
	LastName    *string `json:"last_name,omitempty"`
	DateOfBirth *string `json:"date_of_birth,omitempty"`
	Password    *string `json:"password,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *UpdateProfileRequest) ToUseCaseInput() (usecase.UpdateProfileInput, error) {
	input := usecase.UpdateProfileInput{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Password:  r.Password,
	}

	if r.DateOfBirth != nil {
		dob, err := parseDate(*r.DateOfBirth)
		if err != nil {
			return usecase.UpdateProfileInput{}, err
		}

		input.DateOfBirth = &dob
	}

	return input, nil
}

// CreateAccountRequest represents a request to open an account.
type CreateAccountRequest struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateAccountRequest) ToUseCaseInput() usecase.CreateAccountInput {
	return usecase.CreateAccountInput{
		Name: r.Name,
		Type: domain.AccountType(r.Type),
	}
}

// CreateTransferRequest represents a request to move funds between two
// accounts, addressed by their 10-digit account numbers.
type CreateTransferRequest struct {
	FromAccount int64           `json:"from_account"`
	ToAccount   int64           `json:"to_account"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateTransferRequest) ToUseCaseInput() usecase.TransferInput {
	return usecase.TransferInput{
		FromNumber:  r.FromAccount,
		ToNumber:    r.ToAccount,
		Amount:      r.Amount,
		Description: r.Description,
	}
}

func parseDate(value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}

	return t, nil
}
