package dto

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/valeriy-z/simplebank/internal/domain"
)

func TestRegisterRequestToUseCaseInput(t *testing.T) {
	req := RegisterRequest{
		Username:    "alice",
		Password:    "s3cretpass",
		FirstName:   "Alice",
		LastName:    "Doe",
		DateOfBirth: "1990-05-01",
	}

	input, err := req.ToUseCaseInput()
	require.NoError(t, err)

	assert.Equal(t, "alice", input.Username)
	assert.Equal(t, "s3cretpass", input.Password)
	assert.Equal(t, time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC), input.DateOfBirth)
}

func TestRegisterRequestRejectsBadDate(t *testing.T) {
	req := RegisterRequest{
		Username:    "alice",
		Password:    "s3cretpass",
		DateOfBirth: "01/05/1990",
	}

	_, err := req.ToUseCaseInput()
	require.Error(t, err)
}

func TestUpdateProfileRequestPartialFields(t *testing.T) {
	firstName := "Alicia"
	req := UpdateProfileRequest{FirstName: &firstName}

	input, err := req.ToUseCaseInput()
	require.NoError(t, err)

	require.NotNil(t, input.FirstName)
	assert.Equal(t, "Alicia", *input.FirstName)
	assert.Nil(t, input.LastName)
	assert.Nil(t, input.DateOfBirth)
	assert.Nil(t, input.Password)
}

func TestUpdateProfileRequestParsesDate(t *testing.T) {
	dob := "2000-12-31"
	req := UpdateProfileRequest{DateOfBirth: &dob}

	input, err := req.ToUseCaseInput()
	require.NoError(t, err)

	require.NotNil(t, input.DateOfBirth)
	assert.Equal(t, time.Date(2000, 12, 31, 0, 0, 0, 0, time.UTC), *input.DateOfBirth)
}

func TestCreateAccountRequestToUseCaseInput(t *testing.T) {
	req := CreateAccountRequest{Name: "Savings", Type: "savings"}

	input := req.ToUseCaseInput()

	assert.Equal(t, "Savings", input.Name)
	assert.Equal(t, domain.AccountTypeSavings, input.Type)
}

func TestCreateTransferRequestToUseCaseInput(t *testing.T) {
	req := CreateTransferRequest{
		FromAccount: 1_111_111_111,
		ToAccount:   2_222_222_222,
		Amount:      decimal.RequireFromString("120.50"),
		Description: "rent",
	}

	input := req.ToUseCaseInput()

	assert.Equal(t, int64(1_111_111_111), input.FromNumber)
	assert.Equal(t, int64(2_222_222_222), input.ToNumber)
	assert.True(t, input.Amount.Equal(decimal.RequireFromString("120.50")))
	assert.Equal(t, "rent", input.Description)
}
