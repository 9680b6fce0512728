package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
	"github.com/valeriy-z/simplebank/internal/usecase/mocks"
)

func TestAccountUseCase_CreateAccount(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	numberGen := mocks.NewMockNumberGenerator()
	uc := usecase.NewAccountUseCase(accRepo, numberGen, nil)

	account, err := uc.CreateAccount(context.Background(), "alice", usecase.CreateAccountInput{
		Name: "Daily expenses",
		Type: domain.AccountTypeChecking,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !account.Balance.IsZero() {
		t.Errorf("new account must start at balance 0, got %s", account.Balance)
	}

	if account.Number < domain.MinAccountNumber || account.Number > domain.MaxAccountNumber {
		t.Errorf("account number %d outside the 10-digit range", account.Number)
	}

	if account.OwnerID != "alice" {
		t.Errorf("expected owner alice, got %s", account.OwnerID)
	}
}

func TestAccountUseCase_CreateAccount_Validation(t *testing.T) {
	uc := usecase.NewAccountUseCase(mocks.NewMockAccountRepository(), mocks.NewMockNumberGenerator(), nil)

	_, err := uc.CreateAccount(context.Background(), "alice", usecase.CreateAccountInput{
		Name: "",
		Type: domain.AccountTypeSavings,
	})
	if !errors.Is(err, domain.ErrInvalidAccountName) {
		t.Errorf("expected invalid name error, got %v", err)
	}

	_, err = uc.CreateAccount(context.Background(), "alice", usecase.CreateAccountInput{
		Name: "Retirement",
		Type: domain.AccountType("investment"),
	})
	if !errors.Is(err, domain.ErrInvalidAccountType) {
		t.Errorf("expected invalid type error, got %v", err)
	}
}

func TestAccountUseCase_CreateAccount_RetriesNumberCollision(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	numberGen := mocks.NewMockNumberGenerator()
	uc := usecase.NewAccountUseCase(accRepo, numberGen, nil)

	// Occupy the first number the generator will produce.
	taken := &domain.Account{Number: domain.MinAccountNumber, Name: "first", Type: domain.AccountTypeSavings, OwnerID: "bob"}
	if err := accRepo.Create(context.Background(), taken); err != nil {
		t.Fatal(err)
	}

	account, err := uc.CreateAccount(context.Background(), "alice", usecase.CreateAccountInput{
		Name: "Savings",
		Type: domain.AccountTypeSavings,
	})
	if err != nil {
		t.Fatalf("expected collision to be retried internally, got %v", err)
	}

	if account.Number == taken.Number {
		t.Error("collision was not resolved with a fresh number")
	}
}

func TestAccountUseCase_CreateAccount_ExhaustedCollisions(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	numberGen := mocks.NewMockNumberGenerator()
	numberGen.GenerateFunc = func() int64 { return domain.MinAccountNumber }
	uc := usecase.NewAccountUseCase(accRepo, numberGen, nil)

	taken := &domain.Account{Number: domain.MinAccountNumber, Name: "first", Type: domain.AccountTypeSavings, OwnerID: "bob"}
	if err := accRepo.Create(context.Background(), taken); err != nil {
		t.Fatal(err)
	}

	_, err := uc.CreateAccount(context.Background(), "alice", usecase.CreateAccountInput{
		Name: "Savings",
		Type: domain.AccountTypeSavings,
	})
	if !errors.Is(err, domain.ErrDuplicateAccountNumber) {
		t.Errorf("expected duplicate number error after exhausted retries, got %v", err)
	}
}

func TestAccountUseCase_GetOwnedAccountByNumber_DoesNotLeakForeignAccounts(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewAccountUseCase(accRepo, mocks.NewMockNumberGenerator(), nil)

	foreign := &domain.Account{Number: 2_222_222_222, Name: "bob main", Type: domain.AccountTypeChecking, OwnerID: "bob"}
	if err := accRepo.Create(context.Background(), foreign); err != nil {
		t.Fatal(err)
	}

	_, err := uc.GetOwnedAccountByNumber(context.Background(), "alice", 2_222_222_222)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("foreign account must be reported as not found, got %v", err)
	}

	_, err = uc.GetOwnedAccountByNumber(context.Background(), "alice", 4_444_444_444)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("missing account must be reported as not found, got %v", err)
	}
}
