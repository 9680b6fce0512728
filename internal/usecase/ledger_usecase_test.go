package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
	"github.com/valeriy-z/simplebank/internal/usecase/mocks"
)

func TestLedgerUseCase_LastTransactionsForUser_DefaultsToFive(t *testing.T) {
	txnRepo := mocks.NewMockTransactionRepository()

	var gotLimit, gotOffset int
	txnRepo.ListByUserFunc = func(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
		gotLimit, gotOffset = limit, offset
		return nil, nil
	}

	uc := usecase.NewLedgerUseCase(txnRepo, mocks.NewMockAccountRepository(), mocks.NewMockLedgerRepository(), nil)

	if _, err := uc.LastTransactionsForUser(context.Background(), "alice", 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotLimit != usecase.DefaultLastTransactions || gotOffset != 0 {
		t.Errorf("expected limit %d offset 0, got %d/%d", usecase.DefaultLastTransactions, gotLimit, gotOffset)
	}
}

func TestLedgerUseCase_ListTransactionsForAccount_OwnershipChecked(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewLedgerUseCase(txnRepo, accRepo, mocks.NewMockLedgerRepository(), nil)

	foreign := &domain.Account{Number: 2_222_222_222, Name: "bob main", Type: domain.AccountTypeChecking, OwnerID: "bob"}
	if err := accRepo.Create(context.Background(), foreign); err != nil {
		t.Fatal(err)
	}

	// Foreign account looks exactly like a missing one.
	_, err := uc.ListTransactionsForAccount(context.Background(), "alice", 2_222_222_222, 0, 0)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected not found for foreign account, got %v", err)
	}

	_, err = uc.ListTransactionsForAccount(context.Background(), "alice", 9_999_999_998, 0, 0)
	if !errors.Is(err, domain.ErrAccountNotFound) {
		t.Errorf("expected not found for missing account, got %v", err)
	}
}

func TestLedgerUseCase_ListTransactionsForAccount_ReturnsBothLegs(t *testing.T) {
	accRepo := mocks.NewMockAccountRepository()
	txnRepo := mocks.NewMockTransactionRepository()
	uc := usecase.NewLedgerUseCase(txnRepo, accRepo, mocks.NewMockLedgerRepository(), nil)

	mine := &domain.Account{Number: 1_111_111_111, Name: "main", Type: domain.AccountTypeChecking, OwnerID: "alice"}
	if err := accRepo.Create(context.Background(), mine); err != nil {
		t.Fatal(err)
	}

	withdrawal := &domain.Transaction{Type: domain.TransactionTypeWithdrawal, Amount: decimal.NewFromInt(10), FromAccountID: &mine.ID}
	deposit := &domain.Transaction{Type: domain.TransactionTypeDeposit, Amount: decimal.NewFromInt(20), ToAccountID: &mine.ID}
	for _, txn := range []*domain.Transaction{withdrawal, deposit} {
		if err := txnRepo.Create(context.Background(), nil, txn); err != nil {
			t.Fatal(err)
		}
	}

	transactions, err := uc.ListTransactionsForAccount(context.Background(), "alice", 1_111_111_111, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(transactions) != 2 {
		t.Errorf("expected both legs, got %d entries", len(transactions))
	}
}

func TestLedgerUseCase_CheckConsistency(t *testing.T) {
	ledgerRepo := mocks.NewMockLedgerRepository()
	uc := usecase.NewLedgerUseCase(mocks.NewMockTransactionRepository(), mocks.NewMockAccountRepository(), ledgerRepo, nil)

	consistent, mismatches, err := uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !consistent || len(mismatches) != 0 {
		t.Error("expected a clean ledger to be consistent")
	}

	ledgerRepo.FindBalanceMismatchesFunc = func(ctx context.Context) ([]domain.BalanceMismatch, error) {
		return []domain.BalanceMismatch{
			{
				AccountNumber: 1_111_111_111,
				Balance:       decimal.NewFromInt(100),
				LedgerSum:     decimal.NewFromInt(90),
			},
		}, nil
	}

	consistent, mismatches, err = uc.CheckConsistency(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if consistent || len(mismatches) != 1 {
		t.Error("expected the diverged account to be reported")
	}
}
