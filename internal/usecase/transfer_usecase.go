package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/infrastructure/metrics"
)

// TransferUseCase executes fund movements between accounts as single
// atomic units: one debit, one credit, and a paired
// withdrawal/deposit ledger entry.
type TransferUseCase struct {
	txManager       TxManager
	accountRepo     AccountRepository
	transactionRepo TransactionRepository
	retrier         Retrier
	metrics         *metrics.Metrics
}

// NewTransferUseCase creates a new TransferUseCase.
func NewTransferUseCase(
	txManager TxManager,
	accountRepo AccountRepository,
	transactionRepo TransactionRepository,
	retrier Retrier,
	metrics *metrics.Metrics,
) *TransferUseCase {
	return &TransferUseCase{
		txManager:       txManager,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		retrier:         retrier,
		metrics:         metrics,
	}
}

// TransferInput represents a transfer request. Account numbers are the
// externally visible 10-digit identifiers, not primary keys.
type TransferInput struct {
	FromNumber  int64
	ToNumber    int64
	Amount      decimal.Decimal
	Description string
}

// TransferResult holds the two ledger entries created by a successful
// transfer.
type TransferResult struct {
	Withdrawal *domain.Transaction
	Deposit    *domain.Transaction
}

// Transfer validates and executes a fund movement on behalf of callerID.
// Validation and mutation run inside one store transaction with the
// affected account rows locked, so a concurrent transfer can never
// overdraw the source against a stale balance. Deadlocks and
// serialization failures are retried; every other failure rolls the
// whole unit back.
func (uc *TransferUseCase) Transfer(ctx context.Context, callerID string, input TransferInput) (*TransferResult, error) {
	start := time.Now()

	var result *TransferResult

	err := uc.retrier.Retry(ctx, func() error {
		res, err := uc.execute(ctx, callerID, input)
		if err != nil {
			return err
		}

		result = res

		return nil
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.TransferErrors.WithLabelValues(transferErrorReason(err)).Inc()
		}

		return nil, wrapStoreError(err)
	}

	if uc.metrics != nil {
		uc.metrics.TransfersCreated.Inc()
		uc.metrics.TransferDuration.Observe(time.Since(start).Seconds())
		uc.metrics.TransferAmount.Observe(input.Amount.InexactFloat64())
	}

	return result, nil
}

func transferErrorReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "account_not_found"
	case errors.Is(err, domain.ErrPermissionDenied):
		return "permission_denied"
	case errors.Is(err, domain.ErrSameAccount):
		return "same_account"
	case errors.Is(err, domain.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return "insufficient_funds"
	default:
		return "other"
	}
}

func (uc *TransferUseCase) execute(ctx context.Context, callerID string, input TransferInput) (*TransferResult, error) {
	numbers := sortedUniqueNumbers(input.FromNumber, input.ToNumber)

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock in sorted number order (deadlock prevention).
	accounts, err := uc.accountRepo.GetByNumbersForUpdate(ctx, tx, numbers)
	if err != nil {
		return nil, err
	}

	byNumber := make(map[int64]*domain.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}

	from := byNumber[input.FromNumber]
	to := byNumber[input.ToNumber]

	if from == nil || to == nil {
		return nil, domain.ErrAccountNotFound
	}

	if from.OwnerID != callerID {
		return nil, domain.ErrPermissionDenied
	}

	if from.ID == to.ID {
		return nil, domain.ErrSameAccount
	}

	if err := domain.ValidateAmount(input.Amount); err != nil {
		return nil, err
	}

	if err := domain.ValidateDescription(input.Description); err != nil {
		return nil, err
	}

	if err := from.ValidateWithdrawal(input.Amount); err != nil {
		return nil, err
	}

	internal := from.OwnerID == to.OwnerID

	var description *string
	if input.Description != "" {
		description = &input.Description
	}

	// Debit leg.
	now := time.Now().UTC()

	if err := uc.accountRepo.UpdateBalance(ctx, tx, from.ID, from.ApplyDebit(input.Amount), now); err != nil {
		return nil, err
	}

	withdrawal := &domain.Transaction{
		CreatedAt:         now,
		Amount:            input.Amount,
		Type:              domain.TransactionTypeWithdrawal,
		Description:       description,
		Internal:          internal,
		FromAccountID:     &from.ID,
		FromAccountNumber: &from.Number,
	}

	if err := uc.transactionRepo.Create(ctx, tx, withdrawal); err != nil {
		return nil, err
	}

	// Credit leg. The two entries carry independent timestamps.
	now = time.Now().UTC()

	if err := uc.accountRepo.UpdateBalance(ctx, tx, to.ID, to.ApplyCredit(input.Amount), now); err != nil {
		return nil, err
	}

	deposit := &domain.Transaction{
		CreatedAt:       now,
		Amount:          input.Amount,
		Type:            domain.TransactionTypeDeposit,
		Description:     description,
		Internal:        internal,
		ToAccountID:     &to.ID,
		ToAccountNumber: &to.Number,
	}

	if err := uc.transactionRepo.Create(ctx, tx, deposit); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return &TransferResult{Withdrawal: withdrawal, Deposit: deposit}, nil
}

func sortedUniqueNumbers(a, b int64) []int64 {
	if a == b {
		return []int64{a}
	}

	if a < b {
		return []int64{a, b}
	}

	return []int64{b, a}
}
