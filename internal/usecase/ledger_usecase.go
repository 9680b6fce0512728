package usecase

import (
	"context"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/infrastructure/metrics"
)

// DefaultLastTransactions is the number of entries returned by
// LastTransactionsForUser when no explicit count is given.
const DefaultLastTransactions = 5

// LedgerUseCase provides read-only projections over transaction history.
type LedgerUseCase struct {
	transactionRepo TransactionRepository
	accountRepo     AccountRepository
	ledgerRepo      LedgerRepository
	metrics         *metrics.Metrics
}

// NewLedgerUseCase creates a new LedgerUseCase.
func NewLedgerUseCase(
	transactionRepo TransactionRepository,
	accountRepo AccountRepository,
	ledgerRepo LedgerRepository,
	metrics *metrics.Metrics,
) *LedgerUseCase {
	return &LedgerUseCase{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		ledgerRepo:      ledgerRepo,
		metrics:         metrics,
	}
}

// ListTransactionsForUser returns all ledger entries touching any of the
// user's accounts, newest first.
func (uc *LedgerUseCase) ListTransactionsForUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	transactions, err := uc.transactionRepo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	return transactions, nil
}

// LastTransactionsForUser returns the n most recent ledger entries
// touching any of the user's accounts.
func (uc *LedgerUseCase) LastTransactionsForUser(ctx context.Context, userID string, n int) ([]*domain.Transaction, error) {
	if n <= 0 {
		n = DefaultLastTransactions
	}

	n, _ = domain.ValidatePagination(n, 0)

	transactions, err := uc.transactionRepo.ListByUser(ctx, userID, n, 0)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	return transactions, nil
}

// ListTransactionsForAccount returns ledger entries where the named
// account is either leg, newest first. The account must belong to
// userID; a foreign or missing account is reported as not found.
func (uc *LedgerUseCase) ListTransactionsForAccount(ctx context.Context, userID string, accountNumber int64, limit, offset int) ([]*domain.Transaction, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	if account.OwnerID != userID {
		return nil, domain.ErrAccountNotFound
	}

	limit, offset = domain.ValidatePagination(limit, offset)

	transactions, err := uc.transactionRepo.ListByAccount(ctx, account.ID, limit, offset)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	return transactions, nil
}

// CheckConsistency verifies that every account balance equals the sum of
// its deposits minus the sum of its withdrawals.
func (uc *LedgerUseCase) CheckConsistency(ctx context.Context) (bool, []domain.BalanceMismatch, error) {
	mismatches, err := uc.ledgerRepo.FindBalanceMismatches(ctx)
	if err != nil {
		return false, nil, wrapStoreError(err)
	}

	if uc.metrics != nil {
		uc.metrics.ConsistencyChecks.Inc()
		uc.metrics.ConsistencyMismatches.Set(float64(len(mismatches)))
	}

	return len(mismatches) == 0, mismatches, nil
}
