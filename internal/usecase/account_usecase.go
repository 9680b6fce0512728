package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/infrastructure/metrics"
)

// Number generation collisions are statistically negligible in the
// 10-digit space; a bounded retry absorbs them without surfacing an
// error to a well-behaved caller.
const maxNumberAttempts = 5

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	numberGen   NumberGenerator
	metrics     *metrics.Metrics
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, numberGen NumberGenerator, metrics *metrics.Metrics) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		numberGen:   numberGen,
		metrics:     metrics,
	}
}

// CreateAccountInput represents input for creating an account.
type CreateAccountInput struct {
	Name string
	Type domain.AccountType
}

// CreateAccount creates a new account for ownerID with balance 0 and a
// freshly generated unique account number.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, ownerID string, input CreateAccountInput) (*domain.Account, error) {
	if err := domain.ValidateAccountName(input.Name); err != nil {
		return nil, err
	}

	if err := domain.ValidateAccountType(input.Type); err != nil {
		return nil, err
	}

	var lastErr error
	for attempt := 0; attempt < maxNumberAttempts; attempt++ {
		now := time.Now().UTC()

		account := &domain.Account{
			Number:    uc.numberGen.Generate(),
			Name:      input.Name,
			Type:      input.Type,
			Balance:   decimal.Zero,
			OwnerID:   ownerID,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err := uc.accountRepo.Create(ctx, account)
		if err == nil {
			if uc.metrics != nil {
				uc.metrics.AccountsCreated.Inc()
			}

			return account, nil
		}

		if !errors.Is(err, domain.ErrDuplicateAccountNumber) {
			return nil, wrapStoreError(err)
		}

		if uc.metrics != nil {
			uc.metrics.AccountNumberRetries.Inc()
		}

		lastErr = err
	}

	return nil, lastErr
}

// ListAccounts returns all accounts owned by ownerID in a stable order.
func (uc *AccountUseCase) ListAccounts(ctx context.Context, ownerID string) ([]*domain.Account, error) {
	accounts, err := uc.accountRepo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	return accounts, nil
}

// GetAccountByNumber retrieves an account by its external number.
func (uc *AccountUseCase) GetAccountByNumber(ctx context.Context, number int64) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	return account, nil
}

// GetOwnedAccountByNumber retrieves an account by number and verifies it
// belongs to ownerID. A foreign account is reported as not found so the
// existence of other users' accounts does not leak.
func (uc *AccountUseCase) GetOwnedAccountByNumber(ctx context.Context, ownerID string, number int64) (*domain.Account, error) {
	account, err := uc.accountRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	if account.OwnerID != ownerID {
		return nil, domain.ErrAccountNotFound
	}

	return account, nil
}
