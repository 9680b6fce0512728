package usecase

import (
	"errors"
	"fmt"

	"github.com/valeriy-z/simplebank/internal/domain"
)

var domainErrors = []error{
	domain.ErrAccountNotFound,
	domain.ErrDuplicateAccountNumber,
	domain.ErrInvalidAccountType,
	domain.ErrPermissionDenied,
	domain.ErrSameAccount,
	domain.ErrInvalidAmount,
	domain.ErrInsufficientFunds,
	domain.ErrUserNotFound,
	domain.ErrUsernameTaken,
	domain.ErrInvalidCredentials,
	domain.ErrInvalidAccountName,
	domain.ErrInvalidUsername,
	domain.ErrPasswordTooWeak,
	domain.ErrDescriptionTooLong,
}

// wrapStoreError passes domain errors through untouched and wraps
// everything else as a store failure, so callers always see a stable,
// machine-checkable error kind.
func wrapStoreError(err error) error {
	if err == nil {
		return nil
	}

	for _, domainErr := range domainErrors {
		if errors.Is(err, domainErr) {
			return err
		}
	}

	if errors.Is(err, domain.ErrStore) {
		return err
	}

	return fmt.Errorf("%w: %w", domain.ErrStore, err)
}
