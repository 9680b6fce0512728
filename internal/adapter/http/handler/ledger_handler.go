package handler

import (
	"context"
	"net/http"

	"github.com/valeriy-z/simplebank/internal/adapter/http/dto"
	"github.com/valeriy-z/simplebank/internal/domain"
)

// ConsistencyService defines the behavior needed by LedgerHandler.
type ConsistencyService interface {
	CheckConsistency(ctx context.Context) (bool, []domain.BalanceMismatch, error)
}

// LedgerHandler handles ledger-wide operations.
type LedgerHandler struct {
	ledger ConsistencyService
}

// NewLedgerHandler creates a new LedgerHandler.
func NewLedgerHandler(ledger ConsistencyService) *LedgerHandler {
	return &LedgerHandler{ledger: ledger}
}

// CheckConsistency verifies that every account balance agrees with the
// ledger.
func (h *LedgerHandler) CheckConsistency(w http.ResponseWriter, r *http.Request) {
	consistent, mismatches, err := h.ledger.CheckConsistency(r.Context())
	if err != nil {
		writeDomainError(w, err, "failed to check consistency")
		return
	}

	if !consistent {
		writeJSON(w, http.StatusConflict, dto.ConsistencyResponse{
			Status:     "inconsistent",
			Consistent: false,
			Mismatches: dto.MismatchesFromDomain(mismatches),
		})
		return
	}

	writeJSON(w, http.StatusOK, dto.ConsistencyResponse{
		Status:     "consistent",
		Consistent: true,
	})
}
