package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/valeriy-z/simplebank/internal/adapter/http/dto"
	"github.com/valeriy-z/simplebank/internal/adapter/http/middleware"
	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
)

// TransferService defines the transfer behavior needed by
// TransactionHandler.
type TransferService interface {
	Transfer(ctx context.Context, callerID string, input usecase.TransferInput) (*usecase.TransferResult, error)
}

// LedgerService defines the history queries needed by TransactionHandler.
type LedgerService interface {
	ListTransactionsForUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error)
	LastTransactionsForUser(ctx context.Context, userID string, n int) ([]*domain.Transaction, error)
	ListTransactionsForAccount(ctx context.Context, userID string, accountNumber int64, limit, offset int) ([]*domain.Transaction, error)
}

// TransactionHandler handles fund transfers and transaction history.
type TransactionHandler struct {
	transfers TransferService
	ledger    LedgerService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transfers TransferService, ledger LedgerService) *TransactionHandler {
	return &TransactionHandler{
		transfers: transfers,
		ledger:    ledger,
	}
}

// Create executes a transfer between two accounts and returns the
// resulting withdrawal/deposit pair.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	var req dto.CreateTransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	result, err := h.transfers.Transfer(r.Context(), principal.UserID, req.ToUseCaseInput())
	if err != nil {
		writeDomainError(w, err, "failed to execute transfer")
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransferResponse{
		Withdrawal: dto.TransactionFromDomain(result.Withdrawal),
		Deposit:    dto.TransactionFromDomain(result.Deposit),
	})
}

// List returns the authenticated user's transaction history, newest
// first.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	transactions, err := h.ledger.ListTransactionsForUser(r.Context(), principal.UserID, limit, offset)
	if err != nil {
		writeDomainError(w, err, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}

// Last returns the authenticated user's n most recent transactions.
func (h *TransactionHandler) Last(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	n := parseIntQuery(r, "n", 0)

	transactions, err := h.ledger.LastTransactionsForUser(r.Context(), principal.UserID, n)
	if err != nil {
		writeDomainError(w, err, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}

// ListByAccount returns the history of one of the authenticated user's
// accounts.
func (h *TransactionHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	number, err := parseAccountNumber(chi.URLParam(r, "number"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid account number", err.Error())
		return
	}

	limit := parseIntQuery(r, "limit", 0)
	offset := parseIntQuery(r, "offset", 0)

	transactions, err := h.ledger.ListTransactionsForAccount(r.Context(), principal.UserID, number, limit, offset)
	if err != nil {
		writeDomainError(w, err, "failed to list transactions")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(transactions))
}
