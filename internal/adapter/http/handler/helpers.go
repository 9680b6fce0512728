package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/valeriy-z/simplebank/internal/adapter/http/dto"
	"github.com/valeriy-z/simplebank/internal/domain"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response with a stable machine-readable code.
func writeError(w http.ResponseWriter, status int, code, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Code:    code,
		Message: details,
	})
}

// writeDomainError maps a domain error to its HTTP status and code.
func writeDomainError(w http.ResponseWriter, err error, message string) {
	status, code := mapDomainError(err)
	writeError(w, status, code, message, err.Error())
}

// mapDomainError maps domain errors to HTTP status codes and stable
// error codes.
func mapDomainError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return http.StatusNotFound, "account_not_found"
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, "user_not_found"
	case errors.Is(err, domain.ErrPermissionDenied):
		return http.StatusForbidden, "permission_denied"
	case errors.Is(err, domain.ErrSameAccount):
		return http.StatusBadRequest, "invalid_transfer"
	case errors.Is(err, domain.ErrInvalidAmount):
		return http.StatusBadRequest, "invalid_amount"
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, "insufficient_funds"
	case errors.Is(err, domain.ErrDuplicateAccountNumber):
		return http.StatusConflict, "duplicate_account_number"
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, "username_taken"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid_credentials"
	case errors.Is(err, domain.ErrInvalidToken), errors.Is(err, domain.ErrExpiredToken):
		return http.StatusUnauthorized, "invalid_token"
	case errors.Is(err, domain.ErrInvalidAccountType):
		return http.StatusBadRequest, "invalid_account_type"
	case errors.Is(err, domain.ErrInvalidAccountName):
		return http.StatusBadRequest, "invalid_account_name"
	case errors.Is(err, domain.ErrInvalidUsername):
		return http.StatusBadRequest, "invalid_username"
	case errors.Is(err, domain.ErrPasswordTooWeak):
		return http.StatusBadRequest, "password_too_weak"
	case errors.Is(err, domain.ErrDescriptionTooLong):
		return http.StatusBadRequest, "description_too_long"
	case errors.Is(err, domain.ErrStore):
		return http.StatusInternalServerError, "store_error"
	default:
		return http.StatusInternalServerError, "internal_error"
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}

// parseAccountNumber parses a 10-digit account number path segment.
func parseAccountNumber(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
