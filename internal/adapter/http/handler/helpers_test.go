package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/valeriy-z/simplebank/internal/adapter/http/middleware"
	"github.com/valeriy-z/simplebank/internal/domain"
)

func withPrincipal(r *http.Request, userID string) *http.Request {
	principal := &middleware.Principal{UserID: userID, Username: "user-" + userID}
	return r.WithContext(context.WithValue(r.Context(), middleware.PrincipalContextKey, principal))
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"account not found", domain.ErrAccountNotFound, http.StatusNotFound, "account_not_found"},
		{"permission denied", domain.ErrPermissionDenied, http.StatusForbidden, "permission_denied"},
		{"same account", domain.ErrSameAccount, http.StatusBadRequest, "invalid_transfer"},
		{"invalid amount", domain.ErrInvalidAmount, http.StatusBadRequest, "invalid_amount"},
		{"insufficient funds", domain.ErrInsufficientFunds, http.StatusUnprocessableEntity, "insufficient_funds"},
		{"username taken", domain.ErrUsernameTaken, http.StatusConflict, "username_taken"},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid_credentials"},
		{"store error", domain.ErrStore, http.StatusInternalServerError, "store_error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code := mapDomainError(tt.err)
			if status != tt.wantStatus {
				t.Errorf("status = %d, want %d", status, tt.wantStatus)
			}
			if code != tt.wantCode {
				t.Errorf("code = %q, want %q", code, tt.wantCode)
			}
		})
	}
}
