package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/valeriy-z/simplebank/internal/adapter/http/dto"
	"github.com/valeriy-z/simplebank/internal/adapter/http/middleware"
	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
)

// UserService defines the behavior needed by AuthHandler.
type UserService interface {
	Register(ctx context.Context, input usecase.RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
	GetUser(ctx context.Context, id string) (*domain.User, error)
	UpdateProfile(ctx context.Context, callerID string, input usecase.UpdateProfileInput) (*domain.User, error)
}

// TokenIssuer issues access tokens for authenticated users.
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

// AuthHandler handles registration, login and profile endpoints.
type AuthHandler struct {
	users  UserService
	tokens TokenIssuer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users UserService, tokens TokenIssuer) *AuthHandler {
	return &AuthHandler{
		users:  users,
		tokens: tokens,
	}
}

// Register creates a new user.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date of birth", err.Error())
		return
	}

	user, err := h.users.Register(r.Context(), input)
	if err != nil {
		writeDomainError(w, err, "failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, dto.UserFromDomain(user))
}

// Login verifies credentials and issues a token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	user, err := h.users.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		writeDomainError(w, err, "failed to authenticate")
		return
	}

	token, err := h.tokens.Generate(user)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal_error", "failed to generate token", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.LoginResponse{
		Token: token,
		User:  dto.UserFromDomain(user),
	})
}

// Me returns the authenticated user's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	user, err := h.users.GetUser(r.Context(), principal.UserID)
	if err != nil {
		writeDomainError(w, err, "failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}

// UpdateMe applies a partial update to the authenticated user's profile.
func (h *AuthHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.PrincipalFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized", "unauthorized", "")
		return
	}

	var req dto.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body", err.Error())
		return
	}

	input, err := req.ToUseCaseInput()
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid date of birth", err.Error())
		return
	}

	user, err := h.users.UpdateProfile(r.Context(), principal.UserID, input)
	if err != nil {
		writeDomainError(w, err, "failed to update profile")
		return
	}

	writeJSON(w, http.StatusOK, dto.UserFromDomain(user))
}
