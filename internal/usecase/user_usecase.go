package usecase

import (
	"context"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/infrastructure/metrics"
)

// UserUseCase handles registration, authentication and profile updates.
type UserUseCase struct {
	userRepo UserRepository
	idGen    IDGenerator
	metrics  *metrics.Metrics
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, idGen IDGenerator, metrics *metrics.Metrics) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		idGen:    idGen,
		metrics:  metrics,
	}
}

// RegisterInput represents input for registering a user.
type RegisterInput struct {
	Username    string
	Password    string
	FirstName   string
	LastName    string
	DateOfBirth time.Time
}

// Register creates a new user with a hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if err := domain.ValidateUsername(input.Username); err != nil {
		return nil, err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		return nil, wrapStoreError(err)
	}

	if existing != nil {
		return nil, domain.ErrUsernameTaken
	}

	hashed, err := hashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()

	user := &domain.User{
		ID:             uc.idGen.Generate(),
		Username:       input.Username,
		HashedPassword: hashed,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		DateOfBirth:    input.DateOfBirth,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, wrapStoreError(err)
	}

	if uc.metrics != nil {
		uc.metrics.UsersCreated.Inc()
	}

	user.HashedPassword = ""

	return user, nil
}

// Authenticate verifies user credentials.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			uc.recordAuthAttempt("failure")

			return nil, domain.ErrInvalidCredentials
		}

		return nil, wrapStoreError(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		uc.recordAuthAttempt("failure")

		return nil, domain.ErrInvalidCredentials
	}

	uc.recordAuthAttempt("success")

	user.HashedPassword = ""

	return user, nil
}

func (uc *UserUseCase) recordAuthAttempt(status string) {
	if uc.metrics != nil {
		uc.metrics.AuthAttempts.WithLabelValues(status).Inc()
	}
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	user.HashedPassword = ""

	return user, nil
}

// UpdateProfileInput represents input for updating profile fields.
// Identity (username) is immutable after registration.
type UpdateProfileInput struct {
	FirstName   *string
	LastName    *string
	DateOfBirth *time.Time
	Password    *string
}

// UpdateProfile updates the caller's own profile fields.
func (uc *UserUseCase) UpdateProfile(ctx context.Context, callerID string, input UpdateProfileInput) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, callerID)
	if err != nil {
		return nil, wrapStoreError(err)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}

	if input.LastName != nil {
		user.LastName = *input.LastName
	}

	if input.DateOfBirth != nil {
		user.DateOfBirth = *input.DateOfBirth
	}

	if input.Password != nil {
		if err := domain.ValidatePassword(*input.Password); err != nil {
			return nil, err
		}

		hashed, err := hashPassword(*input.Password)
		if err != nil {
			return nil, err
		}

		user.HashedPassword = hashed
	}

	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, wrapStoreError(err)
	}

	user.HashedPassword = ""

	return user, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
}
