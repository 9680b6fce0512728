package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/valeriy-z/simplebank/internal/domain"
	"github.com/valeriy-z/simplebank/internal/usecase"
	"github.com/valeriy-z/simplebank/internal/usecase/mocks"
)

func registerInput() usecase.RegisterInput {
	return usecase.RegisterInput{
		Username:    "alice",
		Password:    "correct-horse-1",
		FirstName:   "Alice",
		LastName:    "Doe",
		DateOfBirth: time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
	}
}

func TestUserUseCase_Register(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator(), nil)

	user, err := uc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("expected username alice, got %s", user.Username)
	}

	if user.HashedPassword != "" {
		t.Error("hashed password must not be returned")
	}
}

func TestUserUseCase_Register_DuplicateUsername(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	if _, err := uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}

	_, err := uc.Register(context.Background(), registerInput())
	if !errors.Is(err, domain.ErrUsernameTaken) {
		t.Errorf("expected username taken, got %v", err)
	}
}

func TestUserUseCase_Register_WeakPassword(t *testing.T) {
	uc := usecase.NewUserUseCase(mocks.NewMockUserRepository(), mocks.NewMockIDGenerator(), nil)

	input := registerInput()
	input.Password = "short"

	_, err := uc.Register(context.Background(), input)
	if !errors.Is(err, domain.ErrPasswordTooWeak) {
		t.Errorf("expected weak password error, got %v", err)
	}
}

func TestUserUseCase_Authenticate(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	if _, err := uc.Register(context.Background(), registerInput()); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	user, err := uc.Authenticate(context.Background(), "alice", "correct-horse-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if user.Username != "alice" {
		t.Errorf("expected alice, got %s", user.Username)
	}

	if _, err := uc.Authenticate(context.Background(), "alice", "wrong-password"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials, got %v", err)
	}

	if _, err := uc.Authenticate(context.Background(), "nobody", "correct-horse-1"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	repo := mocks.NewMockUserRepository()
	uc := usecase.NewUserUseCase(repo, mocks.NewMockIDGenerator(), nil)

	registered, err := uc.Register(context.Background(), registerInput())
	if err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	newName := "Alicia"
	updated, err := uc.UpdateProfile(context.Background(), registered.ID, usecase.UpdateProfileInput{
		FirstName: &newName,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if updated.FirstName != "Alicia" {
		t.Errorf("expected first name update, got %s", updated.FirstName)
	}

	if updated.LastName != "Doe" {
		t.Errorf("untouched fields must survive, got %s", updated.LastName)
	}

	if updated.Username != "alice" {
		t.Error("username is immutable")
	}
}
