package users

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type staticTokens struct{}

func (staticTokens) Sign(userID string) (string, error) {
	return "token-for-" + userID, nil
}

func TestRegisterHashesPassword(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, staticTokens{})

	token, err := svc.Register(context.Background(), "u@x.com", "pw123")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if token == "" {
		t.Fatal("expected a token")
	}

	user, err := repo.GetByEmail(context.Background(), "u@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if user.PasswordHash == "pw123" || strings.Contains(user.PasswordHash, "pw123") {
		t.Fatal("plaintext password leaked into stored credential")
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, staticTokens{})

	if _, err := svc.Register(context.Background(), "u@x.com", "pw123"); err != nil {
		t.Fatalf("first Register: %v", err)
	}
	_, err := svc.Register(context.Background(), "u@x.com", "other")
	if !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}

	// First registration must be untouched.
	user, err := repo.GetByEmail(context.Background(), "u@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if _, err := svc.Login(context.Background(), user.Email, "pw123"); err != nil {
		t.Fatalf("original credentials no longer valid: %v", err)
	}
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	svc := NewService(NewMemoryRepo(), staticTokens{})

	if _, err := svc.Register(context.Background(), "", "pw123"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty email, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "u@x.com", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty password, got %v", err)
	}
}

func TestLoginMatchesOnlyOriginalPassword(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, staticTokens{})

	if _, err := svc.Register(context.Background(), "u@x.com", "pw123"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(context.Background(), "u@x.com", "pw123"); err != nil {
		t.Fatalf("Login with correct password: %v", err)
	}
	if _, err := svc.Login(context.Background(), "u@x.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "nobody@x.com", "pw123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestExists(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo, staticTokens{})

	if _, err := svc.Register(context.Background(), "u@x.com", "pw123"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	user, err := repo.GetByEmail(context.Background(), "u@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}

	ok, err := svc.Exists(context.Background(), user.ID)
	if err != nil || !ok {
		t.Fatalf("expected user to exist, got ok=%v err=%v", ok, err)
	}
	ok, err = svc.Exists(context.Background(), "missing")
	if err != nil || ok {
		t.Fatalf("expected missing user to not exist, got ok=%v err=%v", ok, err)
	}
}
