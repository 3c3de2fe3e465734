package users

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// dummyHash keeps the bcrypt comparison on the login path even when the email
// is unknown, so response timing does not reveal whether an account exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

var (
	// ErrInvalidInput is returned when email or password is missing.
	ErrInvalidInput = errors.New("email and password are required")
	// ErrInvalidCredentials is returned for any failed login, without
	// distinguishing unknown email from wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// TokenIssuer signs session tokens for a user ID.
type TokenIssuer interface {
	Sign(userID string) (string, error)
}

// Service implements registration, login, and user lookups.
type Service struct {
	Repo   Repo
	Tokens TokenIssuer
}

func NewService(repo Repo, tokens TokenIssuer) *Service {
	return &Service{Repo: repo, Tokens: tokens}
}

// Register creates a user with a hashed password and returns a session token.
func (s *Service) Register(ctx context.Context, email, password string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, user); err != nil {
		return "", err
	}

	token, err := s.Tokens.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// Login verifies the credentials and returns a fresh session token.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.Repo.GetByEmail(ctx, strings.TrimSpace(email))

	hash := dummyHash
	if err == nil {
		hash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))

	if err != nil || compareErr != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.Tokens.Sign(user.ID)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// GetByID returns the user for the given ID.
func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if strings.TrimSpace(userID) == "" {
		return User{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, userID)
}

// Exists reports whether the user behind a verified token is still present.
func (s *Service) Exists(ctx context.Context, userID string) (bool, error) {
	_, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
