package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Service contains the business logic for account creation and password checks.
// Passwords are stored only as bcrypt hashes; comparison goes through
// bcrypt.CompareHashAndPassword, never a plain string comparison.
type Service struct {
	repo Repository
}

// NewService creates a new user Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register hashes the password and creates a new account.
func (s *Service) Register(ctx context.Context, email, password string) (*User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	c, err := s.repo.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}
	return &User{ID: c.ID, Email: c.Email}, nil
}

// Authenticate looks up the account by email and verifies the password
// against the stored hash. A mismatch returns ErrInvalidCredentials; an
// unknown email returns ErrNotFound.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
	c, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}

	return &User{ID: c.ID, Email: c.Email}, nil
}
