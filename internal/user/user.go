// Package user manages user accounts and their credentials.
package user

import (
	"errors"
	"time"
)

// User is the public identity of an account, as embedded in tokens and responses.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Credential is a full account record including the password hash. It is
// created on registration, read on login, and never mutated by the gateway.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// ErrNotFound is returned when no account exists for the given email or id.
var ErrNotFound = errors.New("user not found")

// ErrAlreadyExists is returned when an email is already registered.
var ErrAlreadyExists = errors.New("user already exists")

// ErrInvalidCredentials is returned when a password does not match the stored hash.
var ErrInvalidCredentials = errors.New("invalid credentials")
