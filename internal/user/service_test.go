package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepository is an in-memory Repository keyed by lower-cased email.
type fakeRepository struct {
	accounts map[string]*Credential
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{accounts: map[string]*Credential{}}
}

func (f *fakeRepository) Create(_ context.Context, email, passwordHash string) (*Credential, error) {
	key := strings.ToLower(email)
	if _, ok := f.accounts[key]; ok {
		return nil, ErrAlreadyExists
	}
	f.nextID++
	c := &Credential{ID: fmt.Sprintf("user-%d", f.nextID), Email: key, PasswordHash: passwordHash}
	f.accounts[key] = c
	return c, nil
}

func (f *fakeRepository) GetByEmail(_ context.Context, email string) (*Credential, error) {
	c, ok := f.accounts[strings.ToLower(email)]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	created, err := svc.Register(ctx, "a@b.com", "pw1")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "a@b.com", created.Email)

	got, err := svc.Authenticate(ctx, "a@b.com", "pw1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestRegister_HashesPassword(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo)

	_, err := svc.Register(context.Background(), "a@b.com", "pw1")
	require.NoError(t, err)

	stored := repo.accounts["a@b.com"]
	assert.NotEqual(t, "pw1", stored.PasswordHash, "password must never be stored in plain text")
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"), "expected a bcrypt hash, got %q", stored.PasswordHash)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@b.com", "pw2")
	assert.ErrorIs(t, err, ErrAlreadyExists)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	svc := NewService(newFakeRepository())
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "pw1")
	require.NoError(t, err)

	_, err = svc.Authenticate(ctx, "a@b.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownEmail(t *testing.T) {
	svc := NewService(newFakeRepository())

	_, err := svc.Authenticate(context.Background(), "missing@b.com", "pw1")
	assert.ErrorIs(t, err, ErrNotFound)
}
