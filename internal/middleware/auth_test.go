package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GabrielSB19/menupp-back/internal/token"
)

func newAuthedHandler(t *testing.T) (*token.Service, http.Handler, *bool) {
	t.Helper()

	tokens, err := token.NewService("test-secret")
	require.NoError(t, err)

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		id, _ := r.Context().Value(UserIDKey).(string)
		email, _ := r.Context().Value(UserEmailKey).(string)
		_, _ = w.Write([]byte(id + "|" + email))
	})

	return tokens, RequireAuth(tokens)(next), &reached
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	_, h, reached := newAuthedHandler(t)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"error":"Token missing"}`, rec.Body.String())
	assert.False(t, *reached, "handler must not run without a token")
}

func TestRequireAuth_EmptyBearer(t *testing.T) {
	_, h, reached := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer ")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	_, h, reached := newAuthedHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-real-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid token"}`, rec.Body.String())
	assert.False(t, *reached, "handler must not run with an invalid token")
}

func TestRequireAuth_WrongSecret(t *testing.T) {
	_, h, reached := newAuthedHandler(t)

	other, err := token.NewService("other-secret")
	require.NoError(t, err)
	tok, err := other.Issue("u1", "a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *reached)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens, h, reached := newAuthedHandler(t)

	tok, err := tokens.Issue("user-42", "a@b.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *reached)
	assert.Equal(t, "user-42|a@b.com", rec.Body.String())
}
