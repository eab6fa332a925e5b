// Package token issues and verifies the signed bearer tokens that identify
// gateway users. Tokens are stateless: nothing is persisted server-side and
// there is no refresh mechanism — a verified token is accepted until it expires.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TTL is the fixed validity window of every issued token.
const TTL = time.Hour

// ErrNoSecret is returned by NewService when no signing secret is configured.
var ErrNoSecret = errors.New("token: signing secret is not configured")

// ErrInvalidToken is returned by Verify for malformed, tampered, or expired tokens.
var ErrInvalidToken = errors.New("token: invalid token")

// Claims are the identity fields embedded in a token.
type Claims struct {
	jwt.RegisteredClaims
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Service signs and verifies bearer tokens with a process-wide HMAC secret.
type Service struct {
	secret []byte
}

// NewService creates a token Service. The secret must be non-empty.
func NewService(secret string) (*Service, error) {
	if secret == "" {
		return nil, ErrNoSecret
	}
	return &Service{secret: []byte(secret)}, nil
}

// Issue signs a token carrying the user's id and email, valid for TTL.
func (s *Service) Issue(id, email string) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TTL)),
		},
		ID:    id,
		Email: email,
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token string, returning its claims.
// Signature failures, malformed input, and expiry all map to ErrInvalidToken.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
