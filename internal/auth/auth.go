// Package auth issues and verifies the bearer tokens that protect the API.
// There is a single shared secret per deployment; clients exchange it for a
// short-lived signed token.
package auth

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrBadSecret    = errors.New("bad secret")
	ErrInvalidToken = errors.New("invalid token")
)

type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Exchange trades the deployment secret for a signed token.
func (s *Service) Exchange(secret string) (string, time.Time, error) {
	if subtle.ConstantTimeCompare([]byte(secret), s.secret) != 1 {
		return "", time.Time{}, ErrBadSecret
	}

	expiresAt := time.Now().Add(s.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "api",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("signing token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify checks the token signature and expiry.
func (s *Service) Verify(tokenStr string) error {
	_, err := jwt.Parse(tokenStr,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	return nil
}

// Middleware rejects requests without a valid Bearer token.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			http.Error(w, "missing bearer token", http.StatusUnauthorized)
			return
		}

		if err := s.Verify(tokenStr); err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
