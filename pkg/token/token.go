// Package token implements the stateless session-token service. Tokens are
// HS256-signed JWTs carrying the account id and email; verification needs no
// store lookup.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"gallery-backend/pkg/apperrors"
)

// Claims carries the authenticated identity inside a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// Service issues and verifies session tokens with a fixed lifetime.
type Service struct {
	secret   []byte
	lifetime time.Duration
}

func NewService(secret string, lifetime time.Duration) *Service {
	return &Service{secret: []byte(secret), lifetime: lifetime}
}

// Lifetime reports the configured token validity window.
func (s *Service) Lifetime() time.Duration {
	return s.lifetime
}

func (s *Service) Issue(userID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
		UserID: userID,
		Email:  email,
	})
	return t.SignedString(s.secret)
}

// Verify parses and validates tokenString. Malformed, forged and expired
// tokens all fail with apperrors.ErrAuth.
func (s *Service) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}

	t, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.E(apperrors.ErrAuth, "token expired")
		}
		return nil, apperrors.E(apperrors.ErrAuth, "invalid token")
	}

	if !t.Valid || claims.UserID == "" {
		return nil, apperrors.E(apperrors.ErrAuth, "invalid token")
	}

	return claims, nil
}
