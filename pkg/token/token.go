// Package token issues and verifies the signed identity tokens that gate
// protected routes. Tokens are HS256 JWTs carrying the minimal identity
// claims; verification needs no database round trip.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/fintrack/fintrack/pkg/config"
	"github.com/fintrack/fintrack/pkg/domain"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Payload is the set of identity claims embedded in a token. It must
// round-trip exactly through Issue and Verify.
type Payload struct {
	ID       uuid.UUID
	Username string
	Email    string
}

// Service signs and verifies tokens with a process-wide secret and expiry
// window, both fixed at construction.
type Service struct {
	secret []byte
	expiry time.Duration
}

func New(cfg *config.Jwt) *Service {
	return &Service{secret: []byte(cfg.Secret), expiry: cfg.Expiry}
}

// Issue returns a signed token embedding p and an expiry timestamp at the
// configured window from now.
func (s *Service) Issue(p Payload) (string, error) {
	t := jwt.New(jwt.SigningMethodHS256)
	claims := t.Claims.(jwt.MapClaims)
	claims["user_id"] = p.ID.String()
	claims["username"] = p.Username
	claims["email"] = p.Email
	claims["exp"] = time.Now().Add(s.expiry).Unix()
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded payload.
// An expired token fails with domain.ErrTokenExpired; anything else wrong
// with the token fails with domain.ErrTokenInvalid.
func (s *Service) Verify(tokenString string) (*Payload, error) {
	t, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	return PayloadFromToken(t)
}

// PayloadFromToken extracts the identity claims from an already-verified
// token, such as the one the auth middleware stores on the request.
func PayloadFromToken(t *jwt.Token) (*Payload, error) {
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	idStr, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenInvalid
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	username, _ := claims["username"].(string)
	email, _ := claims["email"].(string)
	return &Payload{ID: id, Username: username, Email: email}, nil
}
