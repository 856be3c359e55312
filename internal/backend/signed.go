// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"washclub/cli/internal/account"
)

// Issuer is the iss claim of tokens minted by Signed.
const Issuer = "washclub"

// Signed is a mock backend that mints HS256 JWTs instead of random strings.
// Nothing is checked against a user database.
type Signed struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// NewSigned builds a Signed backend. ttl <= 0 issues tokens without expiry.
func NewSigned(key []byte, ttl time.Duration) (*Signed, error) {
	if len(key) < 32 {
		return nil, errors.New("signing key must be at least 32 bytes")
	}
	return &Signed{key: key, ttl: ttl, now: time.Now}, nil
}

func (s *Signed) mint(subject string) (Credential, error) {
	now := s.now()
	claims := jwt.RegisteredClaims{
		Issuer:   Issuer,
		Subject:  subject,
		ID:       uuid.NewString(),
		IssuedAt: jwt.NewNumericDate(now),
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return Credential{}, err
	}
	return Credential{Token: tok}, nil
}

// SignIn implements API.
func (s *Signed) SignIn(ctx context.Context, phone string) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	return s.mint(phone)
}

// SignUp implements API.
func (s *Signed) SignUp(ctx context.Context, profile account.Profile) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	return s.mint(profile.PhoneNumber)
}

// SignOut implements API. Minted tokens are stateless, so there is nothing to revoke.
func (s *Signed) SignOut(ctx context.Context, token string) error {
	return ctx.Err()
}

// Verify parses a token minted by s and returns its subject.
func (s *Signed) Verify(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}
