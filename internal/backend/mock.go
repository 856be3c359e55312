// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package backend

import (
	"context"

	"github.com/google/uuid"

	"washclub/cli/internal/account"
)

// Mock accepts every request and issues random opaque tokens.
type Mock struct{}

// NewMock returns the always-succeed backend.
func NewMock() *Mock { return &Mock{} }

// SignIn implements API.
func (m *Mock) SignIn(ctx context.Context, phone string) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	return Credential{Token: uuid.NewString()}, nil
}

// SignUp implements API.
func (m *Mock) SignUp(ctx context.Context, profile account.Profile) (Credential, error) {
	if err := ctx.Err(); err != nil {
		return Credential{}, err
	}
	return Credential{Token: uuid.NewString()}, nil
}

// SignOut implements API.
func (m *Mock) SignOut(ctx context.Context, token string) error {
	return ctx.Err()
}
