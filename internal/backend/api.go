// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package backend provides the pluggable auth capability the session
// controller calls before it persists credentials. It ships an always-succeed
// mock, a mock that issues signed JWTs, and an HTTP client for a real server,
// so the mock can be swapped without touching the session state machine.
package backend

import (
	"context"

	"washclub/cli/internal/account"
)

// Credential is what a successful sign-in or sign-up yields. The session
// layer treats Token as an opaque existence marker.
type Credential struct {
	Token string
}

// API defines backend operations the session controller depends on.
// Implementations may call real HTTP endpoints or provide mocks for tests.
type API interface {
	// SignIn authenticates a phone number.
	SignIn(ctx context.Context, phone string) (Credential, error)
	// SignUp registers a new member.
	SignUp(ctx context.Context, profile account.Profile) (Credential, error)
	// SignOut invalidates token on the backend.
	SignOut(ctx context.Context, token string) error
}
