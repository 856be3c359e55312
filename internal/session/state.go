// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package session

// Phase is a state of the session state machine.
type Phase int

const (
	// Initializing is the start phase, left once the startup check completes.
	Initializing Phase = iota
	// Unauthenticated means no usable credential is stored.
	Unauthenticated
	// Authenticating covers an in-flight sign-in or sign-up.
	Authenticating
	// Authenticated means a credential was persisted or found at startup.
	Authenticated
	// SigningOut covers an in-flight sign-out.
	SigningOut
)

func (p Phase) String() string {
	switch p {
	case Initializing:
		return "initializing"
	case Unauthenticated:
		return "unauthenticated"
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	case SigningOut:
		return "signing_out"
	}
	return "unknown"
}

// State is what observers see. Loading and SignedIn are derived from Phase.
type State struct {
	Phase    Phase
	Loading  bool
	SignedIn bool
}

func stateOf(p Phase) State {
	return State{
		Phase:    p,
		Loading:  p == Initializing || p == Authenticating || p == SigningOut,
		SignedIn: p == Authenticated,
	}
}

// sameView reports whether two states look identical to observers.
func (s State) sameView(o State) bool {
	return s.Loading == o.Loading && s.SignedIn == o.SignedIn
}
