// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package navigator decides which screen stack the client shows for a given
// session state and keeps a Renderer in step with the session controller.
package navigator

import (
	"sync"

	"washclub/cli/internal/session"
)

// Stack is a group of screens shown together.
type Stack int

const (
	// Loading is the full-screen indicator shown while a session operation runs.
	Loading Stack = iota
	// Auth holds the sign-in and sign-up screens.
	Auth
	// Main holds the member screens.
	Main
)

func (s Stack) String() string {
	switch s {
	case Loading:
		return "loading"
	case Auth:
		return "auth"
	case Main:
		return "main"
	}
	return "unknown"
}

// Route maps a session state to the stack to show. Loading wins over
// SignedIn, so no member screen is reachable mid-operation.
func Route(st session.State) Stack {
	switch {
	case st.Loading:
		return Loading
	case st.SignedIn:
		return Main
	default:
		return Auth
	}
}

// Renderer draws a stack.
type Renderer interface {
	Render(Stack)
}

// Source is the part of the session controller the navigator observes.
type Source interface {
	State() session.State
	Subscribe(fn session.Listener) (unsubscribe func())
}

// Navigator renders the routed stack whenever it changes.
type Navigator struct {
	mu          sync.Mutex
	r           Renderer
	current     Stack
	unsubscribe func()
}

// New renders the stack for src's current state and follows later changes
// until Close. It subscribes before reading the state, so no transition is
// missed in between.
func New(src Source, r Renderer) *Navigator {
	n := &Navigator{r: r}
	n.mu.Lock()
	defer n.mu.Unlock()

	n.unsubscribe = src.Subscribe(n.onState)
	n.current = Route(src.State())
	r.Render(n.current)
	return n
}

// Current returns the stack last rendered.
func (n *Navigator) Current() Stack {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}

// Close stops following the session.
func (n *Navigator) Close() {
	n.unsubscribe()
}

func (n *Navigator) onState(st session.State) {
	next := Route(st)
	n.mu.Lock()
	defer n.mu.Unlock()
	if next == n.current {
		return
	}
	n.current = next
	n.r.Render(next)
}

// MenuItem is an entry of a stack's menu. Command names the CLI command
// that opens it; an empty Command marks a screen not available yet.
type MenuItem struct {
	Label   string
	Command string
}

// AuthMenu lists the entries of the Auth stack.
var AuthMenu = []MenuItem{
	{Label: "Sign in with your phone number", Command: "signin"},
	{Label: "Create an account", Command: "signup"},
}

// HomeMenu lists the entries of the Main stack home screen.
var HomeMenu = []MenuItem{
	{Label: "Go Unlimited", Command: "plans"},
	{Label: "Buy Single Wash", Command: "washes"},
	{Label: "Buy Washbook"},
	{Label: "Wash Wallet"},
	{Label: "Our Locations", Command: "locations"},
	{Label: "Redeem Wash"},
	{Label: "Manage Membership", Command: "membership"},
	{Label: "Sign Out", Command: "signout"},
}

// ProfileMenu lists the entries of the Main stack profile screen.
var ProfileMenu = []MenuItem{
	{Label: "Manage Vehicle"},
	{Label: "Referral Rewards"},
	{Label: "Send Wash"},
	{Label: "Profile Settings"},
	{Label: "Payments Settings"},
	{Label: "Terms & Conditions"},
	{Label: "Feedback"},
	{Label: "Sign Out", Command: "signout"},
}

// MenuFor returns the menu shown for s. Loading has none.
func MenuFor(s Stack) []MenuItem {
	switch s {
	case Auth:
		return AuthMenu
	case Main:
		return HomeMenu
	}
	return nil
}
