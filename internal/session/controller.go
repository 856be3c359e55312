// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package session owns the client-side session state machine: whether the
// current user counts as signed in, which asynchronous operation is running,
// and who gets told when that changes.
//
// A Controller is constructed explicitly and shared by handle. Init starts the
// startup credential check; SignIn, SignUp and SignOut drive the remaining
// transitions. Only one operation runs at a time: overlapping SignIn/SignUp
// calls fail with ErrSessionBusy, while SignOut cancels whatever is running
// and then signs out, so it is always well defined.
//
// Sign-in and sign-up fail closed: if the credential cannot be persisted the
// session returns to Unauthenticated and the error reaches the caller.
// Sign-out is best-effort: it always ends Unauthenticated and only logs
// store failures.
package session

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"washclub/cli/internal/account"
	"washclub/cli/internal/backend"
	apperrors "washclub/cli/internal/errors"
	"washclub/cli/internal/logging"
	"washclub/cli/internal/store"
)

// DefaultMinLoading is the shortest time an operation keeps Loading set, so
// the loading view is never an imperceptible flash.
const DefaultMinLoading = 2 * time.Second

// Re-exported sentinels so callers need not import internal/errors.
var (
	ErrSessionBusy     = apperrors.ErrSessionBusy
	ErrAlreadySignedIn = apperrors.ErrAlreadySignedIn
	ErrDisposed        = apperrors.ErrDisposed
)

// Listener receives the new state after Loading or SignedIn changes. It runs
// synchronously on the goroutine that made the change and must not call
// Controller operations directly.
type Listener func(State)

type listenerEntry struct {
	id int
	fn Listener
}

// Controller is the single writer of session state.
type Controller struct {
	store      store.Store
	be         backend.API
	log        *slog.Logger
	minLoading time.Duration

	mu       sync.Mutex
	phase    Phase
	cancel   context.CancelFunc
	done     chan struct{} // non-nil while an operation is in flight
	disposed bool

	initOnce  sync.Once
	ready     chan struct{}
	readyOnce sync.Once

	lmu       sync.Mutex
	listeners []listenerEntry
	nextID    int

	nmu       sync.Mutex // serializes notifications
	published State
}

// Option customizes a Controller.
type Option func(*Controller)

// WithLogger sets the logger. The default discards output.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithMinLoading overrides DefaultMinLoading. Negative values mean zero.
func WithMinLoading(d time.Duration) Option {
	return func(c *Controller) {
		if d < 0 {
			d = 0
		}
		c.minLoading = d
	}
}

// New constructs a Controller in the Initializing phase. Call Init to run the
// startup check.
func New(st store.Store, be backend.API, opts ...Option) *Controller {
	c := &Controller{
		store:      st,
		be:         be,
		log:        logging.Discard(),
		minLoading: DefaultMinLoading,
		phase:      Initializing,
		ready:      make(chan struct{}),
		published:  stateOf(Initializing),
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return stateOf(c.phase)
}

// Subscribe registers fn and returns a function that unregisters it.
// Listeners are called in subscription order.
func (c *Controller) Subscribe(fn Listener) (unsubscribe func()) {
	c.lmu.Lock()
	c.nextID++
	id := c.nextID
	c.listeners = append(c.listeners, listenerEntry{id: id, fn: fn})
	c.lmu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			c.lmu.Lock()
			defer c.lmu.Unlock()
			for i, l := range c.listeners {
				if l.id == id {
					c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

// publish notifies listeners when st differs from the last published view.
func (c *Controller) publish(st State) {
	c.nmu.Lock()
	defer c.nmu.Unlock()
	if st.sameView(c.published) {
		return
	}
	c.published = st

	c.lmu.Lock()
	ls := make([]listenerEntry, len(c.listeners))
	copy(ls, c.listeners)
	c.lmu.Unlock()

	for _, l := range ls {
		l.fn(st)
	}
}

// begin claims the operation slot after check approves the current phase,
// then moves to next.
func (c *Controller) begin(ctx context.Context, next Phase, check func(Phase) error) (context.Context, error) {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return nil, ErrDisposed
	}
	if c.done != nil {
		c.mu.Unlock()
		return nil, ErrSessionBusy
	}
	if check != nil {
		if err := check(c.phase); err != nil {
			c.mu.Unlock()
			return nil, err
		}
	}
	opCtx := c.claimLocked(ctx, next)
	c.mu.Unlock()

	c.publish(stateOf(next))
	return opCtx, nil
}

// claimLocked takes the free operation slot. c.mu must be held.
func (c *Controller) claimLocked(ctx context.Context, next Phase) context.Context {
	opCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	c.log.Debug("session transition", "from", c.phase.String(), "to", next.String())
	c.phase = next
	return opCtx
}

// finish moves to final, notifies, and only then releases the slot so no
// other operation can interleave with the notification.
func (c *Controller) finish(final Phase) {
	c.mu.Lock()
	from := c.phase
	c.phase = final
	c.mu.Unlock()

	c.log.Debug("session transition", "from", from.String(), "to", final.String())
	c.publish(stateOf(final))
	c.readyOnce.Do(func() { close(c.ready) })

	c.mu.Lock()
	c.cancel()
	c.cancel = nil
	done := c.done
	c.done = nil
	c.mu.Unlock()
	close(done)
}

// holdUntil sleeps until minLoading has passed since start.
func (c *Controller) holdUntil(ctx context.Context, start time.Time) error {
	remaining := c.minLoading - time.Since(start)
	if remaining <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(remaining)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

var errSettled = apperrors.New(apperrors.SessionBusy, "session already settled")

// Init starts the startup session check in the background. Only the first
// call has an effect. Use WaitReady to block until the check has settled.
func (c *Controller) Init(ctx context.Context) error {
	var err error
	c.initOnce.Do(func() {
		var opCtx context.Context
		opCtx, err = c.begin(ctx, Initializing, func(p Phase) error {
			if p != Initializing {
				return errSettled
			}
			return nil
		})
		if err == errSettled {
			// A sign-out already settled the session.
			err = nil
			return
		}
		if err != nil {
			return
		}
		go c.checkSession(opCtx)
	})
	return err
}

// WaitReady blocks until the startup check has completed or ctx ends.
func (c *Controller) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// CheckSession runs Init and waits for the startup check to settle.
func (c *Controller) CheckSession(ctx context.Context) (State, error) {
	if err := c.Init(ctx); err != nil {
		return c.State(), err
	}
	if err := c.WaitReady(ctx); err != nil {
		return c.State(), err
	}
	return c.State(), nil
}

// checkSession looks for a stored token; any stored value, even an empty one,
// counts as signed in. Any failure, including cancellation, resolves to
// Unauthenticated.
func (c *Controller) checkSession(ctx context.Context) {
	final := Unauthenticated
	defer func() { c.finish(final) }()

	start := time.Now()
	_, ok, err := c.store.Get(ctx, store.KeyUserToken)
	if err != nil {
		c.log.Warn("session check failed, continuing signed out",
			"error", apperrors.Wrap(apperrors.StoreReadFailed, "read session token", err))
	}
	signedIn := err == nil && ok

	if err := c.holdUntil(ctx, start); err != nil {
		c.log.Debug("session check interrupted", "error", err)
		return
	}
	if signedIn {
		final = Authenticated
	}
	c.log.Info("session restored", "signed_in", signedIn)
}

func canAuthenticate(p Phase) error {
	switch p {
	case Unauthenticated:
		return nil
	case Authenticated:
		return ErrAlreadySignedIn
	case Initializing:
		return apperrors.New(apperrors.SessionBusy, "startup session check has not completed")
	}
	return ErrSessionBusy
}

// SignIn authenticates phone and persists the session token and phone number.
// The phone number is not validated here.
func (c *Controller) SignIn(ctx context.Context, phone string) error {
	opCtx, err := c.begin(ctx, Authenticating, canAuthenticate)
	if err != nil {
		return err
	}
	start := time.Now()

	err = c.authenticate(opCtx, start, "sign-in",
		func(ctx context.Context) (backend.Credential, error) { return c.be.SignIn(ctx, phone) },
		store.KeyUserPhone, phone)
	if err != nil {
		c.log.Warn("sign-in failed", "phone", phone, "error", err)
		c.finish(Unauthenticated)
		return err
	}
	c.log.Info("signed in", "phone", phone)
	c.finish(Authenticated)
	return nil
}

// SignUp registers profile and persists the session token and the
// JSON-serialized profile. Fields are not validated here.
func (c *Controller) SignUp(ctx context.Context, profile account.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return apperrors.Wrap(apperrors.InvalidInput, "encode profile", err)
	}

	opCtx, err := c.begin(ctx, Authenticating, canAuthenticate)
	if err != nil {
		return err
	}
	start := time.Now()

	err = c.authenticate(opCtx, start, "sign-up",
		func(ctx context.Context) (backend.Credential, error) { return c.be.SignUp(ctx, profile) },
		store.KeyUserData, string(data))
	if err != nil {
		c.log.Warn("sign-up failed", "phone", profile.PhoneNumber, "error", err)
		c.finish(Unauthenticated)
		return err
	}
	c.log.Info("signed up", "phone", profile.PhoneNumber)
	c.finish(Authenticated)
	return nil
}

// authenticate obtains a credential and persists it. The companion value is
// written before the token so a stored token always has its companion.
func (c *Controller) authenticate(
	ctx context.Context,
	start time.Time,
	op string,
	call func(context.Context) (backend.Credential, error),
	key, value string,
) error {
	cred, err := call(ctx)
	if err != nil {
		return apperrors.Wrap(apperrors.BackendFailed, op+" rejected", err)
	}
	if err := c.store.Set(ctx, key, value); err != nil {
		return apperrors.Wrap(apperrors.StoreWriteFailed, "persist "+key, err)
	}
	if err := c.store.Set(ctx, store.KeyUserToken, cred.Token); err != nil {
		c.rollback(ctx, key)
		return apperrors.Wrap(apperrors.StoreWriteFailed, "persist session token", err)
	}
	if err := c.holdUntil(ctx, start); err != nil {
		c.rollback(ctx, store.KeyUserToken, key)
		return err
	}
	return nil
}

// rollback removes keys written by a failed authentication.
func (c *Controller) rollback(ctx context.Context, keys ...string) {
	ctx = context.WithoutCancel(ctx)
	for _, k := range keys {
		if k == store.KeyUserPhone {
			// A leftover phone only prefills the next sign-in.
			continue
		}
		if err := c.store.Remove(ctx, k); err != nil {
			c.log.Warn("rollback failed", "key", k, "error", err)
		}
	}
}

type signOutConfig struct {
	forgetPhone bool
}

// SignOutOption customizes SignOut.
type SignOutOption func(*signOutConfig)

// ForgetPhone also removes the remembered phone number.
func ForgetPhone() SignOutOption {
	return func(cfg *signOutConfig) { cfg.forgetPhone = true }
}

// SignOut clears the stored credential and always ends Unauthenticated. An
// operation in flight is cancelled first; a concurrent SignOut is waited for.
// Store and backend failures are logged, never returned.
func (c *Controller) SignOut(ctx context.Context, opts ...SignOutOption) {
	var cfg signOutConfig
	for _, o := range opts {
		o(&cfg)
	}

	var opCtx context.Context
	for opCtx == nil {
		c.mu.Lock()
		if c.disposed {
			c.mu.Unlock()
			return
		}
		if done := c.done; done != nil {
			joining := c.phase == SigningOut
			if !joining {
				c.cancel()
			}
			c.mu.Unlock()

			<-done
			if joining {
				return
			}
			continue
		}
		opCtx = c.claimLocked(context.WithoutCancel(ctx), SigningOut)
		c.mu.Unlock()
	}
	c.publish(stateOf(SigningOut))
	defer c.finish(Unauthenticated)

	if token, ok, err := c.store.Get(opCtx, store.KeyUserToken); err == nil && ok {
		if err := c.be.SignOut(opCtx, token); err != nil {
			c.log.Warn("backend sign-out failed", "error", err)
		}
	}

	keys := []string{store.KeyUserToken, store.KeyUserData}
	if cfg.forgetPhone {
		keys = append(keys, store.KeyUserPhone)
	}
	for _, k := range keys {
		if err := c.store.Remove(opCtx, k); err != nil {
			c.log.Warn("sign-out could not clear credential",
				"error", apperrors.Wrap(apperrors.StoreRemoveFailed, "remove "+k, err))
		}
	}
	c.log.Info("signed out")
}

// Dispose cancels any running operation, waits for it and drops every
// listener. A sign-out in flight is waited for, not cancelled, so it still
// clears the stored credential. Later operations fail with ErrDisposed.
func (c *Controller) Dispose() {
	c.mu.Lock()
	if c.disposed {
		c.mu.Unlock()
		return
	}
	c.disposed = true
	done := c.done
	if c.cancel != nil && c.phase != SigningOut {
		c.cancel()
	}
	c.mu.Unlock()

	if done != nil {
		<-done
	}
	c.readyOnce.Do(func() { close(c.ready) })

	c.lmu.Lock()
	c.listeners = nil
	c.lmu.Unlock()
}
