// Package errors defines typed errors with categories for user-friendly reporting.
// It provides a structured approach to error handling with machine-readable error kinds
// and human-friendly messages, so the CLI can decide which failures to surface and
// which to absorb.
//
// Errors compare by kind through errors.Is, which lets callers match against the
// exported sentinels without caring about the wrapped cause.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// StoreReadFailed indicates the session store could not be read.
	StoreReadFailed Kind = "store_read_failed"
	// StoreWriteFailed indicates credentials could not be persisted.
	StoreWriteFailed Kind = "store_write_failed"
	// StoreRemoveFailed indicates credentials could not be cleared.
	StoreRemoveFailed Kind = "store_remove_failed"
	// SessionBusy indicates another session operation is in flight.
	SessionBusy Kind = "session_busy"
	// AlreadySignedIn indicates a sign-in was attempted on an authenticated session.
	AlreadySignedIn Kind = "already_signed_in"
	// Disposed indicates the controller has been disposed.
	Disposed Kind = "disposed"
	// BackendFailed indicates the auth backend rejected or failed a call.
	BackendFailed Kind = "backend_failed"
	// InvalidInput indicates a caller supplied an unusable argument.
	InvalidInput Kind = "invalid_input"
)

// Sentinels for errors.Is checks.
var (
	ErrSessionBusy     = New(SessionBusy, "another session operation is in progress")
	ErrAlreadySignedIn = New(AlreadySignedIn, "already signed in")
	ErrDisposed        = New(Disposed, "session controller disposed")
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *E) Unwrap() error { return e.Err }

// Is reports whether target is an *E of the same kind.
func (e *E) Is(target error) bool {
	t, ok := target.(*E)
	return ok && t.Kind == e.Kind
}

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the first *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}
