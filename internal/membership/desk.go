// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package membership files member requests (plan changes, receipts, payment
// updates, cancellations and pauses). Requests are acknowledged locally after
// a short processing delay; nothing is sent to a billing system.
package membership

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"washclub/cli/internal/catalog"
	apperrors "washclub/cli/internal/errors"
	"washclub/cli/internal/logging"
)

// DefaultDelay is how long a request appears to be processing.
const DefaultDelay = 1500 * time.Millisecond

// Receipt acknowledges a filed request.
type Receipt struct {
	ID          string
	Action      string
	Message     string
	SubmittedAt time.Time
}

type optionSource interface {
	Option(id string) (catalog.MembershipOption, bool)
}

// Desk accepts membership requests.
type Desk struct {
	options optionSource
	delay   time.Duration
	log     *slog.Logger
	now     func() time.Time
}

// Option customizes a Desk.
type Option func(*Desk)

// WithDelay overrides DefaultDelay.
func WithDelay(d time.Duration) Option {
	return func(desk *Desk) { desk.delay = d }
}

// WithLogger sets the logger.
func WithLogger(log *slog.Logger) Option {
	return func(desk *Desk) {
		if log != nil {
			desk.log = log
		}
	}
}

// NewDesk returns a Desk that accepts the request options of cat.
func NewDesk(cat *catalog.Catalog, opts ...Option) *Desk {
	d := &Desk{
		options: cat,
		delay:   DefaultDelay,
		log:     logging.Discard(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(d)
	}
	return d
}

// Submit files action with optional free-form details.
func (d *Desk) Submit(ctx context.Context, action, details string) (Receipt, error) {
	opt, ok := d.options.Option(action)
	if !ok {
		return Receipt{}, apperrors.New(apperrors.InvalidInput, "unknown membership request "+action)
	}

	if d.delay > 0 {
		t := time.NewTimer(d.delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		}
	}

	msg := "Your request to " + opt.Phrase + " has been submitted."
	if details = strings.TrimSpace(details); details != "" {
		msg += " " + details
	}
	r := Receipt{
		ID:          uuid.NewString(),
		Action:      opt.ID,
		Message:     msg,
		SubmittedAt: d.now(),
	}
	d.log.Info("membership request submitted", "action", r.Action, "request_id", r.ID)
	return r, nil
}
