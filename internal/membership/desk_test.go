package membership

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"washclub/cli/internal/catalog"
	apperrors "washclub/cli/internal/errors"
)

func newTestDesk(t *testing.T, opts ...Option) *Desk {
	t.Helper()
	cat, err := catalog.Default()
	require.NoError(t, err)
	return NewDesk(cat, append([]Option{WithDelay(0)}, opts...)...)
}

func TestSubmit(t *testing.T) {
	tests := []struct {
		action  string
		details string
		want    string
	}{
		{action: "change", details: "New plan: Elite Unlimited", want: "Your request to change your membership has been submitted. New plan: Elite Unlimited"},
		{action: "email", want: "Your request to email your latest receipt has been submitted."},
		{action: "payment", want: "Your request to update your payment method has been submitted."},
		{action: "cancel", details: "  ", want: "Your request to cancel your membership has been submitted."},
		{action: "pause", details: "Pause duration: 1 month", want: "Your request to pause your membership has been submitted. Pause duration: 1 month"},
	}

	desk := newTestDesk(t)
	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			r, err := desk.Submit(context.Background(), tt.action, tt.details)
			require.NoError(t, err)
			assert.Equal(t, tt.want, r.Message)
			assert.Equal(t, tt.action, r.Action)
			_, err = uuid.Parse(r.ID)
			assert.NoError(t, err)
		})
	}
}

func TestSubmitUnknownAction(t *testing.T) {
	_, err := newTestDesk(t).Submit(context.Background(), "select", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.InvalidInput, apperrors.KindOf(err))
}

func TestSubmitWaitsForDelay(t *testing.T) {
	desk := newTestDesk(t, WithDelay(30*time.Millisecond))

	start := time.Now()
	_, err := desk.Submit(context.Background(), "email", "")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestSubmitCancelled(t *testing.T) {
	desk := newTestDesk(t, WithDelay(time.Minute))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := desk.Submit(ctx, "email", "")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMockMemberName(t *testing.T) {
	assert.Equal(t, "John Doe", MockMember.Name())
}
