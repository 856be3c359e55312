package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  *E
		want string
	}{
		{
			name: "without cause",
			err:  New(SessionBusy, "busy"),
			want: "session_busy: busy",
		},
		{
			name: "with cause",
			err:  Wrap(StoreWriteFailed, "persist token", stderrors.New("disk full")),
			want: "store_write_failed: persist token: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestIsMatchesKind(t *testing.T) {
	cause := stderrors.New("locked")
	err := fmt.Errorf("sign in: %w", Wrap(SessionBusy, "initial check running", cause))

	assert.ErrorIs(t, err, ErrSessionBusy)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrDisposed)
	assert.Equal(t, SessionBusy, KindOf(err))
	assert.Equal(t, Kind(""), KindOf(cause))
}
