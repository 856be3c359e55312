package terminal

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAsk(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr error
	}{
		{name: "line", input: "5551234567\n", want: "5551234567"},
		{name: "trims spaces", input: "  John \r\n", want: "John"},
		{name: "no trailing newline", input: "Doe", want: "Doe"},
		{name: "empty input", input: "", wantErr: io.EOF},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompter(strings.NewReader(tt.input), &out)
			assert.False(t, p.Clear)

			got, err := p.Ask("Phone: ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "Phone: ", out.String())
		})
	}
}

func TestAskDefault(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompter(strings.NewReader("\nCA\n"), &out)

	got, err := p.AskDefault("Phone: ", "5551234567")
	require.NoError(t, err)
	assert.Equal(t, "5551234567", got)

	got, err = p.AskDefault("State: ", "")
	require.NoError(t, err)
	assert.Equal(t, "CA", got)
	assert.Equal(t, "Phone: [5551234567] State: ", out.String())
}

func TestClearPreviousLines(t *testing.T) {
	var out bytes.Buffer
	ClearPreviousLines(&out, 10)
	assert.Equal(t, "\r\x1b[2K\x1b[1A\r\x1b[2K", out.String())
}
