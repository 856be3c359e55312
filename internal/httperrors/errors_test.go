package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"

	"washclub/cli/internal/backend"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{name: "unauthorized", err: fmt.Errorf("sign-in: %w", backend.ErrUnauthorized), want: Unauthorized},
		{name: "deadline", err: context.DeadlineExceeded, want: Timeout},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.example"}, want: DNS},
		{name: "refused", err: &net.OpError{Op: "dial", Err: syscall.ECONNREFUSED}, want: ConnectionRefused},
		{name: "tls", err: errors.New("x509: certificate signed by unknown authority"), want: TLS},
		{name: "server", err: errors.New("sign-in: unexpected status 503"), want: Server},
		{name: "other", err: errors.New("boom"), want: Generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}

func TestExtractHostFromURL(t *testing.T) {
	assert.Equal(t, "api.example.com:8443", ExtractHostFromURL("https://api.example.com:8443/v1"))
	assert.Equal(t, "server", ExtractHostFromURL("not a url"))
}
