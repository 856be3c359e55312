// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns failures of the HTTP auth backend into
// troubleshooting output the member can act on.
package httperrors

import (
	"errors"
	"net"
	"net/url"
	"strings"
	"syscall"

	"github.com/pterm/pterm"

	"washclub/cli/internal/backend"
)

// Category classifies a network failure.
type Category int

const (
	Generic Category = iota
	Timeout
	DNS
	ConnectionRefused
	TLS
	Server
	Unauthorized
)

// Classify picks the category that best explains err.
func Classify(err error) Category {
	if err == nil {
		return Generic
	}
	lower := strings.ToLower(err.Error())

	if errors.Is(err, backend.ErrUnauthorized) {
		return Unauthorized
	}

	var netErr net.Error
	if (errors.As(err, &netErr) && netErr.Timeout()) ||
		strings.Contains(lower, "timeout") ||
		strings.Contains(lower, "deadline exceeded") {
		return Timeout
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return DNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) || strings.Contains(lower, "connection refused") {
		return ConnectionRefused
	}

	if strings.Contains(lower, "tls") ||
		strings.Contains(lower, "x509") ||
		strings.Contains(lower, "certificate") ||
		strings.Contains(lower, "handshake") {
		return TLS
	}

	for _, s := range []string{"status 500", "status 502", "status 503", "status 504",
		"internal server error", "bad gateway", "service unavailable", "gateway timeout"} {
		if strings.Contains(lower, s) {
			return Server
		}
	}
	return Generic
}

// Show prints troubleshooting help for err. action completes "while ...",
// host names the server.
func Show(err error, action, host string) {
	if err == nil {
		return
	}
	switch Classify(err) {
	case Unauthorized:
		pterm.Printf("🔒 The server rejected your credentials while %s\n", action)
		pterm.Println()
		pterm.Println("Check the phone number and try again.")
	case Timeout:
		pterm.Printf("⏱️  Connection timeout while %s\n", action)
		pterm.Println()
		pterm.Println("The server took too long to respond. This could mean:")
		pterm.Println("  • Slow internet connection")
		pterm.Println("  • Server is under heavy load")
		pterm.Println("  • Network firewall is blocking the connection")
	case DNS:
		pterm.Printf("🌐 Cannot resolve server address while %s\n", action)
		pterm.Println()
		pterm.Printf("Unable to look up %s. Please check:\n", host)
		pterm.Println("  • Your internet connection is working")
		pterm.Println("  • WASHCLUB_BACKEND_URL points at the right host")
	case ConnectionRefused:
		pterm.Printf("🚫 Connection refused while %s\n", action)
		pterm.Println()
		pterm.Printf("%s is not accepting connections. The service may be down or the port may be wrong.\n", host)
	case TLS:
		pterm.Printf("🔒 Secure connection failed while %s\n", action)
		pterm.Println()
		pterm.Println("Try:")
		pterm.Println("  • Check your system date and time")
		pterm.Println("  • Verify network proxy settings")
	case Server:
		pterm.Printf("⚠️  Server error while %s\n", action)
		pterm.Println()
		pterm.Println("This is not a problem with your setup. Please try again in a few minutes.")
	default:
		pterm.Printf("❌ Cannot reach %s while %s\n", host, action)
		details := err.Error()
		if len(details) > 100 {
			details = details[:100] + "..."
		}
		pterm.Debug.Printf("Technical details: %s\n", details)
	}
	pterm.Println()
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
