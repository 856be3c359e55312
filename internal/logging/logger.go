package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// VerboseEnv enables debug logging when set to "1".
const VerboseEnv = "WASHCLUB_VERBOSE"

// Verbose reports whether verbose mode is enabled via the environment.
func Verbose() bool {
	return os.Getenv(VerboseEnv) == "1"
}

// ParseLevel maps a config level name to a slog level. Unknown names yield info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewLogger builds a text logger that masks secrets in every string attribute.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: maskAttr,
	})
	return slog.New(h)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func maskAttr(_ []string, a slog.Attr) slog.Attr {
	if a.Value.Kind() != slog.KindString {
		return a
	}
	switch a.Key {
	case "token", "access_token":
		a.Value = slog.StringValue("***")
	case "phone":
		a.Value = slog.StringValue(MaskPhone(a.Value.String()))
	default:
		a.Value = slog.StringValue(Mask(a.Value.String()))
	}
	return a
}
