// Package xdg provides helpers to resolve XDG Base Directory paths for washclub.
// Config holds config.json; state holds the encrypted keyring files and the
// default SQLite session database.
package xdg

import (
	"os"
	"path/filepath"
)

const appDir = "washclub"

// ConfigDir returns the XDG config directory for washclub.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/washclub when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	return ensure("XDG_CONFIG_HOME", ".config")
}

// StateDir returns the XDG state directory for washclub.
// It falls back to ~/.local/state/washclub when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	return ensure("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

func ensure(envVar, homeRel string) (string, error) {
	base := os.Getenv(envVar)
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, homeRel)
	}
	dir := filepath.Join(base, appDir)
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}
