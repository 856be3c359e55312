// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package keychain provides a thread-safe session store backed by the OS
// keychain/credential store. It implements store.Store on top of
// github.com/99designs/keyring, with a native macOS backend that shells out
// to the security command when it is available.
//
// Supported backends are macOS Keychain, Windows Credential Manager, the
// freedesktop Secret Service, pass, an encrypted file store for headless
// Linux machines and an in-memory array used by tests and --store=memory.
package keychain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/99designs/keyring"

	"washclub/cli/internal/logging"
	"washclub/cli/internal/store"
)

// ServiceName identifies our keychain/credential store namespace.
const ServiceName = "washclub"

// Backend names accepted by Options.Backend.
const (
	BackendAuto     = "auto"
	BackendKeychain = "keychain"
	BackendWinCred  = "wincred"
	BackendSecret   = "secret-service"
	BackendPass     = "pass"
	BackendFile     = "file"
	BackendMemory   = "memory"
)

var errKeyNotFound = errors.New("key not found")

// keychainBackend defines the interface for native keychain operations.
type keychainBackend interface {
	Set(key, value string) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Options configures Open.
type Options struct {
	// Backend selects the storage backend; empty means BackendAuto.
	Backend string
	// FileDir is where the file backend keeps its encrypted items.
	FileDir string
	// Password unlocks the file backend.
	Password string
	Logger   *slog.Logger
}

// Manager provides centralized, thread-safe operations for the OS keychain.
type Manager struct {
	mu      sync.RWMutex
	ring    keyring.Keyring
	backend keychainBackend
	log     *slog.Logger
}

var _ store.Store = (*Manager)(nil)

// Open creates a keychain manager for the requested backend.
func Open(opts Options) (*Manager, error) {
	log := opts.Logger
	if log == nil {
		log = logging.Discard()
	}
	name := strings.ToLower(strings.TrimSpace(opts.Backend))
	if name == "" {
		name = BackendAuto
	}

	if name == BackendMemory {
		return NewWithKeyring(keyring.NewArrayKeyring(nil), log), nil
	}

	// Try native security backend first on macOS
	if runtime.GOOS == "darwin" && (name == BackendAuto || name == BackendKeychain) {
		backend, err := newSecurityBackend(log)
		if err == nil {
			return &Manager{backend: backend, log: log}, nil
		}
		log.Debug("native keychain unavailable, using keyring library", "error", err)
	}

	ring, err := openRing(name, opts)
	if err != nil {
		return nil, err
	}
	return NewWithKeyring(ring, log), nil
}

// NewWithKeyring wraps an already opened keyring.
func NewWithKeyring(ring keyring.Keyring, log *slog.Logger) *Manager {
	if log == nil {
		log = logging.Discard()
	}
	return &Manager{ring: ring, log: log}
}

// allowedBackends maps a backend name to the keyring backends to try, in order.
func allowedBackends(name string) ([]keyring.BackendType, error) {
	switch name {
	case BackendKeychain:
		return []keyring.BackendType{keyring.KeychainBackend}, nil
	case BackendWinCred:
		return []keyring.BackendType{keyring.WinCredBackend}, nil
	case BackendSecret:
		return []keyring.BackendType{keyring.SecretServiceBackend}, nil
	case BackendPass:
		return []keyring.BackendType{keyring.PassBackend}, nil
	case BackendFile:
		return []keyring.BackendType{keyring.FileBackend}, nil
	case BackendAuto:
		switch runtime.GOOS {
		case "darwin":
			// Pass requires 'pass' utility installed: brew install pass
			return []keyring.BackendType{keyring.KeychainBackend, keyring.PassBackend}, nil
		case "windows":
			return []keyring.BackendType{keyring.WinCredBackend}, nil
		default:
			return []keyring.BackendType{keyring.SecretServiceBackend, keyring.PassBackend, keyring.FileBackend}, nil
		}
	}
	return nil, fmt.Errorf("unknown keychain backend %q", name)
}

// openRing opens the keyring restricted to the backends allowed for name.
func openRing(name string, opts Options) (keyring.Keyring, error) {
	backends, err := allowedBackends(name)
	if err != nil {
		return nil, err
	}

	cfg := keyring.Config{
		ServiceName:     ServiceName,
		AllowedBackends: backends,
		PassPrefix:      ServiceName,
		FileDir:         opts.FileDir,
		FilePasswordFunc: func(string) (string, error) {
			if opts.Password == "" {
				return "", errors.New("file keyring needs a password: set WASHCLUB_KEYRING_PASSWORD")
			}
			return opts.Password, nil
		},
	}

	// Hint prefixes where supported to minimize namespace collisions
	if runtime.GOOS == "windows" {
		cfg.WinCredPrefix = ServiceName
	}

	ring, err := keyring.Open(cfg)
	if err != nil {
		if runtime.GOOS == "darwin" {
			return nil, errors.New("macOS Keychain unavailable. On macOS 26.0+, install 'pass': brew install pass gnupg && gpg --generate-key && pass init <gpg-key-id>")
		}
		return nil, fmt.Errorf("open keyring: %w", err)
	}
	return ring, nil
}

// Get retrieves a value from the keychain. Missing keys report ok=false.
// This method is thread-safe.
func (m *Manager) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.backend != nil {
		v, err := m.backend.Get(key)
		if errors.Is(err, errKeyNotFound) {
			return "", false, nil
		}
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}

	it, err := m.ring.Get(key)
	if errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return string(it.Data), true, nil
}

// Set stores a value in the keychain.
// This method is thread-safe.
func (m *Manager) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Set(key, value)
	}
	return m.ring.Set(keyring.Item{Key: key, Data: []byte(value), Label: ServiceName + " " + key})
}

// Remove deletes a value from the keychain. Missing keys are not an error.
// This method is thread-safe.
func (m *Manager) Remove(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.backend != nil {
		return m.backend.Delete(key)
	}
	err := m.ring.Remove(key)
	if errors.Is(err, keyring.ErrKeyNotFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
