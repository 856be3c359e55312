// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"washclub/cli/internal/backend"
	"washclub/cli/internal/catalog"
	"washclub/cli/internal/config"
	"washclub/cli/internal/dsn"
	"washclub/cli/internal/keychain"
	"washclub/cli/internal/logging"
	"washclub/cli/internal/navigator"
	"washclub/cli/internal/session"
	"washclub/cli/internal/store"
	"washclub/cli/internal/store/redisstore"
	"washclub/cli/internal/store/sqlstore"
	"washclub/cli/internal/xdg"
)

// app holds everything a command needs, built once per invocation.
type app struct {
	cfg     config.Config
	log     *slog.Logger
	store   store.Store
	backend backend.API
	session *session.Controller
	catalog *catalog.Catalog

	closeStore func() error
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if storeOverride != "" {
		cfg.Store.Kind = storeOverride
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if verbose || logging.Verbose() {
		level = slog.LevelDebug
	}
	log := logging.NewLogger(os.Stderr, level)

	st, closeStore, err := openStore(ctx, cfg.Store, log)
	if err != nil {
		return nil, err
	}

	be, err := backend.New(backend.Settings{
		Kind:       cfg.Backend.Kind,
		BaseURL:    cfg.Backend.URL,
		SigningKey: cfg.Backend.SigningKey,
	})
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	cat, err := catalog.Default()
	if err != nil {
		_ = closeStore()
		return nil, err
	}

	minLoading, _ := cfg.MinLoadingDuration()
	ctrl := session.New(st, be,
		session.WithLogger(log),
		session.WithMinLoading(minLoading),
	)

	log.Debug("washclub ready", "store", cfg.Store.Kind, "backend", cfg.Backend.Kind)
	return &app{
		cfg:        cfg,
		log:        log,
		store:      st,
		backend:    be,
		session:    ctrl,
		catalog:    cat,
		closeStore: closeStore,
	}, nil
}

// Close disposes the session controller and releases the store.
func (a *app) Close() {
	a.session.Dispose()
	if err := a.closeStore(); err != nil {
		a.log.Warn("close session store", "error", err)
	}
}

// openStore builds the configured session store.
func openStore(ctx context.Context, sc config.StoreConfig, log *slog.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(sc.Kind) {
	case config.StoreKeychain, config.StoreFile, config.StoreMemory:
		opts := keychain.Options{
			Backend:  sc.KeyringBackend,
			Password: sc.KeyringPassword,
			Logger:   log,
		}
		switch strings.ToLower(sc.Kind) {
		case config.StoreFile:
			opts.Backend = keychain.BackendFile
		case config.StoreMemory:
			opts.Backend = keychain.BackendMemory
			log.Warn("memory store does not survive restarts; the session ends with this command")
		}
		if opts.Backend == keychain.BackendFile || opts.Backend == "" || opts.Backend == keychain.BackendAuto {
			dir, err := xdg.StateDir()
			if err != nil {
				return nil, nil, err
			}
			opts.FileDir = filepath.Join(dir, "keyring")
		}
		m, err := keychain.Open(opts)
		if err != nil {
			return nil, nil, err
		}
		return m, noop, nil

	case config.StoreRedis:
		addr := sc.RedisAddr
		if addr == "" && dsn.DetectDriver(sc.DSN) == dsn.DriverRedis {
			addr = sc.DSN
		}
		if addr == "" {
			return nil, nil, fmt.Errorf("redis store needs WASHCLUB_REDIS_ADDR or a redis:// store DSN")
		}
		rs, err := redisstore.Open(ctx, addr)
		if err != nil {
			return nil, nil, err
		}
		return rs, rs.Close, nil

	case config.StoreSQL:
		conn := sc.DSN
		if conn == "" {
			dir, err := xdg.StateDir()
			if err != nil {
				return nil, nil, err
			}
			conn = "sqlite://" + filepath.Join(dir, "session.db")
		}
		ss, err := sqlstore.Open(ctx, conn)
		if err != nil {
			return nil, nil, fmt.Errorf("open sql store: %s", logging.Mask(err.Error()))
		}
		return ss, ss.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store %q", sc.Kind)
}

// restore runs the startup session check behind a loading indicator.
// With showMenus the settled stack's menu is printed too.
func (a *app) restore(ctx context.Context, showMenus bool) (session.State, error) {
	r := navigator.NewTerminalRenderer(showMenus)
	r.LoadingText = "Checking your session"
	nav := navigator.New(a.session, r)
	defer r.Close()
	defer nav.Close()

	return a.session.CheckSession(ctx)
}

// withSpinner runs op while the navigator shows the loading indicator.
func (a *app) withSpinner(text string, op func() error) error {
	r := navigator.NewTerminalRenderer(false)
	r.LoadingText = text
	nav := navigator.New(a.session, r)
	defer r.Close()
	defer nav.Close()

	return op()
}

// runWithApp builds the app, runs fn and cleans up.
func runWithApp(ctx context.Context, fn func(ctx context.Context, a *app) error) error {
	a, err := newApp(ctx)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}
