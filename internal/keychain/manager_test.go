// Copyright (c) 2025 Elite Express
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"context"
	"testing"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"washclub/cli/internal/store"
)

func TestManagerRoundTrip(t *testing.T) {
	ctx := context.Background()
	m := NewWithKeyring(keyring.NewArrayKeyring(nil), nil)

	_, ok, err := m.Get(ctx, store.KeyUserToken)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, store.KeyUserToken, "tok-1"))
	v, ok, err := m.Get(ctx, store.KeyUserToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "tok-1", v)

	require.NoError(t, m.Set(ctx, store.KeyUserToken, "tok-2"))
	v, _, _ = m.Get(ctx, store.KeyUserToken)
	assert.Equal(t, "tok-2", v)
}

func TestManagerRemoveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	m := NewWithKeyring(keyring.NewArrayKeyring(nil), nil)

	require.NoError(t, m.Set(ctx, store.KeyUserData, `{"firstName":"Ada"}`))
	require.NoError(t, m.Remove(ctx, store.KeyUserData))
	require.NoError(t, m.Remove(ctx, store.KeyUserData))

	_, ok, err := m.Get(ctx, store.KeyUserData)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestManagerFileBackendSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	opts := Options{Backend: BackendFile, FileDir: dir, Password: "s3cret"}

	m, err := Open(opts)
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, store.KeyUserToken, "persisted"))

	reopened, err := Open(opts)
	require.NoError(t, err)
	v, ok, err := reopened.Get(ctx, store.KeyUserToken)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "persisted", v)

	require.NoError(t, reopened.Remove(ctx, store.KeyUserToken))
	require.NoError(t, reopened.Remove(ctx, store.KeyUserToken))
}

func TestManagerHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := NewWithKeyring(keyring.NewArrayKeyring(nil), nil)

	assert.ErrorIs(t, m.Set(ctx, store.KeyUserToken, "x"), context.Canceled)
}

func TestOpenUnknownBackend(t *testing.T) {
	_, err := Open(Options{Backend: "floppy"})
	assert.Error(t, err)
}
