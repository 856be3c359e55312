package navigator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/99designs/keyring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"washclub/cli/internal/backend"
	"washclub/cli/internal/keychain"
	"washclub/cli/internal/session"
)

type fakeRenderer struct {
	mu     sync.Mutex
	stacks []Stack
}

func (f *fakeRenderer) Render(s Stack) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stacks = append(f.stacks, s)
}

func (f *fakeRenderer) rendered() []Stack {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Stack(nil), f.stacks...)
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name  string
		state session.State
		want  Stack
	}{
		{name: "loading", state: session.State{Loading: true}, want: Loading},
		{name: "loading wins over signed in", state: session.State{Loading: true, SignedIn: true}, want: Loading},
		{name: "signed in", state: session.State{SignedIn: true}, want: Main},
		{name: "signed out", state: session.State{}, want: Auth},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.state))
		})
	}
}

func TestNavigatorFollowsSession(t *testing.T) {
	ring := keychain.NewWithKeyring(keyring.NewArrayKeyring(nil), nil)
	c := session.New(ring, backend.NewMock(), session.WithMinLoading(10*time.Millisecond))
	defer c.Dispose()

	r := &fakeRenderer{}
	nav := New(c, r)
	defer nav.Close()

	ctx := context.Background()
	_, err := c.CheckSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, Auth, nav.Current())

	require.NoError(t, c.SignIn(ctx, "5551234567"))
	assert.Equal(t, Main, nav.Current())

	c.SignOut(ctx)
	assert.Equal(t, Auth, nav.Current())

	assert.Equal(t, []Stack{Loading, Auth, Loading, Main, Loading, Auth}, r.rendered())
}

// racingSource moves to signed in right after its first State read, the
// way a session check can settle while a navigator is starting up.
type racingSource struct {
	mu        sync.Mutex
	st        session.State
	read      bool
	listeners []session.Listener
}

func (s *racingSource) State() session.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.st
	if !s.read {
		s.read = true
		s.st = session.State{Phase: session.Authenticated, SignedIn: true}
		next := s.st
		ls := append([]session.Listener(nil), s.listeners...)
		go func() {
			for _, fn := range ls {
				fn(next)
			}
		}()
	}
	return st
}

func (s *racingSource) Subscribe(fn session.Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
	return func() {}
}

func TestNavigatorSeesTransitionDuringStartup(t *testing.T) {
	src := &racingSource{st: session.State{Phase: session.Initializing, Loading: true}}
	r := &fakeRenderer{}
	nav := New(src, r)
	defer nav.Close()

	require.Eventually(t, func() bool { return nav.Current() == Main }, time.Second, time.Millisecond)
	assert.Equal(t, []Stack{Loading, Main}, r.rendered())
}

func TestNavigatorClose(t *testing.T) {
	ring := keychain.NewWithKeyring(keyring.NewArrayKeyring(nil), nil)
	c := session.New(ring, backend.NewMock(), session.WithMinLoading(0))
	defer c.Dispose()

	r := &fakeRenderer{}
	nav := New(c, r)
	nav.Close()

	_, err := c.CheckSession(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Stack{Loading}, r.rendered())
}

func TestMenus(t *testing.T) {
	assert.Nil(t, MenuFor(Loading))
	assert.Equal(t, AuthMenu, MenuFor(Auth))
	assert.Equal(t, HomeMenu, MenuFor(Main))

	lines := MenuLines(HomeMenu)
	require.Len(t, lines, len(HomeMenu))
	assert.Contains(t, lines[0], "Go Unlimited")
	assert.Contains(t, lines[0], "washclub plans")
	assert.Contains(t, lines[2], "coming soon")
}

func TestStackString(t *testing.T) {
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "auth", Auth.String())
	assert.Equal(t, "main", Main.String())
}
