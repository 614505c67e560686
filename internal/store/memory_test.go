package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestStore(maxSessions int, maxIdle time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(maxSessions, maxIdle, true)
	s.now = clock.now
	return s, clock
}

func TestCardIsStablePerSession(t *testing.T) {
	s, _ := newTestStore(0, 0)

	a := s.Card("a")
	require.Same(t, a, s.Card("a"))
	require.NotSame(t, a, s.Card("b"))
	require.Equal(t, 2, s.Len())
}

func TestLookupDoesNotCreate(t *testing.T) {
	s, _ := newTestStore(0, 0)

	_, err := s.Lookup("missing")
	require.ErrorIs(t, err, ErrNotFound)
	require.Equal(t, 0, s.Len())

	created := s.Card("present")
	got, err := s.Lookup("present")
	require.NoError(t, err)
	require.Same(t, created, got)
}

func TestEvictsLeastRecentlySeen(t *testing.T) {
	s, clock := newTestStore(2, 0)

	s.Card("a")
	clock.advance(time.Second)
	s.Card("b")
	clock.advance(time.Second)
	s.Card("a") // touch a so b is the oldest
	clock.advance(time.Second)
	s.Card("c")

	require.Equal(t, 2, s.Len())
	_, err := s.Lookup("b")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Lookup("a")
	require.NoError(t, err)
}

func TestPruneIdleSessions(t *testing.T) {
	s, clock := newTestStore(0, 10*time.Minute)

	s.Card("old")
	clock.advance(8 * time.Minute)
	s.Card("fresh")
	clock.advance(5 * time.Minute)

	require.Equal(t, 1, s.Prune())
	require.Equal(t, 1, s.Len())
	_, err := s.Lookup("fresh")
	require.NoError(t, err)
}

func TestPruneDisabled(t *testing.T) {
	s, clock := newTestStore(0, 0)
	s.Card("a")
	clock.advance(24 * time.Hour)

	require.Equal(t, 0, s.Prune())
	require.Equal(t, 1, s.Len())
}
