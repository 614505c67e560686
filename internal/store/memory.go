package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/i474232898/weather-card/internal/card"
)

var (
	// ErrNotFound is returned when no card exists for a session.
	ErrNotFound = errors.New("no card for session")
)

// session is a card plus the last time its owner touched it.
type session struct {
	card     *card.Card
	lastSeen time.Time
}

// MemoryStore is a concurrency-safe in-memory registry of session cards.
type MemoryStore struct {
	mu sync.RWMutex

	// key: session id
	data map[string]*session

	// retention configuration
	maxSessions  int           // max number of live sessions (0 = unlimited)
	maxIdle      time.Duration // sessions idle longer than this are pruned (0 = never)
	discardStale bool

	now func() time.Time
}

// NewMemoryStore creates a new MemoryStore with optional limits.
// If maxSessions is <= 0, it is treated as unlimited.
func NewMemoryStore(maxSessions int, maxIdle time.Duration, discardStale bool) *MemoryStore {
	return &MemoryStore{
		data:         make(map[string]*session),
		maxSessions:  maxSessions,
		maxIdle:      maxIdle,
		discardStale: discardStale,
		now:          time.Now,
	}
}

// Card returns the card for id, creating it when missing, and marks the
// session as seen. When the store is full the least recently seen session is
// evicted.
func (s *MemoryStore) Card(id string) *card.Card {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if sess, ok := s.data[id]; ok {
		sess.lastSeen = now
		return sess.card
	}

	if s.maxSessions > 0 && len(s.data) >= s.maxSessions {
		s.evictOldestLocked(len(s.data) - s.maxSessions + 1)
	}

	sess := &session{card: card.New(s.discardStale), lastSeen: now}
	s.data[id] = sess
	return sess.card
}

// Lookup returns an existing card without creating one.
func (s *MemoryStore) Lookup(id string) (*card.Card, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[id]
	if !ok {
		return nil, ErrNotFound
	}
	sess.lastSeen = s.now()
	return sess.card, nil
}

// Len returns the number of live sessions.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}

// Prune drops sessions idle longer than maxIdle and returns how many went.
func (s *MemoryStore) Prune() int {
	if s.maxIdle <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.maxIdle)
	removed := 0
	for id, sess := range s.data {
		if sess.lastSeen.Before(cutoff) {
			delete(s.data, id)
			removed++
		}
	}
	return removed
}

func (s *MemoryStore) evictOldestLocked(n int) {
	if n <= 0 {
		return
	}
	ids := make([]string, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return s.data[ids[i]].lastSeen.Before(s.data[ids[j]].lastSeen)
	})
	if n > len(ids) {
		n = len(ids)
	}
	for _, id := range ids[:n] {
		delete(s.data, id)
	}
}
