package session

import (
	"sync"
	"time"

	"storefront-payments/internal/pkg/clock"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// Store is an in-process key/value store whose entries expire.
// Expired entries are dropped lazily on access and during Put.
type Store struct {
	mu      sync.Mutex
	clock   clock.Clock
	entries map[string]entry
}

func NewStore(clk clock.Clock) *Store {
	return &Store{
		clock:   clk,
		entries: make(map[string]entry),
	}
}

func (s *Store) Put(key, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock.Now()
	s.sweep(now)
	s.entries[key] = entry{value: value, expiresAt: now.Add(ttl)}
}

func (s *Store) Take(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return "", false
	}
	delete(s.entries, key)
	if !s.clock.Now().Before(e.expiresAt) {
		return "", false
	}
	return e.value, true
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

func (s *Store) sweep(now time.Time) {
	for k, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, k)
		}
	}
}
