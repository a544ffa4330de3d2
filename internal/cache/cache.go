// Package cache holds provider payloads in memory so repeat requests
// within the freshness window never reach the paid provider. It is a
// best-effort cost-saving layer: losing an entry only costs a re-derive.
package cache

import (
	"encoding/json"
	"sync"
	"time"
)

type entry struct {
	data     json.RawMessage
	storedAt time.Time
}

// Store maps cache keys to payloads with a fixed time-to-live measured
// from insertion. Expiry is lazy: a stale entry is deleted the first time
// it is read after its TTL elapses. There is no size bound and no sweep.
//
// Store is safe for concurrent use. Writes to the same key are
// last-writer-wins; each Put fully replaces the entry.
type Store struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]entry
	now     func() time.Time
}

func New(ttl time.Duration) *Store {
	return &Store{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the payload stored under key if it is still fresh. A stale
// entry is removed and reported as a miss.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.storedAt) >= s.ttl {
		delete(s.entries, key)
		return nil, false
	}
	return e.data, true
}

// Put stores data under key, replacing any previous entry.
func (s *Store) Put(key string, data json.RawMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = entry{data: data, storedAt: s.now()}
}

// Len reports the number of entries currently held, stale ones included.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
