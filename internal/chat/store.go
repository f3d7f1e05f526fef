package chat

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	cc        *Context
	expiresAt time.Time
}

// memoryStore keeps contexts in process memory with a per-session TTL.
// Expired entries are dropped lazily on Get and swept on Save, so the map
// stays bounded by the set of sessions active within one TTL window.
type memoryStore struct {
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	now     func() time.Time
}

func NewMemoryStore(ttl time.Duration) Store {
	return &memoryStore{
		ttl:     ttl,
		entries: make(map[string]*memoryEntry),
		now:     time.Now,
	}
}

func (s *memoryStore) Get(_ context.Context, sessionID string) (*Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	if s.now().After(entry.expiresAt) {
		delete(s.entries, sessionID)
		return nil, nil
	}
	return entry.cc, nil
}

func (s *memoryStore) Save(_ context.Context, sessionID string, cc *Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[sessionID] = &memoryEntry{cc: cc, expiresAt: now.Add(s.ttl)}
	return nil
}
