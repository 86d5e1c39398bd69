package session

import (
	"context"
	"sync"

	"github.com/Git-peanutsuu/OdekakeEventCalendar-app/utils"
)

// MemoryStore is an in-process session store used when Redis is not
// configured and in tests
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

// NewMemoryStore creates an empty in-memory session store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
	}
}

// Get loads a session by ID, returning (nil, nil) when absent or expired
func (s *MemoryStore) Get(ctx context.Context, id string) (*Session, error) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok || utils.IsExpired(sess.ExpiresAt) {
		return nil, nil
	}

	copied := sess
	return &copied, nil
}

// Save persists the session; the write is visible to Get on return
func (s *MemoryStore) Save(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	s.sessions[sess.ID] = *sess
	s.mu.Unlock()
	return nil
}

// Destroy removes the session; missing sessions are not an error
func (s *MemoryStore) Destroy(ctx context.Context, id string) error {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
	return nil
}
