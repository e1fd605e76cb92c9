// Package session holds authenticated sessions server-side, keyed by a
// server-issued identifier. Logging out deletes the record, so a cookie
// replayed after logout resolves to nothing.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session binds a client to an authenticated identity and role until
// logout or expiry.
type Session struct {
	ID        string
	UserID    int64
	Username  string
	Role      string
	ExpiresAt time.Time
}

// Store is the server-side session storage contract.
type Store interface {
	// Create establishes a new session for the given identity.
	Create(userID int64, username, role string) (*Session, error)
	// Get returns the session for id, or false when absent or expired.
	Get(id string) (*Session, bool)
	// Delete removes a session. Deleting an absent session is not an error.
	Delete(id string)
}

// MemoryStore is an in-process Store with per-session TTL.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	done     chan struct{}
	once     sync.Once
}

// NewMemoryStore creates a MemoryStore whose sessions expire after ttl.
// A background sweeper reclaims expired entries until Close is called.
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}
	go s.sweep()
	return s
}

// Create establishes a new session for the given identity.
func (s *MemoryStore) Create(userID int64, username, role string) (*Session, error) {
	sess := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Username:  username,
		Role:      role,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	s.mu.Unlock()

	return sess, nil
}

// Get returns the session for id. Expired sessions are treated as absent.
func (s *MemoryStore) Get(id string) (*Session, bool) {
	s.mu.RLock()
	sess, ok := s.sessions[id]
	s.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(sess.ExpiresAt) {
		s.Delete(id)
		return nil, false
	}
	return sess, true
}

// Delete removes a session unconditionally.
func (s *MemoryStore) Delete(id string) {
	s.mu.Lock()
	delete(s.sessions, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions, expired entries included
// until the sweeper runs.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close stops the background sweeper.
func (s *MemoryStore) Close() {
	s.once.Do(func() {
		close(s.done)
	})
}

func (s *MemoryStore) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			now := time.Now()
			s.mu.Lock()
			for id, sess := range s.sessions {
				if now.After(sess.ExpiresAt) {
					delete(s.sessions, id)
				}
			}
			s.mu.Unlock()
		}
	}
}
