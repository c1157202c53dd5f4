// Package storage - In-memory backend
package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"stack-advisor/internal/errors"
)

// MemoryStore keeps sessions in process memory. Useful for tests and
// one-shot CLI runs.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore creates an empty memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*Session)}
}

// Save stores a session, assigning an ID when absent
func (s *MemoryStore) Save(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if session.ID == "" {
		session.ID = uuid.NewString()
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	copied := *session
	s.sessions[session.ID] = &copied
	return nil
}

// Get retrieves a session by ID
func (s *MemoryStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, errors.NotFound("session", id)
	}
	copied := *session
	return &copied, nil
}

// List lists all sessions, newest first
func (s *MemoryStore) List() ([]*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		copied := *session
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].UpdatedAt.Equal(result[j].UpdatedAt) {
			return result[i].UpdatedAt.After(result[j].UpdatedAt)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a session
func (s *MemoryStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return errors.NotFound("session", id)
	}
	delete(s.sessions, id)
	return nil
}

// Close releases backend resources
func (s *MemoryStore) Close() error {
	return nil
}
