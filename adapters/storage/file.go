// Package storage - File backend
package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"stack-advisor/internal/errors"
)

// FileStore persists sessions as one JSON file per session under a
// directory.
type FileStore struct {
	mu        sync.Mutex
	directory string
}

// NewFileStore creates a file store, creating the directory if needed
func NewFileStore(directory string) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New(errors.TypeStorage, "file store requires a directory")
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "creating session directory %s", directory)
	}
	return &FileStore{directory: directory}, nil
}

func (s *FileStore) path(id string) string {
	return filepath.Join(s.directory, id+".json")
}

// Save stores a session, assigning an ID when absent
func (s *FileStore) Save(session *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if session.ID == "" {
		session.ID = uuid.NewString()
		session.CreatedAt = now
	}
	session.UpdatedAt = now

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return errors.Wrap(errors.TypeStorage, "encoding session", err)
	}
	if err := os.WriteFile(s.path(session.ID), data, 0644); err != nil {
		return errors.Wrapf(errors.TypeStorage, err, "writing session %s", session.ID)
	}
	return nil
}

// Get retrieves a session by ID
func (s *FileStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read(id)
}

func (s *FileStore) read(id string) (*Session, error) {
	data, err := os.ReadFile(s.path(id))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound("session", id)
		}
		return nil, errors.Wrapf(errors.TypeStorage, err, "reading session %s", id)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "decoding session %s", id)
	}
	return &session, nil
}

// List lists all sessions, newest first
func (s *FileStore) List() ([]*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.directory)
	if err != nil {
		return nil, errors.Wrapf(errors.TypeStorage, err, "listing %s", s.directory)
	}

	result := make([]*Session, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		id := strings.TrimSuffix(entry.Name(), ".json")
		session, err := s.read(id)
		if err != nil {
			// Skip unreadable entries rather than failing the listing
			continue
		}
		result = append(result, session)
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
func (s *FileStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path(id))
	if os.IsNotExist(err) {
		return errors.NotFound("session", id)
	}
	if err != nil {
		return errors.Wrapf(errors.TypeStorage, err, "deleting session %s", id)
	}
	return nil
}

// Close releases backend resources
func (s *FileStore) Close() error {
	return nil
}
