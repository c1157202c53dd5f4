// Package storage persists user sessions: the project context a user
// described and, optionally, the report generated for it. The engine
// itself never touches storage; this adapter implements the read/write
// contract the surrounding application needs between sessions.
package storage

import (
	"time"

	"stack-advisor/core/types"
	"stack-advisor/internal/errors"
)

// Backend is a storage backend type
type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
)

// Session is a saved user session
type Session struct {
	// ID is the unique session identifier
	ID string `json:"id"`

	// Name is a user-supplied label
	Name string `json:"name,omitempty"`

	// CreatedAt is when the session was first saved
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updated_at"`

	// Context is the saved project context
	Context types.ProjectContext `json:"context"`

	// Report is the last generated report, if any
	Report *types.StackGapReport `json:"report,omitempty"`
}

// Store is the session storage interface
type Store interface {
	// Save stores a session, assigning an ID when absent
	Save(session *Session) error

	// Get retrieves a session by ID
	Get(id string) (*Session, error)

	// List lists all sessions, newest first
	List() ([]*Session, error)

	// Delete removes a session
	Delete(id string) error

	// Close releases backend resources
	Close() error
}

// Open creates a store for the given backend
func Open(backend Backend, directory string) (Store, error) {
	switch backend {
	case BackendMemory:
		return NewMemoryStore(), nil
	case BackendFile, "":
		return NewFileStore(directory)
	default:
		return nil, errors.Newf(errors.TypeStorage, "unknown storage backend: %s", backend)
	}
}
