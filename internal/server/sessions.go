package server

import (
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/resume"
)

// Session is one editing session: its controller plus the per-format export
// flags that refuse a second concurrent download of the same format.
type Session struct {
	ID         string
	Controller *editor.Controller
	Exports    *export.Manager
}

// SessionStore holds all live sessions in memory.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewSessionStore returns an empty store.
func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*Session)}
}

// Create starts a session on the given document and returns it.
func (s *SessionStore) Create(doc resume.Document) *Session {
	session := &Session{
		ID:         uuid.NewString(),
		Controller: editor.NewController(doc),
		Exports:    export.NewManager(),
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns the session with the given id.
func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}
