// Package memory holds the in-memory stores. Ledger sessions are
// transient by design: they are rebuilt on every department/range
// selection and never persisted.
package memory

import (
	"context"
	"sync"

	"github.com/hrconsole/attendance-backend-go/internal/domain/ledger"
)

type SessionStore struct {
	mu       sync.RWMutex
	sessions map[string]ledger.Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[string]ledger.Session),
	}
}

// Save implements ledger.SessionRepository.
func (s *SessionStore) Save(_ context.Context, session ledger.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

// Get implements ledger.SessionRepository.
func (s *SessionStore) Get(_ context.Context, id string) (ledger.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return ledger.Session{}, ledger.ErrSessionNotFound
	}
	return session, nil
}

// Replace implements ledger.SessionRepository. The caller hands in a
// session whose ledger is a fresh copy; swapping the map value keeps
// readers on the snapshot they already fetched.
func (s *SessionStore) Replace(_ context.Context, session ledger.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return ledger.ErrSessionNotFound
	}
	s.sessions[session.ID] = session
	return nil
}

// Delete implements ledger.SessionRepository.
func (s *SessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ledger.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}
