// Package memory provides the in-memory session store. Sessions never
// outlive the process; there is no other persistence layer.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"recapd/internal/domain"
)

// SessionStore is a mutex-guarded map of sessions keyed by ID.
// Values are copied on the way in and out so callers never share
// mutable state with the store.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

// NewSessionStore creates an empty in-memory session store.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[uuid.UUID]*domain.Session),
	}
}

// Create stores a new session.
func (s *SessionStore) Create(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = clone(session)
	return nil
}

// Get returns a copy of the session, or domain.ErrSessionNotFound.
func (s *SessionStore) Get(_ context.Context, id uuid.UUID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return clone(session), nil
}

// Update replaces the stored session.
func (s *SessionStore) Update(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	s.sessions[session.ID] = clone(session)
	return nil
}

// Delete removes the session if present.
func (s *SessionStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// PurgeExpired evicts sessions last touched before the cutoff.
func (s *SessionStore) PurgeExpired(_ context.Context, cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, session := range s.sessions {
		if session.UpdatedAt.Before(cutoff) {
			delete(s.sessions, id)
			purged++
		}
	}
	return purged
}

// Len returns the number of live sessions.
func (s *SessionStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func clone(session *domain.Session) *domain.Session {
	copied := *session
	if session.Document != nil {
		doc := *session.Document
		copied.Document = &doc
	}
	if session.Summary != nil {
		sum := *session.Summary
		copied.Summary = &sum
	}
	return &copied
}
