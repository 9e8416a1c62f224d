package session

import (
	"sync"

	"github.com/google/uuid"
)

// Manager hands out session contexts by id and keeps one live instance
// per dashboard login so concurrent requests share token state.
type Manager struct {
	persist Persister

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewManager returns an empty manager backed by persist.
func NewManager(persist Persister) *Manager {
	return &Manager{
		persist:  persist,
		sessions: make(map[string]*Session),
	}
}

// Create makes a fresh session with a generated id.
func (m *Manager) Create() *Session {
	s := New(uuid.NewString(), m.persist)

	m.mu.Lock()
	m.sessions[s.ID()] = s
	m.mu.Unlock()
	return s
}

// Get returns the live session for id, hydrating it from storage on
// first access. Returns nil when no persisted state exists either.
func (m *Manager) Get(id string) *Session {
	m.mu.Lock()
	s, ok := m.sessions[id]
	m.mu.Unlock()
	if ok {
		return s
	}

	s = New(id, m.persist)
	if err := s.Hydrate(); err != nil {
		return nil
	}

	m.mu.Lock()
	m.sessions[id] = s
	m.mu.Unlock()
	return s
}

// Drop removes the live session and its persisted state.
func (m *Manager) Drop(id string) {
	m.mu.Lock()
	s, ok := m.sessions[id]
	delete(m.sessions, id)
	m.mu.Unlock()

	if ok {
		_ = s.Clear()
	} else if m.persist != nil {
		_ = m.persist.Delete(id)
	}
}
