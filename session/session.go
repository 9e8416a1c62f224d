package session

import (
	"encoding/json"
	"sync"
)

// User is the cached snapshot of the authenticated backend user.
type User struct {
	FullName     string `json:"fullName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	UserType     string `json:"userType"`
	Status       bool   `json:"status"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// Session is the explicit session context handed to the HTTP layer. It
// replaces ambient token state: constructed once per login, read at every
// request setup and mutated only through Set and Clear.
type Session struct {
	id      string
	persist Persister

	mu           sync.RWMutex
	token        string
	refreshToken string
	user         *User
}

// Persister stores session state across restarts.
type Persister interface {
	Save(id, token, refreshToken, authUser string) error
	Load(id string) (token, refreshToken, authUser string, err error)
	Delete(id string) error
}

// New returns an empty session bound to id. persist may be nil for
// sessions that should live in memory only.
func New(id string, persist Persister) *Session {
	return &Session{id: id, persist: persist}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Hydrate loads previously persisted state into the session.
func (s *Session) Hydrate() error {
	if s.persist == nil {
		return nil
	}
	token, refreshToken, authUser, err := s.persist.Load(s.id)
	if err != nil {
		return err
	}

	var user *User
	if authUser != "" {
		user = &User{}
		if err := json.Unmarshal([]byte(authUser), user); err != nil {
			user = nil
		}
	}

	s.mu.Lock()
	s.token = token
	s.refreshToken = refreshToken
	s.user = user
	s.mu.Unlock()
	return nil
}

// Set is the single mutation entry point. It replaces all session state
// and persists the new values.
func (s *Session) Set(token, refreshToken string, user *User) error {
	authUser := ""
	if user != nil {
		if raw, err := json.Marshal(user); err == nil {
			authUser = string(raw)
		}
	}

	s.mu.Lock()
	s.token = token
	s.refreshToken = refreshToken
	s.user = user
	s.mu.Unlock()

	if s.persist == nil {
		return nil
	}
	return s.persist.Save(s.id, token, refreshToken, authUser)
}

// Clear drops all persisted client state. Called on logout and whenever
// the backend reports authentication expiry.
func (s *Session) Clear() error {
	s.mu.Lock()
	s.token = ""
	s.refreshToken = ""
	s.user = nil
	s.mu.Unlock()

	if s.persist == nil {
		return nil
	}
	return s.persist.Delete(s.id)
}

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// RefreshToken returns the current refresh token.
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// CurrentUser returns the cached user snapshot, or nil when logged out.
func (s *Session) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Authenticated reports whether the session carries a bearer token.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}
