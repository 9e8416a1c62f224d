package dispatch

import (
	"sync"
)

// Registry keeps one lifecycle store per login session. Operation state,
// including fetched payloads, never crosses a session boundary.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// For returns the store bound to id, creating it on first use.
func (r *Registry) For(id string) *Store {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.stores[id]
	if !ok {
		s = NewStore()
		r.stores[id] = s
	}
	return s
}

// Drop discards the store bound to id. A later For starts fresh.
func (r *Registry) Drop(id string) {
	r.mu.Lock()
	delete(r.stores, id)
	r.mu.Unlock()
}
