package services

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

// SessionStore keeps one AppState per session id and forgets idle sessions
type SessionStore struct {
	cache    *cache.Cache
	mu       sync.Mutex
	newState func() *AppState
}

// NewSessionStore creates a store whose sessions expire after ttl without access
func NewSessionStore(ttl time.Duration, newState func() *AppState) *SessionStore {
	cleanup := ttl / 2
	if cleanup < time.Second {
		cleanup = time.Second
	}
	return &SessionStore{
		cache:    cache.New(ttl, cleanup),
		newState: newState,
	}
}

// Get returns the state of a session, creating it on first use.
// Every access restarts the idle timer.
func (s *SessionStore) Get(id string) *AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if v, ok := s.cache.Get(id); ok {
		state := v.(*AppState)
		s.cache.SetDefault(id, state)
		return state
	}
	state := s.newState()
	s.cache.SetDefault(id, state)
	return state
}

// Count returns how many sessions are live
func (s *SessionStore) Count() int {
	return s.cache.ItemCount()
}
