package sdk

import "sync"

// Credential is the opaque bearer token returned by a successful login.
// The empty string means no credential.
type Credential string

// SessionStore persists the single live Credential.
// Set and Clear are visible to every later Get, from any component sharing the store.
type SessionStore interface {
	Get() (Credential, bool)
	Set(Credential) error
	Clear() error
}

// MemoryStore is an in-process SessionStore, used by tests and embedders
// that do not need the credential to survive a restart.
type MemoryStore struct {
	mu    sync.RWMutex
	token Credential
}

var _ SessionStore = (*MemoryStore)(nil)

// NewMemoryStore returns a store holding token. Pass "" for an empty store.
func NewMemoryStore(token Credential) *MemoryStore {
	return &MemoryStore{token: token}
}

func (s *MemoryStore) Get() (Credential, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.token != ""
}

func (s *MemoryStore) Set(token Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
