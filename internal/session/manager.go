package session

import (
	"context"
	"sync"

	"tacgear/internal/api"
	"tacgear/internal/credstore"
)

// Manager owns the sid -> Session mapping. The first time a sid is seen
// (including after a process restart, when credentials survived in the
// store) the session is created and its stored credentials resolved.
type Manager struct {
	api   *api.Client
	creds *credstore.Store

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewManager(client *api.Client, creds *credstore.Store) *Manager {
	return &Manager{
		api:      client,
		creds:    creds,
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for sid, creating and resolving it on first
// sight. Resolution happens at most once per process per sid; a token that
// failed with a transport error stays stored and is retried on the next
// process start, while a rejected token was already purged.
func (m *Manager) Get(ctx context.Context, sid string) *Session {
	m.mu.RLock()
	s, ok := m.sessions[sid]
	m.mu.RUnlock()
	if ok {
		return s
	}

	m.mu.Lock()
	if s, ok = m.sessions[sid]; ok {
		m.mu.Unlock()
		return s
	}
	s = New(sid, m.api, m.creds)
	m.sessions[sid] = s
	m.mu.Unlock()

	s.Resolve(ctx)
	return s
}

// Peek returns the session without creating one.
func (m *Manager) Peek(sid string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[sid]
	return s, ok
}
