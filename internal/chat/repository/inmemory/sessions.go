package inmemory

import (
	"sync"

	"github.com/google/uuid"

	"multimodal-chat/internal/chat"
)

// SessionRegistry implements repository.Sessions with an in-memory map.
// Lifecycle is process lifetime; there is no eviction.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string]*chat.Session
}

// NewSessionRegistry creates an empty session registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string]*chat.Session),
	}
}

// Resolve returns the existing session for a known id, or creates and stores
// a fresh one. A caller-supplied unknown id is kept as the session id;
// otherwise a new uuid is generated. The map lock is held only for the
// lookup/insert, never across a turn.
func (r *SessionRegistry) Resolve(id string) (string, *chat.Session) {
	if id != "" {
		r.mu.RLock()
		sess, ok := r.sessions[id]
		r.mu.RUnlock()
		if ok {
			return id, sess
		}
	}

	sid := id
	if sid == "" {
		sid = uuid.NewString()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if sess, ok := r.sessions[sid]; ok {
		// Lost a create race; the earlier session wins.
		return sid, sess
	}
	sess := &chat.Session{}
	r.sessions[sid] = sess
	return sid, sess
}

// Count returns the number of registered sessions.
func (r *SessionRegistry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
