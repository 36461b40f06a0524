package repository

import "multimodal-chat/internal/chat"

// Sessions is the in-process registry of conversation sessions.
type Sessions interface {
	// Resolve returns the session for the given id, creating a fresh one when
	// the id is empty or unknown. A known id always returns the same state
	// object, not a copy; the caller mutates it in place under its lock.
	Resolve(id string) (string, *chat.Session)
}

// Assets is durable storage for generated media.
type Assets interface {
	// Save persists data under a freshly generated unique filename with the
	// given extension and returns a stable reference URL. Saved assets are
	// never deleted by this subsystem.
	Save(ext string, data []byte) (string, error)
}
