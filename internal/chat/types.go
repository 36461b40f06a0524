package chat

import (
	"io"
	"sync"
)

// Intent is the routed classification of a user turn.
type Intent string

const (
	IntentText  Intent = "text"
	IntentImage Intent = "image"
	IntentVideo Intent = "video"
)

// Valid reports whether the intent is one of the known values.
func (i Intent) Valid() bool {
	switch i {
	case IntentText, IntentImage, IntentVideo:
		return true
	}
	return false
}

// Message roles stored in session history.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role/content pair of conversation history. Media turns store
// a textual marker referencing the produced asset, never binary payloads.
type Message struct {
	Role    string
	Content string
}

// Session is the unit of conversational and generation continuity.
// The orchestrator serializes turns on a session via Lock/Unlock; the fields
// are mutated in place for the duration of a turn.
type Session struct {
	mu sync.Mutex

	// Messages is append-only; insertion order is significant.
	Messages []Message

	// LastIntent is set only after a successful turn.
	LastIntent Intent

	// LastImageResponseID is the continuation handle for multi-turn image
	// edits. Opaque; only round-tripped back to the image backend.
	LastImageResponseID string

	// LastVideoID and LastVideoCompleted track the most recent video job.
	// LastVideoCompleted is true only once that job reached completed status.
	LastVideoID        string
	LastVideoCompleted bool
}

// Lock serializes a turn against concurrent requests for the same session.
func (s *Session) Lock() { s.mu.Lock() }

// Unlock releases the turn lock.
func (s *Session) Unlock() { s.mu.Unlock() }

// RouteDecision is the router's classification of one turn. Transient:
// consumed by the orchestrator and discarded.
type RouteDecision struct {
	Intent  Intent `json:"intent"`
	Prompt  string `json:"prompt"`
	Seconds string `json:"seconds,omitempty"`
	Size    string `json:"size,omitempty"`
	Style   string `json:"style,omitempty"`
}

// Allowed video hint values.
var (
	AllowedVideoSeconds = []string{"4", "8", "12"}
	AllowedVideoSizes   = []string{"720x1280", "1280x720", "1024x1792", "1792x1024"}
)

// --- UseCase Inputs ---

type MessageInput struct {
	SessionID string
	Text      string
}

type TranscribeInput struct {
	Filename string
	Reader   io.Reader
}

// --- UseCase Outputs ---

type MessageOutput struct {
	SessionID   string
	Intent      Intent
	ContentType Intent
	Text        string
	AssetURL    string
}

type TranscribeOutput struct {
	Text string
}
