package openai

import (
	"errors"
	"io"
)

// Config holds OpenAI client configuration.
type Config struct {
	APIKey  string
	BaseURL string
}

// Validate checks that the configuration is usable.
func (cfg Config) Validate() error {
	if cfg.APIKey == "" {
		return errors.New("openai: api key is required")
	}
	return nil
}

// Message is a single role/content pair of conversation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CompletionRequest is a plain text generation request over message history.
type CompletionRequest struct {
	Model    string
	Messages []Message
}

// StructuredRequest is a classification request with a strict JSON schema
// constraining the model output.
type StructuredRequest struct {
	Model      string
	System     string
	User       string
	SchemaName string
	Schema     map[string]any
}

// ImageRequest is an image generation request. PreviousResponseID, when set,
// chains the call off a prior generation for edit-in-place fidelity.
type ImageRequest struct {
	Model              string
	Prompt             string
	PreviousResponseID string
}

// ImageResult carries the decoded image payload and the response id to use
// as the continuation handle for the next edit.
type ImageResult struct {
	ResponseID string
	Data       []byte
}

// VideoRequest is a fresh video generation request.
type VideoRequest struct {
	Model   string
	Prompt  string
	Seconds string
	Size    string
}

// VideoStatus is the lifecycle state of a video job as reported by the backend.
type VideoStatus string

const (
	VideoStatusQueued     VideoStatus = "queued"
	VideoStatusInProgress VideoStatus = "in_progress"
	VideoStatusCompleted  VideoStatus = "completed"
	VideoStatusFailed     VideoStatus = "failed"
)

// VideoJob is the observable state of an asynchronous video generation job.
// Transitions are driven entirely by the backend; callers only read it.
type VideoJob struct {
	ID     string
	Status VideoStatus
}

// TranscribeRequest is a speech-to-text request over raw audio bytes.
type TranscribeRequest struct {
	Model    string
	Filename string
	Reader   io.Reader
}
