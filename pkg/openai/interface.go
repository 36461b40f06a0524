package openai

import (
	"context"
	"encoding/json"
)

// IOpenAI defines the interface for the OpenAI backend client.
// Implementations are safe for concurrent use.
type IOpenAI interface {
	// Complete sends the full message history to a text model and returns the reply.
	Complete(ctx context.Context, req CompletionRequest) (string, error)

	// CompleteStructured runs a strict JSON-schema classification call and
	// returns the raw JSON document the model produced.
	CompleteStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error)

	// GenerateImage runs an image generation call, optionally chained off a
	// previous response for higher-fidelity edits. On ErrNoImageOutput the
	// returned result still carries the response id for continuation.
	GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error)

	// CreateVideo submits a fresh video generation job.
	CreateVideo(ctx context.Context, req VideoRequest) (*VideoJob, error)

	// RemixVideo submits a remix of an existing completed video job.
	RemixVideo(ctx context.Context, videoID, prompt string) (*VideoJob, error)

	// RetrieveVideo fetches the current status of a video job.
	RetrieveVideo(ctx context.Context, videoID string) (*VideoJob, error)

	// DownloadVideo downloads the binary payload of a completed video job.
	DownloadVideo(ctx context.Context, videoID string) ([]byte, error)

	// Transcribe converts raw audio into plain text.
	Transcribe(ctx context.Context, req TranscribeRequest) (string, error)
}

// New creates a new OpenAI client with the given configuration.
func New(cfg Config) (IOpenAI, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newOpenAIImpl(cfg), nil
}
