package usecase_test

import (
	"context"
	"encoding/json"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock OpenAI backend client with per-call overrides.
type mockLLM struct {
	completeFunc      func(ctx context.Context, req openai.CompletionRequest) (string, error)
	structuredFunc    func(ctx context.Context, req openai.StructuredRequest) (json.RawMessage, error)
	generateImageFunc func(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error)
	createVideoFunc   func(ctx context.Context, req openai.VideoRequest) (*openai.VideoJob, error)
	remixVideoFunc    func(ctx context.Context, videoID, prompt string) (*openai.VideoJob, error)
	retrieveVideoFunc func(ctx context.Context, videoID string) (*openai.VideoJob, error)
	downloadVideoFunc func(ctx context.Context, videoID string) ([]byte, error)
	transcribeFunc    func(ctx context.Context, req openai.TranscribeRequest) (string, error)
}

func (m *mockLLM) Complete(ctx context.Context, req openai.CompletionRequest) (string, error) {
	return m.completeFunc(ctx, req)
}

func (m *mockLLM) CompleteStructured(ctx context.Context, req openai.StructuredRequest) (json.RawMessage, error) {
	return m.structuredFunc(ctx, req)
}

func (m *mockLLM) GenerateImage(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error) {
	return m.generateImageFunc(ctx, req)
}

func (m *mockLLM) CreateVideo(ctx context.Context, req openai.VideoRequest) (*openai.VideoJob, error) {
	return m.createVideoFunc(ctx, req)
}

func (m *mockLLM) RemixVideo(ctx context.Context, videoID, prompt string) (*openai.VideoJob, error) {
	return m.remixVideoFunc(ctx, videoID, prompt)
}

func (m *mockLLM) RetrieveVideo(ctx context.Context, videoID string) (*openai.VideoJob, error) {
	return m.retrieveVideoFunc(ctx, videoID)
}

func (m *mockLLM) DownloadVideo(ctx context.Context, videoID string) ([]byte, error) {
	return m.downloadVideoFunc(ctx, videoID)
}

func (m *mockLLM) Transcribe(ctx context.Context, req openai.TranscribeRequest) (string, error) {
	return m.transcribeFunc(ctx, req)
}

// Mock intent router returning a fixed decision or error.
type mockRouter struct {
	routeFunc func(ctx context.Context, message string, history []chat.Message) (chat.RouteDecision, error)
}

func (m *mockRouter) Route(ctx context.Context, message string, history []chat.Message) (chat.RouteDecision, error) {
	return m.routeFunc(ctx, message, history)
}

func fixedDecision(d chat.RouteDecision) *mockRouter {
	return &mockRouter{routeFunc: func(ctx context.Context, message string, history []chat.Message) (chat.RouteDecision, error) {
		return d, nil
	}}
}

// Mock asset store recording every save.
type mockAssets struct {
	saved []savedAsset
	url   string
	err   error
}

type savedAsset struct {
	ext  string
	data []byte
}

func (m *mockAssets) Save(ext string, data []byte) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.saved = append(m.saved, savedAsset{ext: ext, data: data})
	url := m.url
	if url == "" {
		url = "/outputs/test." + ext
	}
	return url, nil
}
