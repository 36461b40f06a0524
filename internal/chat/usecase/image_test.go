package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"multimodal-chat/internal/chat"
	"multimodal-chat/internal/chat/repository/inmemory"
	"multimodal-chat/internal/chat/usecase"
	"multimodal-chat/pkg/openai"
)

func TestImageTurn(t *testing.T) {
	t.Run("Fresh Generation", func(t *testing.T) {
		sessions := inmemory.NewSessionRegistry()
		assets := &mockAssets{}
		var gotReq openai.ImageRequest
		llm := &mockLLM{generateImageFunc: func(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error) {
			gotReq = req
			return &openai.ImageResult{ResponseID: "resp-1", Data: []byte("png-bytes")}, nil
		}}
		rt := fixedDecision(chat.RouteDecision{Intent: chat.IntentImage, Prompt: "A fox", Style: "pixel art"})
		uc := usecase.New(&mockLogger{}, llm, rt, sessions, assets, usecase.Config{})

		out, err := uc.Message(context.Background(), chat.MessageInput{Text: "draw a fox"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotReq.PreviousResponseID != "" {
			t.Errorf("expected fresh request, got continuation %q", gotReq.PreviousResponseID)
		}
		if !strings.Contains(gotReq.Prompt, "A fox") || !strings.Contains(gotReq.Prompt, "Style: pixel art") {
			t.Errorf("expected style directive appended, got %q", gotReq.Prompt)
		}
		if out.AssetURL == "" {
			t.Error("expected asset url")
		}
		if len(assets.saved) != 1 || assets.saved[0].ext != "png" {
			t.Errorf("expected one png asset, got %+v", assets.saved)
		}

		_, sess := sessions.Resolve(out.SessionID)
		if sess.LastImageResponseID != "resp-1" {
			t.Errorf("expected continuation handle stored, got %q", sess.LastImageResponseID)
		}
		if sess.LastIntent != chat.IntentImage {
			t.Errorf("expected last intent image, got %q", sess.LastIntent)
		}
		last := sess.Messages[len(sess.Messages)-1]
		if last.Role != chat.RoleAssistant || !strings.Contains(last.Content, out.AssetURL) {
			t.Errorf("expected assistant marker referencing asset, got %+v", last)
		}
	})

	t.Run("Second Image Turn Uses Continuation", func(t *testing.T) {
		sessions := inmemory.NewSessionRegistry()
		_, sess := sessions.Resolve("s1")
		sess.LastIntent = chat.IntentImage
		sess.LastImageResponseID = "H1"

		var gotPrev string
		llm := &mockLLM{generateImageFunc: func(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error) {
			gotPrev = req.PreviousResponseID
			return &openai.ImageResult{ResponseID: "H2", Data: []byte("x")}, nil
		}}
		rt := fixedDecision(chat.RouteDecision{Intent: chat.IntentImage, Prompt: "Make it brighter"})
		uc := usecase.New(&mockLogger{}, llm, rt, sessions, &mockAssets{}, usecase.Config{})

		if _, err := uc.Message(context.Background(), chat.MessageInput{SessionID: "s1", Text: "make it brighter"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPrev != "H1" {
			t.Errorf("expected continuation H1, got %q", gotPrev)
		}
		if sess.LastImageResponseID != "H2" {
			t.Errorf("expected handle replaced by H2, got %q", sess.LastImageResponseID)
		}
	})

	t.Run("No Continuation After Non-Image Turn", func(t *testing.T) {
		sessions := inmemory.NewSessionRegistry()
		_, sess := sessions.Resolve("s1")
		sess.LastIntent = chat.IntentText
		sess.LastImageResponseID = "stale"

		var gotPrev string
		llm := &mockLLM{generateImageFunc: func(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error) {
			gotPrev = req.PreviousResponseID
			return &openai.ImageResult{ResponseID: "fresh", Data: []byte("x")}, nil
		}}
		rt := fixedDecision(chat.RouteDecision{Intent: chat.IntentImage, Prompt: "A new image"})
		uc := usecase.New(&mockLogger{}, llm, rt, sessions, &mockAssets{}, usecase.Config{})

		if _, err := uc.Message(context.Background(), chat.MessageInput{SessionID: "s1", Text: "draw something new"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if gotPrev != "" {
			t.Errorf("expected no stale continuation carried over, got %q", gotPrev)
		}
	})

	t.Run("No Payload Is Fatal", func(t *testing.T) {
		sessions := inmemory.NewSessionRegistry()
		llm := &mockLLM{generateImageFunc: func(ctx context.Context, req openai.ImageRequest) (*openai.ImageResult, error) {
			return &openai.ImageResult{ResponseID: "resp-1"}, openai.ErrNoImageOutput
		}}
		rt := fixedDecision(chat.RouteDecision{Intent: chat.IntentImage, Prompt: "A fox"})
		uc := usecase.New(&mockLogger{}, llm, rt, sessions, &mockAssets{}, usecase.Config{})

		_, err := uc.Message(context.Background(), chat.MessageInput{SessionID: "s1", Text: "draw a fox"})
		if !errors.Is(err, chat.ErrNoImagePayload) {
			t.Fatalf("expected ErrNoImagePayload, got %v", err)
		}

		_, sess := sessions.Resolve("s1")
		if sess.LastIntent == chat.IntentImage {
			t.Error("expected last intent unset after failed turn")
		}
		if sess.LastImageResponseID != "resp-1" {
			t.Errorf("expected response id recorded despite failure, got %q", sess.LastImageResponseID)
		}
	})
}
