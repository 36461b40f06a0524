package usecase

import (
	"context"
	"fmt"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// Transcribe converts uploaded audio into plain text.
func (uc *implUseCase) Transcribe(ctx context.Context, input chat.TranscribeInput) (chat.TranscribeOutput, error) {
	text, err := uc.llm.Transcribe(ctx, openai.TranscribeRequest{
		Model:    uc.cfg.STTModel,
		Filename: input.Filename,
		Reader:   input.Reader,
	})
	if err != nil {
		uc.l.Errorf(ctx, "%s: %v", LogPrefixTranscribe, err)
		return chat.TranscribeOutput{}, fmt.Errorf("transcription backend: %w", err)
	}
	return chat.TranscribeOutput{Text: text}, nil
}
