package openai

import (
	"context"
	"fmt"

	sdk "github.com/openai/openai-go/v3"
)

// Transcribe converts raw audio into plain text.
func (o *openaiImpl) Transcribe(ctx context.Context, req TranscribeRequest) (string, error) {
	resp, err := o.client.Audio.Transcriptions.New(ctx, sdk.AudioTranscriptionNewParams{
		File:  req.Reader,
		Model: sdk.AudioModel(req.Model),
	})
	if err != nil {
		return "", fmt.Errorf("openai: transcription: %w", err)
	}
	return resp.Text, nil
}
