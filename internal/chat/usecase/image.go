package usecase

import (
	"context"
	"errors"
	"fmt"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// generateImage runs one image turn. If the immediately preceding turn was an
// image turn with a continuation handle on record, the request chains off it
// for edit-in-place fidelity; otherwise it is issued fresh.
func (uc *implUseCase) generateImage(ctx context.Context, sess *chat.Session, prompt, style string) (string, error) {
	if style != "" {
		prompt = fmt.Sprintf("%s\n\nStyle: %s", prompt, style)
	}

	var previous string
	if sess.LastIntent == chat.IntentImage && sess.LastImageResponseID != "" {
		previous = sess.LastImageResponseID
	}

	result, err := uc.llm.GenerateImage(ctx, openai.ImageRequest{
		Model:              uc.cfg.TextModel,
		Prompt:             prompt,
		PreviousResponseID: previous,
	})
	if result != nil && result.ResponseID != "" {
		// The handle is recorded even when extraction fails, matching the
		// backend's view of the latest response in this chain.
		sess.LastImageResponseID = result.ResponseID
	}
	if err != nil {
		if errors.Is(err, openai.ErrNoImageOutput) {
			return "", chat.ErrNoImagePayload
		}
		return "", fmt.Errorf("image backend: %w", err)
	}

	url, err := uc.assets.Save(ImageExt, result.Data)
	if err != nil {
		return "", fmt.Errorf("persist image: %w", err)
	}
	return url, nil
}
