package usecase

import (
	"context"
	"fmt"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// generateVideo runs one video turn. A remix against the prior job is issued
// only when the immediately preceding turn was video, a job id is on record,
// and that job already completed; a remix of a still-running job is never
// attempted. Anything else is a fresh creation.
func (uc *implUseCase) generateVideo(ctx context.Context, sess *chat.Session, prompt, seconds, size string) (string, error) {
	if seconds == "" {
		seconds = uc.cfg.VideoSeconds
	}
	if size == "" {
		size = uc.cfg.VideoSize
	}

	var (
		job *openai.VideoJob
		err error
	)
	if sess.LastIntent == chat.IntentVideo && sess.LastVideoID != "" && sess.LastVideoCompleted {
		job, err = uc.llm.RemixVideo(ctx, sess.LastVideoID, prompt)
	} else {
		job, err = uc.llm.CreateVideo(ctx, openai.VideoRequest{
			Model:   uc.cfg.VideoModel,
			Prompt:  prompt,
			Seconds: seconds,
			Size:    size,
		})
	}
	if err != nil {
		return "", fmt.Errorf("video backend: %w", err)
	}

	// Recorded before polling so a timeout mid-poll leaves the session in a
	// recoverable, non-completed state instead of referencing a stale
	// completed job.
	sess.LastVideoID = job.ID
	sess.LastVideoCompleted = false

	if err := uc.pollVideo(ctx, job.ID); err != nil {
		return "", err
	}
	sess.LastVideoCompleted = true

	data, err := uc.llm.DownloadVideo(ctx, job.ID)
	if err != nil {
		return "", fmt.Errorf("download video %s: %w", job.ID, err)
	}

	url, err := uc.assets.Save(VideoExt, data)
	if err != nil {
		return "", fmt.Errorf("persist video: %w", err)
	}
	return url, nil
}
