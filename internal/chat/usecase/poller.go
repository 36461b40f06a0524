package usecase

import (
	"context"
	"fmt"
	"time"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// pollVideo waits for the job to reach a terminal state: fixed cadence, no
// backoff, absolute deadline. The poller only observes status. A reported
// failed status and an elapsed deadline are distinct errors; a timeout means
// unknown outcome, not known failure.
func (uc *implUseCase) pollVideo(ctx context.Context, jobID string) error {
	deadline := time.Now().Add(uc.cfg.VideoTimeout)

	for time.Now().Before(deadline) {
		job, err := uc.llm.RetrieveVideo(ctx, jobID)
		if err != nil {
			return fmt.Errorf("retrieve video %s: %w", jobID, err)
		}

		switch job.Status {
		case openai.VideoStatusCompleted:
			return nil
		case openai.VideoStatusFailed:
			return &chat.VideoJobFailedError{JobID: jobID}
		}

		time.Sleep(uc.cfg.VideoPollInterval)
	}

	return &chat.VideoJobTimeoutError{JobID: jobID, After: uc.cfg.VideoTimeout}
}
