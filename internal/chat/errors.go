package chat

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrEmptyMessage means the user submitted empty or whitespace-only input.
	ErrEmptyMessage = errors.New("message text is empty")

	// ErrNoImagePayload means the image backend returned no usable image output.
	ErrNoImagePayload = errors.New("no image payload in generation response")
)

// VideoJobFailedError means the backend reported a terminal failed status for
// the job. Terminal and final; resubmitting is the only option.
type VideoJobFailedError struct {
	JobID string
}

func (e *VideoJobFailedError) Error() string {
	return fmt.Sprintf("video job failed: %s", e.JobID)
}

// VideoJobTimeoutError means the polling deadline elapsed with the job still
// non-terminal. Unknown outcome: the job may yet finish server-side, so this
// is distinct from VideoJobFailedError.
type VideoJobTimeoutError struct {
	JobID string
	After time.Duration
}

func (e *VideoJobTimeoutError) Error() string {
	return fmt.Sprintf("video generation timed out after %s: %s", e.After, e.JobID)
}
