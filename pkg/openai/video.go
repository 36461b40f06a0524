package openai

import (
	"context"
	"fmt"
	"io"

	sdk "github.com/openai/openai-go/v3"
)

// CreateVideo submits a fresh video generation job.
func (o *openaiImpl) CreateVideo(ctx context.Context, req VideoRequest) (*VideoJob, error) {
	video, err := o.client.Videos.New(ctx, sdk.VideoNewParams{
		Prompt:  req.Prompt,
		Model:   sdk.VideoModel(req.Model),
		Seconds: sdk.VideoSeconds(req.Seconds),
		Size:    sdk.VideoSize(req.Size),
	})
	if err != nil {
		return nil, fmt.Errorf("openai: create video: %w", err)
	}
	return toVideoJob(video), nil
}

// RemixVideo submits a remix of an existing completed video job.
func (o *openaiImpl) RemixVideo(ctx context.Context, videoID, prompt string) (*VideoJob, error) {
	video, err := o.client.Videos.Remix(ctx, videoID, sdk.VideoRemixParams{
		Prompt: prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("openai: remix video %s: %w", videoID, err)
	}
	return toVideoJob(video), nil
}

// RetrieveVideo fetches the current status of a video job.
func (o *openaiImpl) RetrieveVideo(ctx context.Context, videoID string) (*VideoJob, error) {
	video, err := o.client.Videos.Get(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("openai: retrieve video %s: %w", videoID, err)
	}
	return toVideoJob(video), nil
}

// DownloadVideo downloads the binary payload of a completed video job.
func (o *openaiImpl) DownloadVideo(ctx context.Context, videoID string) ([]byte, error) {
	resp, err := o.client.Videos.DownloadContent(ctx, videoID, sdk.VideoDownloadContentParams{})
	if err != nil {
		return nil, fmt.Errorf("openai: download video %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai: read video %s content: %w", videoID, err)
	}
	return data, nil
}

func toVideoJob(video *sdk.Video) *VideoJob {
	return &VideoJob{
		ID:     video.ID,
		Status: VideoStatus(video.Status),
	}
}
