package usecase

import (
	"time"

	"multimodal-chat/internal/chat"
	"multimodal-chat/internal/chat/repository"
	"multimodal-chat/internal/router"
	"multimodal-chat/pkg/log"
	"multimodal-chat/pkg/openai"
)

// Config holds the generation models and video polling knobs.
type Config struct {
	TextModel string
	STTModel  string

	VideoModel        string
	VideoSeconds      string
	VideoSize         string
	VideoPollInterval time.Duration
	VideoTimeout      time.Duration
}

// implUseCase is the private implementation of chat.UseCase.
type implUseCase struct {
	l        log.Logger
	llm      openai.IOpenAI
	router   router.Router
	sessions repository.Sessions
	assets   repository.Assets
	cfg      Config
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates a new chat UseCase implementation.
func New(l log.Logger, llm openai.IOpenAI, rt router.Router, sessions repository.Sessions, assets repository.Assets, cfg Config) *implUseCase {
	if cfg.VideoPollInterval <= 0 {
		cfg.VideoPollInterval = DefaultVideoPollInterval
	}
	if cfg.VideoTimeout <= 0 {
		cfg.VideoTimeout = DefaultVideoTimeout
	}
	if cfg.VideoSeconds == "" {
		cfg.VideoSeconds = DefaultVideoSeconds
	}
	if cfg.VideoSize == "" {
		cfg.VideoSize = DefaultVideoSize
	}

	return &implUseCase{
		l:        l,
		llm:      llm,
		router:   rt,
		sessions: sessions,
		assets:   assets,
		cfg:      cfg,
	}
}
