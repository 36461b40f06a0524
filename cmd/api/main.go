package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"multimodal-chat/config"
	_ "multimodal-chat/docs" // Swagger docs
	chatHTTP "multimodal-chat/internal/chat/delivery/http"
	"multimodal-chat/internal/chat/repository/disk"
	"multimodal-chat/internal/chat/repository/inmemory"
	chatUC "multimodal-chat/internal/chat/usecase"
	"multimodal-chat/internal/httpserver"
	"multimodal-chat/internal/model"
	"multimodal-chat/internal/router"
	"multimodal-chat/pkg/log"
	"multimodal-chat/pkg/openai"
)

// @title       Multimodal Chat API
// @description Conversational orchestrator routing messages to text, image, or video generation.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Environment & configuration
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx := context.Background()

	logger.Info(ctx, "Starting Multimodal Chat...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. OpenAI backend client
	llm, err := openai.New(openai.Config{
		APIKey:  cfg.OpenAI.APIKey,
		BaseURL: cfg.OpenAI.BaseURL,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize OpenAI client: ", err)
		return
	}

	// 4. Chat domain
	sessions := inmemory.NewSessionRegistry()

	assets, err := disk.NewAssetStore(cfg.Outputs.Dir)
	if err != nil {
		logger.Error(ctx, "Failed to initialize asset store: ", err)
		return
	}

	intentRouter := router.New(llm, cfg.Chat.RouterModel, logger)

	uc := chatUC.New(logger, llm, intentRouter, sessions, assets, chatUC.Config{
		TextModel:         cfg.Chat.TextModel,
		STTModel:          cfg.Chat.STTModel,
		VideoModel:        cfg.Video.Model,
		VideoSeconds:      cfg.Video.Seconds,
		VideoSize:         cfg.Video.Size,
		VideoPollInterval: cfg.Video.PollInterval,
		VideoTimeout:      cfg.Video.Timeout,
	})

	chatHandler := chatHTTP.New(logger, uc)

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     model.Environment(cfg.Environment.Name),
		ChatHandler:     chatHandler,
		OutputsDir:      assets.Dir(),
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
