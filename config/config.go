package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Backends
	OpenAI OpenAIConfig

	// Generation
	Chat    ChatConfig
	Video   VideoConfig
	Outputs OutputsConfig

	// Rate limiting
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// OpenAIConfig holds credentials for the OpenAI backend family.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
}

// ChatConfig names the models behind routing, text generation, and
// transcription.
type ChatConfig struct {
	RouterModel string
	TextModel   string
	STTModel    string
}

// VideoConfig holds the video model, generation defaults, and the polling
// knobs of the job poller.
type VideoConfig struct {
	Model        string
	Seconds      string
	Size         string
	PollInterval time.Duration
	Timeout      time.Duration
}

type OutputsConfig struct {
	Dir string
}

type RateLimitConfig struct {
	PerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// OpenAI backend
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}

	// Models
	cfg.Chat.RouterModel = viper.GetString("chat.router_model")
	cfg.Chat.TextModel = viper.GetString("chat.text_model")
	cfg.Chat.STTModel = viper.GetString("chat.stt_model")
	if m := viper.GetString("router_model"); m != "" {
		cfg.Chat.RouterModel = m
	}
	if m := viper.GetString("text_model"); m != "" {
		cfg.Chat.TextModel = m
	}
	if m := viper.GetString("stt_model"); m != "" {
		cfg.Chat.STTModel = m
	}

	// Video generation
	cfg.Video.Model = viper.GetString("video.model")
	cfg.Video.Seconds = viper.GetString("video.seconds")
	cfg.Video.Size = viper.GetString("video.size")
	cfg.Video.PollInterval = viper.GetDuration("video.poll_interval")
	cfg.Video.Timeout = viper.GetDuration("video.timeout")
	if m := viper.GetString("video_model"); m != "" {
		cfg.Video.Model = m
	}

	// Outputs
	cfg.Outputs.Dir = viper.GetString("outputs.dir")

	// Rate limiting
	cfg.RateLimit.PerMin = viper.GetInt("rate_limit.per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("chat.router_model", "gpt-4o-mini")
	viper.SetDefault("chat.text_model", "gpt-5.2")
	viper.SetDefault("chat.stt_model", "gpt-4o-mini-transcribe")

	viper.SetDefault("video.model", "sora-2")
	viper.SetDefault("video.seconds", "4")
	viper.SetDefault("video.size", "720x1280")
	viper.SetDefault("video.poll_interval", "2s")
	viper.SetDefault("video.timeout", "180s")

	viper.SetDefault("outputs.dir", "./outputs")

	viper.SetDefault("rate_limit.per_min", 0)
}
