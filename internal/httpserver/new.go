package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "multimodal-chat/internal/chat/delivery/http"
	"multimodal-chat/internal/model"
	"multimodal-chat/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment model.Environment

	// Chat domain
	chatHandler chatHTTP.Handler

	// Generated asset serving
	outputsDir string

	// Rate limiting
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Port        int
	Mode        string
	Environment model.Environment

	// Chat domain
	ChatHandler chatHTTP.Handler

	// Generated asset serving
	OutputsDir string

	// Rate limiting
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		chatHandler:     cfg.ChatHandler,
		outputsDir:      cfg.OutputsDir,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
