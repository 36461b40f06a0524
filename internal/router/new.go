package router

import (
	"context"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/log"
	"multimodal-chat/pkg/openai"
)

// Router is the interface for intent routing.
type Router interface {
	Route(ctx context.Context, message string, history []chat.Message) (chat.RouteDecision, error)
}

// IntentRouter classifies user intent using an LLM with structured output.
type IntentRouter struct {
	llm   openai.IOpenAI
	model string
	l     log.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(llm openai.IOpenAI, model string, l log.Logger) *IntentRouter {
	return &IntentRouter{
		llm:   llm,
		model: model,
		l:     l,
	}
}
