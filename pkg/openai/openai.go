package openai

import (
	"context"
	"encoding/json"
	"fmt"

	sdk "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/packages/param"
)

// openaiImpl implements IOpenAI on top of the official SDK.
type openaiImpl struct {
	client sdk.Client
}

func newOpenAIImpl(cfg Config) *openaiImpl {
	options := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		options = append(options, option.WithBaseURL(cfg.BaseURL))
	}
	return &openaiImpl{client: sdk.NewClient(options...)}
}

// Complete sends the full message history to a text model and returns the reply.
func (o *openaiImpl) Complete(ctx context.Context, req CompletionRequest) (string, error) {
	messages := make([]sdk.ChatCompletionMessageParamUnion, 0, len(req.Messages))
	for _, m := range req.Messages {
		switch m.Role {
		case "system":
			messages = append(messages, sdk.SystemMessage(m.Content))
		case "assistant":
			messages = append(messages, sdk.AssistantMessage(m.Content))
		default:
			messages = append(messages, sdk.UserMessage(m.Content))
		}
	}

	resp, err := o.client.Chat.Completions.New(ctx, sdk.ChatCompletionNewParams{
		Model:    sdk.ChatModel(req.Model),
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// CompleteStructured runs a classification call constrained by a strict JSON
// schema and returns the raw JSON document.
func (o *openaiImpl) CompleteStructured(ctx context.Context, req StructuredRequest) (json.RawMessage, error) {
	params := sdk.ChatCompletionNewParams{
		Model: sdk.ChatModel(req.Model),
		Messages: []sdk.ChatCompletionMessageParamUnion{
			sdk.SystemMessage(req.System),
			sdk.UserMessage(req.User),
		},
		ResponseFormat: sdk.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &sdk.ResponseFormatJSONSchemaParam{
				JSONSchema: sdk.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   req.SchemaName,
					Schema: req.Schema,
					Strict: param.NewOpt(true),
				},
			},
		},
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: structured completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyCompletion
	}
	return json.RawMessage(resp.Choices[0].Message.Content), nil
}
