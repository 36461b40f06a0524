package usecase

import (
	"context"
	"fmt"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// generateText appends the routed prompt, calls the text backend with the
// entire session history, and records the assistant reply.
func (uc *implUseCase) generateText(ctx context.Context, sess *chat.Session, prompt string) (string, error) {
	sess.Messages = append(sess.Messages, chat.Message{Role: chat.RoleUser, Content: prompt})

	messages := make([]openai.Message, 0, len(sess.Messages))
	for _, m := range sess.Messages {
		messages = append(messages, openai.Message{Role: m.Role, Content: m.Content})
	}

	reply, err := uc.llm.Complete(ctx, openai.CompletionRequest{
		Model:    uc.cfg.TextModel,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("text backend: %w", err)
	}

	sess.Messages = append(sess.Messages, chat.Message{Role: chat.RoleAssistant, Content: reply})
	return reply, nil
}
