package usecase

import (
	"context"
	"fmt"
	"strings"

	"multimodal-chat/internal/chat"
)

// Message runs one full conversational turn. Terminal on first return or
// first unrecovered error; partial session mutations already committed by a
// generator are kept (no rollback, no retry).
func (uc *implUseCase) Message(ctx context.Context, input chat.MessageInput) (chat.MessageOutput, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return chat.MessageOutput{}, chat.ErrEmptyMessage
	}

	sid, sess := uc.sessions.Resolve(input.SessionID)

	// Serialize turns per session; concurrent requests for distinct sessions
	// proceed independently.
	sess.Lock()
	defer sess.Unlock()

	decision, err := uc.router.Route(ctx, text, sess.Messages)
	if err != nil {
		uc.l.Errorf(ctx, "%s: route: %v", LogPrefixMessage, err)
		return chat.MessageOutput{}, err
	}

	// Keep the raw user text for context fidelity; generators may consume the
	// router-cleaned prompt instead.
	sess.Messages = append(sess.Messages, chat.Message{Role: chat.RoleUser, Content: text})

	out := chat.MessageOutput{
		SessionID:   sid,
		Intent:      decision.Intent,
		ContentType: decision.Intent,
	}

	switch decision.Intent {
	case chat.IntentText:
		reply, err := uc.generateText(ctx, sess, decision.Prompt)
		if err != nil {
			uc.l.Errorf(ctx, "%s: text generation: %v", LogPrefixMessage, err)
			return chat.MessageOutput{}, err
		}
		out.Text = reply

	case chat.IntentImage:
		url, err := uc.generateImage(ctx, sess, decision.Prompt, decision.Style)
		if err != nil {
			uc.l.Errorf(ctx, "%s: image generation: %v", LogPrefixMessage, err)
			return chat.MessageOutput{}, err
		}
		sess.Messages = append(sess.Messages, chat.Message{
			Role:    chat.RoleAssistant,
			Content: fmt.Sprintf("%s %s", MarkerImageGenerated, url),
		})
		out.AssetURL = url

	case chat.IntentVideo:
		url, err := uc.generateVideo(ctx, sess, decision.Prompt, decision.Seconds, decision.Size)
		if err != nil {
			uc.l.Errorf(ctx, "%s: video generation: %v", LogPrefixMessage, err)
			return chat.MessageOutput{}, err
		}
		sess.Messages = append(sess.Messages, chat.Message{
			Role:    chat.RoleAssistant,
			Content: fmt.Sprintf("%s %s", MarkerVideoGenerated, url),
		})
		out.AssetURL = url

	default:
		return chat.MessageOutput{}, fmt.Errorf("%s: unknown intent %q", LogPrefixMessage, decision.Intent)
	}

	sess.LastIntent = decision.Intent
	return out, nil
}
