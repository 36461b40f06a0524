package router

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"multimodal-chat/internal/chat"
	"multimodal-chat/pkg/openai"
)

// Route determines user intent from the message and recent conversation.
// A backend failure or a malformed decision is a hard failure for the turn:
// guessing an intent would corrupt session continuation state downstream.
// Convention: Method accepts context.Context as first parameter
func (r *IntentRouter) Route(ctx context.Context, message string, history []chat.Message) (chat.RouteDecision, error) {
	user := fmt.Sprintf("Recent conversation:\n%s\n\nUser message:\n%s", contextWindow(history), message)

	raw, err := r.llm.CompleteStructured(ctx, openai.StructuredRequest{
		Model:      r.model,
		System:     PromptRouterSystem,
		User:       user,
		SchemaName: SchemaName,
		Schema:     RouteDecisionSchema,
	})
	if err != nil {
		return chat.RouteDecision{}, fmt.Errorf("%s: classification call failed: %w", LogPrefixRoute, err)
	}

	var decision chat.RouteDecision
	if err := json.Unmarshal(raw, &decision); err != nil {
		return chat.RouteDecision{}, fmt.Errorf("%s: malformed decision: %w", LogPrefixRoute, err)
	}
	if err := validate(&decision); err != nil {
		return chat.RouteDecision{}, fmt.Errorf("%s: %w", LogPrefixRoute, err)
	}

	r.l.Infof(ctx, "%s: intent=%s prompt=%q", LogPrefixRoute, decision.Intent, decision.Prompt)
	return decision, nil
}

// contextWindow renders the trailing messages as routing context.
func contextWindow(history []chat.Message) string {
	if len(history) == 0 {
		return PromptEmptyHistory
	}
	start := 0
	if len(history) > ContextWindow {
		start = len(history) - ContextWindow
	}

	var b strings.Builder
	for i, m := range history[start:] {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.Role)
		b.WriteString(": ")
		b.WriteString(m.Content)
	}
	return b.String()
}

// validate enforces the decision contract and strips hints that are not
// relevant to the chosen intent.
func validate(d *chat.RouteDecision) error {
	if !d.Intent.Valid() {
		return fmt.Errorf("invalid intent %q", d.Intent)
	}

	d.Prompt = strings.TrimSpace(d.Prompt)
	if d.Prompt == "" {
		return fmt.Errorf("decision has empty prompt")
	}

	if d.Intent == chat.IntentVideo {
		if d.Seconds != "" && !slices.Contains(chat.AllowedVideoSeconds, d.Seconds) {
			return fmt.Errorf("invalid seconds hint %q", d.Seconds)
		}
		if d.Size != "" && !slices.Contains(chat.AllowedVideoSizes, d.Size) {
			return fmt.Errorf("invalid size hint %q", d.Size)
		}
	} else {
		d.Seconds = ""
		d.Size = ""
	}
	if d.Intent != chat.IntentImage {
		d.Style = ""
	}
	return nil
}
