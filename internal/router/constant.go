package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// ContextWindow is how many trailing messages are included as routing
// context. Enough recency for anaphora ("make it brighter") to resolve
// without growing the classification payload per turn.
const ContextWindow = 6

// Router prompts
const (
	PromptRouterSystem = `You are an intent router for a multimodal assistant.
Decide whether the user wants TEXT, IMAGE (art), or VIDEO output.
Return a RouteDecision with:
- intent: one of text|image|video
- prompt: a clean standalone prompt for the generator
- seconds, size only if intent=video
- style only if intent=image and it helps
Rules:
- If the user asks to 'draw', 'generate image', 'logo', 'poster', 'art', pick image.
- If the user asks for 'video', 'animation', 'clip', 'Sora', pick video.
- Otherwise pick text.
- If the user is refining the previous output (e.g. 'make it more realistic'), keep the same intent as context suggests.`

	PromptEmptyHistory = "(none)"
)

// SchemaName identifies the structured output schema.
const SchemaName = "route_decision"

// RouteDecisionSchema is the strict JSON schema the classification backend
// must satisfy. Every property is required; optional hints are nullable.
var RouteDecisionSchema = map[string]any{
	"type":                 "object",
	"additionalProperties": false,
	"required":             []string{"intent", "prompt", "seconds", "size", "style"},
	"properties": map[string]any{
		"intent": map[string]any{
			"type":        "string",
			"enum":        []string{"text", "image", "video"},
			"description": "Which generator to use: text, image, or video.",
		},
		"prompt": map[string]any{
			"type":        "string",
			"description": "A clean prompt to send to the generator.",
		},
		"seconds": map[string]any{
			"type":        []string{"string", "null"},
			"enum":        []any{"4", "8", "12", nil},
			"description": "Video length in seconds.",
		},
		"size": map[string]any{
			"type":        []string{"string", "null"},
			"enum":        []any{"720x1280", "1280x720", "1024x1792", "1792x1024", nil},
			"description": "Video resolution.",
		},
		"style": map[string]any{
			"type":        []string{"string", "null"},
			"description": "Optional style hint for images (e.g. 'pixel art', 'cinematic').",
		},
	},
}
