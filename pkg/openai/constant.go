package openai

import "errors"

// Sentinel errors surfaced to callers.
var (
	// ErrNoImageOutput means the generation response contained no output item
	// tagged as an image generation result.
	ErrNoImageOutput = errors.New("no image generated in response output")

	// ErrEmptyCompletion means the model returned no choices.
	ErrEmptyCompletion = errors.New("empty completion response")
)

// Output item discriminant for image generation results.
const outputItemTypeImageGeneration = "image_generation_call"
