package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/openai/openai-go/v3/packages/param"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

// GenerateImage runs an image generation call via the responses API.
// The output is a tagged-variant sequence; the image payload is pulled from
// the item whose type marks it as an image generation result.
func (o *openaiImpl) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	params := responses.ResponseNewParams{
		Model: shared.ResponsesModel(req.Model),
		Input: responses.ResponseNewParamsInputUnion{
			OfString: param.NewOpt(req.Prompt),
		},
		Tools: []responses.ToolUnionParam{
			{OfImageGeneration: &responses.ToolImageGenerationParam{}},
		},
	}
	if req.PreviousResponseID != "" {
		params.PreviousResponseID = param.NewOpt(req.PreviousResponseID)
	}

	resp, err := o.client.Responses.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai: image generation: %w", err)
	}

	var encoded string
	for _, item := range resp.Output {
		if item.Type == outputItemTypeImageGeneration {
			encoded = item.AsImageGenerationCall().Result
			break
		}
	}
	if encoded == "" {
		// The response id is still a valid continuation handle.
		return &ImageResult{ResponseID: resp.ID}, ErrNoImageOutput
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("openai: decode image payload: %w", err)
	}

	return &ImageResult{ResponseID: resp.ID, Data: data}, nil
}
