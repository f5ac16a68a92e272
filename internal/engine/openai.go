package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"

	openai "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
)

const systemPrompt = `You are an aspect-based sentiment analyzer for customer reviews.
Extract every distinct aspect of the reviewed business that the text expresses
an opinion about, and label each with its sentiment.

Respond with ONLY a comma-separated list of "category: sentiment" pairs, e.g.:
cleanliness: positive, staff: negative, location: neutral

Sentiment must be one of: positive, negative, neutral.
If the review expresses no aspect-level opinions, respond with an empty line.`

// maxReviewBytes caps what is sent to the model per review.
const maxReviewBytes = 8 * 1024

// OpenAI is an Engine backed by the OpenAI Responses API. The model is
// prompted for the same "category: sentiment" textual format the trained
// seq2seq models emit, so both paths share ParsePrediction.
type OpenAI struct {
	client *openai.Client
	model  shared.ResponsesModel
}

// NewOpenAI creates an OpenAI engine. An empty API key yields an engine
// that reports itself unavailable rather than an error.
func NewOpenAI(apiKey, model string) *OpenAI {
	if apiKey == "" {
		return &OpenAI{}
	}

	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAI{
		client: &client,
		model:  shared.ResponsesModel(model),
	}
}

// Available reports whether the engine holds a configured client.
func (o *OpenAI) Available() bool {
	return o != nil && o.client != nil
}

// Analyze sends the review text to the Responses API and parses the
// prediction into aspects.
func (o *OpenAI) Analyze(ctx context.Context, text string) ([]Aspect, error) {
	if !o.Available() {
		return nil, errors.New("openai engine not configured")
	}

	if len(text) > maxReviewBytes {
		text = text[:maxReviewBytes]
	}

	resp, err := o.client.Responses.New(ctx, responses.ResponseNewParams{
		Model: o.model,
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: responses.ResponseInputParam{
				responses.ResponseInputItemParamOfMessage(systemPrompt, responses.EasyInputMessageRoleSystem),
				responses.ResponseInputItemParamOfMessage(text, responses.EasyInputMessageRoleUser),
			},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("call openai: %w", err)
	}

	return ParsePrediction(strings.TrimSpace(resp.OutputText())), nil
}
