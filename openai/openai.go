// Package openai implements the LLMGenerator interface over the OpenAI
// chat completions API. It is the default backend for the live judge,
// matching the OPENAI engine named in the emitted judge configuration.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/claimguardian/claimeval/api"
)

// Generator wraps an openai.Client to implement the LLMGenerator interface
type Generator struct {
	client      openai.Client
	modelName   string
	temperature *float64
	maxTokens   *int64
}

// Option configures a Generator
type Option func(*Generator)

// WithTemperature sets the sampling temperature for all calls
func WithTemperature(temperature float64) Option {
	return func(g *Generator) {
		g.temperature = &temperature
	}
}

// WithMaxTokens caps the completion length for all calls
func WithMaxTokens(maxTokens int64) Option {
	return func(g *Generator) {
		g.maxTokens = &maxTokens
	}
}

// NewGenerator creates a new OpenAI generator
// client: openai.Client from github.com/openai/openai-go (auth handled by caller)
// modelName: the model to use (e.g., "gpt-4o")
func NewGenerator(client openai.Client, modelName string, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		modelName: modelName,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements LLMGenerator.Generate
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	params := g.newParams(prompt)
	return g.complete(ctx, params)
}

// StructuredGenerate implements LLMGenerator.StructuredGenerate
// The schema is enforced through the API's native json_schema response format
func (g *Generator) StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error) {
	params := g.newParams(prompt)
	params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
		OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
			JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
				Name:   "structured_response",
				Schema: schema,
				Strict: openai.Bool(true),
			},
		},
	}

	text, err := g.complete(ctx, params)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return nil, fmt.Errorf("failed to parse structured response as JSON: %w", err)
	}
	return result, nil
}

func (g *Generator) newParams(prompt string) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Model: shared.ChatModel(g.modelName),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	}
	if g.temperature != nil {
		params.Temperature = openai.Float(*g.temperature)
	}
	if g.maxTokens != nil {
		params.MaxCompletionTokens = openai.Int(*g.maxTokens)
	}
	return params
}

func (g *Generator) complete(ctx context.Context, params openai.ChatCompletionNewParams) (string, error) {
	resp, err := g.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no choices returned")
	}

	return resp.Choices[0].Message.Content, nil
}

// Verify that Generator implements LLMGenerator
var _ api.LLMGenerator = (*Generator)(nil)
