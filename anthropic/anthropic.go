// Package anthropic implements the LLMGenerator interface over the
// Anthropic messages API. The API has no native JSON schema response
// format, so structured generation embeds the schema in the prompt and
// parses the reply.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"

	"github.com/claimguardian/claimeval/api"
)

const defaultMaxTokens = 2048

// Generator wraps an anthropic.Client to implement the LLMGenerator interface
type Generator struct {
	client      anthropic.Client
	modelName   string
	temperature *float64
	maxTokens   int64
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
		g.maxTokens = maxTokens
	}
}

// NewGenerator creates a new Anthropic generator
// client: anthropic.Client from github.com/anthropics/anthropic-sdk-go (auth handled by caller)
// modelName: the model to use (e.g., "claude-sonnet-4-5")
func NewGenerator(client anthropic.Client, modelName string, opts ...Option) *Generator {
	g := &Generator{
		client:    client,
		modelName: modelName,
		maxTokens: defaultMaxTokens,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate implements LLMGenerator.Generate
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(g.modelName),
		MaxTokens: g.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	}
	if g.temperature != nil {
		params.Temperature = anthropic.Float(*g.temperature)
	}

	message, err := g.client.Messages.New(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	var text strings.Builder
	for _, content := range message.Content {
		switch block := content.AsAny().(type) {
		case anthropic.TextBlock:
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", fmt.Errorf("no text blocks in response")
	}
	return text.String(), nil
}

// StructuredGenerate implements LLMGenerator.StructuredGenerate
func (g *Generator) StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error) {
	schemaJSON, err := json.Marshal(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	structuredPrompt := fmt.Sprintf("%s\n\nRespond with a single JSON object matching this JSON schema and nothing else:\n%s", prompt, schemaJSON)

	text, err := g.Generate(ctx, structuredPrompt)
	if err != nil {
		return nil, err
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &result); err != nil {
		return nil, fmt.Errorf("failed to parse structured response as JSON: %w", err)
	}
	return result, nil
}

// stripCodeFence removes a Markdown code fence the model may wrap the
// JSON object in
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

// Verify that Generator implements LLMGenerator
var _ api.LLMGenerator = (*Generator)(nil)
