package pipeline

import (
	"context"
	"fmt"

	anthropicsdk "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	openaisdk "github.com/openai/openai-go"
	openaiopt "github.com/openai/openai-go/option"
	"google.golang.org/genai"

	"github.com/claimguardian/claimeval/anthropic"
	"github.com/claimguardian/claimeval/api"
	"github.com/claimguardian/claimeval/config"
	"github.com/claimguardian/claimeval/gemini"
	"github.com/claimguardian/claimeval/judge"
	"github.com/claimguardian/claimeval/openai"
	"github.com/claimguardian/claimeval/verify"
)

// NewJudge builds the judge the configuration asks for. A live judge
// without credentials fails with ErrMissingCapability, which Run treats
// as an explicit, logged fallback to the mock judge.
func NewJudge(ctx context.Context, cfg config.Config) (api.Judge, error) {
	if cfg.Judge.Mode == config.JudgeModeMock {
		return judge.NewMock(), nil
	}
	gen, err := newGenerator(ctx, cfg.Judge)
	if err != nil {
		return nil, err
	}
	return judge.NewLLM(gen)
}

// NewVerifier builds the claim verifier the configuration asks for.
// Live modes without credentials fail with ErrMissingCapability, which
// Run treats as an explicit, logged fallback to the static verifier.
func NewVerifier(ctx context.Context, cfg config.Config) (api.ClaimVerifier, error) {
	switch cfg.Verifier.Mode {
	case config.VerifierModeStatic:
		return verify.NewStatic(), nil
	case config.VerifierModeLLM:
		gen, err := newGenerator(ctx, cfg.Judge)
		if err != nil {
			return nil, err
		}
		return verify.NewLLM(gen)
	case config.VerifierModeEmbedding:
		if cfg.Verifier.APIKey == "" {
			return nil, fmt.Errorf("%w: embedding verifier requires an API key", api.ErrMissingCapability)
		}
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  cfg.Verifier.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		return verify.NewEmbedding(gemini.NewEmbedder(client, cfg.Verifier.EmbeddingModel))
	default:
		return nil, fmt.Errorf("unknown verifier mode %q", cfg.Verifier.Mode)
	}
}

// newGenerator builds the LLM generator for the configured provider
func newGenerator(ctx context.Context, cfg config.Judge) (api.LLMGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: provider %s requires an API key", api.ErrMissingCapability, cfg.Provider)
	}

	switch cfg.Provider {
	case config.ProviderOpenAI:
		client := openaisdk.NewClient(openaiopt.WithAPIKey(cfg.APIKey))
		return openai.NewGenerator(client, cfg.Model,
			openai.WithTemperature(cfg.Temperature),
			openai.WithMaxTokens(cfg.MaxTokens),
		), nil
	case config.ProviderAnthropic:
		client := anthropicsdk.NewClient(anthropicopt.WithAPIKey(cfg.APIKey))
		return anthropic.NewGenerator(client, cfg.Model,
			anthropic.WithTemperature(cfg.Temperature),
			anthropic.WithMaxTokens(cfg.MaxTokens),
		), nil
	case config.ProviderGemini:
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			Backend: genai.BackendGeminiAPI,
			APIKey:  cfg.APIKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create genai client: %w", err)
		}
		return gemini.NewGenerator(client, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown judge provider %q", cfg.Provider)
	}
}
