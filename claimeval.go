// Package claimeval evaluates a fine-tuned medical billing model with an
// LLM-as-a-judge pipeline: fixed billing scenarios are scored against
// four criteria, the scores are aggregated, generated claims are checked
// against source documents and the results are rendered into a report.
//
// The root package re-exports the shared contract types from api and
// offers convenience constructors; the component packages (dataset,
// judge, aggregate, verify, report, oumi, pipeline) do the work.
package claimeval

import (
	"context"

	language "cloud.google.com/go/language/apiv1"
	"google.golang.org/genai"

	"github.com/claimguardian/claimeval/aggregate"
	"github.com/claimguardian/claimeval/api"
	"github.com/claimguardian/claimeval/gemini"
	"github.com/claimguardian/claimeval/judge"
	"github.com/claimguardian/claimeval/screen"
	"github.com/claimguardian/claimeval/verify"
)

type Criterion = api.Criterion
type EvaluationExample = api.EvaluationExample
type JudgmentResult = api.JudgmentResult
type AggregateReport = api.AggregateReport
type VerificationResult = api.VerificationResult
type ClaimVerdict = api.ClaimVerdict
type ClaimStatus = api.ClaimStatus
type Judge = api.Judge
type ClaimVerifier = api.ClaimVerifier
type LLMGenerator = api.LLMGenerator
type Embedder = api.Embedder
type ModerationProvider = api.ModerationProvider
type ModerationCategory = api.ModerationCategory
type ModerationResult = api.ModerationResult

// Criteria lists the evaluation criteria in canonical order.
var Criteria = api.Criteria

var ModerationCategories = api.ModerationCategories

// Evaluate judges every example in order and summarizes the results.
func Evaluate(ctx context.Context, examples []EvaluationExample, j Judge) ([]JudgmentResult, AggregateReport, error) {
	return aggregate.Evaluate(ctx, examples, j)
}

// NewMockJudge returns the judge that replays each example's expected scores.
func NewMockJudge() Judge {
	return judge.NewMock()
}

// NewStaticVerifier returns the claim verifier with fixed demo data.
func NewStaticVerifier() ClaimVerifier {
	return verify.NewStatic()
}

// GeminiOptions configures Gemini-backed judge and verifier creation
type GeminiOptions struct {
	genaiClient *genai.Client
	modelName   string
	langClient  *language.Client
}

// WithGenaiClient sets the Gemini client
func WithGenaiClient(client *genai.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.genaiClient = client
	}
}

// WithModelName sets the model name
func WithModelName(modelName string) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.modelName = modelName
	}
}

// WithLanguageClient sets the Google Cloud Language client for moderation
func WithLanguageClient(langClient *language.Client) func(*GeminiOptions) {
	return func(opts *GeminiOptions) {
		opts.langClient = langClient
	}
}

// NewGeminiJudge creates a live judge backed by a Gemini client and model name.
// Example model: "publishers/google/models/gemini-2.5-flash".
func NewGeminiJudge(opts ...func(*GeminiOptions)) (Judge, error) {
	return judge.NewLLM(geminiGenerator(opts))
}

// NewGeminiVerifier creates a claim verifier that judges entailment with Gemini.
func NewGeminiVerifier(opts ...func(*GeminiOptions)) (ClaimVerifier, error) {
	return verify.NewLLM(geminiGenerator(opts))
}

// NewGeminiEmbeddingVerifier creates a claim verifier that scores claims by
// embedding similarity. Example model: "text-embedding-005".
func NewGeminiEmbeddingVerifier(opts ...func(*GeminiOptions)) (ClaimVerifier, error) {
	options := applyGeminiOptions(opts)
	if options.genaiClient == nil || options.modelName == "" {
		return verify.NewEmbedding(nil)
	}
	return verify.NewEmbedding(gemini.NewEmbedder(options.genaiClient, options.modelName))
}

// NewAppealScreener creates a moderation screener over the Google Cloud
// Natural Language API.
func NewAppealScreener(opts ...func(*GeminiOptions)) (*screen.Screener, error) {
	options := applyGeminiOptions(opts)
	if options.langClient == nil {
		return screen.New(nil)
	}
	return screen.New(gemini.NewGoogleLanguageProvider(options.langClient))
}

func applyGeminiOptions(opts []func(*GeminiOptions)) *GeminiOptions {
	options := &GeminiOptions{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// geminiGenerator builds a generator only when both client and model are
// provided; otherwise constructors receive nil and report the missing
// capability themselves
func geminiGenerator(opts []func(*GeminiOptions)) api.LLMGenerator {
	options := applyGeminiOptions(opts)
	if options.genaiClient == nil || options.modelName == "" {
		return nil
	}
	return gemini.NewGenerator(options.genaiClient, options.modelName)
}
