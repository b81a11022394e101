package verify

import (
	"context"
	"fmt"

	"github.com/claimguardian/claimeval/api"
)

const entailmentPromptTemplate = `You are verifying whether a claim from an AI-generated medical billing analysis is grounded in a source document.

<context>
%s
</context>

<claims>
%s
</claims>

Determine whether the claim inside <claims> is supported by the document inside <context>.
A claim is supported only when the document contains evidence for it; absence of evidence means unsupported.
Report your confidence in the determination as a number between 0 and 1.`

// LLMOptions configures LLM verifier creation
type LLMOptions struct {
	promptTemplate string
}

// WithPromptTemplate overrides the entailment prompt. The template is
// formatted with the context document first and the claim second.
func WithPromptTemplate(template string) func(*LLMOptions) {
	return func(opts *LLMOptions) {
		opts.promptTemplate = template
	}
}

// NewLLM creates a verifier that judges each extracted claim with an LLM
// generator. Returns ErrMissingCapability when gen is nil so callers can
// fall back to the static verifier explicitly.
func NewLLM(gen api.LLMGenerator, opts ...func(*LLMOptions)) (api.ClaimVerifier, error) {
	options := &LLMOptions{promptTemplate: entailmentPromptTemplate}
	for _, opt := range opts {
		opt(options)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: LLM verifier requires a generator", api.ErrMissingCapability)
	}
	return &llmVerifier{llm: gen, promptTemplate: options.promptTemplate}, nil
}

type llmVerifier struct {
	llm            api.LLMGenerator
	promptTemplate string
}

func (v *llmVerifier) Verify(ctx context.Context, contextDoc, analysis string, threshold float64) (api.VerificationResult, error) {
	if err := validateThreshold(threshold); err != nil {
		return api.VerificationResult{}, err
	}

	claims, err := SplitClaims(analysis)
	if err != nil {
		return api.VerificationResult{}, err
	}

	// One blocking call per claim, in order, aborting on the first failure.
	details := make([]api.ClaimVerdict, 0, len(claims))
	for _, claim := range claims {
		verdict, err := v.verifyClaim(ctx, contextDoc, claim, threshold)
		if err != nil {
			return api.VerificationResult{}, fmt.Errorf("verifying claim %q: %w", claim, err)
		}
		details = append(details, verdict)
	}
	return summarizeVerdicts(details), nil
}

func (v *llmVerifier) verifyClaim(ctx context.Context, contextDoc, claim string, threshold float64) (api.ClaimVerdict, error) {
	prompt := fmt.Sprintf(v.promptTemplate, contextDoc, claim)
	schema := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"supported": map[string]interface{}{
				"type":        "boolean",
				"description": "Whether the claim is supported by the context document",
			},
			"confidence": map[string]interface{}{
				"type":        "number",
				"minimum":     0,
				"maximum":     1,
				"description": "Confidence in the determination",
			},
		},
		"required": []string{"supported", "confidence"},
	}

	response, err := v.llm.StructuredGenerate(ctx, prompt, schema)
	if err != nil {
		return api.ClaimVerdict{}, fmt.Errorf("%w: %v", api.ErrLLMGenerationFailed, err)
	}

	supported, ok := response["supported"].(bool)
	if !ok {
		return api.ClaimVerdict{}, fmt.Errorf("%w: response missing supported flag", api.ErrLLMGenerationFailed)
	}
	confidence, ok := response["confidence"].(float64)
	if !ok {
		return api.ClaimVerdict{}, fmt.Errorf("%w: response missing confidence", api.ErrLLMGenerationFailed)
	}
	confidence = clamp01(confidence)

	status := api.ClaimUnsupported
	if supported && confidence >= threshold {
		status = api.ClaimSupported
	}
	return api.ClaimVerdict{Claim: claim, Status: status, Confidence: confidence}, nil
}

// Verify that llmVerifier implements ClaimVerifier
var _ api.ClaimVerifier = (*llmVerifier)(nil)
