package judge

import (
	"context"
	"fmt"

	"github.com/claimguardian/claimeval/api"
)

// LLMOptions configures LLM judge creation
type LLMOptions struct {
	promptTemplate string
}

// WithPromptTemplate overrides the judge prompt template.
// The template must contain the {request}, {response} and {reference} slots.
func WithPromptTemplate(template string) func(*LLMOptions) {
	return func(opts *LLMOptions) {
		opts.promptTemplate = template
	}
}

// NewLLM creates a judge backed by an LLM generator.
// Returns ErrMissingCapability when gen is nil so callers can fall back
// to the mock judge explicitly.
func NewLLM(gen api.LLMGenerator, opts ...func(*LLMOptions)) (api.Judge, error) {
	options := &LLMOptions{promptTemplate: DefaultPromptTemplate}
	for _, opt := range opts {
		opt(options)
	}
	if gen == nil {
		return nil, fmt.Errorf("%w: LLM judge requires a generator", api.ErrMissingCapability)
	}
	return &llmJudge{llm: gen, promptTemplate: options.promptTemplate}, nil
}

type llmJudge struct {
	llm            api.LLMGenerator
	promptTemplate string
}

func (j *llmJudge) Judge(ctx context.Context, _ int, example api.EvaluationExample) (api.JudgmentResult, error) {
	prompt := renderPrompt(j.promptTemplate, example)

	response, err := j.llm.StructuredGenerate(ctx, prompt, scoreSchema())
	if err != nil {
		return api.JudgmentResult{}, fmt.Errorf("%w: %v", api.ErrLLMGenerationFailed, err)
	}

	// The judge model's reply is untrusted output. Every criterion must
	// be present, numeric and in range before it is used anywhere.
	scores := make(map[api.Criterion]float64, len(api.Criteria))
	for _, c := range api.Criteria {
		raw, ok := response[string(c)]
		if !ok {
			return api.JudgmentResult{}, fmt.Errorf("%w: judge response missing %q", api.ErrLLMGenerationFailed, c)
		}
		score, ok := raw.(float64)
		if !ok {
			return api.JudgmentResult{}, fmt.Errorf("%w: judge response field %q is not a number", api.ErrLLMGenerationFailed, c)
		}
		if score < api.ScoreMin || score > api.ScoreMax {
			return api.JudgmentResult{}, fmt.Errorf("%w: %s = %v, want [%d,%d]", api.ErrInvalidScore, c, score, api.ScoreMin, api.ScoreMax)
		}
		scores[c] = score
	}

	explanation, ok := response["explanation"].(string)
	if !ok {
		return api.JudgmentResult{}, fmt.Errorf("%w: judge response missing explanation", api.ErrLLMGenerationFailed)
	}

	return api.JudgmentResult{
		Scores:      scores,
		Explanation: explanation,
	}, nil
}

// Verify that llmJudge implements Judge
var _ api.Judge = (*llmJudge)(nil)
