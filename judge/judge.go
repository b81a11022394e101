// Package judge provides the scoring capability for evaluation examples.
// Two implementations exist: a mock judge that replays the dataset's
// expected scores, and an LLM judge that asks a generator to score each
// example against the four billing criteria. The choice between them is
// made at construction time, never by probing at call time.
package judge

import (
	"strings"

	"github.com/claimguardian/claimeval/api"
)

// DefaultPromptTemplate is the medical billing auditor prompt sent to
// the judge model. The {request}, {response} and {reference} slots are
// substituted per example. The same template is embedded in the judge
// configuration document emitted for the external framework.
const DefaultPromptTemplate = `You are an expert medical billing auditor evaluating AI-generated billing analysis.

Evaluate the following medical billing analysis on these criteria:

1. CPT_ACCURACY: Is the CPT code identification correct?
2. ERROR_DETECTION: Were billing errors properly identified?
3. APPEAL_QUALITY: Is the appeal letter professional and actionable?
4. COMPLIANCE: Does the analysis follow HIPAA and CMS guidelines?

***
[Original Medical Bill]:
{request}
***
[AI Analysis]:
{response}
***
[Ground Truth (if available)]:
{reference}
***

Provide a score from 1-10 for each criterion and an overall judgment.`

// renderPrompt fills the template slots from one example
func renderPrompt(template string, example api.EvaluationExample) string {
	return strings.NewReplacer(
		"{request}", example.Request,
		"{response}", example.Response,
		"{reference}", example.Reference,
	).Replace(template)
}

// scoreSchema describes the JSON document the judge model must return:
// one integer score per criterion plus a free text explanation
func scoreSchema() map[string]interface{} {
	properties := map[string]interface{}{
		"explanation": map[string]interface{}{
			"type":        "string",
			"description": "Overall judgment of the analysis",
		},
	}
	required := make([]string, 0, len(api.Criteria)+1)
	for _, c := range api.Criteria {
		properties[string(c)] = map[string]interface{}{
			"type":        "integer",
			"minimum":     api.ScoreMin,
			"maximum":     api.ScoreMax,
			"description": c.Description(),
		}
		required = append(required, string(c))
	}
	required = append(required, "explanation")
	return map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}
