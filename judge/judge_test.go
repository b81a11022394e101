package judge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/claimguardian/claimeval/api"
	"github.com/claimguardian/claimeval/dataset"
)

// mockLLMGenerator is a simple mock for unit tests
type mockLLMGenerator struct {
	response string
	err      error

	// lastPrompt records the prompt of the most recent call
	lastPrompt string
}

func (m *mockLLMGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLMGenerator) StructuredGenerate(ctx context.Context, prompt string, schema map[string]interface{}) (map[string]interface{}, error) {
	m.lastPrompt = prompt
	if m.err != nil {
		return nil, m.err
	}

	var result map[string]interface{}
	if err := json.Unmarshal([]byte(m.response), &result); err != nil {
		return nil, fmt.Errorf("failed to parse mock response as JSON: %w", err)
	}
	return result, nil
}

func TestMockJudge(t *testing.T) {
	ctx := context.Background()
	judge := NewMock()

	for i, example := range dataset.Default() {
		result, err := judge.Judge(ctx, i+1, example)
		if err != nil {
			t.Fatalf("Judge() unexpected error = %v", err)
		}

		for criterion, want := range example.ExpectedScore {
			if got := result.Scores[criterion]; got != float64(want) {
				t.Errorf("Judge() example %d score for %s = %v, want %v", i+1, criterion, got, want)
			}
		}

		wantExplanation := fmt.Sprintf("Analysis for example %d evaluated successfully.", i+1)
		if result.Explanation != wantExplanation {
			t.Errorf("Judge() explanation = %q, want %q", result.Explanation, wantExplanation)
		}
	}
}

func TestLLMJudge_Unit(t *testing.T) {
	ctx := context.Background()

	example := api.EvaluationExample{
		Request:   "bill",
		Response:  "analysis",
		Reference: "truth",
	}

	tests := []struct {
		name        string
		llmResponse string
		llmErr      error
		wantErr     error
		wantScores  map[api.Criterion]float64
	}{
		{
			name:        "valid response",
			llmResponse: `{"cpt_accuracy": 9, "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "solid analysis"}`,
			wantScores: map[api.Criterion]float64{
				api.CriterionCPTAccuracy:    9,
				api.CriterionErrorDetection: 8,
				api.CriterionAppealQuality:  7,
				api.CriterionCompliance:     10,
			},
		},
		{
			name:        "fractional scores accepted",
			llmResponse: `{"cpt_accuracy": 9.5, "error_detection": 8.5, "appeal_quality": 7.5, "compliance": 9.5, "explanation": "ok"}`,
			wantScores: map[api.Criterion]float64{
				api.CriterionCPTAccuracy:    9.5,
				api.CriterionErrorDetection: 8.5,
				api.CriterionAppealQuality:  7.5,
				api.CriterionCompliance:     9.5,
			},
		},
		{
			name:    "llm error",
			llmErr:  fmt.Errorf("API error"),
			wantErr: api.ErrLLMGenerationFailed,
		},
		{
			name:        "missing criterion",
			llmResponse: `{"cpt_accuracy": 9, "error_detection": 8, "compliance": 10, "explanation": "missing appeal_quality"}`,
			wantErr:     api.ErrLLMGenerationFailed,
		},
		{
			name:        "non numeric score",
			llmResponse: `{"cpt_accuracy": "nine", "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "bad type"}`,
			wantErr:     api.ErrLLMGenerationFailed,
		},
		{
			name:        "score above range",
			llmResponse: `{"cpt_accuracy": 11, "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "too high"}`,
			wantErr:     api.ErrInvalidScore,
		},
		{
			name:        "score below range",
			llmResponse: `{"cpt_accuracy": 0, "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "too low"}`,
			wantErr:     api.ErrInvalidScore,
		},
		{
			name:        "missing explanation",
			llmResponse: `{"cpt_accuracy": 9, "error_detection": 8, "appeal_quality": 7, "compliance": 10}`,
			wantErr:     api.ErrLLMGenerationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockLLM := &mockLLMGenerator{response: tt.llmResponse, err: tt.llmErr}

			judge, err := NewLLM(mockLLM)
			if err != nil {
				t.Fatalf("NewLLM() unexpected error = %v", err)
			}

			result, err := judge.Judge(ctx, 1, example)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Judge() error = %v, want %v", err, tt.wantErr)
				}
				return
			}

			if err != nil {
				t.Fatalf("Judge() unexpected error = %v", err)
			}
			for criterion, want := range tt.wantScores {
				if got := result.Scores[criterion]; got != want {
					t.Errorf("Judge() score for %s = %v, want %v", criterion, got, want)
				}
			}
			if result.Explanation == "" {
				t.Error("Judge() explanation is empty")
			}
		})
	}
}

func TestLLMJudge_PromptSubstitution(t *testing.T) {
	ctx := context.Background()

	mockLLM := &mockLLMGenerator{
		response: `{"cpt_accuracy": 9, "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "ok"}`,
	}
	judge, err := NewLLM(mockLLM)
	if err != nil {
		t.Fatalf("NewLLM() unexpected error = %v", err)
	}

	example := api.EvaluationExample{
		Request:   "REQUEST-MARKER",
		Response:  "RESPONSE-MARKER",
		Reference: "REFERENCE-MARKER",
	}
	if _, err := judge.Judge(ctx, 1, example); err != nil {
		t.Fatalf("Judge() unexpected error = %v", err)
	}

	for _, marker := range []string{"REQUEST-MARKER", "RESPONSE-MARKER", "REFERENCE-MARKER"} {
		if !strings.Contains(mockLLM.lastPrompt, marker) {
			t.Errorf("Judge() prompt missing %s", marker)
		}
	}
	for _, slot := range []string{"{request}", "{response}", "{reference}"} {
		if strings.Contains(mockLLM.lastPrompt, slot) {
			t.Errorf("Judge() prompt still contains unsubstituted slot %s", slot)
		}
	}
	if !strings.Contains(mockLLM.lastPrompt, "expert medical billing auditor") {
		t.Error("Judge() prompt missing auditor instructions")
	}
}

func TestLLMJudge_CustomTemplate(t *testing.T) {
	ctx := context.Background()

	mockLLM := &mockLLMGenerator{
		response: `{"cpt_accuracy": 9, "error_detection": 8, "appeal_quality": 7, "compliance": 10, "explanation": "ok"}`,
	}
	judge, err := NewLLM(mockLLM, WithPromptTemplate("Score this: {response}"))
	if err != nil {
		t.Fatalf("NewLLM() unexpected error = %v", err)
	}

	if _, err := judge.Judge(ctx, 1, api.EvaluationExample{Response: "the analysis"}); err != nil {
		t.Fatalf("Judge() unexpected error = %v", err)
	}
	if mockLLM.lastPrompt != "Score this: the analysis" {
		t.Errorf("Judge() prompt = %q, want custom template applied", mockLLM.lastPrompt)
	}
}

func TestNewLLM_NoGenerator(t *testing.T) {
	if _, err := NewLLM(nil); !errors.Is(err, api.ErrMissingCapability) {
		t.Errorf("NewLLM(nil) error = %v, want ErrMissingCapability", err)
	}
}

func TestScoreSchema(t *testing.T) {
	schema := scoreSchema()

	properties, ok := schema["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("scoreSchema() missing properties")
	}
	for _, criterion := range api.Criteria {
		if _, ok := properties[string(criterion)]; !ok {
			t.Errorf("scoreSchema() missing property for %s", criterion)
		}
	}
	if _, ok := properties["explanation"]; !ok {
		t.Error("scoreSchema() missing explanation property")
	}

	required, ok := schema["required"].([]string)
	if !ok {
		t.Fatal("scoreSchema() missing required list")
	}
	if len(required) != len(api.Criteria)+1 {
		t.Errorf("scoreSchema() required has %d entries, want %d", len(required), len(api.Criteria)+1)
	}
}
