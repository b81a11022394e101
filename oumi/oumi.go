// Package oumi emits the configuration documents consumed by the
// external Oumi evaluation framework. The documents are produced here
// and read only by that framework; this package never parses them back.
package oumi

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/claimguardian/claimeval/api"
	"github.com/claimguardian/claimeval/judge"
)

// Emit writes template verbatim to path and returns the path.
// No parsing or validation is performed; the template's schema is the
// external framework's concern.
func Emit(template string, path string) (string, error) {
	if err := os.WriteFile(path, []byte(template), 0o644); err != nil {
		return "", fmt.Errorf("%w: %v", api.ErrWrite, err)
	}
	return path, nil
}

// JudgeConfig is the LLM-as-a-judge configuration document.
type JudgeConfig struct {
	JudgeParams     JudgeParams     `yaml:"judge_params"`
	InferenceConfig InferenceConfig `yaml:"inference_config"`
}

// JudgeParams controls how the framework's judge interprets model output.
type JudgeParams struct {
	PromptTemplate     string `yaml:"prompt_template"`
	ResponseFormat     string `yaml:"response_format"`
	JudgmentType       string `yaml:"judgment_type"`
	IncludeExplanation bool   `yaml:"include_explanation"`
	ScoreRange         [2]int `yaml:"score_range,flow"`
}

// InferenceConfig names the provider and generation settings for the judge model.
type InferenceConfig struct {
	Model      ModelParams      `yaml:"model"`
	Engine     string           `yaml:"engine"`
	Generation GenerationParams `yaml:"generation"`
}

// ModelParams identifies a model.
type ModelParams struct {
	ModelName string `yaml:"model_name"`
}

// GenerationParams are the judge model's sampling settings.
type GenerationParams struct {
	MaxNewTokens int     `yaml:"max_new_tokens"`
	Temperature  float64 `yaml:"temperature"`
}

// DefaultJudgeConfig returns the medical billing judge configuration:
// the auditor prompt with per-criterion 1-10 scoring, judged by gpt-4o
// through the OpenAI engine.
func DefaultJudgeConfig() JudgeConfig {
	return JudgeConfig{
		JudgeParams: JudgeParams{
			PromptTemplate:     judge.DefaultPromptTemplate + "\n",
			ResponseFormat:     "JSON",
			JudgmentType:       "SCORE",
			IncludeExplanation: true,
			ScoreRange:         [2]int{api.ScoreMin, api.ScoreMax},
		},
		InferenceConfig: InferenceConfig{
			Model:  ModelParams{ModelName: "gpt-4o"},
			Engine: "OPENAI",
			Generation: GenerationParams{
				MaxNewTokens: 2048,
				Temperature:  0.3,
			},
		},
	}
}

// Render serializes the config to YAML.
func (c JudgeConfig) Render() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal judge config: %w", err)
	}
	return string(data), nil
}

// WriteFile renders the config and writes it to path.
func (c JudgeConfig) WriteFile(path string) (string, error) {
	rendered, err := c.Render()
	if err != nil {
		return "", err
	}
	return Emit(rendered, path)
}

// EvalConfig is the evaluation benchmark configuration document.
type EvalConfig struct {
	Model      EvalModel      `yaml:"model"`
	Evaluation Evaluation     `yaml:"evaluation"`
	Output     OutputSpec     `yaml:"output"`
	Baselines  []string       `yaml:"baselines"`
	Generation EvalGeneration `yaml:"generation"`
}

// EvalModel identifies the model under evaluation.
type EvalModel struct {
	ModelName       string `yaml:"model_name"`
	TrustRemoteCode bool   `yaml:"trust_remote_code"`
}

// Evaluation lists the benchmark tasks.
type Evaluation struct {
	Tasks []Task `yaml:"tasks"`
}

// Task is one benchmark task definition.
type Task struct {
	Name        string   `yaml:"name"`
	Type        string   `yaml:"type"`
	Dataset     string   `yaml:"dataset,omitempty"`
	Metrics     []string `yaml:"metrics"`
	JudgeConfig string   `yaml:"judge_config,omitempty"`
}

// OutputSpec controls where the framework writes benchmark results.
type OutputSpec struct {
	Format          string `yaml:"format"`
	Path            string `yaml:"path"`
	IncludeExamples bool   `yaml:"include_examples"`
}

// EvalGeneration are the evaluated model's sampling settings.
type EvalGeneration struct {
	MaxNewTokens int     `yaml:"max_new_tokens"`
	Temperature  float64 `yaml:"temperature"`
	DoSample     bool    `yaml:"do_sample"`
}

// DefaultEvalConfig returns the benchmark configuration: CPT code
// classification, billing error detection and judged appeal letter
// generation, baselined against the base model before fine-tuning.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		Model: EvalModel{
			ModelName:       "arungenailab/claimguardian-medical-billing-v2",
			TrustRemoteCode: true,
		},
		Evaluation: Evaluation{
			Tasks: []Task{
				{
					Name:    "cpt_code_accuracy",
					Type:    "classification",
					Dataset: "medical_billing_eval_dataset",
					Metrics: []string{"accuracy", "f1_score", "precision", "recall"},
				},
				{
					Name:    "billing_error_detection",
					Type:    "binary_classification",
					Metrics: []string{"accuracy", "auc_roc", "confusion_matrix"},
				},
				{
					Name:        "appeal_letter_quality",
					Type:        "generation",
					Metrics:     []string{"bleu", "rouge_l", "perplexity"},
					JudgeConfig: "medical_billing_judge.yaml",
				},
			},
		},
		Output: OutputSpec{
			Format:          "json",
			Path:            "evaluation_results/",
			IncludeExamples: true,
		},
		Baselines: []string{"Qwen/Qwen2-0.5B-Instruct"},
		Generation: EvalGeneration{
			MaxNewTokens: 512,
			Temperature:  0.7,
			DoSample:     true,
		},
	}
}

// Render serializes the config to YAML.
func (c EvalConfig) Render() (string, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("failed to marshal eval config: %w", err)
	}
	return string(data), nil
}

// WriteFile renders the config and writes it to path.
func (c EvalConfig) WriteFile(path string) (string, error) {
	rendered, err := c.Render()
	if err != nil {
		return "", err
	}
	return Emit(rendered, path)
}
