// Package config loads the pipeline configuration. All settings live in
// one struct constructed by Default or Load and passed down explicitly;
// nothing reads package-level state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Judge modes
const (
	JudgeModeMock = "mock"
	JudgeModeLive = "live"
)

// Judge providers
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Verifier modes
const (
	VerifierModeStatic    = "static"
	VerifierModeLLM       = "llm"
	VerifierModeEmbedding = "embedding"
)

// Config is the full pipeline configuration
type Config struct {
	// OutputDir is where all artifact files are written
	OutputDir string `yaml:"output_dir"`
	// ModelName is the fine-tuned model the run evaluates
	ModelName string `yaml:"model_name"`
	// LogLevel is one of debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	Judge    Judge    `yaml:"judge"`
	Verifier Verifier `yaml:"verifier"`
	Files    Files    `yaml:"files"`
}

// Judge selects and parameterizes the scoring capability
type Judge struct {
	// Mode is "mock" or "live"
	Mode string `yaml:"mode"`
	// Provider is the live judge backend: "openai", "gemini" or "anthropic"
	Provider string `yaml:"provider"`
	// Model is the judge model name
	Model string `yaml:"model"`
	// APIKey authenticates against the provider; environment variables
	// in the value are expanded at load time
	APIKey      string  `yaml:"api_key"`
	Temperature float64 `yaml:"temperature"`
	MaxTokens   int64   `yaml:"max_tokens"`
}

// Verifier selects and parameterizes claim verification
type Verifier struct {
	// Mode is "static", "llm" or "embedding"
	Mode string `yaml:"mode"`
	// Threshold is the minimum confidence in (0,1] for SUPPORTED
	Threshold float64 `yaml:"threshold"`
	// EmbeddingModel is used in embedding mode
	EmbeddingModel string `yaml:"embedding_model"`
	// APIKey authenticates the embedding backend; environment variables
	// in the value are expanded at load time
	APIKey string `yaml:"api_key"`
}

// Files names the artifacts written into OutputDir
type Files struct {
	Dataset     string `yaml:"dataset"`
	JudgeConfig string `yaml:"judge_config"`
	EvalConfig  string `yaml:"eval_config"`
	Report      string `yaml:"report"`
}

// Default returns the demo configuration: mock judge, static verifier,
// artifacts in the current directory.
func Default() Config {
	return Config{
		OutputDir: ".",
		ModelName: "arungenailab/claimguardian-medical-billing-v2",
		LogLevel:  "info",
		Judge: Judge{
			Mode:        JudgeModeMock,
			Provider:    ProviderOpenAI,
			Model:       "gpt-4o",
			APIKey:      os.Getenv("OPENAI_API_KEY"),
			Temperature: 0.3,
			MaxTokens:   2048,
		},
		Verifier: Verifier{
			Mode:           VerifierModeStatic,
			Threshold:      0.7,
			EmbeddingModel: "text-embedding-005",
			APIKey:         os.Getenv("GOOGLE_API_KEY"),
		},
		Files: Files{
			Dataset:     "medical_billing_eval_dataset.json",
			JudgeConfig: "medical_billing_judge.yaml",
			EvalConfig:  "claimguardian_eval.yaml",
			Report:      "OUMI_EVALUATION_REPORT.md",
		},
	}
}

// Load reads a YAML configuration from path on top of the defaults.
// Secrets may be written as environment variable references; they are
// expanded here, never at use time.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Judge.APIKey = os.ExpandEnv(cfg.Judge.APIKey)
	cfg.Verifier.APIKey = os.ExpandEnv(cfg.Verifier.APIKey)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown modes and providers before any step runs
func (c Config) Validate() error {
	switch c.Judge.Mode {
	case JudgeModeMock, JudgeModeLive:
	default:
		return fmt.Errorf("unknown judge mode %q, want %q or %q", c.Judge.Mode, JudgeModeMock, JudgeModeLive)
	}
	switch c.Judge.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown judge provider %q", c.Judge.Provider)
	}
	switch c.Verifier.Mode {
	case VerifierModeStatic, VerifierModeLLM, VerifierModeEmbedding:
	default:
		return fmt.Errorf("unknown verifier mode %q", c.Verifier.Mode)
	}
	return nil
}
