package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
	if cfg.Judge.Mode != JudgeModeMock {
		t.Errorf("Default() judge mode = %q, want mock", cfg.Judge.Mode)
	}
	if cfg.Verifier.Mode != VerifierModeStatic {
		t.Errorf("Default() verifier mode = %q, want static", cfg.Verifier.Mode)
	}
	if cfg.Verifier.Threshold != 0.7 {
		t.Errorf("Default() verifier threshold = %v, want 0.7", cfg.Verifier.Threshold)
	}
	if cfg.Files.Dataset != "medical_billing_eval_dataset.json" {
		t.Errorf("Default() dataset file = %q", cfg.Files.Dataset)
	}
	if cfg.Files.Report != "OUMI_EVALUATION_REPORT.md" {
		t.Errorf("Default() report file = %q", cfg.Files.Report)
	}
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
output_dir: /tmp/eval
judge:
  mode: live
  provider: anthropic
  model: claude-sonnet-4-20250514
verifier:
  mode: llm
  threshold: 0.8
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}

	if cfg.OutputDir != "/tmp/eval" {
		t.Errorf("Load() OutputDir = %q, want /tmp/eval", cfg.OutputDir)
	}
	if cfg.Judge.Mode != JudgeModeLive {
		t.Errorf("Load() judge mode = %q, want live", cfg.Judge.Mode)
	}
	if cfg.Judge.Provider != ProviderAnthropic {
		t.Errorf("Load() judge provider = %q, want anthropic", cfg.Judge.Provider)
	}
	if cfg.Judge.Model != "claude-sonnet-4-20250514" {
		t.Errorf("Load() judge model = %q", cfg.Judge.Model)
	}
	if cfg.Verifier.Mode != VerifierModeLLM {
		t.Errorf("Load() verifier mode = %q, want llm", cfg.Verifier.Mode)
	}
	if cfg.Verifier.Threshold != 0.8 {
		t.Errorf("Load() verifier threshold = %v, want 0.8", cfg.Verifier.Threshold)
	}

	// Settings absent from the file keep their defaults
	if cfg.ModelName != "arungenailab/claimguardian-medical-billing-v2" {
		t.Errorf("Load() ModelName = %q, want default", cfg.ModelName)
	}
	if cfg.Files.Report != "OUMI_EVALUATION_REPORT.md" {
		t.Errorf("Load() report file = %q, want default", cfg.Files.Report)
	}
}

func TestLoad_ExpandsEnvInAPIKeys(t *testing.T) {
	t.Setenv("CLAIMEVAL_TEST_KEY", "sk-test-123")
	t.Setenv("CLAIMEVAL_TEST_EMBED_KEY", "goog-test-456")

	path := writeConfig(t, `
judge:
  mode: live
  provider: openai
  api_key: ${CLAIMEVAL_TEST_KEY}
verifier:
  mode: embedding
  api_key: ${CLAIMEVAL_TEST_EMBED_KEY}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Judge.APIKey != "sk-test-123" {
		t.Errorf("Load() judge api key = %q, want expanded value", cfg.Judge.APIKey)
	}
	if cfg.Verifier.APIKey != "goog-test-456" {
		t.Errorf("Load() verifier api key = %q, want expanded value", cfg.Verifier.APIKey)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "judge: [not a mapping")
	if _, err := Load(path); err == nil {
		t.Error("Load() expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown judge mode",
			mutate:  func(c *Config) { c.Judge.Mode = "auto" },
			wantErr: "unknown judge mode",
		},
		{
			name:    "unknown judge provider",
			mutate:  func(c *Config) { c.Judge.Provider = "cohere" },
			wantErr: "unknown judge provider",
		},
		{
			name:    "unknown verifier mode",
			mutate:  func(c *Config) { c.Verifier.Mode = "halloumi" },
			wantErr: "unknown verifier mode",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error = %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}
