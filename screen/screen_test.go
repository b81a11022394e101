package screen

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/claimguardian/claimeval/api"
)

// mockModerationProvider is a simple mock for unit tests
type mockModerationProvider struct {
	categories map[string][]api.ModerationCategory
	err        error
}

func (m *mockModerationProvider) Moderate(ctx context.Context, content string) (*api.ModerationResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &api.ModerationResult{Categories: m.categories[content]}, nil
}

func TestScreen(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		categories []api.ModerationCategory
		opts       []Option
		want       []Finding
	}{
		{
			name: "clean content",
			categories: []api.ModerationCategory{
				{Name: "Toxic", Confidence: 0.1},
				{Name: "Insult", Confidence: 0.05},
			},
			want: nil,
		},
		{
			name: "flagged above default threshold",
			categories: []api.ModerationCategory{
				{Name: "Toxic", Confidence: 0.8},
				{Name: "Insult", Confidence: 0.2},
			},
			want: []Finding{{Category: "Toxic", Confidence: 0.8}},
		},
		{
			name: "at threshold is not flagged",
			categories: []api.ModerationCategory{
				{Name: "Toxic", Confidence: 0.5},
			},
			want: nil,
		},
		{
			name: "custom threshold",
			categories: []api.ModerationCategory{
				{Name: "Toxic", Confidence: 0.3},
			},
			opts: []Option{WithThreshold(0.2)},
			want: []Finding{{Category: "Toxic", Confidence: 0.3}},
		},
		{
			name: "category filter",
			categories: []api.ModerationCategory{
				{Name: "Toxic", Confidence: 0.9},
				{Name: "Legal", Confidence: 0.9},
			},
			opts: []Option{WithCategories("Legal")},
			want: []Finding{{Category: "Legal", Confidence: 0.9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &mockModerationProvider{
				categories: map[string][]api.ModerationCategory{"analysis": tt.categories},
			}
			screener, err := New(provider, tt.opts...)
			if err != nil {
				t.Fatalf("New() unexpected error = %v", err)
			}

			findings, err := screener.Screen(ctx, "analysis")
			if err != nil {
				t.Fatalf("Screen() unexpected error = %v", err)
			}

			if len(findings) != len(tt.want) {
				t.Fatalf("Screen() = %v, want %v", findings, tt.want)
			}
			for i, want := range tt.want {
				if findings[i] != want {
					t.Errorf("Screen() finding[%d] = %v, want %v", i, findings[i], want)
				}
			}
		})
	}
}

func TestScreen_ProviderError(t *testing.T) {
	screener, err := New(&mockModerationProvider{err: fmt.Errorf("API error")})
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}

	if _, err := screener.Screen(context.Background(), "analysis"); err == nil {
		t.Error("Screen() expected error from failing provider")
	}
}

func TestScreenExamples(t *testing.T) {
	provider := &mockModerationProvider{
		categories: map[string][]api.ModerationCategory{
			"clean analysis":   {{Name: "Toxic", Confidence: 0.05}},
			"hostile analysis": {{Name: "Toxic", Confidence: 0.85}, {Name: "Insult", Confidence: 0.6}},
		},
	}
	screener, err := New(provider)
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}

	examples := []api.EvaluationExample{
		{Response: "clean analysis"},
		{Response: "hostile analysis"},
		{Response: "clean analysis"},
	}

	flagged, err := screener.ScreenExamples(context.Background(), examples)
	if err != nil {
		t.Fatalf("ScreenExamples() unexpected error = %v", err)
	}

	if len(flagged) != 1 {
		t.Fatalf("ScreenExamples() flagged %d examples, want 1", len(flagged))
	}
	findings, ok := flagged[2]
	if !ok {
		t.Fatal("ScreenExamples() missing findings for example 2")
	}
	if len(findings) != 2 {
		t.Errorf("ScreenExamples() example 2 has %d findings, want 2", len(findings))
	}
}

func TestScreenExamples_AbortsOnError(t *testing.T) {
	screener, err := New(&mockModerationProvider{err: fmt.Errorf("API error")})
	if err != nil {
		t.Fatalf("New() unexpected error = %v", err)
	}

	_, err = screener.ScreenExamples(context.Background(), []api.EvaluationExample{{Response: "analysis"}})
	if err == nil {
		t.Fatal("ScreenExamples() expected error from failing provider")
	}
	if !strings.Contains(err.Error(), "screening example 1") {
		t.Errorf("ScreenExamples() error = %v, want it to name example 1", err)
	}
}

func TestNew_NoProvider(t *testing.T) {
	if _, err := New(nil); !errors.Is(err, api.ErrMissingCapability) {
		t.Errorf("New(nil) error = %v, want ErrMissingCapability", err)
	}
}
