// Package screen runs a content moderation pass over generated appeal
// text before it is shipped to an insurer. A billing analysis that trips
// safety categories is flagged, not rejected; the findings go to the
// caller for review.
package screen

import (
	"context"
	"fmt"

	"github.com/claimguardian/claimeval/api"
)

const defaultThreshold = 0.5

// Finding is a moderation category that exceeded the screening threshold
type Finding struct {
	Category   string
	Confidence float64
}

// Screener checks analysis text against a moderation provider
type Screener struct {
	provider   api.ModerationProvider
	threshold  float64
	categories []string
}

// Option configures a Screener
type Option func(*Screener)

// WithThreshold sets the confidence above which a category is flagged (default 0.5)
func WithThreshold(threshold float64) Option {
	return func(s *Screener) {
		s.threshold = threshold
	}
}

// WithCategories restricts screening to the named categories
// (empty = all categories)
func WithCategories(names ...string) Option {
	return func(s *Screener) {
		s.categories = names
	}
}

// New creates a Screener. Returns ErrMissingCapability when provider is
// nil so callers can skip the screening step explicitly.
func New(provider api.ModerationProvider, opts ...Option) (*Screener, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: screener requires a moderation provider", api.ErrMissingCapability)
	}
	s := &Screener{
		provider:  provider,
		threshold: defaultThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Screen moderates a single text and returns the categories that
// exceeded the threshold. An empty slice means the text is clean.
func (s *Screener) Screen(ctx context.Context, text string) ([]Finding, error) {
	result, err := s.provider.Moderate(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("failed to moderate content: %w", err)
	}

	var findings []Finding
	for _, category := range result.Categories {
		if !s.includes(category.Name) {
			continue
		}
		if category.Confidence > s.threshold {
			findings = append(findings, Finding{Category: category.Name, Confidence: category.Confidence})
		}
	}
	return findings, nil
}

// ScreenExamples moderates each example's analysis text in order,
// aborting on the first provider failure. The returned map is keyed by
// 1-based example position and only holds entries for flagged examples.
func (s *Screener) ScreenExamples(ctx context.Context, examples []api.EvaluationExample) (map[int][]Finding, error) {
	flagged := make(map[int][]Finding)
	for i, example := range examples {
		findings, err := s.Screen(ctx, example.Response)
		if err != nil {
			return nil, fmt.Errorf("screening example %d: %w", i+1, err)
		}
		if len(findings) > 0 {
			flagged[i+1] = findings
		}
	}
	return flagged, nil
}

func (s *Screener) includes(category string) bool {
	if len(s.categories) == 0 {
		return true
	}
	for _, name := range s.categories {
		if name == category {
			return true
		}
	}
	return false
}
