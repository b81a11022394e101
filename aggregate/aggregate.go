// Package aggregate turns per-example judgments into run-level statistics.
package aggregate

import (
	"context"
	"fmt"

	"github.com/claimguardian/claimeval/api"
)

// Evaluate judges every example in order and summarizes the results.
// Examples are judged sequentially, one blocking call at a time, and the
// first failure aborts the run. Judging an empty dataset is rejected with
// ErrEmptyDataset rather than producing NaN averages.
func Evaluate(ctx context.Context, examples []api.EvaluationExample, judge api.Judge) ([]api.JudgmentResult, api.AggregateReport, error) {
	if len(examples) == 0 {
		return nil, api.AggregateReport{}, api.ErrEmptyDataset
	}
	if judge == nil {
		return nil, api.AggregateReport{}, fmt.Errorf("%w: judge is required", api.ErrMissingCapability)
	}

	results := make([]api.JudgmentResult, 0, len(examples))
	for i, example := range examples {
		id := i + 1
		result, err := judge.Judge(ctx, id, example)
		if err != nil {
			return nil, api.AggregateReport{}, fmt.Errorf("judging example %d: %w", id, err)
		}
		result.ExampleID = id
		if err := validateScores(result.Scores); err != nil {
			return nil, api.AggregateReport{}, fmt.Errorf("example %d: %w", id, err)
		}
		result.OverallScore = criterionMean(result.Scores)
		results = append(results, result)
	}

	report, err := Summarize(results)
	if err != nil {
		return nil, api.AggregateReport{}, err
	}
	return results, report, nil
}

// Summarize computes per-criterion averages and the overall average for
// already-judged results. All scores are validated before any average is
// computed. The overall average is the mean of the four per-criterion
// averages taken in api.Criteria order, not the mean of the per-example
// overall scores; the two agree here but only the former is the contract.
func Summarize(results []api.JudgmentResult) (api.AggregateReport, error) {
	if len(results) == 0 {
		return api.AggregateReport{}, api.ErrEmptyDataset
	}
	for _, result := range results {
		if err := validateScores(result.Scores); err != nil {
			return api.AggregateReport{}, fmt.Errorf("example %d: %w", result.ExampleID, err)
		}
	}

	average := make(map[api.Criterion]float64, len(api.Criteria))
	for _, c := range api.Criteria {
		sum := 0.0
		for _, result := range results {
			sum += result.Scores[c]
		}
		average[c] = sum / float64(len(results))
	}

	overall := 0.0
	for _, c := range api.Criteria {
		overall += average[c]
	}
	overall /= float64(len(api.Criteria))

	return api.AggregateReport{
		AverageScore:   average,
		OverallAverage: overall,
		ExampleCount:   len(results),
	}, nil
}

// validateScores requires every criterion to be present and in range
func validateScores(scores map[api.Criterion]float64) error {
	for _, c := range api.Criteria {
		score, ok := scores[c]
		if !ok {
			return fmt.Errorf("%w: missing score for %s", api.ErrInvalidScore, c)
		}
		if score < api.ScoreMin || score > api.ScoreMax {
			return fmt.Errorf("%w: %s = %v, want [%d,%d]", api.ErrInvalidScore, c, score, api.ScoreMin, api.ScoreMax)
		}
	}
	return nil
}

func criterionMean(scores map[api.Criterion]float64) float64 {
	sum := 0.0
	for _, c := range api.Criteria {
		sum += scores[c]
	}
	return sum / float64(len(api.Criteria))
}
