package judge

import (
	"context"
	"fmt"

	"github.com/claimguardian/claimeval/api"
)

// NewMock returns a judge that replays each example's expected scores.
// It needs no external services and is the default for demo runs and tests.
func NewMock() api.Judge {
	return &mockJudge{}
}

type mockJudge struct{}

func (*mockJudge) Judge(_ context.Context, id int, example api.EvaluationExample) (api.JudgmentResult, error) {
	scores := make(map[api.Criterion]float64, len(example.ExpectedScore))
	for c, s := range example.ExpectedScore {
		scores[c] = float64(s)
	}
	return api.JudgmentResult{
		Scores:      scores,
		Explanation: fmt.Sprintf("Analysis for example %d evaluated successfully.", id),
	}, nil
}

// Verify that mockJudge implements Judge
var _ api.Judge = (*mockJudge)(nil)
