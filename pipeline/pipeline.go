// Package pipeline orchestrates a full evaluation run: dataset and
// config emission, judging, aggregation, claim verification and report
// rendering. Steps run sequentially and the first failure aborts the run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/claimguardian/claimeval/aggregate"
	"github.com/claimguardian/claimeval/api"
	"github.com/claimguardian/claimeval/config"
	"github.com/claimguardian/claimeval/dataset"
	"github.com/claimguardian/claimeval/judge"
	"github.com/claimguardian/claimeval/oumi"
	"github.com/claimguardian/claimeval/report"
	"github.com/claimguardian/claimeval/screen"
	"github.com/claimguardian/claimeval/verify"
)

// Deps are the collaborators a run needs. Zero values select the
// configuration-driven defaults: a nil Judge or Verifier is built from
// cfg, a nil Logger disables logging, a nil Clock means wall-clock time.
// The Screener is optional; runs without one skip the screening step.
type Deps struct {
	Judge    api.Judge
	Verifier api.ClaimVerifier
	Screener *screen.Screener
	Logger   *zap.SugaredLogger
	Clock    func() time.Time
}

// Result collects everything a run produced.
type Result struct {
	Results       []api.JudgmentResult
	Report        api.AggregateReport
	Verifications []api.VerificationResult
	Flagged       map[int][]screen.Finding

	DatasetPath     string
	JudgeConfigPath string
	EvalConfigPath  string
	ReportPath      string
}

// Run executes the six pipeline steps against cfg. Any step's error
// aborts the run; there are no retries. The one sanctioned degradation
// is the capability fallback: when a live judge or verifier is requested
// but cannot be constructed, Run logs the downgrade and continues with
// the mock judge or static verifier.
func Run(ctx context.Context, cfg config.Config, deps Deps) (*Result, error) {
	log := deps.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	log = log.With("run_id", uuid.NewString())

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", api.ErrWrite, err)
	}

	result := &Result{
		DatasetPath:     filepath.Join(cfg.OutputDir, cfg.Files.Dataset),
		JudgeConfigPath: filepath.Join(cfg.OutputDir, cfg.Files.JudgeConfig),
		EvalConfigPath:  filepath.Join(cfg.OutputDir, cfg.Files.EvalConfig),
		ReportPath:      filepath.Join(cfg.OutputDir, cfg.Files.Report),
	}

	log.Infow("step 1: creating evaluation dataset", "path", result.DatasetPath)
	examples := dataset.Default()
	if err := dataset.Save(examples, result.DatasetPath); err != nil {
		return nil, err
	}
	log.Infow("evaluation dataset saved", "examples", len(examples))

	log.Infow("step 2: writing judge configuration", "path", result.JudgeConfigPath)
	if _, err := oumi.DefaultJudgeConfig().WriteFile(result.JudgeConfigPath); err != nil {
		return nil, err
	}

	log.Infow("step 3: running LLM-as-a-judge evaluation", "mode", cfg.Judge.Mode)
	examplesJudge, err := resolveJudge(ctx, cfg, deps, log)
	if err != nil {
		return nil, err
	}
	results, aggregateReport, err := aggregate.Evaluate(ctx, examples, examplesJudge)
	if err != nil {
		return nil, err
	}
	result.Results = results
	result.Report = aggregateReport
	for _, r := range results {
		log.Infow("example judged",
			"example_id", r.ExampleID,
			"overall", r.OverallScore,
		)
	}
	log.Infow("aggregate results",
		"overall_average", aggregateReport.OverallAverage,
		"examples", aggregateReport.ExampleCount,
	)

	log.Infow("step 4: verifying analysis claims", "mode", cfg.Verifier.Mode, "threshold", cfg.Verifier.Threshold)
	verifier, err := resolveVerifier(ctx, cfg, deps, log)
	if err != nil {
		return nil, err
	}
	for i, example := range examples {
		contextDoc := example.Request + "\n\nReference findings:\n" + example.Reference
		verification, err := verifier.Verify(ctx, contextDoc, example.Response, cfg.Verifier.Threshold)
		if err != nil {
			return nil, fmt.Errorf("verifying example %d: %w", i+1, err)
		}
		result.Verifications = append(result.Verifications, verification)
	}

	if deps.Screener != nil {
		flagged, err := deps.Screener.ScreenExamples(ctx, examples)
		if err != nil {
			return nil, err
		}
		result.Flagged = flagged
		for id, findings := range flagged {
			log.Warnw("analysis text flagged by moderation", "example_id", id, "findings", findings)
		}
	}

	log.Infow("step 5: writing evaluation benchmark config", "path", result.EvalConfigPath)
	evalConfig := oumi.DefaultEvalConfig()
	evalConfig.Model.ModelName = cfg.ModelName
	if _, err := evalConfig.WriteFile(result.EvalConfigPath); err != nil {
		return nil, err
	}

	log.Infow("step 6: rendering evaluation report", "path", result.ReportPath)
	opts := []report.Option{
		report.WithModelName(cfg.ModelName),
		report.WithVerification(result.Verifications...),
	}
	if deps.Clock != nil {
		opts = append(opts, report.WithClock(deps.Clock))
	}
	renderer := report.NewRenderer(opts...)
	if err := renderer.WriteFile(result.ReportPath, aggregateReport, results); err != nil {
		return nil, err
	}

	log.Infow("evaluation pipeline complete",
		"report", result.ReportPath,
		"overall_average", aggregateReport.OverallAverage,
	)
	return result, nil
}

// resolveJudge uses the injected judge when present, otherwise builds
// one from the configuration, downgrading to the mock judge when the
// live path is unavailable.
func resolveJudge(ctx context.Context, cfg config.Config, deps Deps, log *zap.SugaredLogger) (api.Judge, error) {
	if deps.Judge != nil {
		return deps.Judge, nil
	}
	j, err := NewJudge(ctx, cfg)
	if errors.Is(err, api.ErrMissingCapability) {
		log.Warnw("live judge unavailable, falling back to mock judge", "error", err)
		return judge.NewMock(), nil
	}
	if err != nil {
		return nil, err
	}
	return j, nil
}

// resolveVerifier mirrors resolveJudge for the claim verifier.
func resolveVerifier(ctx context.Context, cfg config.Config, deps Deps, log *zap.SugaredLogger) (api.ClaimVerifier, error) {
	if deps.Verifier != nil {
		return deps.Verifier, nil
	}
	v, err := NewVerifier(ctx, cfg)
	if errors.Is(err, api.ErrMissingCapability) {
		log.Warnw("live verifier unavailable, falling back to static verifier", "error", err)
		return verify.NewStatic(), nil
	}
	if err != nil {
		return nil, err
	}
	return v, nil
}
