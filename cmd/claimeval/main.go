// Command claimeval runs the medical billing evaluation pipeline end to
// end: it writes the dataset and framework configs, judges the examples,
// verifies the analysis claims and renders the evaluation report.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/claimguardian/claimeval/config"
	"github.com/claimguardian/claimeval/pipeline"
)

func main() {
	configPath := flag.String("config", "", "path to pipeline configuration YAML")
	outputDir := flag.String("output", "", "directory for generated artifacts (overrides config)")
	live := flag.Bool("live", false, "score with the configured LLM judge instead of the mock judge")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if *live {
		cfg.Judge.Mode = config.JudgeModeLive
	}

	logger := newLogger(cfg.LogLevel)
	log := logger.Sugar()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, err := pipeline.Run(ctx, cfg, pipeline.Deps{Logger: log})
	if err != nil {
		log.Errorw("evaluation pipeline failed", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	log.Infow("evaluation complete",
		"overall_average", result.Report.OverallAverage,
		"report", result.ReportPath,
	)
	_ = logger.Sync()
}

func newLogger(level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "warn":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "lvl",
		NameKey:        "name",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		lvl,
	))
}
