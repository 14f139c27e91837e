package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mason/internal/dataset"
	"mason/internal/history"
	"mason/internal/logging"
	"mason/internal/runlock"
	"mason/internal/tracksel"
)

// Deps bundles the stage collaborators.
type Deps struct {
	Analyzer  Analyzer
	Figures   FigureGenerator
	Assembler ReportAssembler
	Renderer  ReportRenderer
	Recorder  Recorder
}

// Options promotes figure and render failures from advisory (logged and
// recorded, run still succeeds) to run failures. Analysis and report
// assembly failures always fail the run.
type Options struct {
	HaltOnFigureFailure bool
	HaltOnRenderFailure bool
}

// Runner executes pipeline runs.
type Runner struct {
	deps    Deps
	options Options
	logger  *slog.Logger
}

// NewRunner constructs a runner. Analyzer, Figures, Assembler, and Renderer
// are required; Recorder may be nil.
func NewRunner(deps Deps, options Options, logger *slog.Logger) (*Runner, error) {
	if deps.Analyzer == nil || deps.Figures == nil || deps.Assembler == nil || deps.Renderer == nil {
		return nil, errors.New("pipeline requires analyzer, figure generator, assembler, and renderer")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Runner{
		deps:    deps,
		options: options,
		logger:  logging.NewComponentLogger(logger, "pipeline"),
	}, nil
}

// Run executes the pipeline for one dataset into outputRoot. Stage failures
// are reported through the Outcome; the returned error covers setup problems
// only (unusable output root, lock contention, context cancellation before
// the first stage).
func (r *Runner) Run(ctx context.Context, root dataset.Root, selection tracksel.Selection, outputRoot string) (Outcome, error) {
	outcome := Outcome{
		RunID:      uuid.NewString(),
		ResultsDir: filepath.Join(outputRoot, "results"),
		FiguresDir: filepath.Join(outputRoot, "figures"),
	}

	for _, dir := range []string{outputRoot, outcome.ResultsDir, outcome.FiguresDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return outcome, fmt.Errorf("create output directory: %w", err)
		}
	}

	lock := runlock.New(outputRoot)
	if err := lock.TryLock(); err != nil {
		return outcome, err
	}
	defer func() {
		if err := lock.Release(); err != nil {
			r.logger.Warn("release run lock", logging.Error(err))
		}
	}()

	if err := ctx.Err(); err != nil {
		return outcome, err
	}

	tracks := tracksel.Expand(selection, root.AvailableTracks)
	started := time.Now()
	r.logger.Info("run started",
		logging.String("run_id", outcome.RunID),
		logging.String("input", root.Path),
		logging.String("kind", string(root.Kind)),
		logging.String("tracks", tracksel.Describe(selection, root.AvailableTracks)),
		logging.String("output", outputRoot))

	outcome.Success = true
	halted := false

	status := r.runStage(ctx, StageAnalysis, func() error {
		return r.deps.Analyzer.Analyze(ctx, root.Path, tracks, outcome.ResultsDir)
	})
	outcome.Stages = append(outcome.Stages, status)
	if !status.Ok {
		outcome.Success = false
		halted = true
	}

	if !halted {
		status = r.runStage(ctx, StageFigures, func() error {
			_, err := r.deps.Figures.Generate(ctx, outcome.ResultsDir, tracks, outcome.FiguresDir)
			return err
		})
		outcome.Stages = append(outcome.Stages, status)
		// Figure failures are advisory unless promoted by configuration.
		if !status.Ok && r.options.HaltOnFigureFailure {
			outcome.Success = false
			halted = true
		}
	}

	if !halted {
		status = r.runStage(ctx, StageReport, func() error {
			path, err := r.deps.Assembler.Assemble(ctx, root.Path, outcome.ResultsDir, outcome.FiguresDir, outputRoot)
			if err != nil {
				return err
			}
			outcome.ReportPath = path
			return nil
		})
		outcome.Stages = append(outcome.Stages, status)
		// Rendering needs the assembled source, so this failure always halts.
		if !status.Ok {
			outcome.Success = false
			halted = true
		}
	}

	if !halted {
		status = r.runStage(ctx, StageRender, func() error {
			return r.deps.Renderer.Render(ctx, outcome.ReportPath)
		})
		outcome.Stages = append(outcome.Stages, status)
		if !status.Ok && r.options.HaltOnRenderFailure {
			outcome.Success = false
		}
	}

	finished := time.Now()
	r.logger.Info("run finished",
		logging.String("run_id", outcome.RunID),
		logging.Bool("success", outcome.Success),
		logging.Duration("elapsed", finished.Sub(started)))

	r.record(ctx, root, selection, outputRoot, outcome, started, finished)
	return outcome, nil
}

func (r *Runner) runStage(ctx context.Context, stage Stage, fn func() error) StageStatus {
	r.logger.Info("stage started", logging.String("stage", string(stage)))
	start := time.Now()
	err := fn()
	status := StageStatus{Stage: stage, Ok: err == nil, Err: err, Duration: time.Since(start)}
	if err != nil {
		r.logger.Error("stage failed",
			logging.String("stage", string(stage)),
			logging.Duration("duration", status.Duration),
			logging.Error(err))
		return status
	}
	r.logger.Info("stage completed",
		logging.String("stage", string(stage)),
		logging.Duration("duration", status.Duration))
	return status
}

func (r *Runner) record(ctx context.Context, root dataset.Root, selection tracksel.Selection, outputRoot string, outcome Outcome, started, finished time.Time) {
	if r.deps.Recorder == nil {
		return
	}
	record := history.Record{
		ID:         outcome.RunID,
		InputPath:  root.Path,
		Kind:       string(root.Kind),
		Tracks:     tracksel.Describe(selection, root.AvailableTracks),
		OutputRoot: outputRoot,
		Success:    outcome.Success,
		StartedAt:  started,
		FinishedAt: finished,
	}
	if stage := outcome.FailedStage(); stage != "" && !outcome.Success {
		record.FailedStage = string(stage)
		for _, status := range outcome.Stages {
			if status.Stage == stage && status.Err != nil {
				record.ErrorMessage = status.Err.Error()
				break
			}
		}
	}
	if err := r.deps.Recorder.RecordRun(ctx, record); err != nil {
		r.logger.Warn("record run history", logging.Error(err))
	}
}
