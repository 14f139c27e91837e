package pipeline

import (
	"context"
	"time"

	"mason/internal/history"
)

// Stage identifies one pipeline stage.
type Stage string

const (
	StageAnalysis Stage = "analysis"
	StageFigures  Stage = "figures"
	StageReport   Stage = "report"
	StageRender   Stage = "render"
)

// Analyzer runs the numeric analysis over a dataset, writing per-track
// results into resultsDir.
type Analyzer interface {
	Analyze(ctx context.Context, datasetPath string, tracks []int, resultsDir string) error
}

// FigureGenerator renders figures from the analysis results.
type FigureGenerator interface {
	Generate(ctx context.Context, resultsDir string, tracks []int, figuresDir string) (int, error)
}

// ReportAssembler builds the report source document and returns its path.
type ReportAssembler interface {
	Assemble(ctx context.Context, inputPath, resultsDir, figuresDir, outputRoot string) (string, error)
}

// ReportRenderer renders the assembled report source.
type ReportRenderer interface {
	Render(ctx context.Context, reportPath string) error
}

// Recorder persists the outcome of a run. Recording is best effort; a
// recorder failure never fails the run.
type Recorder interface {
	RecordRun(ctx context.Context, record history.Record) error
}

// StageStatus captures the result of one executed stage. Stages skipped by
// an earlier halt do not appear.
type StageStatus struct {
	Stage    Stage
	Ok       bool
	Err      error
	Duration time.Duration
}

// Outcome summarises a finished run.
type Outcome struct {
	RunID      string
	Success    bool
	Stages     []StageStatus
	ResultsDir string
	FiguresDir string
	ReportPath string
}

// FailedStage returns the first failed stage name, or "".
func (o Outcome) FailedStage() Stage {
	for _, status := range o.Stages {
		if !status.Ok {
			return status.Stage
		}
	}
	return ""
}
