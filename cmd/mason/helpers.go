package main

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"mason/internal/config"
	"mason/internal/dataset"
	"mason/internal/figures"
	"mason/internal/history"
	"mason/internal/logging"
	"mason/internal/pipeline"
	"mason/internal/report"
	"mason/internal/services/matlab"
	"mason/internal/services/quarto"
	"mason/internal/tracksel"
)

// classifyInput resolves and classifies a dataset path entered by the user.
func classifyInput(raw string) (dataset.Root, error) {
	trimmed := strings.Trim(strings.TrimSpace(raw), `"'`)
	if trimmed == "" {
		return dataset.Root{}, fmt.Errorf("dataset path is required")
	}
	expanded, err := config.ExpandPath(trimmed)
	if err != nil {
		return dataset.Root{}, err
	}
	root := dataset.Classify(expanded)
	if root.Kind == dataset.KindUnknown {
		return root, fmt.Errorf("could not recognise a dataset at %s", expanded)
	}
	return root, nil
}

// defaultOutputRoot picks the run output directory: under the configured
// base directory when one is set, otherwise next to the input.
func defaultOutputRoot(cfg *config.Config, root dataset.Root) string {
	name := "mason_results_" + time.Now().Format("20060102_150405")
	if cfg.Paths.OutputBaseDir != "" {
		return filepath.Join(cfg.Paths.OutputBaseDir, name)
	}
	parent := filepath.Dir(root.Path)
	if root.Kind != dataset.KindExperiment {
		parent = filepath.Dir(strings.TrimRight(root.Path, string(filepath.Separator)))
	}
	return filepath.Join(parent, name)
}

func describeRoot(root dataset.Root) string {
	switch root.Kind {
	case dataset.KindExperiment:
		return "single experiment"
	case dataset.KindExperimentSet:
		return "experiment set"
	case dataset.KindCollection:
		return "collection of experiment sets"
	default:
		return string(root.Kind)
	}
}

// executePipeline wires the stage collaborators from config and runs the
// pipeline, printing a per-stage summary.
func executePipeline(cmd *cobra.Command, ctx *commandContext, root dataset.Root, selection tracksel.Selection, outputRoot string) error {
	cfg, logger, err := ctx.ensure()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if outputRoot == "" {
		outputRoot = defaultOutputRoot(cfg, root)
	} else if outputRoot, err = config.ExpandPath(outputRoot); err != nil {
		return err
	}

	if len(selection.Rejected) > 0 {
		fmt.Fprintf(out, "Ignoring unrecognised track tokens: %s\n", strings.Join(selection.Rejected, ", "))
	}

	deps := pipeline.Deps{
		Analyzer: matlab.NewCLI(
			matlab.WithBinary(cfg.MATLAB.Binary),
			matlab.WithFunction(cfg.MATLAB.Function),
			matlab.WithTimeout(cfg.MATLABTimeout()),
		),
		Figures:   figures.NewGenerator(logger),
		Assembler: report.NewAssembler(cfg.Report.Title, cfg.Report.Author, logger),
		Renderer: quarto.NewCLI(
			quarto.WithBinary(cfg.Quarto.Binary),
			quarto.WithFormats(cfg.Quarto.Formats),
		),
	}

	store, err := history.Open(cfg.Paths.HistoryPath)
	if err != nil {
		logger.Warn("run history unavailable", logging.Error(err))
	} else {
		defer store.Close()
		deps.Recorder = store
	}

	runner, err := pipeline.NewRunner(deps, pipeline.Options{
		HaltOnFigureFailure: cfg.Pipeline.HaltOnFigureFailure,
		HaltOnRenderFailure: cfg.Pipeline.HaltOnRenderFailure,
	}, logger)
	if err != nil {
		return err
	}

	outcome, err := runner.Run(cmd.Context(), root, selection, outputRoot)
	if err != nil {
		return err
	}

	printOutcome(cmd, outcome, outputRoot)
	if !outcome.Success {
		return fmt.Errorf("run failed at the %s stage", outcome.FailedStage())
	}
	return nil
}

func printOutcome(cmd *cobra.Command, outcome pipeline.Outcome, outputRoot string) {
	out := cmd.OutOrStdout()

	rows := make([][]string, 0, len(outcome.Stages))
	for _, status := range outcome.Stages {
		result := "ok"
		if !status.Ok {
			result = "failed: " + status.Err.Error()
		}
		rows = append(rows, []string{
			string(status.Stage),
			result,
			status.Duration.Round(time.Millisecond).String(),
		})
	}
	fmt.Fprintln(out, renderTable(
		[]string{"Stage", "Result", "Duration"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight},
	))

	fmt.Fprintf(out, "Output directory: %s\n", outputRoot)
	if outcome.ReportPath != "" {
		fmt.Fprintf(out, "Report source: %s\n", outcome.ReportPath)
	}
}
