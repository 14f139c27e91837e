package preflight

import (
	"context"

	"mason/internal/config"
	"mason/internal/deps"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes all applicable preflight checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	for _, status := range deps.CheckBinaries(Requirements(cfg)) {
		detail := status.Detail
		if detail == "" {
			detail = status.Description
		}
		results = append(results, Result{
			Name:     status.Name,
			Passed:   status.Available,
			Optional: status.Optional,
			Detail:   detail,
		})
	}

	results = append(results, CheckDirectoryAccess("Log directory", cfg.Paths.LogDir))
	if cfg.Paths.OutputBaseDir != "" {
		results = append(results, CheckDirectoryAccess("Output directory", cfg.Paths.OutputBaseDir))
	}

	return results
}

// Requirements lists the external binaries the pipeline shells out to.
func Requirements(cfg *config.Config) []deps.Requirement {
	return []deps.Requirement{
		{
			Name:        "MATLAB",
			Command:     cfg.MATLAB.Binary,
			Description: "Required for numeric analysis",
		},
		{
			Name:        "Quarto",
			Command:     cfg.Quarto.Binary,
			Description: "Required for report rendering",
		},
		{
			Name:        "pdflatex",
			Command:     "pdflatex",
			Description: "Used by Quarto for PDF output (install with 'mason install')",
			Optional:    true,
		},
	}
}

// Summary collapses results into the overall verdict plus the names of the
// required checks that failed. Optional checks never fail the summary.
func Summary(results []Result) (bool, []string) {
	var missing []string
	for _, result := range results {
		if !result.Passed && !result.Optional {
			missing = append(missing, result.Name)
		}
	}
	return len(missing) == 0, missing
}
