package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"mason/internal/preflight"
)

func newCheckCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "check",
		Aliases: []string{"systemfairy"},
		Short:   "Check that the analysis environment is ready",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}

			results := preflight.RunAll(cmd.Context(), cfg)
			printCheckResults(cmd, results)

			if ok, missing := preflight.Summary(results); !ok {
				return fmt.Errorf("environment check failed, missing: %s", strings.Join(missing, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Environment is ready.")
			return nil
		},
	}
}

func printCheckResults(cmd *cobra.Command, results []preflight.Result) {
	rows := make([][]string, 0, len(results))
	for _, result := range results {
		status := "ok"
		if !result.Passed {
			status = "missing"
			if result.Optional {
				status = "missing (optional)"
			}
		}
		rows = append(rows, []string{result.Name, status, result.Detail})
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderTable(
		[]string{"Check", "Status", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft},
	))
}
