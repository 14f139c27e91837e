package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mason/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recent pipeline runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := ctx.ensure()
			if err != nil {
				return err
			}

			store, err := history.Open(cfg.Paths.HistoryPath)
			if err != nil {
				return fmt.Errorf("open run history: %w", err)
			}
			defer store.Close()

			records, err := store.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No runs recorded yet.")
				return nil
			}

			rows := make([][]string, 0, len(records))
			for _, record := range records {
				result := "ok"
				if !record.Success {
					result = "failed"
					if record.FailedStage != "" {
						result = "failed: " + record.FailedStage
					}
				}
				rows = append(rows, []string{
					record.StartedAt.Local().Format("2006-01-02 15:04"),
					record.Kind,
					record.InputPath,
					record.Tracks,
					result,
					record.OutputRoot,
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Started", "Kind", "Input", "Tracks", "Result", "Output"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft},
			))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of runs to list")
	return cmd
}
