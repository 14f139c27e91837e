package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mason/internal/tracksel"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var tracksExpr string
	var outputRoot string

	cmd := &cobra.Command{
		Use:   "run <dataset-path>",
		Short: "Run the analysis pipeline over a dataset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := classifyInput(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Detected %s at %s\n", describeRoot(root), root.Path)
			if len(root.AvailableTracks) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "Available tracks: %d\n", len(root.AvailableTracks))
			}

			selection := tracksel.Parse(tracksExpr, root.AvailableTracks)
			return executePipeline(cmd, ctx, root, selection, outputRoot)
		},
	}

	cmd.Flags().StringVarP(&tracksExpr, "tracks", "t", "all", "Track selection, e.g. \"all\" or \"1,3,5-8\"")
	cmd.Flags().StringVarP(&outputRoot, "output", "o", "", "Output directory (default: timestamped directory)")
	return cmd
}
