package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mason/internal/deps"
)

func newInstallCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Install the report rendering toolchain (TinyTeX via Quarto)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := ctx.ensure()
			if err != nil {
				return err
			}

			// The installer's own exit code is propagated verbatim.
			if code := deps.Install(cmd.Context(), logger, deps.InstallSteps(cfg)); code != 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "installer exited with status %d\n", code)
				os.Exit(code)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Dependencies installed.")
			return nil
		},
	}
}
