package deps

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"

	"mason/internal/config"
	"mason/internal/logging"
)

var commandContext = exec.CommandContext

// InstallStep is one non-interactive installer invocation.
type InstallStep struct {
	Name    string
	Command string
	Args    []string
}

// InstallSteps returns the installer invocations for the given config.
// Quarto itself must be present; the steps install its supporting tooling.
func InstallSteps(cfg *config.Config) []InstallStep {
	return []InstallStep{
		{
			Name:    "TinyTeX",
			Command: cfg.Quarto.Binary,
			Args:    []string{"install", "tinytex", "--no-prompt"},
		},
	}
}

// Install runs the given steps in order, streaming their output to the
// process's stdout/stderr, and returns the exit code of the first failing
// installer (or 0 when every step succeeds).
func Install(ctx context.Context, logger *slog.Logger, steps []InstallStep) int {
	if logger == nil {
		logger = logging.NewNop()
	}
	for _, step := range steps {
		logger.Info("installing dependency", logging.String("name", step.Name))

		cmd := commandContext(ctx, step.Command, step.Args...)
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			code := 1
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			}
			logger.Error("dependency install failed",
				logging.String("name", step.Name),
				logging.Int("exit_code", code),
				logging.Error(err),
			)
			return code
		}
		logger.Info("dependency installed", logging.String("name", step.Name))
	}
	return 0
}
