package quarto

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

var commandContext = exec.CommandContext

// Client defines the report renderer behaviour.
type Client interface {
	Render(ctx context.Context, reportPath string) error
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFormats selects the output formats passed via --to.
func WithFormats(formats []string) Option {
	return func(c *CLI) {
		c.formats = formats
	}
}

// CLI wraps the Quarto command-line renderer.
type CLI struct {
	binary  string
	formats []string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "quarto"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Render renders the report source document in place; output files land
// next to it.
func (c *CLI) Render(ctx context.Context, reportPath string) error {
	if strings.TrimSpace(reportPath) == "" {
		return errors.New("report path required")
	}

	args := []string{"render", reportPath}
	if len(c.formats) > 0 {
		args = append(args, "--to", strings.Join(c.formats, ","))
	}
	cmd := commandContext(ctx, c.binary, args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("quarto render: %w", ctx.Err())
		}
		return fmt.Errorf("quarto render failed: %w%s", err, outputTail(output))
	}
	return nil
}

func outputTail(output []byte) string {
	trimmed := strings.TrimSpace(string(output))
	if trimmed == "" {
		return ""
	}
	lines := strings.Split(trimmed, "\n")
	if len(lines) > 5 {
		lines = lines[len(lines)-5:]
	}
	return ": " + strings.Join(lines, " / ")
}

var _ Client = (*CLI)(nil)
