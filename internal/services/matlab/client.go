package matlab

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

var commandContext = exec.CommandContext

// Client defines the analysis runner behaviour.
type Client interface {
	Analyze(ctx context.Context, datasetPath string, tracks []int, resultsDir string) error
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

// WithFunction overrides the analysis entry point.
func WithFunction(function string) Option {
	return func(c *CLI) {
		if function != "" {
			c.function = function
		}
	}
}

// WithTimeout bounds a single analysis invocation. Zero disables the bound.
func WithTimeout(timeout time.Duration) Option {
	return func(c *CLI) {
		c.timeout = timeout
	}
}

// CLI wraps the MATLAB command-line runner.
type CLI struct {
	binary   string
	function string
	timeout  time.Duration
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "matlab", function: "mason_analysis"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Analyze runs the analysis entry point over the dataset. A nil track list
// means no restriction: the analysis decides which tracks to process.
func (c *CLI) Analyze(ctx context.Context, datasetPath string, tracks []int, resultsDir string) error {
	if strings.TrimSpace(datasetPath) == "" {
		return errors.New("dataset path required")
	}
	if strings.TrimSpace(resultsDir) == "" {
		return errors.New("results directory required")
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	batch := fmt.Sprintf("%s('%s', %s, '%s')",
		c.function, quoteArg(datasetPath), vector(tracks), quoteArg(resultsDir))
	cmd := commandContext(ctx, c.binary, "-batch", batch)
	output, err := cmd.CombinedOutput()
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("matlab analysis: %w", ctx.Err())
		}
		return fmt.Errorf("matlab analysis failed: %w%s", err, outputTail(output))
	}
	return nil
}

// quoteArg escapes a value for a single-quoted MATLAB char literal.
func quoteArg(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}

// vector renders tracks as a MATLAB row vector; nil becomes the empty
// vector, which the analysis treats as "all tracks".
func vector(tracks []int) string {
	if len(tracks) == 0 {
		return "[]"
	}
	parts := make([]string, len(tracks))
	for i, n := range tracks {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
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
