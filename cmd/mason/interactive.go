package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"mason/internal/preflight"
	"mason/internal/tracksel"
)

// runInteractive walks the user through one pipeline run: environment
// check, dataset path, track selection, output directory, confirmation.
func runInteractive(cmd *cobra.Command, ctx *commandContext) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return errors.New("no dataset given and stdin is not a terminal; use 'mason run <path>'")
	}

	cfg, _, err := ctx.ensure()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	reader := bufio.NewReader(cmd.InOrStdin())

	results := preflight.RunAll(cmd.Context(), cfg)
	if ok, missing := preflight.Summary(results); !ok {
		fmt.Fprintf(out, "Environment check failed, missing: %s\n", strings.Join(missing, ", "))
		printCheckResults(cmd, results)
		answer, err := prompt(reader, out, "Continue anyway? [y/N] ")
		if err != nil {
			return err
		}
		if !isYes(answer) {
			return errors.New("aborted: environment check failed")
		}
	}

	pathAnswer, err := prompt(reader, out, "Dataset path: ")
	if err != nil {
		return err
	}
	root, err := classifyInput(pathAnswer)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Detected %s at %s\n", describeRoot(root), root.Path)
	if len(root.AvailableTracks) > 0 {
		fmt.Fprintf(out, "Available tracks: %v\n", root.AvailableTracks)
	}

	fmt.Fprintln(out, `Track selection accepts "all", single numbers, and ranges, e.g. "1,3,5-8".`)
	tracksAnswer, err := prompt(reader, out, "Tracks [all]: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(tracksAnswer) == "" {
		tracksAnswer = "all"
	}
	selection := tracksel.Parse(tracksAnswer, root.AvailableTracks)

	defaultOutput := defaultOutputRoot(cfg, root)
	outputAnswer, err := prompt(reader, out, fmt.Sprintf("Output directory [%s]: ", defaultOutput))
	if err != nil {
		return err
	}
	outputRoot := strings.Trim(strings.TrimSpace(outputAnswer), `"'`)
	if outputRoot == "" {
		outputRoot = defaultOutput
	}

	fmt.Fprintf(out, "Running %s analysis for tracks %s into %s\n",
		describeRoot(root),
		tracksel.Describe(selection, root.AvailableTracks),
		outputRoot)
	confirm, err := prompt(reader, out, "Proceed? [Y/n] ")
	if err != nil {
		return err
	}
	if isNo(confirm) {
		return errors.New("aborted")
	}

	return executePipeline(cmd, ctx, root, selection, outputRoot)
}

func prompt(reader *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func isYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}

func isNo(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "n", "no":
		return true
	}
	return false
}
