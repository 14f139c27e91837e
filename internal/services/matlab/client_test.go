package matlab

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"
)

func TestAnalyzeBuildsBatchInvocation(t *testing.T) {
	var gotName string
	var gotArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotName = name
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	}
	defer func() { commandContext = original }()

	cli := NewCLI(WithBinary("matlab-r2024b"), WithFunction("mason_analysis"))
	if err := cli.Analyze(context.Background(), "/data/run01", []int{1, 2, 5}, "/out/results"); err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if gotName != "matlab-r2024b" {
		t.Fatalf("expected matlab-r2024b binary, got %q", gotName)
	}
	want := []string{"-batch", "mason_analysis('/data/run01', [1 2 5], '/out/results')"}
	if len(gotArgs) != len(want) {
		t.Fatalf("expected args %v, got %v", want, gotArgs)
	}
	for i := range want {
		if gotArgs[i] != want[i] {
			t.Fatalf("arg %d: expected %q, got %q", i, want[i], gotArgs[i])
		}
	}
}

func TestAnalyzeEscapesQuotesAndEmptyTracks(t *testing.T) {
	var gotArgs []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		gotArgs = args
		return exec.CommandContext(ctx, "true")
	}
	defer func() { commandContext = original }()

	cli := NewCLI()
	if err := cli.Analyze(context.Background(), "/data/o'brien", nil, "/out"); err != nil {
		t.Fatalf("analyze: %v", err)
	}
	want := "mason_analysis('/data/o''brien', [], '/out')"
	if gotArgs[1] != want {
		t.Fatalf("expected %q, got %q", want, gotArgs[1])
	}
}

func TestAnalyzeRejectsEmptyPaths(t *testing.T) {
	cli := NewCLI()
	if err := cli.Analyze(context.Background(), "", nil, "/out"); err == nil {
		t.Fatal("expected error for empty dataset path")
	}
	if err := cli.Analyze(context.Background(), "/data", nil, "  "); err == nil {
		t.Fatal("expected error for empty results directory")
	}
}

func TestAnalyzeWrapsCommandFailure(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "false")
	}
	defer func() { commandContext = original }()

	cli := NewCLI()
	err := cli.Analyze(context.Background(), "/data", []int{1}, "/out")
	if err == nil {
		t.Fatal("expected failure")
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected wrapped exit error, got %v", err)
	}
}

func TestAnalyzeHonorsTimeout(t *testing.T) {
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		return exec.CommandContext(ctx, "sleep", "5")
	}
	defer func() { commandContext = original }()

	cli := NewCLI(WithTimeout(50 * time.Millisecond))
	start := time.Now()
	err := cli.Analyze(context.Background(), "/data", nil, "/out")
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("timeout did not bound the invocation, took %v", elapsed)
	}
}
