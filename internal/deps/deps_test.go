package deps

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"mason/internal/logging"
)

func stubBinary(t *testing.T, name, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestCheckBinariesReportsAvailability(t *testing.T) {
	present := stubBinary(t, "present", "#!/bin/sh\nexit 0\n")

	statuses := CheckBinaries([]Requirement{
		{Name: "Present", Command: present, Description: "a tool"},
		{Name: "Missing", Command: "definitely-not-on-path-12345"},
		{Name: "Unset", Command: ""},
	})

	if len(statuses) != 3 {
		t.Fatalf("expected 3 statuses, got %d", len(statuses))
	}
	if !statuses[0].Available {
		t.Fatalf("expected present binary to be available: %+v", statuses[0])
	}
	if statuses[1].Available || statuses[1].Detail == "" {
		t.Fatalf("expected missing binary to carry detail: %+v", statuses[1])
	}
	if statuses[2].Available || statuses[2].Detail != "command not configured" {
		t.Fatalf("unexpected status for unset command: %+v", statuses[2])
	}
}

func TestInstallReturnsZeroOnSuccess(t *testing.T) {
	ok := stubBinary(t, "installer", "#!/bin/sh\nexit 0\n")
	code := Install(context.Background(), logging.NewNop(), []InstallStep{
		{Name: "tool", Command: ok},
	})
	if code != 0 {
		t.Fatalf("expected exit code 0, got %d", code)
	}
}

func TestInstallPropagatesInstallerExitCode(t *testing.T) {
	failing := stubBinary(t, "installer", "#!/bin/sh\nexit 3\n")
	code := Install(context.Background(), logging.NewNop(), []InstallStep{
		{Name: "tool", Command: failing},
		{Name: "never-reached", Command: failing},
	})
	if code != 3 {
		t.Fatalf("expected exit code 3, got %d", code)
	}
}

func TestInstallUsesCommandContext(t *testing.T) {
	var captured []string
	original := commandContext
	commandContext = func(ctx context.Context, name string, args ...string) *exec.Cmd {
		captured = append([]string{name}, args...)
		return exec.CommandContext(ctx, "true")
	}
	t.Cleanup(func() { commandContext = original })

	Install(context.Background(), nil, []InstallStep{
		{Name: "TinyTeX", Command: "quarto", Args: []string{"install", "tinytex", "--no-prompt"}},
	})

	want := []string{"quarto", "install", "tinytex", "--no-prompt"}
	if len(captured) != len(want) {
		t.Fatalf("expected %v, got %v", want, captured)
	}
	for i := range want {
		if captured[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, captured)
		}
	}
}
