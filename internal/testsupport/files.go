package testsupport

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// WriteExperimentFile creates an empty experiment data file and returns its path.
func WriteExperimentFile(t testing.TB, dir, name string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// WriteTracksDir creates a tracks directory holding track<N>.mat files for
// the given identifiers and returns its path.
func WriteTracksDir(t testing.TB, parent, name string, trackIDs []int) string {
	t.Helper()
	dir := filepath.Join(parent, name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	for _, id := range trackIDs {
		path := filepath.Join(dir, "track"+strconv.Itoa(id)+".mat")
		if err := os.WriteFile(path, []byte("stub"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return dir
}

// WriteExperimentSet builds <root>/matfiles with one experiment file and a
// tracks directory holding the given track identifiers. Returns root.
func WriteExperimentSet(t testing.TB, root string, trackIDs []int) string {
	t.Helper()
	matfiles := filepath.Join(root, "matfiles")
	WriteExperimentFile(t, matfiles, "experiment.mat")
	WriteTracksDir(t, matfiles, "experiment_tracks", trackIDs)
	return root
}

// WriteTrackResults writes a track<N>.csv analysis result file containing
// the given values. Reversal flags may be nil or match values in length.
func WriteTrackResults(t testing.TB, resultsDir string, track int, values []float64, reversals []bool) string {
	t.Helper()
	if err := os.MkdirAll(resultsDir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", resultsDir, err)
	}

	var b strings.Builder
	b.WriteString("time,value,reversal\n")
	for i, value := range values {
		flag := 0
		if reversals != nil && reversals[i] {
			flag = 1
		}
		fmt.Fprintf(&b, "%d,%g,%d\n", i, value, flag)
	}

	path := filepath.Join(resultsDir, "track"+strconv.Itoa(track)+".csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
