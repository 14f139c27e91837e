package dataset_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mason/internal/dataset"
	"mason/internal/testsupport"
)

func TestClassifyMissingPathIsUnknown(t *testing.T) {
	root := dataset.Classify(filepath.Join(t.TempDir(), "does-not-exist"))
	if root.Kind != dataset.KindUnknown {
		t.Fatalf("expected unknown, got %q", root.Kind)
	}
	if len(root.AvailableTracks) != 0 {
		t.Fatalf("unknown root must have no tracks, got %v", root.AvailableTracks)
	}
}

func TestClassifyExperimentFileWithTracks(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteExperimentFile(t, dir, "session.mat")
	testsupport.WriteTracksDir(t, dir, "session_reversaltracks", []int{3, 1, 2})

	root := dataset.Classify(path)
	if root.Kind != dataset.KindExperiment {
		t.Fatalf("expected experiment, got %q", root.Kind)
	}
	if root.Path != path {
		t.Fatalf("expected root path %q, got %q", path, root.Path)
	}
	if !reflect.DeepEqual(root.AvailableTracks, []int{1, 2, 3}) {
		t.Fatalf("expected sorted tracks [1 2 3], got %v", root.AvailableTracks)
	}
}

func TestClassifyExperimentFileWithoutTracksDir(t *testing.T) {
	dir := t.TempDir()
	path := testsupport.WriteExperimentFile(t, dir, "session.mat")
	// A sibling directory without the underscore pattern must be ignored.
	testsupport.WriteTracksDir(t, dir, "tracks", []int{1})

	root := dataset.Classify(path)
	if root.Kind != dataset.KindExperiment {
		t.Fatalf("expected experiment, got %q", root.Kind)
	}
	if len(root.AvailableTracks) != 0 {
		t.Fatalf("expected no tracks, got %v", root.AvailableTracks)
	}
}

func TestClassifyExperimentSet(t *testing.T) {
	root := testsupport.WriteExperimentSet(t, t.TempDir(), []int{1, 2, 3, 4, 5})

	got := dataset.Classify(root)
	if got.Kind != dataset.KindExperimentSet {
		t.Fatalf("expected eset, got %q", got.Kind)
	}
	if got.Path != root {
		t.Fatalf("expected root %q, got %q", root, got.Path)
	}
	if !reflect.DeepEqual(got.AvailableTracks, []int{1, 2, 3, 4, 5}) {
		t.Fatalf("expected tracks [1 2 3 4 5], got %v", got.AvailableTracks)
	}
}

func TestClassifyExperimentSetPicksFirstTracksDirDeterministically(t *testing.T) {
	root := t.TempDir()
	matfiles := filepath.Join(root, "matfiles")
	testsupport.WriteExperimentFile(t, matfiles, "a.mat")
	testsupport.WriteTracksDir(t, matfiles, "b_tracks", []int{9})
	testsupport.WriteTracksDir(t, matfiles, "a_tracks", []int{1, 2})

	got := dataset.Classify(root)
	if !reflect.DeepEqual(got.AvailableTracks, []int{1, 2}) {
		t.Fatalf("expected tracks from lexicographically first dir, got %v", got.AvailableTracks)
	}
}

func TestClassifyEmptyTracksDirYieldsEmptySet(t *testing.T) {
	root := t.TempDir()
	matfiles := filepath.Join(root, "matfiles")
	testsupport.WriteExperimentFile(t, matfiles, "a.mat")
	testsupport.WriteTracksDir(t, matfiles, "empty_tracks", nil)

	got := dataset.Classify(root)
	if got.Kind != dataset.KindExperimentSet {
		t.Fatalf("expected eset, got %q", got.Kind)
	}
	if len(got.AvailableTracks) != 0 {
		t.Fatalf("expected empty track set, got %v", got.AvailableTracks)
	}
}

func TestClassifySkipsMalformedTrackFilenames(t *testing.T) {
	root := t.TempDir()
	matfiles := filepath.Join(root, "matfiles")
	testsupport.WriteExperimentFile(t, matfiles, "a.mat")
	tracksDir := testsupport.WriteTracksDir(t, matfiles, "a_tracks", []int{2, 4})
	for _, name := range []string{"track2b.mat", "track.mat", "track0.mat", "trackless.mat"} {
		if err := os.WriteFile(filepath.Join(tracksDir, name), []byte("stub"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	got := dataset.Classify(root)
	if !reflect.DeepEqual(got.AvailableTracks, []int{2, 4}) {
		t.Fatalf("expected malformed names skipped, got %v", got.AvailableTracks)
	}
}

func TestClassifyMatfilesWithoutExperimentsFallsThrough(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "matfiles"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := dataset.Classify(root)
	if got.Kind != dataset.KindUnknown {
		t.Fatalf("expected fall-through to unknown, got %q", got.Kind)
	}
}

func TestClassifyCollection(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteExperimentSet(t, filepath.Join(root, "set-a"), []int{1})
	testsupport.WriteExperimentSet(t, filepath.Join(root, "set-b"), []int{2})

	got := dataset.Classify(root)
	if got.Kind != dataset.KindCollection {
		t.Fatalf("expected collection, got %q", got.Kind)
	}
	if len(got.AvailableTracks) != 0 {
		t.Fatalf("collection must have no tracks, got %v", got.AvailableTracks)
	}
}

func TestClassifySingleSubSetIsNotCollection(t *testing.T) {
	root := t.TempDir()
	testsupport.WriteExperimentSet(t, filepath.Join(root, "only"), []int{1})

	got := dataset.Classify(root)
	if got.Kind != dataset.KindUnknown {
		t.Fatalf("one experiment-set subdirectory is ambiguous, expected unknown, got %q", got.Kind)
	}
}

func TestClassifyBareMatfilesRerootsToParent(t *testing.T) {
	parent := t.TempDir()
	matfiles := filepath.Join(parent, "matfiles")
	if err := os.MkdirAll(matfiles, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	got := dataset.Classify(matfiles)
	if got.Kind != dataset.KindExperimentSet {
		t.Fatalf("expected eset, got %q", got.Kind)
	}
	if got.Path != parent {
		t.Fatalf("expected reroot at %q, got %q", parent, got.Path)
	}
	if len(got.AvailableTracks) != 0 {
		t.Fatalf("bare matfiles root must have no tracks, got %v", got.AvailableTracks)
	}
}

func TestClassifyPlainDirectoryIsUnknown(t *testing.T) {
	got := dataset.Classify(t.TempDir())
	if got.Kind != dataset.KindUnknown {
		t.Fatalf("expected unknown, got %q", got.Kind)
	}
}
