package dataset

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Kind identifies the shape of a dataset root.
type Kind string

const (
	// KindExperiment is a single analysis data file for one recording session.
	KindExperiment Kind = "experiment"
	// KindExperimentSet is a directory of experiment files sharing a
	// matfiles/ store plus per-track derived files.
	KindExperimentSet Kind = "eset"
	// KindCollection is a directory containing multiple experiment sets.
	KindCollection Kind = "collection"
	// KindUnknown marks a path no rule matched.
	KindUnknown Kind = "unknown"
)

// experimentExt marks single-experiment analysis files.
const experimentExt = ".mat"

// matfilesDirName is the literal store directory name inside an experiment set.
const matfilesDirName = "matfiles"

// Root is a resolved, classified dataset location.
//
// AvailableTracks is sorted ascending and duplicate-free; it is empty for
// KindCollection and KindUnknown roots.
type Root struct {
	Kind            Kind
	Path            string
	AvailableTracks []int
}

// rule pairs a name with a classification predicate. Rules are evaluated in
// order; the first one that claims the path produces the Root.
type rule struct {
	name  string
	apply func(path string, info fs.FileInfo) (Root, bool)
}

var rules = []rule{
	{name: "experiment-file", apply: classifyExperimentFile},
	{name: "experiment-set", apply: classifyExperimentSet},
	{name: "collection", apply: classifyCollection},
	{name: "bare-matfiles", apply: classifyBareMatfiles},
}

// Classify resolves path and determines its dataset kind. It only reads the
// filesystem and never fails: missing or unmatched paths come back as
// KindUnknown with no available tracks.
func Classify(path string) Root {
	resolved := path
	if abs, err := filepath.Abs(filepath.Clean(path)); err == nil {
		resolved = abs
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return Root{Kind: KindUnknown, Path: resolved}
	}

	for _, r := range rules {
		if root, ok := r.apply(resolved, info); ok {
			return root
		}
	}
	return Root{Kind: KindUnknown, Path: resolved}
}

// classifyExperimentFile matches a regular file with the experiment
// extension. Tracks come from a sibling directory named <x>_<y>tracks.
func classifyExperimentFile(path string, info fs.FileInfo) (Root, bool) {
	if !info.Mode().IsRegular() || !strings.EqualFold(filepath.Ext(path), experimentExt) {
		return Root{}, false
	}

	tracks := []int(nil)
	if dir := findTracksDir(filepath.Dir(path), true); dir != "" {
		tracks = listTrackNumbers(dir)
	}
	return Root{Kind: KindExperiment, Path: path, AvailableTracks: tracks}, true
}

// classifyExperimentSet matches a directory whose matfiles/ store holds at
// least one experiment file. A matfiles/ directory without experiment files
// falls through to the later rules.
func classifyExperimentSet(path string, info fs.FileInfo) (Root, bool) {
	if !info.IsDir() {
		return Root{}, false
	}
	matfiles := filepath.Join(path, matfilesDirName)
	if !hasExperimentFiles(matfiles) {
		return Root{}, false
	}

	tracks := []int(nil)
	if dir := findTracksDir(matfiles, false); dir != "" {
		tracks = listTrackNumbers(dir)
	}
	return Root{Kind: KindExperimentSet, Path: path, AvailableTracks: tracks}, true
}

// classifyCollection matches a directory with more than one immediate
// subdirectory owning a matfiles/ store. Exactly one such subdirectory is
// ambiguous and does not match.
func classifyCollection(path string, info fs.FileInfo) (Root, bool) {
	if !info.IsDir() {
		return Root{}, false
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return Root{}, false
	}
	sets := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		store := filepath.Join(path, entry.Name(), matfilesDirName)
		if fi, err := os.Stat(store); err == nil && fi.IsDir() {
			sets++
			if sets > 1 {
				return Root{Kind: KindCollection, Path: path}, true
			}
		}
	}
	return Root{}, false
}

// classifyBareMatfiles matches a directory literally named matfiles and
// reroots the experiment set at its parent.
func classifyBareMatfiles(path string, info fs.FileInfo) (Root, bool) {
	if !info.IsDir() || filepath.Base(path) != matfilesDirName {
		return Root{}, false
	}
	return Root{Kind: KindExperimentSet, Path: filepath.Dir(path)}, true
}

func hasExperimentFiles(dir string) bool {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return false
	}
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.EqualFold(filepath.Ext(entry.Name()), experimentExt) {
			return true
		}
	}
	return false
}

// findTracksDir returns the first (lexicographic) subdirectory of dir whose
// name ends in "tracks". When requireUnderscore is set the name must also
// contain an underscore before the suffix, matching the <x>_<y>tracks layout
// next to a standalone experiment file.
func findTracksDir(dir string, requireUnderscore bool) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasSuffix(name, "tracks") {
			continue
		}
		if requireUnderscore && !strings.Contains(strings.TrimSuffix(name, "tracks"), "_") {
			continue
		}
		candidates = append(candidates, name)
	}
	if len(candidates) == 0 {
		return ""
	}
	sort.Strings(candidates)
	return filepath.Join(dir, candidates[0])
}

// listTrackNumbers enumerates track<N>.mat files and collects N sorted
// ascending. Files whose suffix is not a positive integer are skipped.
func listTrackNumbers(dir string) []int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil
	}

	seen := make(map[int]struct{})
	var tracks []int
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, "track") || !strings.EqualFold(filepath.Ext(name), experimentExt) {
			continue
		}
		digits := strings.TrimSuffix(strings.TrimPrefix(name, "track"), filepath.Ext(name))
		n, err := strconv.Atoi(digits)
		if err != nil || n < 1 {
			continue
		}
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		tracks = append(tracks, n)
	}
	sort.Ints(tracks)
	return tracks
}
