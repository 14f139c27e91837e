package tracksel

import (
	"sort"
	"strconv"
	"strings"
)

// Selection is the outcome of parsing a track-selection expression.
//
// Either All is set, or Tracks holds a sorted, duplicate-free list of the
// selected identifiers (possibly empty). Rejected lists the tokens that
// contributed nothing because they could not be interpreted; an inverted
// range like "3-1" parses cleanly but contributes no tracks and is not
// recorded as rejected.
type Selection struct {
	All      bool
	Tracks   []int
	Rejected []string
}

// Parse interprets expression and, when available is non-empty, filters the
// result down to the identifiers in available. Parse never fails; malformed
// input degrades to an empty selection.
func Parse(expression string, available []int) Selection {
	normalized := strings.ToLower(strings.TrimSpace(expression))
	if normalized == "all" {
		return Selection{All: true}
	}
	normalized = strings.ReplaceAll(normalized, " ", "")

	seen := make(map[int]struct{})
	var rejected []string
	for _, token := range strings.Split(normalized, ",") {
		if !expandToken(token, seen) {
			rejected = append(rejected, token)
		}
	}

	tracks := make([]int, 0, len(seen))
	for n := range seen {
		tracks = append(tracks, n)
	}
	sort.Ints(tracks)

	if len(available) > 0 {
		allowed := make(map[int]struct{}, len(available))
		for _, n := range available {
			allowed[n] = struct{}{}
		}
		filtered := tracks[:0]
		for _, n := range tracks {
			if _, ok := allowed[n]; ok {
				filtered = append(filtered, n)
			}
		}
		tracks = filtered
	}

	return Selection{Tracks: tracks, Rejected: rejected}
}

// expandToken adds the integers a token denotes to seen and reports whether
// the token was well formed. A range with start > end is well formed but
// contributes nothing.
func expandToken(token string, seen map[int]struct{}) bool {
	if token == "" {
		return false
	}
	if i := strings.IndexByte(token, '-'); i >= 0 {
		start, okStart := parseUint(token[:i])
		end, okEnd := parseUint(token[i+1:])
		if !okStart || !okEnd {
			return false
		}
		for n := start; n <= end; n++ {
			seen[n] = struct{}{}
		}
		return true
	}
	n, ok := parseUint(token)
	if !ok {
		return false
	}
	seen[n] = struct{}{}
	return true
}

func parseUint(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Expand applies the fallback policy and returns the concrete track list to
// hand to the analysis stage:
//
//   - an All selection expands to available verbatim, or to nil ("no
//     restriction") when availability is unknown;
//   - a non-empty concrete selection is returned as is;
//   - an empty concrete selection substitutes all available tracks, or nil
//     when availability is unknown, deferring to the downstream stage.
func Expand(sel Selection, available []int) []int {
	if sel.All || len(sel.Tracks) == 0 {
		if len(available) == 0 {
			return nil
		}
		return append([]int(nil), available...)
	}
	return append([]int(nil), sel.Tracks...)
}

// Describe renders a selection for logs and run records.
func Describe(sel Selection, available []int) string {
	tracks := Expand(sel, available)
	if tracks == nil {
		return "all"
	}
	parts := make([]string, len(tracks))
	for i, n := range tracks {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
