// Package results reads the per-track CSV artifacts produced by the
// analysis stage. Both the figure generator and the report assembler consume
// this format: track<N>.csv files with time,value,reversal columns.
package results

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Series holds the analysis output for one track.
type Series struct {
	Track     int
	Times     []float64
	Values    []float64
	Reversals []bool
}

// ReversalCount returns the number of samples flagged as reversals.
func (s Series) ReversalCount() int {
	count := 0
	for _, flagged := range s.Reversals {
		if flagged {
			count++
		}
	}
	return count
}

// Load reads every track<N>.csv file under resultsDir, sorted by track
// number. When tracks is non-nil, series outside the list are skipped.
// Unreadable or malformed files produce an error; an empty directory is not
// an error and yields no series.
func Load(resultsDir string, tracks []int) ([]Series, error) {
	entries, err := os.ReadDir(resultsDir)
	if err != nil {
		return nil, fmt.Errorf("read results directory: %w", err)
	}

	var wanted map[int]struct{}
	if tracks != nil {
		wanted = make(map[int]struct{}, len(tracks))
		for _, n := range tracks {
			wanted[n] = struct{}{}
		}
	}

	var series []Series
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		track, ok := trackNumber(entry.Name())
		if !ok {
			continue
		}
		if wanted != nil {
			if _, keep := wanted[track]; !keep {
				continue
			}
		}
		s, err := loadSeries(filepath.Join(resultsDir, entry.Name()), track)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	sort.Slice(series, func(i, j int) bool { return series[i].Track < series[j].Track })
	return series, nil
}

func trackNumber(name string) (int, bool) {
	if !strings.HasPrefix(name, "track") || !strings.EqualFold(filepath.Ext(name), ".csv") {
		return 0, false
	}
	digits := strings.TrimSuffix(strings.TrimPrefix(name, "track"), filepath.Ext(name))
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 {
		return 0, false
	}
	return n, true
}

func loadSeries(path string, track int) (Series, error) {
	file, err := os.Open(path)
	if err != nil {
		return Series{}, fmt.Errorf("open results file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return Series{}, fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}

	s := Series{Track: track}
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 2 {
			return Series{}, fmt.Errorf("parse %s: row %d has %d columns, want at least 2", filepath.Base(path), i+1, len(record))
		}
		timeValue, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("parse %s: row %d time: %w", filepath.Base(path), i+1, err)
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[1]), 64)
		if err != nil {
			return Series{}, fmt.Errorf("parse %s: row %d value: %w", filepath.Base(path), i+1, err)
		}
		flagged := false
		if len(record) > 2 {
			flagged = strings.TrimSpace(record[2]) == "1"
		}
		s.Times = append(s.Times, timeValue)
		s.Values = append(s.Values, value)
		s.Reversals = append(s.Reversals, flagged)
	}
	return s, nil
}

func isHeader(record []string) bool {
	if len(record) == 0 {
		return false
	}
	_, err := strconv.ParseFloat(strings.TrimSpace(record[0]), 64)
	return err != nil
}
