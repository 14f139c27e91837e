package report

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gonum.org/v1/gonum/stat"

	"mason/internal/logging"
	"mason/internal/results"
)

//go:embed template.qmd
var reportTemplate string

// Assembler builds the report source document from analysis results and
// generated figures.
type Assembler struct {
	title  string
	author string
	logger *slog.Logger
}

// NewAssembler constructs an assembler. Empty title or author fall back to
// sensible defaults.
func NewAssembler(title, author string, logger *slog.Logger) *Assembler {
	if title == "" {
		title = "mason reversal analysis"
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Assembler{
		title:  cases.Title(language.English).String(title),
		author: author,
		logger: logging.NewComponentLogger(logger, "report"),
	}
}

type trackSummary struct {
	Track      int
	Samples    int
	Mean       string
	StdDev     string
	Reversals  int
	FigurePath string
}

type reportData struct {
	Title     string
	Author    string
	Generated string
	InputPath string
	Tracks    []trackSummary
	Overview  string
}

// Assemble writes analysis_report.qmd under outputRoot and returns its
// path. Figures are referenced relative to outputRoot so the document
// renders in place.
func (a *Assembler) Assemble(ctx context.Context, inputPath, resultsDir, figuresDir, outputRoot string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	series, err := results.Load(resultsDir, nil)
	if err != nil {
		return "", err
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no track results found in %s", resultsDir)
	}

	data := reportData{
		Title:     a.title,
		Author:    a.author,
		Generated: time.Now().Format("2006-01-02 15:04:05"),
		InputPath: inputPath,
	}
	for _, s := range series {
		data.Tracks = append(data.Tracks, summarize(s, figuresDir, outputRoot))
	}
	sort.Slice(data.Tracks, func(i, j int) bool { return data.Tracks[i].Track < data.Tracks[j].Track })
	if overview := filepath.Join(figuresDir, "overview.png"); fileExists(overview) {
		data.Overview = relativeTo(outputRoot, overview)
	}

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return "", fmt.Errorf("parse report template: %w", err)
	}
	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render report template: %w", err)
	}

	path := filepath.Join(outputRoot, "analysis_report.qmd")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report source: %w", err)
	}
	a.logger.Info("report source assembled",
		logging.String("path", path),
		logging.Int("tracks", len(data.Tracks)))
	return path, nil
}

func summarize(s results.Series, figuresDir, outputRoot string) trackSummary {
	summary := trackSummary{
		Track:     s.Track,
		Samples:   len(s.Values),
		Reversals: s.ReversalCount(),
		Mean:      "n/a",
		StdDev:    "n/a",
	}
	if len(s.Values) > 0 {
		summary.Mean = fmt.Sprintf("%.4f", stat.Mean(s.Values, nil))
	}
	if len(s.Values) > 1 {
		summary.StdDev = fmt.Sprintf("%.4f", stat.StdDev(s.Values, nil))
	}
	figure := filepath.Join(figuresDir, fmt.Sprintf("track%d.png", s.Track))
	if fileExists(figure) {
		summary.FigurePath = relativeTo(outputRoot, figure)
	}
	return summary
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// relativeTo prefers a path relative to the report location so the rendered
// document stays portable; absolute is the fallback.
func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return filepath.ToSlash(rel)
}
