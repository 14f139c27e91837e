package figures

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"mason/internal/logging"
	"mason/internal/results"
)

// Generator renders figure files from per-track analysis results.
type Generator struct {
	logger *slog.Logger
}

// NewGenerator constructs a figure generator.
func NewGenerator(logger *slog.Logger) *Generator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Generator{logger: logging.NewComponentLogger(logger, "figures")}
}

// Generate reads the analysis results under resultsDir and writes one PNG
// per track plus a combined overview into figuresDir. A nil track list means
// every track present in the results. Returns the number of per-track
// figures written.
func (g *Generator) Generate(ctx context.Context, resultsDir string, tracks []int, figuresDir string) (int, error) {
	series, err := results.Load(resultsDir, tracks)
	if err != nil {
		return 0, err
	}
	if len(series) == 0 {
		return 0, fmt.Errorf("no track results found in %s", resultsDir)
	}
	if err := os.MkdirAll(figuresDir, 0o755); err != nil {
		return 0, fmt.Errorf("create figures directory: %w", err)
	}

	for _, s := range series {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		path := filepath.Join(figuresDir, fmt.Sprintf("track%d.png", s.Track))
		if err := plotTrack(s, path); err != nil {
			return 0, err
		}
		g.logger.Debug("wrote track figure",
			logging.Int("track", s.Track),
			logging.String("path", path))
	}

	if err := ctx.Err(); err != nil {
		return 0, err
	}
	overview := filepath.Join(figuresDir, "overview.png")
	if err := plotOverview(series, overview); err != nil {
		return 0, err
	}
	g.logger.Info("figures generated",
		logging.Int("tracks", len(series)),
		logging.String("dir", figuresDir))
	return len(series), nil
}

func plotTrack(s results.Series, path string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Track %d reversals", s.Track)
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Signal"

	line, err := plotter.NewLine(seriesPoints(s))
	if err != nil {
		return fmt.Errorf("track %d line: %w", s.Track, err)
	}
	line.Color = trackColor(0)
	p.Add(line)

	if marks := reversalPoints(s); len(marks) > 0 {
		scatter, err := plotter.NewScatter(marks)
		if err != nil {
			return fmt.Errorf("track %d reversal markers: %w", s.Track, err)
		}
		scatter.GlyphStyle.Color = color.RGBA{R: 200, A: 255}
		scatter.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(scatter)
		p.Legend.Add("reversal", scatter)
		p.Legend.Top = true
	}

	if err := p.Save(10*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("save track %d figure: %w", s.Track, err)
	}
	return nil
}

func plotOverview(series []results.Series, path string) error {
	p := plot.New()
	p.Title.Text = "All tracks"
	p.X.Label.Text = "Time (s)"
	p.Y.Label.Text = "Signal"

	for i, s := range series {
		line, err := plotter.NewLine(seriesPoints(s))
		if err != nil {
			return fmt.Errorf("overview track %d: %w", s.Track, err)
		}
		line.Color = trackColor(i)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("track %d", s.Track), line)
	}
	p.Legend.Top = true
	p.Legend.Left = false

	if err := p.Save(12*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("save overview figure: %w", err)
	}
	return nil
}

func seriesPoints(s results.Series) plotter.XYs {
	pts := make(plotter.XYs, len(s.Times))
	for i := range s.Times {
		pts[i].X = s.Times[i]
		pts[i].Y = s.Values[i]
	}
	return pts
}

func reversalPoints(s results.Series) plotter.XYs {
	var pts plotter.XYs
	for i, flagged := range s.Reversals {
		if flagged {
			pts = append(pts, plotter.XY{X: s.Times[i], Y: s.Values[i]})
		}
	}
	return pts
}

// trackColor cycles a small palette so overview lines stay distinguishable.
func trackColor(i int) color.Color {
	palette := []color.RGBA{
		{R: 31, G: 119, B: 180, A: 255},
		{R: 255, G: 127, B: 14, A: 255},
		{R: 44, G: 160, B: 44, A: 255},
		{R: 214, G: 39, B: 40, A: 255},
		{R: 148, G: 103, B: 189, A: 255},
		{R: 140, G: 86, B: 75, A: 255},
	}
	return palette[i%len(palette)]
}
