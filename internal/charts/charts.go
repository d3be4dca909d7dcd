package charts

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Chart dimensions
const (
	Width  = 8 * vg.Inch
	Height = 5 * vg.Inch
)

// Series is a named set of values, typically the target column of one file
type Series struct {
	Name   string
	Values []float64
}

// histogramDensityPoints is the grid size of the curve drawn over a histogram
const histogramDensityPoints = 200

// VelocityHistogram saves a histogram of values with the given bin count and
// a kernel density curve scaled to bin counts.
func VelocityHistogram(values []float64, bins int, path string) error {
	values = present(values)
	if len(values) == 0 {
		return emptyError(path)
	}

	p := plot.New()
	p.Title.Text = "Distribution of Velocity Values"
	p.X.Label.Text = "Velocity"
	p.Y.Label.Text = "Frequency"

	h, err := plotter.NewHist(plotter.Values(values), bins)
	if err != nil {
		return renderError(path, err)
	}
	h.FillColor = plotutil.Color(0)
	p.Add(h)

	if curve := countDensity(values, h.Width, histogramDensityPoints); len(curve) > 0 {
		l, err := plotter.NewLine(curve)
		if err != nil {
			return renderError(path, err)
		}
		l.LineStyle.Color = plotutil.Color(1)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	return save(p, path)
}

// FeatureScatter saves one scatter plot per feature column against the target,
// named <feature>_vs_<target>.png inside dir, and returns the written paths.
func FeatureScatter(features *domain.FeatureMatrix, target *domain.TargetVector, dir string) ([]string, error) {
	written := make([]string, 0, len(features.Columns))
	for j, name := range features.Columns {
		pts := make(plotter.XYs, 0, len(features.Rows))
		for i, row := range features.Rows {
			x, y := row[j], target.Values[i]
			if !plottable(x) || !plottable(y) {
				continue
			}
			pts = append(pts, plotter.XY{X: x, Y: y})
		}

		path := filepath.Join(dir, fileName(name+"_vs_"+target.Name))
		if len(pts) == 0 {
			return written, emptyError(path)
		}

		p := plot.New()
		p.Title.Text = fmt.Sprintf("%s vs. %s", name, target.Name)
		p.X.Label.Text = name
		p.Y.Label.Text = target.Name

		s, err := plotter.NewScatter(pts)
		if err != nil {
			return written, renderError(path, err)
		}
		s.GlyphStyle.Radius = vg.Points(1.5)
		s.GlyphStyle.Color = plotutil.Color(j)
		p.Add(s)

		if err := save(p, path); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// SpatialProjection saves an x/y scatter of the first two feature columns
// with each point colored by its target value.
func SpatialProjection(features *domain.FeatureMatrix, target *domain.TargetVector, path string) error {
	if len(features.Columns) < 2 {
		return apperrors.NewValidationError(
			fmt.Sprintf("spatial projection needs two feature columns, got %d", len(features.Columns)), nil)
	}

	pts := make(plotter.XYs, 0, len(features.Rows))
	colors := make([]float64, 0, len(features.Rows))
	for i, row := range features.Rows {
		x, y, v := row[0], row[1], target.Values[i]
		if !plottable(x) || !plottable(y) || !plottable(v) {
			continue
		}
		pts = append(pts, plotter.XY{X: x, Y: y})
		colors = append(colors, v)
	}
	if len(pts) == 0 {
		return emptyError(path)
	}

	lo, hi := bounds(colors)
	cm := moreland.SmoothBlueRed()
	cm.SetMin(lo)
	cm.SetMax(hi)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s colored by %s", strings.Join(features.Columns[:2], " / "), target.Name)
	p.X.Label.Text = features.Columns[0]
	p.Y.Label.Text = features.Columns[1]

	s, err := plotter.NewScatter(pts)
	if err != nil {
		return renderError(path, err)
	}
	s.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		style := draw.GlyphStyle{Shape: draw.CircleGlyph{}, Radius: vg.Points(2)}
		c, err := cm.At(colors[i])
		if err != nil {
			c = plotutil.Color(0)
		}
		style.Color = c
		return style
	}
	p.Add(s)

	return save(p, path)
}

// FileDistributions overlays the estimated density of each series as a line
func FileDistributions(series []Series, points int, path string) error {
	p := plot.New()
	p.Title.Text = "Velocity Distribution by File"
	p.X.Label.Text = "Velocity"
	p.Y.Label.Text = "Density"

	drawn := 0
	for i, s := range series {
		curve := Density(s.Values, points)
		if len(curve) == 0 {
			continue
		}
		l, err := plotter.NewLine(curve)
		if err != nil {
			return renderError(path, err)
		}
		l.LineStyle.Color = plotutil.Color(i)
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
		p.Legend.Add(s.Name, l)
		drawn++
	}
	if drawn == 0 {
		return emptyError(path)
	}
	p.Legend.Top = true

	return save(p, path)
}

func save(p *plot.Plot, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return renderError(path, err)
	}
	if err := p.Save(Width, Height, path); err != nil {
		return renderError(path, err)
	}
	return nil
}

func renderError(path string, err error) error {
	return apperrors.NewStorageError(fmt.Sprintf("failed to render chart %s", path), err).
		WithContext("file", path)
}

func emptyError(path string) error {
	return apperrors.NewDataError(fmt.Sprintf("no values to plot in %s", path), apperrors.ErrNoValidRows)
}

// fileName turns a column label into a safe PNG file name
func fileName(label string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(label) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String() + ".png"
}

// plottable reports whether v can be placed on an axis. Parsed cells may
// hold ±Inf, which gonum/plot rejects.
func plottable(v float64) bool {
	return !domain.IsMissing(v) && !math.IsInf(v, 0)
}

func present(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if plottable(v) {
			out = append(out, v)
		}
	}
	return out
}

// bounds returns the range of the plottable values, widened to one unit
// when they are all equal. With no plottable values it returns 0, 1.
func bounds(values []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, v := range values {
		if !plottable(v) {
			continue
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo > hi {
		return 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	return lo, hi
}
