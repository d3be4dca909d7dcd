package charts

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot/plotter"
)

// Density estimates a Gaussian kernel density of values on an evenly spaced
// grid of points spanning three bandwidths past the data range. The bandwidth
// follows Scott's rule. Missing values are ignored; fewer than two distinct
// values yield no curve.
func Density(values []float64, points int) plotter.XYs {
	values = present(values)
	if len(values) < 2 || points < 2 {
		return nil
	}

	sd := stat.StdDev(values, nil)
	if sd == 0 || math.IsNaN(sd) {
		return nil
	}
	bandwidth := sd * math.Pow(float64(len(values)), -0.2)

	lo := floats.Min(values) - 3*bandwidth
	hi := floats.Max(values) + 3*bandwidth
	grid := make([]float64, points)
	floats.Span(grid, lo, hi)

	kernel := distuv.Normal{Mu: 0, Sigma: bandwidth}
	curve := make(plotter.XYs, points)
	n := float64(len(values))
	for i, x := range grid {
		var sum float64
		for _, v := range values {
			sum += kernel.Prob(x - v)
		}
		curve[i] = plotter.XY{X: x, Y: sum / n}
	}
	return curve
}

// countDensity is Density rescaled from probability to expected count per
// bin of width binWidth, so it can be drawn over a histogram of values.
func countDensity(values []float64, binWidth float64, points int) plotter.XYs {
	curve := Density(values, points)
	scale := float64(len(present(values))) * binWidth
	for i := range curve {
		curve[i].Y *= scale
	}
	return curve
}
