package dataprocessing

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// Describe computes count, mean, sample standard deviation, min, quartiles
// and max for every column of table.
func Describe(table *domain.Table) []ColumnSummary {
	summaries := make([]ColumnSummary, len(table.Header))
	for idx, name := range table.Header {
		values := presentValues(table.Column(idx))
		summary := ColumnSummary{
			Name:    name,
			Count:   len(values),
			Missing: len(table.Rows) - len(values),
		}
		if len(values) == 0 {
			nan := math.NaN()
			summary.Mean, summary.Std, summary.Min, summary.Q25 = nan, nan, nan, nan
			summary.Median, summary.Q75, summary.Max = nan, nan, nan
			summaries[idx] = summary
			continue
		}

		sort.Float64s(values)
		summary.Mean, summary.Std = stat.MeanStdDev(values, nil)
		summary.Min = floats.Min(values)
		summary.Max = floats.Max(values)
		summary.Q25 = quantile(values, 0.25)
		summary.Median = quantile(values, 0.5)
		summary.Q75 = quantile(values, 0.75)
		summaries[idx] = summary
	}
	return summaries
}

// MissingCounts returns the number of missing cells per column, keyed by header name
func MissingCounts(table *domain.Table) map[string]int {
	counts := make(map[string]int, len(table.Header))
	for _, name := range table.Header {
		counts[name] = 0
	}
	for _, row := range table.Rows {
		for j, v := range row {
			if domain.IsMissing(v) {
				counts[table.Header[j]]++
			}
		}
	}
	return counts
}

// CorrelationMatrix computes Pearson coefficients between all columns of
// table, using only rows that have no missing cell.
func CorrelationMatrix(table *domain.Table) (*Correlation, error) {
	complete := make([]float64, 0, len(table.Rows)*len(table.Header))
	n := 0
	for _, row := range table.Rows {
		if rowHasMissing(row) {
			continue
		}
		complete = append(complete, row...)
		n++
	}
	if n < 2 {
		return nil, apperrors.NewDataError(
			fmt.Sprintf("correlation needs at least 2 complete rows, %s has %d", table.Source, n),
			apperrors.ErrNoValidRows)
	}

	cols := len(table.Header)
	x := mat.NewDense(n, cols, complete)
	var corr mat.SymDense
	stat.CorrelationMatrix(&corr, x, nil)

	result := &Correlation{
		Columns: append([]string(nil), table.Header...),
		Values:  make([][]float64, cols),
		Rows:    n,
	}
	for i := 0; i < cols; i++ {
		result.Values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			result.Values[i][j] = corr.At(i, j)
		}
	}
	return result, nil
}

// Sample returns n rows of table drawn without replacement by a generator
// seeded with seed. When n is at least the row count every row is returned
// in shuffled order.
func Sample(table *domain.Table, n int, seed int64) *domain.Table {
	if n > len(table.Rows) {
		n = len(table.Rows)
	}
	if n < 0 {
		n = 0
	}
	perm := rand.New(rand.NewSource(seed)).Perm(len(table.Rows))

	sample := &domain.Table{
		Source: table.Source,
		Header: append([]string(nil), table.Header...),
		Rows:   make([][]float64, 0, n),
	}
	for _, idx := range perm[:n] {
		sample.Rows = append(sample.Rows, table.Rows[idx])
	}
	return sample
}

// quantile linearly interpolates between the closest ranks of sorted at
// position p*(len-1).
func quantile(sorted []float64, p float64) float64 {
	pos := p * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	if lo+1 >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	frac := pos - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

func presentValues(values []float64) []float64 {
	out := make([]float64, 0, len(values))
	for _, v := range values {
		if !domain.IsMissing(v) {
			out = append(out, v)
		}
	}
	return out
}
