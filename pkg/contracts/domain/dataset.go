package domain

import (
	"fmt"
	"math"
)

// Table is an in-memory tabular dataset loaded from one or more CSV files.
// Missing cells are stored as NaN. Every row has len(Header) cells.
type Table struct {
	Source string      `json:"source"`
	Header []string    `json:"header"`
	Rows   [][]float64 `json:"rows"`
}

// Shape returns the row and column counts
func (t *Table) Shape() (rows, cols int) {
	if t == nil {
		return 0, 0
	}
	return len(t.Rows), len(t.Header)
}

// Column returns a copy of the column at position idx
func (t *Table) Column(idx int) []float64 {
	out := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = row[idx]
	}
	return out
}

// ColumnRange selects the contiguous columns [Start, End).
type ColumnRange struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Width is the number of selected columns
func (r ColumnRange) Width() int {
	return r.End - r.Start
}

// Validate checks the range against a table with cols columns.
func (r ColumnRange) Validate(cols int) error {
	if r.Start < 0 || r.End <= r.Start {
		return fmt.Errorf("column range [%d, %d) is empty or negative", r.Start, r.End)
	}
	if r.End > cols {
		return fmt.Errorf("column range [%d, %d) exceeds %d available columns", r.Start, r.End, cols)
	}
	return nil
}

func (r ColumnRange) String() string {
	return fmt.Sprintf("[%d:%d]", r.Start, r.End)
}

// FeatureMatrix holds model inputs, row-aligned with a TargetVector.
type FeatureMatrix struct {
	Columns []string    `json:"columns"`
	Rows    [][]float64 `json:"rows"`
}

// Shape returns the row and column counts
func (m *FeatureMatrix) Shape() (rows, cols int) {
	if m == nil {
		return 0, 0
	}
	return len(m.Rows), len(m.Columns)
}

// TargetVector is the prediction target column.
type TargetVector struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

// Len returns the number of values
func (v *TargetVector) Len() int {
	if v == nil {
		return 0
	}
	return len(v.Values)
}

// SplitResult is the train/test partition of a feature matrix and its target.
// The train and test subsets are disjoint and together cover every retained row.
type SplitResult struct {
	TrainFeatures FeatureMatrix `json:"train_features"`
	TestFeatures  FeatureMatrix `json:"test_features"`
	TrainTargets  TargetVector  `json:"train_targets"`
	TestTargets   TargetVector  `json:"test_targets"`
}

// MissingReport summarizes the missing-value filter applied before splitting.
type MissingReport struct {
	FeatureMissing map[string]int `json:"feature_missing"`
	TargetMissing  int            `json:"target_missing"`
	RowsBefore     int            `json:"rows_before"`
	RowsDropped    int            `json:"rows_dropped"`
}

// TotalFeatureMissing sums the missing cells over all feature columns
func (r *MissingReport) TotalFeatureMissing() int {
	total := 0
	for _, n := range r.FeatureMissing {
		total += n
	}
	return total
}

// HasMissing reports whether any feature or target cell was missing
func (r *MissingReport) HasMissing() bool {
	return r.TargetMissing > 0 || r.TotalFeatureMissing() > 0
}

// IsMissing reports whether v represents a missing cell
func IsMissing(v float64) bool {
	return math.IsNaN(v)
}
