package dataprocessing

import (
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// MissingValueFilter removes rows that have a missing feature or target value
type MissingValueFilter struct{}

// NewMissingValueFilter creates a new missing-value filter
func NewMissingValueFilter() *MissingValueFilter {
	return &MissingValueFilter{}
}

// Count tallies missing cells per feature column and in the target.
// features and target must be row-aligned.
func (f *MissingValueFilter) Count(features *domain.FeatureMatrix, target *domain.TargetVector) *domain.MissingReport {
	report := &domain.MissingReport{
		FeatureMissing: make(map[string]int, len(features.Columns)),
		RowsBefore:     len(features.Rows),
	}
	for _, name := range features.Columns {
		report.FeatureMissing[name] = 0
	}

	for i, row := range features.Rows {
		for j, v := range row {
			if domain.IsMissing(v) {
				report.FeatureMissing[features.Columns[j]]++
			}
		}
		if domain.IsMissing(target.Values[i]) {
			report.TargetMissing++
		}
	}
	return report
}

// Drop returns copies of features and target without any row that has a
// missing value in either. Row order is preserved.
func (f *MissingValueFilter) Drop(features *domain.FeatureMatrix, target *domain.TargetVector) (*domain.FeatureMatrix, *domain.TargetVector, *domain.MissingReport) {
	report := f.Count(features, target)

	keptFeatures := &domain.FeatureMatrix{
		Columns: append([]string(nil), features.Columns...),
		Rows:    make([][]float64, 0, len(features.Rows)),
	}
	keptTarget := &domain.TargetVector{
		Name:   target.Name,
		Values: make([]float64, 0, len(target.Values)),
	}

	for i, row := range features.Rows {
		if rowHasMissing(row) || domain.IsMissing(target.Values[i]) {
			report.RowsDropped++
			continue
		}
		keptFeatures.Rows = append(keptFeatures.Rows, row)
		keptTarget.Values = append(keptTarget.Values, target.Values[i])
	}

	return keptFeatures, keptTarget, report
}

func rowHasMissing(row []float64) bool {
	for _, v := range row {
		if domain.IsMissing(v) {
			return true
		}
	}
	return false
}
