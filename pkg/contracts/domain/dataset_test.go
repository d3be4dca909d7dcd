package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColumnRange_Validate(t *testing.T) {
	tests := []struct {
		name    string
		r       ColumnRange
		cols    int
		wantErr bool
	}{
		{"xyz in seven columns", ColumnRange{Start: 1, End: 4}, 7, false},
		{"range touches last column", ColumnRange{Start: 4, End: 7}, 7, false},
		{"range past end", ColumnRange{Start: 5, End: 8}, 7, true},
		{"empty range", ColumnRange{Start: 2, End: 2}, 7, true},
		{"reversed range", ColumnRange{Start: 3, End: 1}, 7, true},
		{"negative start", ColumnRange{Start: -1, End: 2}, 7, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate(tt.cols)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTable_ShapeAndColumn(t *testing.T) {
	table := &Table{
		Header: []string{"id", "x"},
		Rows:   [][]float64{{0, 1.5}, {1, math.NaN()}},
	}

	rows, cols := table.Shape()
	assert.Equal(t, 2, rows)
	assert.Equal(t, 2, cols)

	col := table.Column(1)
	assert.Equal(t, 1.5, col[0])
	assert.True(t, IsMissing(col[1]))

	var nilTable *Table
	rows, cols = nilTable.Shape()
	assert.Zero(t, rows)
	assert.Zero(t, cols)
}

func TestMissingReport(t *testing.T) {
	report := &MissingReport{FeatureMissing: map[string]int{"x": 0, "y": 0}}
	assert.False(t, report.HasMissing())

	report.FeatureMissing["y"] = 2
	report.TargetMissing = 1
	assert.True(t, report.HasMissing())
	assert.Equal(t, 2, report.TotalFeatureMissing())
}
