package dataprocessing

import (
	"fmt"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

// FileResult records the outcome of loading one input file
type FileResult struct {
	Name    string
	Path    string
	Rows    int
	Columns int
	Err     error
}

// Loaded reports whether the file contributed rows to the combined table
func (r FileResult) Loaded() bool {
	return r.Err == nil
}

// LoadResult is the output of the file aggregator
type LoadResult struct {
	// Combined holds the rows of every loaded file in input-list order
	Combined *domain.Table
	// Files has one entry per requested file, in input-list order
	Files []FileResult
}

// LoadedCount returns how many files were parsed successfully
func (r *LoadResult) LoadedCount() int {
	n := 0
	for _, f := range r.Files {
		if f.Loaded() {
			n++
		}
	}
	return n
}

// FailedCount returns how many files were skipped
func (r *LoadResult) FailedCount() int {
	return len(r.Files) - r.LoadedCount()
}

// PerFile splits the combined table back into one table per loaded file,
// in input-list order. The returned tables share rows with Combined.
func (r *LoadResult) PerFile() []*domain.Table {
	if r.Combined == nil {
		return nil
	}

	tables := make([]*domain.Table, 0, r.LoadedCount())
	offset := 0
	for _, f := range r.Files {
		if !f.Loaded() {
			continue
		}
		tables = append(tables, &domain.Table{
			Source: f.Name,
			Header: r.Combined.Header,
			Rows:   r.Combined.Rows[offset : offset+f.Rows],
		})
		offset += f.Rows
	}
	return tables
}

// SplitOptions configures feature/target extraction and the train/test split
type SplitOptions struct {
	// Features selects the contiguous feature columns [Start, End)
	Features domain.ColumnRange
	// Target is the position of the target column
	Target int
	// TestSize is the fraction of rows assigned to the test subset, in (0, 1)
	TestSize float64
	// RandomState seeds the shuffle
	RandomState int64
}

// DefaultSplitOptions returns x, y, z at 1..3, velocity at 6, 20% test, seed 42
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		Features:    domain.ColumnRange{Start: 1, End: 4},
		Target:      6,
		TestSize:    0.2,
		RandomState: 42,
	}
}

// Validate checks the options that do not depend on the table
func (o SplitOptions) Validate() error {
	if !(o.TestSize > 0 && o.TestSize < 1) {
		return apperrors.NewValidationError(fmt.Sprintf("test size %v", o.TestSize), apperrors.ErrInvalidTestSize)
	}
	if o.Target >= o.Features.Start && o.Target < o.Features.End {
		return apperrors.NewValidationError(
			fmt.Sprintf("target column %d overlaps feature columns %s", o.Target, o.Features), nil)
	}
	return nil
}
