// Package dataprocessing loads velocity CSV exports and prepares them for
// model training.
//
// # Architecture
//
// The package is organized into four components:
//
// 1. Parser: reads one CSV file with a header row into a numeric Table
// 2. Loader: aggregates many files, skipping the ones that fail, and loads
// held-out test features
// 3. Preparer: selects feature and target columns, drops rows with missing
// values and performs the seeded train/test split
// 4. Analytics: descriptive statistics, missing counts, correlation and sampling
//
// # Usage
//
//	loader := dataprocessing.NewLoader(logger)
//	result, err := loader.LoadCSVFiles(files, "data")
//	if err != nil {
//	    return err
//	}
//
//	preparer := dataprocessing.NewPreparer(logger)
//	split, report, err := preparer.PrepareTrainingData(result.Combined, dataprocessing.DefaultSplitOptions())
//
// # Missing values
//
// Empty cells, the usual NA spellings and any cell that is not a number are
// stored as NaN. The preparer drops a row when any selected feature or the
// target is NaN; the loader never drops rows.
//
// # Column selection
//
// Columns are chosen by position, not by name. The defaults pick columns
// 1..3 as features and column 6 as the target.
package dataprocessing
