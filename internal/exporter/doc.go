// Package exporter writes prepared datasets to disk.
//
// This package contains three main components:
//
// CSVWriter: streams rows into a temporary file and renames it into place on
// Close, so readers never see a half-written dataset.
//
// SplitWriter: Writes a train/test split as X_train.csv, X_test.csv, y_train.csv
// and y_test.csv, one goroutine per file, plus standalone feature matrices.
//
// WorkbookWriter: Writes the same four subsets as sheets of one XLSX workbook.
//
// Floats are written in their shortest round-trip form and missing values as
// empty cells.
//
// Example usage:
//
//	writer := exporter.NewSplitWriter(paths, logger)
//	files, err := writer.WriteSplit(ctx, "", split)
//
//	workbook := exporter.NewWorkbookWriter(paths, logger)
//	path, err := workbook.WriteSplit("split.xlsx", split)
package exporter
