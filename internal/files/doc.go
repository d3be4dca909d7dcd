// Package files discovers input CSV files on disk.
//
// Discovery lists CSV files in a data directory in natural name order, and
// Reconcile compares such a listing with a configured file list, reporting
// configured files that are missing and files on disk that nobody listed.
//
// Example usage:
//
//	discovery := files.NewDiscovery(paths.BaseDir)
//	found, err := discovery.FindCSVFiles(paths.DataDir)
//	inv := files.Reconcile(cfg.Data.TrainingFiles, found)
package files
