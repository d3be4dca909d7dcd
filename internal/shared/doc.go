// Package shared holds helpers used across packages that do not belong to
// any single component.
//
// The testutil subpackage provides:
//
//	- a slog handler that captures records for assertions on diagnostics
//	- CSV fixture writers producing simulation-shaped input files
//
// Example usage:
//
//	func TestLoad(t *testing.T) {
//	    dir := t.TempDir()
//	    testutil.WriteVelocityCSV(t, dir, "a.csv", 10, 1)
//	    logger, handler := testutil.NewTestLogger(t)
//	    ...
//	    testutil.AssertLogContains(t, handler, slog.LevelInfo, "Loaded file")
//	}
package shared
