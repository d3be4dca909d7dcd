// Package charts renders exploration plots of velocity datasets as PNG files
// using gonum/plot. Missing values are skipped.
package charts
