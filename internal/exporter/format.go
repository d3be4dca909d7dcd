package exporter

import (
	"math"
	"strconv"
)

// formatFloat formats a value with the shortest representation that parses
// back to the same float64. Missing values are written as empty cells.
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// formatRow formats every value of a row into dst, growing it if needed
func formatRow(dst []string, row []float64) []string {
	dst = dst[:0]
	for _, v := range row {
		dst = append(dst, formatFloat(v))
	}
	return dst
}
