package testutil

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// VelocityHeader mirrors the column layout of the simulation exports:
// x, y, z at positions 1..3 and velocity at position 6.
var VelocityHeader = []string{
	"nodenumber",
	"x-coordinate",
	"y-coordinate",
	"z-coordinate",
	"pressure",
	"wall-shear",
	"velocity-magnitude",
}

// WriteCSV writes header and rows to dir/name and returns the full path
func WriteCSV(t *testing.T, dir, name string, header []string, rows [][]string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture %s: %v", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if header != nil {
		if err := w.Write(header); err != nil {
			t.Fatalf("failed to write fixture header: %v", err)
		}
	}
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("failed to write fixture rows: %v", err)
	}
	return path
}

// VelocityRows generates n deterministic rows in the VelocityHeader layout.
// Node numbers start at offset so rows from different files stay distinguishable.
func VelocityRows(n int, offset int) [][]string {
	rng := rand.New(rand.NewSource(int64(offset) + 1))
	rows := make([][]string, n)
	for i := range rows {
		x, y, z := rng.Float64(), rng.Float64(), rng.Float64()
		rows[i] = []string{
			strconv.Itoa(offset + i),
			formatFloat(x),
			formatFloat(y),
			formatFloat(z),
			formatFloat(rng.NormFloat64()*10 + 100),
			formatFloat(rng.Float64()),
			formatFloat(x + 2*y + 3*z),
		}
	}
	return rows
}

// WriteVelocityCSV writes n generated rows with VelocityHeader to dir/name
func WriteVelocityCSV(t *testing.T, dir, name string, n, offset int) string {
	t.Helper()
	return WriteCSV(t, dir, name, VelocityHeader, VelocityRows(n, offset))
}

func formatFloat(v float64) string {
	return fmt.Sprintf("%.6f", v)
}
