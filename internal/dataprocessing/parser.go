package dataprocessing

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	apperrors "github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/errors"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// missingTokens are cell values read as missing, in addition to any cell that
// does not parse as a number.
var missingTokens = map[string]struct{}{
	"":     {},
	"NA":   {},
	"N/A":  {},
	"n/a":  {},
	"#N/A": {},
	"<NA>": {},
	"NaN":  {},
	"nan":  {},
	"-NaN": {},
	"-nan": {},
	"null": {},
	"NULL": {},
	"None": {},
}

// ParseFile reads a comma-separated file with a header row into a Table.
// The file is closed before ParseFile returns, whether parsing succeeded or not.
// Errors are AppErrors classified as NOT_FOUND, PERMISSION or PARSING and name the file.
func ParseFile(filePath string) (*domain.Table, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, apperrors.FromFileError(filePath, err)
	}
	defer f.Close()

	table, err := ParseCSV(f)
	if err != nil {
		return nil, apperrors.FromFileError(filePath, err)
	}
	table.Source = filepath.Base(filePath)
	return table, nil
}

// ParseCSV parses CSV content whose first record is the header.
// Every data row must have as many fields as the header.
func ParseCSV(r io.Reader) (*domain.Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, err
		}
	}

	reader := csv.NewReader(br)
	reader.ReuseRecord = true
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.ErrEmptyFile
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table := &domain.Table{Header: uniqueHeader(header)}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row %d: %w", len(table.Rows)+1, err)
		}

		row := make([]float64, len(record))
		for i, cell := range record {
			row[i] = parseCell(cell)
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}

// uniqueHeader trims column names and makes them distinct so per-column
// reports keyed by name never merge two columns. Blank names become
// "Unnamed: <position>" and repeats get ".1", ".2" suffixes, in the way
// pandas names them.
func uniqueHeader(names []string) []string {
	out := make([]string, len(names))
	used := make(map[string]bool, len(names))
	repeats := make(map[string]int)
	for i, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		base := name
		for used[name] {
			repeats[base]++
			name = base + "." + strconv.Itoa(repeats[base])
		}
		used[name] = true
		out[i] = name
	}
	return out
}

// parseCell converts a raw cell to a float, returning NaN for missing or non-numeric values
func parseCell(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if _, missing := missingTokens[cell]; missing {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
