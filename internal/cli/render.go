package cli

import (
	"fmt"
	"io"
	"math"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/internal/dataprocessing"
	"github.com/PushyanJhaveri/Detection-of-Aneursym-Prolongation-using-ML-models/pkg/contracts/domain"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func renderLoadResult(w io.Writer, result *dataprocessing.LoadResult) {
	t := newTable(w, "Input files")
	t.AppendHeader(table.Row{"File", "Rows", "Columns", "Status"})
	for _, f := range result.Files {
		status := "loaded"
		if !f.Loaded() {
			status = "skipped: " + f.Err.Error()
		}
		t.AppendRow(table.Row{f.Name, f.Rows, f.Columns, status})
	}
	rows, _ := result.Combined.Shape()
	t.AppendFooter(table.Row{fmt.Sprintf("%d/%d loaded", result.LoadedCount(), len(result.Files)), rows, "", ""})
	t.Render()
}

func renderSplit(w io.Writer, split *domain.SplitResult, report *domain.MissingReport) {
	t := newTable(w, "Train/test split")
	t.AppendHeader(table.Row{"Subset", "Rows", "Columns"})
	t.AppendRow(table.Row{"train", len(split.TrainFeatures.Rows), len(split.TrainFeatures.Columns)})
	t.AppendRow(table.Row{"test", len(split.TestFeatures.Rows), len(split.TestFeatures.Columns)})
	if report != nil {
		t.AppendFooter(table.Row{"dropped", report.RowsDropped, fmt.Sprintf("of %d", report.RowsBefore)})
	}
	t.Render()
}

func renderOutputs(w io.Writer, paths []string) {
	t := newTable(w, "Written")
	t.AppendHeader(table.Row{"File"})
	for _, p := range paths {
		t.AppendRow(table.Row{p})
	}
	t.Render()
}

func renderSummary(w io.Writer, summaries []dataprocessing.ColumnSummary) {
	t := newTable(w, "Column statistics")
	t.AppendHeader(table.Row{"Column", "Count", "Missing", "Mean", "Std", "Min", "25%", "50%", "75%", "Max"})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.Name, s.Count, s.Missing,
			num(s.Mean), num(s.Std), num(s.Min), num(s.Q25), num(s.Median), num(s.Q75), num(s.Max),
		})
	}
	t.Render()
}

func renderCorrelation(w io.Writer, corr *dataprocessing.Correlation) {
	t := newTable(w, fmt.Sprintf("Correlation (%d complete rows)", corr.Rows))
	header := table.Row{""}
	for _, c := range corr.Columns {
		header = append(header, c)
	}
	t.AppendHeader(header)
	for i, name := range corr.Columns {
		row := table.Row{name}
		for j := range corr.Columns {
			row = append(row, num(corr.At(i, j)))
		}
		t.AppendRow(row)
	}
	t.Render()
}

func renderMissing(w io.Writer, header []string, counts map[string]int) {
	t := newTable(w, "Missing values")
	t.AppendHeader(table.Row{"Column", "Missing"})
	total := 0
	for _, name := range header {
		t.AppendRow(table.Row{name, counts[name]})
		total += counts[name]
	}
	t.AppendFooter(table.Row{"total", total})
	t.Render()
}

// inventoryRow is one line of the files listing
type inventoryRow struct {
	name    string
	role    string
	size    int64
	columns string
}

func renderInventory(w io.Writer, rows []inventoryRow, missing []string) {
	sort.SliceStable(rows, func(i, j int) bool {
		return rolePriority(rows[i].role) < rolePriority(rows[j].role)
	})

	t := newTable(w, "Data directory")
	t.AppendHeader(table.Row{"File", "Role", "Size", "Columns"})
	for _, r := range rows {
		t.AppendRow(table.Row{r.name, r.role, r.size, r.columns})
	}
	for _, name := range missing {
		t.AppendRow(table.Row{name, "missing", "", ""})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d files", len(rows)), "", "", fmt.Sprintf("%d missing", len(missing))})
	t.Render()
}

func rolePriority(role string) int {
	switch role {
	case "training":
		return 0
	case "test":
		return 1
	default:
		return 2
	}
}

func renderFeatureFiles(w io.Writer, results []featureResult) {
	t := newTable(w, "Test features")
	t.AppendHeader(table.Row{"File", "Rows", "Features", "Written"})
	for _, r := range results {
		t.AppendRow(table.Row{r.file, r.rows, r.cols, r.output})
	}
	t.Render()
}

func num(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.6g", v)
}
