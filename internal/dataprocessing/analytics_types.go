package dataprocessing

// ColumnSummary holds descriptive statistics for one column.
// Statistics are computed over non-missing values only and are NaN when
// Count is zero.
type ColumnSummary struct {
	Name    string  `json:"name"`
	Count   int     `json:"count"`
	Missing int     `json:"missing"`
	Mean    float64 `json:"mean"`
	Std     float64 `json:"std"`
	Min     float64 `json:"min"`
	Q25     float64 `json:"q25"`
	Median  float64 `json:"median"`
	Q75     float64 `json:"q75"`
	Max     float64 `json:"max"`
}

// Correlation is a symmetric Pearson correlation matrix
type Correlation struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
	// Rows is the number of complete rows the coefficients were computed from
	Rows int `json:"rows"`
}

// At returns the coefficient between columns i and j
func (c *Correlation) At(i, j int) float64 {
	return c.Values[i][j]
}
