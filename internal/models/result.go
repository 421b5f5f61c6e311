package models

// ResultTable is an ordered rows-by-named-columns result produced by one query
// execution. It is immutable once produced and lives for one render cycle.
type ResultTable struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// RowCount returns the number of data rows (the header is not a row).
func (t *ResultTable) RowCount() int {
	return len(t.Rows)
}
