package models

// ResultSet holds the raw tabular payload returned for one query. Every cell
// arrives from the query service as a string; a nil cell is a SQL NULL.
type ResultSet struct {
	Columns []string
	Rows    [][]*string
}

// RowCount returns the number of data rows in the result set.
func (rs *ResultSet) RowCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Rows)
}

// ColumnCount returns the number of columns in the result set.
func (rs *ResultSet) ColumnCount() int {
	if rs == nil {
		return 0
	}
	return len(rs.Columns)
}
