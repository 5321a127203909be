package domain

import "strings"

// Table is a rectangular, header-indexed sheet held in memory.
// Every row has exactly len(Headers) cells; a missing cell is "".
type Table struct {
	Headers []string
	Rows    [][]string

	// Source is the file the table was read from, if any.
	Source string

	index map[string]int
}

// NewTable builds a Table, padding or truncating rows to the header width.
// When a header repeats, lookups by name resolve to its first occurrence.
func NewTable(headers []string, rows [][]string) *Table {
	t := &Table{
		Headers: headers,
		Rows:    make([][]string, 0, len(rows)),
		index:   make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		if _, exists := t.index[h]; !exists {
			t.index[h] = i
		}
	}
	for _, row := range rows {
		t.Rows = append(t.Rows, normalizeRow(row, len(headers)))
	}
	return t
}

func normalizeRow(row []string, width int) []string {
	out := make([]string, width)
	copy(out, row)
	return out
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of the named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// MissingColumns returns the names in required that the table does not carry.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}

// Record returns a named accessor over row i.
func (t *Table) Record(i int) Record {
	return Record{table: t, cells: t.Rows[i]}
}

// Column returns every value of the named column, or nil if absent.
func (t *Table) Column(name string) []string {
	idx, ok := t.index[name]
	if !ok {
		return nil
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values
}

// Record is a single table row addressed by column name.
type Record struct {
	table *Table
	cells []string
}

// Get returns the cell under the named column, or "" when the column is absent.
func (r Record) Get(name string) string {
	idx, ok := r.table.index[name]
	if !ok {
		return ""
	}
	return r.cells[idx]
}

// Cells returns the raw row.
func (r Record) Cells() []string {
	return r.cells
}

// IsBlank reports whether every cell in row is empty or whitespace.
func IsBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
