// Package table holds experiment results loaded from delimited text.
//
// A Table keeps the header exactly as written in the file and the rows in
// file order. Cells are stored as text; numeric access goes through
// Floats or Row.Float so that a non-numeric cell is reported where it is
// used, not where it is read.
package table

import (
	"math"
	"strconv"
	"strings"
)

// Table is an immutable, ordered set of rows with named columns.
type Table struct {
	name    string
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a Table from a header and rows. Rows are used as given and
// must have len(columns) cells each.
func New(name string, columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		if _, dup := index[c]; dup {
			return nil, &ParseError{Path: name, Line: 1, Err: ErrDuplicateColumn}
		}
		index[c] = i
	}
	for i, r := range rows {
		if len(r) != len(columns) {
			return nil, &ParseError{Path: name, Line: i + 2, Err: errFieldCount(len(columns), len(r))}
		}
	}
	return &Table{name: name, columns: columns, index: index, rows: rows}, nil
}

// Name is the path or label the table was loaded from.
func (t *Table) Name() string { return t.name }

// Columns returns the header in file order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Len is the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) HasColumn(col string) bool {
	_, ok := t.index[col]
	return ok
}

// Lookup returns the index of col, or a *KeyError.
func (t *Table) Lookup(col string) (int, error) {
	i, ok := t.index[col]
	if !ok {
		return 0, &KeyError{Column: col, Columns: t.Columns()}
	}
	return i, nil
}

// Value returns the raw cell at row i, column col.
func (t *Table) Value(i int, col string) (string, error) {
	c, err := t.Lookup(col)
	if err != nil {
		return "", err
	}
	return t.rows[i][c], nil
}

// Row returns a view of row i.
func (t *Table) Row(i int) Row { return Row{t: t, i: i} }

// Floats parses every cell of col as a float64. Empty cells become NaN.
func (t *Table) Floats(col string) ([]float64, error) {
	c, err := t.Lookup(col)
	if err != nil {
		return nil, err
	}
	out := make([]float64, len(t.rows))
	for i, r := range t.rows {
		v, err := parseFloat(col, i, r[c])
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Filter returns a table holding the rows for which keep reports true,
// in their original order. The receiver is not modified.
func (t *Table) Filter(keep func(Row) bool) *Table {
	rows := make([][]string, 0, len(t.rows))
	for i, r := range t.rows {
		if keep(Row{t: t, i: i}) {
			rows = append(rows, r)
		}
	}
	return &Table{name: t.name, columns: t.columns, index: t.index, rows: rows}
}

// Equal reports whether both tables have the same header and cells.
func (t *Table) Equal(o *Table) bool {
	if len(t.columns) != len(o.columns) || len(t.rows) != len(o.rows) {
		return false
	}
	for i := range t.columns {
		if t.columns[i] != o.columns[i] {
			return false
		}
	}
	for i := range t.rows {
		for j := range t.rows[i] {
			if t.rows[i][j] != o.rows[i][j] {
				return false
			}
		}
	}
	return true
}

// Row is a read-only view of one table row.
type Row struct {
	t *Table
	i int
}

// Index is the row's position in its table.
func (r Row) Index() int { return r.i }

func (r Row) Get(col string) (string, bool) {
	c, ok := r.t.index[col]
	if !ok {
		return "", false
	}
	return r.t.rows[r.i][c], true
}

// Float parses the cell in col. See Table.Floats.
func (r Row) Float(col string) (float64, error) {
	c, err := r.t.Lookup(col)
	if err != nil {
		return 0, err
	}
	return parseFloat(col, r.i, r.t.rows[r.i][c])
}

// Map copies the row into a column -> value map.
func (r Row) Map() map[string]string {
	m := make(map[string]string, len(r.t.columns))
	for c, i := range r.t.index {
		m[c] = r.t.rows[r.i][i]
	}
	return m
}

func parseFloat(col string, row int, s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &TypeError{Column: col, Row: row, Value: s}
	}
	return v, nil
}
