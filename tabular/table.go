// Package tabular provides an ordered-column string table with the join and
// column-reconciliation operations needed to combine BOLD spreadsheet
// exports. Cell values are kept as strings; an empty string is treated as
// missing throughout.
package tabular

import (
	"fmt"

	"github.com/carbocation/pfx"
)

type Table struct {
	cols     []string
	colIndex map[string]int
	rows     [][]string
}

func NewTable(cols []string) *Table {
	t := &Table{cols: append([]string{}, cols...)}
	t.reindex()
	return t
}

// FromRecords builds a table from raw csv records, treating the first record
// as the header. Ragged rows are padded (or truncated) to the header width.
func FromRecords(records [][]string) (*Table, error) {
	if len(records) == 0 {
		return nil, pfx.Err(fmt.Errorf("no records: need at least a header row"))
	}

	t := NewTable(records[0])
	for _, rec := range records[1:] {
		t.Append(rec)
	}

	return t, nil
}

func (t *Table) reindex() {
	t.colIndex = make(map[string]int, len(t.cols))
	for i, c := range t.cols {
		// First occurrence wins if a name repeats
		if _, exists := t.colIndex[c]; !exists {
			t.colIndex[c] = i
		}
	}
}

func (t *Table) Cols() []string { return t.cols }
func (t *Table) NumRows() int   { return len(t.rows) }
func (t *Table) NumCols() int   { return len(t.cols) }

func (t *Table) ColIndex(name string) (int, bool) {
	i, ok := t.colIndex[name]
	return i, ok
}

func (t *Table) HasCol(name string) bool {
	_, ok := t.colIndex[name]
	return ok
}

// Append adds a row, padding or truncating it to the table width.
func (t *Table) Append(row []string) {
	out := make([]string, len(t.cols))
	copy(out, row)
	t.rows = append(t.rows, out)
}

func (t *Table) Row(i int) []string { return t.rows[i] }

func (t *Table) Get(row int, col string) string {
	i, ok := t.colIndex[col]
	if !ok {
		return ""
	}
	return t.rows[row][i]
}

func (t *Table) Set(row int, col, value string) {
	if i, ok := t.colIndex[col]; ok {
		t.rows[row][i] = value
	}
}

// AddCol appends an empty column and returns its index.
func (t *Table) AddCol(name string) int {
	t.cols = append(t.cols, name)
	for i := range t.rows {
		t.rows[i] = append(t.rows[i], "")
	}
	t.reindex()
	return len(t.cols) - 1
}

// Rename changes a column name in place. It reports whether the column was
// found.
func (t *Table) Rename(from, to string) bool {
	i, ok := t.colIndex[from]
	if !ok {
		return false
	}
	t.cols[i] = to
	t.reindex()
	return true
}

// Drop removes the named columns. Unknown names are ignored.
func (t *Table) Drop(names ...string) {
	doomed := make(map[int]bool, len(names))
	for _, name := range names {
		if i, ok := t.colIndex[name]; ok {
			doomed[i] = true
		}
	}
	if len(doomed) == 0 {
		return
	}

	keptCols := make([]string, 0, len(t.cols)-len(doomed))
	for i, c := range t.cols {
		if !doomed[i] {
			keptCols = append(keptCols, c)
		}
	}

	for r, row := range t.rows {
		kept := make([]string, 0, len(keptCols))
		for i, v := range row {
			if !doomed[i] {
				kept = append(kept, v)
			}
		}
		t.rows[r] = kept
	}

	t.cols = keptCols
	t.reindex()
}

// Reorder rearranges the columns into the given order, which must be a
// permutation of the current column names.
func (t *Table) Reorder(order []string) error {
	if len(order) != len(t.cols) {
		return pfx.Err(fmt.Errorf("reorder: got %d columns, table has %d", len(order), len(t.cols)))
	}

	indices := make([]int, len(order))
	for i, name := range order {
		idx, ok := t.colIndex[name]
		if !ok {
			return pfx.Err(fmt.Errorf("reorder: unknown column %q", name))
		}
		indices[i] = idx
	}

	for r, row := range t.rows {
		out := make([]string, len(indices))
		for i, idx := range indices {
			out[i] = row[idx]
		}
		t.rows[r] = out
	}

	t.cols = append([]string{}, order...)
	t.reindex()
	return nil
}

// DropDuplicates removes rows whose key-column value has been seen before,
// keeping the first occurrence. It returns the number of rows removed.
func (t *Table) DropDuplicates(key string) int {
	idx, ok := t.colIndex[key]
	if !ok {
		return 0
	}

	seen := make(map[string]bool, len(t.rows))
	kept := t.rows[:0]
	removed := 0
	for _, row := range t.rows {
		if seen[row[idx]] {
			removed++
			continue
		}
		seen[row[idx]] = true
		kept = append(kept, row)
	}
	t.rows = kept

	return removed
}
