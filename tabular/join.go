package tabular

// OuterJoin joins right onto left by the shared key column, keeping every key
// from either side. Left rows come first in their original order, followed by
// right-only rows in theirs. Columns of right whose names already exist on
// the left are renamed with the given suffix; the key column is never
// duplicated.
//
// Both sides are expected to have unique keys (see DropDuplicates); when a
// key repeats, the first row wins.
func OuterJoin(left, right *Table, key, suffix string) *Table {
	leftKey, _ := left.ColIndex(key)
	rightKey, _ := right.ColIndex(key)

	// Columns contributed by the right side, with clash renaming
	rightCols := make([]int, 0, right.NumCols())
	cols := append([]string{}, left.cols...)
	for i, c := range right.cols {
		if i == rightKey {
			continue
		}
		name := c
		if left.HasCol(c) {
			name = c + suffix
		}
		cols = append(cols, name)
		rightCols = append(rightCols, i)
	}

	out := NewTable(cols)

	rightByKey := make(map[string]int, right.NumRows())
	for i, row := range right.rows {
		if _, exists := rightByKey[row[rightKey]]; !exists {
			rightByKey[row[rightKey]] = i
		}
	}

	matched := make(map[string]bool, left.NumRows())
	for _, lrow := range left.rows {
		row := make([]string, 0, len(cols))
		row = append(row, lrow...)

		if ri, ok := rightByKey[lrow[leftKey]]; ok {
			matched[lrow[leftKey]] = true
			for _, ci := range rightCols {
				row = append(row, right.rows[ri][ci])
			}
		} else {
			for range rightCols {
				row = append(row, "")
			}
		}
		out.Append(row)
	}

	// Right-only keys, first occurrence per key
	outKey, _ := out.ColIndex(key)
	for i, rrow := range right.rows {
		if matched[rrow[rightKey]] || rightByKey[rrow[rightKey]] != i {
			continue
		}

		row := make([]string, len(cols))
		row[outKey] = rrow[rightKey]
		for j, ci := range rightCols {
			row[len(left.cols)+j] = rrow[ci]
		}
		out.rows = append(out.rows, row)
	}

	return out
}
