package tabular

// Coalesce folds the dup column into the base column and drops dup. The base
// value always wins; dup only fills rows where base is empty. The return
// value is the number of rows where both columns held different non-empty
// values (the base value is kept for those).
func Coalesce(t *Table, base, dup string) int {
	baseIdx, okBase := t.ColIndex(base)
	dupIdx, okDup := t.ColIndex(dup)
	if !okBase || !okDup || baseIdx == dupIdx {
		return 0
	}

	conflicts := 0
	for _, row := range t.rows {
		b, d := row[baseIdx], row[dupIdx]
		switch {
		case b == "" && d != "":
			row[baseIdx] = d
		case b != "" && d != "" && b != d:
			conflicts++
		}
	}

	t.Drop(dup)
	return conflicts
}
