package tabular

import (
	"fmt"

	"github.com/carbocation/pfx"
)

// GroupCount tallies rows per distinct value of groupCol. Rows with an empty
// group value are skipped. When valueCol is non-empty, only rows with a
// non-empty value there are counted; with unique set, distinct values are
// counted instead of occurrences.
func (t *Table) GroupCount(groupCol, valueCol string, unique bool) (map[string]int, error) {
	groupIdx, ok := t.ColIndex(groupCol)
	if !ok {
		return nil, pfx.Err(fmt.Errorf("column %q not found; available columns: %v", groupCol, t.cols))
	}

	valueIdx := -1
	if valueCol != "" {
		valueIdx, ok = t.ColIndex(valueCol)
		if !ok {
			return nil, pfx.Err(fmt.Errorf("column %q not found; available columns: %v", valueCol, t.cols))
		}
	}

	counts := make(map[string]int)
	var seen map[string]map[string]bool
	if unique {
		seen = make(map[string]map[string]bool)
	}

	for _, row := range t.rows {
		group := row[groupIdx]
		if group == "" {
			continue
		}

		if valueIdx < 0 {
			counts[group]++
			continue
		}

		value := row[valueIdx]
		if value == "" {
			continue
		}

		if unique {
			if seen[group] == nil {
				seen[group] = make(map[string]bool)
			}
			if seen[group][value] {
				continue
			}
			seen[group][value] = true
		}
		counts[group]++
	}

	return counts, nil
}
