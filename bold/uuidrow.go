package bold

import "strings"

// LooksLikeUUID applies the loose test BOLD files warrant: 36 characters
// with exactly four hyphens.
func LooksLikeUUID(s string) bool {
	s = strings.TrimSpace(s)
	return len(s) == 36 && strings.Count(s, "-") == 4
}

// CountUUIDs reports how many fields of a row look like UUIDs.
func CountUUIDs(row []string) int {
	n := 0
	for _, field := range row {
		if LooksLikeUUID(field) {
			n++
		}
	}
	return n
}

// IsUUIDRow reports whether a row is a machine-readable header, i.e. holds
// at least one UUID.
func IsUUIDRow(row []string) bool {
	return CountUUIDs(row) > 0
}

// ColumnUUIDs pairs header names with the UUIDs of the machine-readable row
// above them. Positions with an empty header or an empty UUID are skipped.
func ColumnUUIDs(uuidRow, headers []string) map[string]string {
	if len(uuidRow) != len(headers) {
		return nil
	}

	out := make(map[string]string, len(headers))
	for i, header := range headers {
		header = strings.TrimSpace(header)
		uuid := strings.TrimSpace(uuidRow[i])
		if header != "" && uuid != "" {
			out[header] = uuid
		}
	}

	return out
}

// MergeColumnUUIDs unifies per-file column→UUID mappings. The first UUID
// seen for a column wins; later files that disagree are reported in the
// conflicts map (column → file → UUID).
func MergeColumnUUIDs(files []string, mappings map[string]map[string]string) (map[string]string, map[string]map[string]string) {
	unified := make(map[string]string)
	conflicts := make(map[string]map[string]string)

	for _, file := range files {
		for col, uuid := range mappings[file] {
			if uuid == "" {
				continue
			}

			existing, ok := unified[col]
			if !ok {
				unified[col] = uuid
				continue
			}
			if existing != uuid {
				if conflicts[col] == nil {
					conflicts[col] = make(map[string]string)
				}
				conflicts[col][file] = uuid
			}
		}
	}

	return unified, conflicts
}

// AlignUUIDRow builds a machine-readable row matching the given column
// order, with empty strings for columns that have no UUID. Suffixed column
// names (e.g. "Field_merged_custom_fields.tsv") fall back to their base
// name's UUID.
func AlignUUIDRow(cols []string, uuids map[string]string, suffixes ...string) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		if uuid, ok := uuids[col]; ok {
			out[i] = uuid
			continue
		}
		for _, suffix := range suffixes {
			if base := strings.TrimSuffix(col, suffix); base != col {
				if uuid, ok := uuids[base]; ok {
					out[i] = uuid
				}
				break
			}
		}
	}

	return out
}
