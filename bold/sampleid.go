// Package bold captures the conventions of BOLD (Barcode of Life Data
// system) spreadsheet exports: join-key column naming, machine-readable UUID
// header rows, and plate/well sample identifiers.
package bold

import (
	"strings"

	"github.com/bge-barcoding/boldtools/tabular"
)

// KeyColumn is the canonical join-key column name across all export files.
const KeyColumn = "Sample ID"

// keyVariants are the spellings seen in the wild, in preference order.
var keyVariants = []string{"Sample ID", "SampleID", "sample_id", "sampleid"}

// processIDVariants additionally serve as join keys in cross-dataset merges,
// where some outputs only carry a process identifier.
var processIDVariants = []string{"Process ID", "ProcessID"}

// StandardizeKey renames the first recognized key column to KeyColumn. It
// returns the original spelling and whether any key column was found.
// When acceptProcessID is set, Process ID spellings are accepted as a
// fallback key.
func StandardizeKey(t *tabular.Table, acceptProcessID bool) (string, bool) {
	variants := keyVariants
	if acceptProcessID {
		variants = append(append([]string{}, keyVariants...), processIDVariants...)
	}

	for _, v := range variants {
		if t.HasCol(v) {
			if v != KeyColumn {
				t.Rename(v, KeyColumn)
			}
			return v, true
		}
	}

	return "", false
}

// PlateWell builds the combined plate/well identifier, e.g. BGE_00647_A08.
func PlateWell(plateID, wellPosition string) string {
	return plateID + "_" + wellPosition
}

// PlateFromSampleID extracts the plate identifier from a sample ID of the
// form BGE_00841_A1, yielding BGE_00841. Identifiers in any other scheme
// return "".
func PlateFromSampleID(sampleID string) string {
	parts := strings.Split(sampleID, "_")
	if len(parts) >= 2 && parts[0] == "BGE" {
		return parts[0] + "_" + parts[1]
	}

	return ""
}
