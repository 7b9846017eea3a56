package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bge-barcoding/boldtools/bold"
	"github.com/bge-barcoding/boldtools/tabular"
)

const customFieldsFile = "merged_custom_fields.tsv"

// fileOrder fixes the processing sequence; unrecognized files go last.
var fileOrder = []string{
	"voucher.tsv", "taxonomy.tsv", "specimen_details.tsv", "collection_data.tsv",
	customFieldsFile, "lab.tsv", "tags.tsv",
}

// duplicateFields are known to arrive from multiple exports; the non-lab
// version is preferred.
var duplicateFields = []string{
	"Collection Date", "Life Stage", "Extra Info", "Notes", "Field ID",
}

func filePriority(name string) int {
	name = strings.ToLower(name)
	for i, known := range fileOrder {
		if name == known {
			return i
		}
	}
	return len(fileOrder)
}

func mergeFolder(folder, output string) error {
	paths, err := filepath.Glob(filepath.Join(folder, "*.tsv"))
	if err != nil {
		return err
	}
	kept := paths[:0]
	for _, path := range paths {
		if filepath.Clean(path) != filepath.Clean(output) {
			kept = append(kept, path)
		}
	}
	paths = kept
	if len(paths) == 0 {
		return fmt.Errorf("no TSV files found in %s", folder)
	}
	log.Printf("Found %d TSV files to merge\n", len(paths))

	sort.SliceStable(paths, func(i, j int) bool {
		return filePriority(filepath.Base(paths[i])) < filePriority(filepath.Base(paths[j]))
	})

	var merged *tabular.Table
	var uuids map[string]string
	var processed []string

	for _, path := range paths {
		name := filepath.Base(path)
		log.Printf("Reading file: %s\n", name)

		table, fileUUIDs, err := readOne(path, name)
		if err != nil {
			log.Printf("Error reading %s: %v\n", path, err)
			continue
		}
		log.Printf("Processing %s: %d rows, %d columns\n", name, table.NumRows(), table.NumCols())

		if fileUUIDs != nil {
			uuids = fileUUIDs
		}

		if original, ok := bold.StandardizeKey(table, false); !ok {
			log.Printf("Skipping %s: No Sample ID column found. Available columns: %v\n", name, table.Cols())
			continue
		} else if original != bold.KeyColumn {
			log.Printf("In %s: Renamed %q to %q\n", name, original, bold.KeyColumn)
		}

		if removed := table.DropDuplicates(bold.KeyColumn); removed > 0 {
			log.Printf("Removed %d duplicate Sample IDs from %s\n", removed, name)
		}

		if merged == nil {
			merged = table
			log.Printf("Initialized merged dataset with %s\n", name)
		} else {
			before := merged.NumRows()
			merged = tabular.OuterJoin(merged, table, bold.KeyColumn, "_"+name)
			log.Printf("Merged %s: %d -> %d rows\n", name, before, merged.NumRows())
		}

		processed = append(processed, name)
	}

	if merged == nil || merged.NumRows() == 0 {
		return fmt.Errorf("no data to merge - all files were skipped or empty")
	}

	dropSourceFileColumns(merged)
	resolveDuplicateFields(merged)
	dropStraySampleIDColumns(merged)

	if err := reorderBySource(merged); err != nil {
		return err
	}

	var uuidRow []string
	if uuids != nil {
		uuidRow = bold.AlignUUIDRow(merged.Cols(), uuids, "_"+customFieldsFile)
		log.Printf("Wrote aligned UUID row with %d columns\n", len(uuidRow))
	}

	if err := merged.WriteTSVFile(output, uuidRow); err != nil {
		return err
	}

	log.Printf("Successfully wrote merged file: %s\n", output)
	log.Println("=== MERGE SUMMARY ===")
	log.Printf("Input files processed: %d (%s)\n", len(processed), strings.Join(processed, ", "))
	log.Printf("Total unique Sample IDs: %d\n", uniqueKeyCount(merged))
	log.Printf("Total rows in output: %d\n", merged.NumRows())
	log.Printf("Total columns in output: %d\n", merged.NumCols())

	return nil
}

// readOne loads a TSV. The custom-fields export keeps its real headers in
// row 2, beneath the machine-readable UUID row, which is returned as a
// column→UUID mapping.
func readOne(path, name string) (*tabular.Table, map[string]string, error) {
	records, err := tabular.ReadRecords(path, '\t')
	if err != nil {
		return nil, nil, err
	}

	if name != customFieldsFile {
		t, err := tabular.FromRecords(records)
		return t, nil, err
	}

	if len(records) < 2 {
		return nil, nil, fmt.Errorf("%s has no header row beneath the UUID row", name)
	}

	uuids := bold.ColumnUUIDs(records[0], records[1])
	log.Printf("Found UUID row in %s with %d columns\n", name, len(records[0]))

	t, err := tabular.FromRecords(records[1:])
	return t, uuids, err
}

// dropSourceFileColumns removes bookkeeping columns that some exports carry.
func dropSourceFileColumns(t *tabular.Table) {
	for _, col := range append([]string{}, t.Cols()...) {
		if col == "Source_File" || strings.HasPrefix(col, "Source_File_") {
			t.Drop(col)
			log.Printf("Removed column: %s\n", col)
		}
	}
}

// resolveDuplicateFields keeps one version of each known duplicated field,
// preferring the copy that did not come from lab.tsv, and renames it back to
// the base name.
func resolveDuplicateFields(t *tabular.Table) {
	for _, base := range duplicateFields {
		var versions []string
		for _, col := range t.Cols() {
			if col == base || strings.HasPrefix(col, base+"_") {
				versions = append(versions, col)
			}
		}
		if len(versions) < 2 {
			continue
		}

		preferred := versions[0]
		for _, col := range versions {
			if !strings.HasSuffix(col, "_lab.tsv") {
				preferred = col
				break
			}
		}

		for _, col := range versions {
			if col != preferred {
				t.Drop(col)
				log.Printf("Removing duplicate column: %s (keeping %s)\n", col, preferred)
			}
		}

		if preferred != base {
			t.Rename(preferred, base)
			log.Printf("Renamed %s to %s\n", preferred, base)
		}
	}
}

func dropStraySampleIDColumns(t *tabular.Table) {
	for _, col := range append([]string{}, t.Cols()...) {
		if strings.HasPrefix(col, bold.KeyColumn+"_") {
			t.Drop(col)
			log.Printf("Removing duplicate Sample ID column: %s\n", col)
		}
	}
}

// reorderBySource groups suffixed columns by originating file, in fileOrder,
// after Sample ID and Process ID; unsuffixed columns keep their relative
// order at the end.
func reorderBySource(t *tabular.Table) error {
	log.Println("Reordering columns by file source...")

	ordered := []string{bold.KeyColumn}
	if t.HasCol(bold.ProcessIDColumn) {
		ordered = append(ordered, bold.ProcessIDColumn)
	}
	taken := map[string]bool{bold.KeyColumn: true, bold.ProcessIDColumn: true}

	for _, file := range fileOrder {
		suffix := "_" + file
		n := 0
		for _, col := range t.Cols() {
			if taken[col] || !strings.HasSuffix(col, suffix) {
				continue
			}
			ordered = append(ordered, col)
			taken[col] = true
			n++
		}
		if n > 0 {
			log.Printf("Added %d columns from %s\n", n, file)
		}
	}

	var remaining []string
	for _, col := range t.Cols() {
		if !taken[col] {
			remaining = append(remaining, col)
		}
	}
	if len(remaining) > 0 {
		ordered = append(ordered, remaining...)
		log.Printf("Added %d remaining columns\n", len(remaining))
	}

	return t.Reorder(ordered)
}

func uniqueKeyCount(t *tabular.Table) int {
	seen := make(map[string]bool, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		seen[t.Get(i, bold.KeyColumn)] = true
	}
	return len(seen)
}
