package main

import (
	"fmt"
	"log"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bge-barcoding/boldtools/bold"
	"github.com/bge-barcoding/boldtools/tabular"
	"github.com/carbocation/pfx"
)

// duplicateSuffix prefixes the source file name on columns that collide with
// an already-merged column of the same name. These are coalesced back into
// the base column after all joins.
const duplicateSuffix = "_DUPLICATE_FROM_"

type datasetFile struct {
	name    string
	table   *tabular.Table
	uuids   map[string]string
	rawRows int
}

func mergeOutputs(folder, output string) error {
	paths, err := filepath.Glob(filepath.Join(folder, "*.tsv"))
	if err != nil {
		return pfx.Err(err)
	}

	var files []*datasetFile
	for _, path := range paths {
		if filepath.Clean(path) == filepath.Clean(output) {
			continue
		}

		f, err := readDataset(path)
		if err != nil {
			log.Printf("Skipping %s: %v\n", filepath.Base(path), err)
			continue
		}
		files = append(files, f)
	}

	if len(files) == 0 {
		return fmt.Errorf("no usable TSV files found in %s", folder)
	}

	// Reconcile per-file UUID headers: first file to claim a column wins.
	var fileNames []string
	mappings := make(map[string]map[string]string)
	for _, f := range files {
		fileNames = append(fileNames, f.name)
		if f.uuids != nil {
			mappings[f.name] = f.uuids
		}
	}
	unified, conflicts := bold.MergeColumnUUIDs(fileNames, mappings)
	for col, byFile := range conflicts {
		var parts []string
		for file, uuid := range byFile {
			parts = append(parts, fmt.Sprintf("%s=%s", file, uuid))
		}
		sort.Strings(parts)
		log.Printf("UUID conflict for column %q: %s\n", col, strings.Join(parts, ", "))
	}

	merged := files[0].table
	log.Printf("Base dataset: %s (%d rows, %d columns)\n", files[0].name, merged.NumRows(), merged.NumCols())

	for _, f := range files[1:] {
		before := merged.NumRows()
		merged = tabular.OuterJoin(merged, f.table, bold.KeyColumn, duplicateSuffix+f.name)
		log.Printf("Merged %s: %d rows -> %d rows, %d columns\n", f.name, before, merged.NumRows(), merged.NumCols())
	}

	coalesceDuplicates(merged)

	if err := frontloadKey(merged); err != nil {
		return pfx.Err(err)
	}

	var uuidRow []string
	if len(unified) > 0 {
		uuidRow = bold.AlignUUIDRow(merged.Cols(), unified)
	}

	if err := merged.WriteTSVFile(output, uuidRow); err != nil {
		return pfx.Err(err)
	}

	log.Println("=== MERGE SUMMARY ===")
	log.Printf("Datasets merged: %d\n", len(files))
	for _, f := range files {
		log.Printf("  - %s (%d data rows)\n", f.name, f.rawRows)
	}
	log.Printf("Final table: %d rows, %d columns\n", merged.NumRows(), merged.NumCols())
	if uuidRow != nil {
		log.Printf("Unified UUID header row written (%d columns mapped)\n", len(unified))
	}

	return nil
}

// readDataset loads one merged BOLD file. The first row may be a
// machine-readable UUID header, in which case the second row carries the
// column names. Files whose second row is not a header (no sample column
// found) are retried with row one as the header.
func readDataset(path string) (*datasetFile, error) {
	records, err := tabular.ReadRecords(path, '\t')
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("file has fewer than 2 rows")
	}

	name := filepath.Base(path)
	f := &datasetFile{name: name}

	hasUUIDRow := bold.IsUUIDRow(records[0])
	if hasUUIDRow {
		f.table, err = tabular.FromRecords(records[1:])
		if err != nil {
			return nil, err
		}
		f.uuids = bold.ColumnUUIDs(records[0], records[1])
	} else {
		f.table, err = tabular.FromRecords(records)
		if err != nil {
			return nil, err
		}
	}

	if _, ok := bold.StandardizeKey(f.table, true); !ok {
		if !hasUUIDRow {
			return nil, fmt.Errorf("no sample identifier column found")
		}
		// UUID detection may have mistaken a data row; fall back to
		// treating row one as the header.
		f.table, err = tabular.FromRecords(records)
		if err != nil {
			return nil, err
		}
		f.uuids = nil
		if _, ok := bold.StandardizeKey(f.table, true); !ok {
			return nil, fmt.Errorf("no sample identifier column found")
		}
	}

	f.rawRows = f.table.NumRows()
	if dropped := f.table.DropDuplicates(bold.KeyColumn); dropped > 0 {
		log.Printf("%s: dropped %d duplicate sample rows\n", name, dropped)
	}

	log.Printf("Loaded %s: %d rows, %d columns (UUID header: %v)\n", name, f.table.NumRows(), f.table.NumCols(), f.uuids != nil)
	return f, nil
}

// coalesceDuplicates folds every *_DUPLICATE_FROM_* column back into its base
// column. Existing base values win; only blanks are filled.
func coalesceDuplicates(t *tabular.Table) {
	cols := append([]string(nil), t.Cols()...)
	for _, col := range cols {
		idx := strings.Index(col, duplicateSuffix)
		if idx < 0 {
			continue
		}
		base := col[:idx]
		if !t.HasCol(base) {
			t.Rename(col, base)
			continue
		}
		if n := tabular.Coalesce(t, base, col); n > 0 {
			log.Printf("Column %q: %d conflicting values kept from base dataset\n", base, n)
		}
	}
}

// frontloadKey moves the sample ID column to position zero.
func frontloadKey(t *tabular.Table) error {
	order := []string{bold.KeyColumn}
	for _, c := range t.Cols() {
		if c != bold.KeyColumn {
			order = append(order, c)
		}
	}
	return t.Reorder(order)
}
