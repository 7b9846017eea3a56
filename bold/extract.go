package bold

import (
	"fmt"
	"sort"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/bge-barcoding/boldtools/tabular"
)

// Column names specific to the custom-fields export.
const (
	PlateIDColumn      = "Plate ID"
	WellPositionColumn = "Well Position"
	SampleIDColumn     = "SampleID"
	ProcessIDColumn    = "Process ID"
	PlateWellColumn    = "Plate_Well"
)

// Extraction accumulates taxonomy records matched across project
// directories. Output columns start with Process ID, Plate_Well and Sample
// ID; taxonomy columns are appended in the order they are first seen.
type Extraction struct {
	t *tabular.Table
}

func NewExtraction() *Extraction {
	return &Extraction{
		t: tabular.NewTable([]string{ProcessIDColumn, PlateWellColumn, KeyColumn}),
	}
}

func (e *Extraction) Table() *tabular.Table { return e.t }

// PlateIDs returns the sorted distinct plate identifiers present in the
// accumulated Plate_Well values.
func (e *Extraction) PlateIDs() []string {
	seen := make(map[string]bool)
	for i := 0; i < e.t.NumRows(); i++ {
		parts := strings.Split(e.t.Get(i, PlateWellColumn), "_")
		if len(parts) >= 2 {
			seen[parts[0]+"_"+parts[1]] = true
		}
	}

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Match joins one directory's custom-fields, taxonomy and lab tables for the
// target plates and appends the matched records. It returns the number of
// records added.
//
// Two record-identification schemes exist. When the custom-fields table has
// a populated Plate ID column, rows are selected by it and Plate_Well is
// assembled from plate and well position. Otherwise the plate is embedded in
// the SampleID itself (BGE_00841_A1) and the SampleID doubles as Plate_Well.
func (e *Extraction) Match(merged, taxonomy, lab *tabular.Table, plates map[string]bool) (int, error) {
	if !merged.HasCol(SampleIDColumn) {
		return 0, pfx.Err(fmt.Errorf("custom-fields table lacks a %s column; columns: %v", SampleIDColumn, merged.Cols()))
	}
	if !taxonomy.HasCol(KeyColumn) {
		return 0, pfx.Err(fmt.Errorf("taxonomy table lacks a %q column; columns: %v", KeyColumn, taxonomy.Cols()))
	}

	usePlateCol := false
	if merged.HasCol(PlateIDColumn) {
		for i := 0; i < merged.NumRows(); i++ {
			if merged.Get(i, PlateIDColumn) != "" {
				usePlateCol = true
				break
			}
		}
	}

	taxByID := indexByKey(taxonomy, KeyColumn)
	labByID := indexByKey(lab, KeyColumn)

	added := 0
	for i := 0; i < merged.NumRows(); i++ {
		var plateWell string

		if usePlateCol {
			plateID := merged.Get(i, PlateIDColumn)
			if !plates[plateID] {
				continue
			}
			plateWell = PlateWell(plateID, merged.Get(i, WellPositionColumn))
		} else {
			sampleID := merged.Get(i, SampleIDColumn)
			if !plates[PlateFromSampleID(sampleID)] {
				continue
			}
			plateWell = sampleID
		}

		sampleID := merged.Get(i, SampleIDColumn)

		// Taxonomy lookup by sample ID, falling back to the plate/well form
		taxRow, ok := taxByID[sampleID]
		if !ok {
			taxRow, ok = taxByID[plateWell]
		}
		if !ok {
			continue
		}

		taxSampleID := taxonomy.Get(taxRow, KeyColumn)

		processID := ""
		if labRow, ok := labByID[taxSampleID]; ok && lab.HasCol(ProcessIDColumn) {
			processID = lab.Get(labRow, ProcessIDColumn)
		}

		e.appendRecord(processID, plateWell, taxSampleID, taxonomy, taxRow)
		added++
	}

	return added, nil
}

func (e *Extraction) appendRecord(processID, plateWell, sampleID string, taxonomy *tabular.Table, taxRow int) {
	for _, col := range taxonomy.Cols() {
		if col == KeyColumn {
			continue
		}
		if !e.t.HasCol(col) {
			e.t.AddCol(col)
		}
	}

	row := make([]string, e.t.NumCols())
	e.t.Append(row)
	last := e.t.NumRows() - 1

	e.t.Set(last, ProcessIDColumn, processID)
	e.t.Set(last, PlateWellColumn, plateWell)
	e.t.Set(last, KeyColumn, sampleID)
	for _, col := range taxonomy.Cols() {
		if col == KeyColumn {
			continue
		}
		e.t.Set(last, col, taxonomy.Get(taxRow, col))
	}
}

// indexByKey maps each key value to the first row holding it.
func indexByKey(t *tabular.Table, key string) map[string]int {
	out := make(map[string]int, t.NumRows())
	for i := 0; i < t.NumRows(); i++ {
		v := t.Get(i, key)
		if _, exists := out[v]; !exists && v != "" {
			out[v] = i
		}
	}
	return out
}
