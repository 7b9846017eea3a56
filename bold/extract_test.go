package bold

import (
	"reflect"
	"testing"

	"github.com/bge-barcoding/boldtools/tabular"
)

func mustTable(t *testing.T, records [][]string) *tabular.Table {
	t.Helper()
	tab, err := tabular.FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tab
}

func TestMatchByPlateColumn(t *testing.T) {
	merged := mustTable(t, [][]string{
		{"SampleID", "Plate ID", "Well Position"},
		{"MUS001", "BGE_00647", "A08"},
		{"MUS002", "BGE_00647", "B03"},
		{"MUS003", "BGE_00999", "A01"}, // not a target plate
	})
	taxonomy := mustTable(t, [][]string{
		{"Sample ID", "Phylum", "Species"},
		{"MUS001", "Arthropoda", "Apis mellifera"},
		{"BGE_00647_B03", "Chordata", "Mus musculus"},
	})
	lab := mustTable(t, [][]string{
		{"Sample ID", "Process ID"},
		{"MUS001", "PROC001"},
	})

	ext := NewExtraction()
	added, err := ext.Match(merged, taxonomy, lab, map[string]bool{"BGE_00647": true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 records, got %d", added)
	}

	out := ext.Table()

	// Row 0: direct sample-ID match with a lab process ID.
	if got := out.Get(0, ProcessIDColumn); got != "PROC001" {
		t.Errorf("process ID = %q, want PROC001", got)
	}
	if got := out.Get(0, PlateWellColumn); got != "BGE_00647_A08" {
		t.Errorf("plate/well = %q", got)
	}
	if got := out.Get(0, "Species"); got != "Apis mellifera" {
		t.Errorf("species = %q", got)
	}

	// Row 1: matched through the plate/well fallback, no lab record.
	if got := out.Get(1, KeyColumn); got != "BGE_00647_B03" {
		t.Errorf("sample ID = %q", got)
	}
	if got := out.Get(1, ProcessIDColumn); got != "" {
		t.Errorf("expected empty process ID, got %q", got)
	}

	if got := ext.PlateIDs(); !reflect.DeepEqual(got, []string{"BGE_00647"}) {
		t.Errorf("PlateIDs = %v", got)
	}
}

func TestMatchByEmbeddedPlate(t *testing.T) {
	// No Plate ID column: the plate is embedded in the SampleID itself.
	merged := mustTable(t, [][]string{
		{"SampleID", "Well Position"},
		{"BGE_00841_A1", "A1"},
		{"BGE_00841_A2", "A2"},
		{"BGE_00500_A1", "A1"}, // different plate
	})
	taxonomy := mustTable(t, [][]string{
		{"Sample ID", "Order"},
		{"BGE_00841_A1", "Hymenoptera"},
		{"BGE_00841_A2", "Diptera"},
		{"BGE_00500_A1", "Coleoptera"},
	})
	lab := tabular.NewTable([]string{"Sample ID", "Process ID"})

	ext := NewExtraction()
	added, err := ext.Match(merged, taxonomy, lab, map[string]bool{"BGE_00841": true})
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if added != 2 {
		t.Fatalf("expected 2 records, got %d", added)
	}

	out := ext.Table()
	if got := out.Get(0, PlateWellColumn); got != "BGE_00841_A1" {
		t.Errorf("plate/well = %q, want sample ID reused", got)
	}
	if got := out.Get(1, "Order"); got != "Diptera" {
		t.Errorf("order = %q", got)
	}
}

func TestMatchMissingColumns(t *testing.T) {
	good := mustTable(t, [][]string{{"SampleID"}, {"x"}})
	taxonomy := mustTable(t, [][]string{{"Sample ID"}, {"x"}})
	lab := tabular.NewTable([]string{"Sample ID"})

	ext := NewExtraction()
	if _, err := ext.Match(mustTable(t, [][]string{{"other"}, {"x"}}), taxonomy, lab, nil); err == nil {
		t.Error("expected error without a SampleID column")
	}
	if _, err := ext.Match(good, mustTable(t, [][]string{{"other"}, {"x"}}), lab, nil); err == nil {
		t.Error("expected error without a taxonomy Sample ID column")
	}
}
