package tabular

import (
	"reflect"
	"testing"
)

func TestFromRecords(t *testing.T) {
	records := [][]string{
		{"Sample ID", "Country", "Count"},
		{"BGE_00001_A1", "Germany", "3"},
		{"BGE_00001_A2", "France"},
	}

	tab, err := FromRecords(records)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	if got := tab.NumRows(); got != 2 {
		t.Fatalf("expected 2 rows, got %d", got)
	}
	if got := tab.NumCols(); got != 3 {
		t.Fatalf("expected 3 columns, got %d", got)
	}

	// Ragged rows are padded with empty cells.
	if got := tab.Get(1, "Count"); got != "" {
		t.Errorf("expected padded empty cell, got %q", got)
	}
	if got := tab.Get(0, "Country"); got != "Germany" {
		t.Errorf("expected Germany, got %q", got)
	}
}

func TestFromRecordsEmpty(t *testing.T) {
	if _, err := FromRecords(nil); err == nil {
		t.Error("expected error for empty records")
	}
}

func TestRenameAndDrop(t *testing.T) {
	tab, err := FromRecords([][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	tab.Rename("b", "B")
	if !tab.HasCol("B") || tab.HasCol("b") {
		t.Fatalf("rename failed; cols: %v", tab.Cols())
	}
	if got := tab.Get(0, "B"); got != "2" {
		t.Errorf("expected 2, got %q", got)
	}

	tab.Drop("a")
	if tab.HasCol("a") {
		t.Errorf("column a still present after Drop")
	}
	if got := tab.NumCols(); got != 2 {
		t.Errorf("expected 2 columns after drop, got %d", got)
	}
	if got := tab.Get(0, "c"); got != "3" {
		t.Errorf("expected 3 after drop, got %q", got)
	}
}

func TestReorder(t *testing.T) {
	tab, err := FromRecords([][]string{
		{"a", "b", "c"},
		{"1", "2", "3"},
		{"4", "5", "6"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	if err := tab.Reorder([]string{"c", "a", "b"}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}
	if got := tab.Cols(); !reflect.DeepEqual(got, []string{"c", "a", "b"}) {
		t.Fatalf("unexpected column order: %v", got)
	}
	if got := tab.Row(1); !reflect.DeepEqual(got, []string{"6", "4", "5"}) {
		t.Errorf("unexpected row after reorder: %v", got)
	}

	// Reorder requires a full permutation of the existing columns.
	if err := tab.Reorder([]string{"a", "b"}); err == nil {
		t.Error("expected error for incomplete reorder")
	}
	if err := tab.Reorder([]string{"a", "b", "x"}); err == nil {
		t.Error("expected error for unknown column in reorder")
	}
}

func TestDropDuplicates(t *testing.T) {
	tab, err := FromRecords([][]string{
		{"Sample ID", "v"},
		{"s1", "first"},
		{"s2", "x"},
		{"s1", "second"},
		{"s3", "y"},
		{"s2", "z"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	dropped := tab.DropDuplicates("Sample ID")
	if dropped != 2 {
		t.Fatalf("expected 2 dropped, got %d", dropped)
	}
	if got := tab.NumRows(); got != 3 {
		t.Fatalf("expected 3 rows, got %d", got)
	}

	// The first occurrence is the one kept.
	if got := tab.Get(0, "v"); got != "first" {
		t.Errorf("expected first occurrence kept, got %q", got)
	}
}

func TestAddColPads(t *testing.T) {
	tab, err := FromRecords([][]string{
		{"a"},
		{"1"},
		{"2"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	tab.AddCol("b")
	if got := tab.Get(1, "b"); got != "" {
		t.Errorf("expected empty cell in new column, got %q", got)
	}
	tab.Set(1, "b", "filled")
	if got := tab.Get(1, "b"); got != "filled" {
		t.Errorf("Set on new column failed, got %q", got)
	}
}
