package bold

import (
	"testing"

	"github.com/bge-barcoding/boldtools/tabular"
)

func TestStandardizeKey(t *testing.T) {
	tests := []struct {
		name            string
		header          []string
		acceptProcessID bool
		wantOriginal    string
		wantFound       bool
	}{
		{"canonical", []string{"Sample ID", "x"}, false, "Sample ID", true},
		{"no space", []string{"SampleID", "x"}, false, "SampleID", true},
		{"snake case", []string{"sample_id", "x"}, false, "sample_id", true},
		{"lowercase", []string{"sampleid", "x"}, false, "sampleid", true},
		{"missing", []string{"a", "b"}, false, "", false},
		{"process id rejected", []string{"Process ID", "x"}, false, "", false},
		{"process id accepted", []string{"Process ID", "x"}, true, "Process ID", true},
		{"process id no space", []string{"ProcessID", "x"}, true, "ProcessID", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			tab := tabular.NewTable(test.header)
			original, found := StandardizeKey(tab, test.acceptProcessID)
			if found != test.wantFound {
				t.Fatalf("found=%v, want %v", found, test.wantFound)
			}
			if original != test.wantOriginal {
				t.Errorf("original=%q, want %q", original, test.wantOriginal)
			}
			if found && !tab.HasCol(KeyColumn) {
				t.Errorf("key column not renamed; cols: %v", tab.Cols())
			}
		})
	}
}

func TestStandardizeKeyPrefersSampleID(t *testing.T) {
	tab := tabular.NewTable([]string{"Process ID", "SampleID"})
	original, found := StandardizeKey(tab, true)
	if !found || original != "SampleID" {
		t.Fatalf("expected SampleID preferred over Process ID, got %q", original)
	}
}

func TestPlateFromSampleID(t *testing.T) {
	tests := []struct {
		sampleID string
		want     string
	}{
		{"BGE_00841_A1", "BGE_00841"},
		{"BGE_00647_H12", "BGE_00647"},
		{"BGE_00841", "BGE_00841"},
		{"MUS_12345_A1", ""},
		{"BGE", ""},
		{"", ""},
	}

	for _, test := range tests {
		if got := PlateFromSampleID(test.sampleID); got != test.want {
			t.Errorf("PlateFromSampleID(%q) = %q, want %q", test.sampleID, got, test.want)
		}
	}
}

func TestPlateWell(t *testing.T) {
	if got := PlateWell("BGE_00647", "A08"); got != "BGE_00647_A08" {
		t.Errorf("PlateWell = %q", got)
	}
}
