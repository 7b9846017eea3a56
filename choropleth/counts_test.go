package choropleth

import (
	"reflect"
	"testing"

	"github.com/bge-barcoding/boldtools/tabular"
)

func TestCountByCountry(t *testing.T) {
	tab, err := tabular.FromRecords([][]string{
		{"Country", "Sample ID"},
		{"Germany", "s1"},
		{"Germany", "s2"},
		{"Germany", "s2"},
		{"Austria", "s3"},
		{"Austria", "s4"},
		{"Norway", "s5"},
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}

	counts, err := CountByCountry(tab, "Country", "", false)
	if err != nil {
		t.Fatalf("CountByCountry: %v", err)
	}

	want := []CountryCount{
		{"Germany", 3},
		{"Austria", 2},
		{"Norway", 1},
	}
	if !reflect.DeepEqual(counts, want) {
		t.Fatalf("counts = %v, want %v", counts, want)
	}
	if got := MaxCount(counts); got != 3 {
		t.Errorf("MaxCount = %d, want 3", got)
	}

	// Unique sample counting collapses the duplicate s2 row, tying Germany
	// with Austria; the tie breaks alphabetically.
	unique, err := CountByCountry(tab, "Country", "Sample ID", true)
	if err != nil {
		t.Fatalf("CountByCountry unique: %v", err)
	}
	wantUnique := []CountryCount{
		{"Austria", 2},
		{"Germany", 2},
		{"Norway", 1},
	}
	if !reflect.DeepEqual(unique, wantUnique) {
		t.Fatalf("unique counts = %v, want %v", unique, wantUnique)
	}
}

func TestMaxCountEmpty(t *testing.T) {
	if got := MaxCount(nil); got != 0 {
		t.Errorf("MaxCount(nil) = %d", got)
	}
}
