package sunburst

import (
	"testing"

	"github.com/bge-barcoding/boldtools/tabular"
)

func sampleTable(t *testing.T) *tabular.Table {
	t.Helper()
	tab, err := tabular.FromRecords([][]string{
		{"Sample-ID", "Partner_sub", "partner"},
		{"s1", "NHMW", "Museum Wien"},
		{"s2", "NHMW", "Museum Wien"},
		{"s2", "NHMW", "Museum Wien"}, // duplicate sample
		{"s3", "ZFMK", "Museum Koenig"},
		{"", "NHMW", "Museum Wien"},   // empty sample
		{"s4", "", "Museum Koenig"},   // empty level value
	})
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	return tab
}

func TestBuild(t *testing.T) {
	root, kept, err := Build(sampleTable(t), "Sample-ID", []string{"Partner_sub", "partner"}, false)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if kept != 4 {
		t.Fatalf("expected 4 rows kept, got %d", kept)
	}
	if got := root.Total(); got != 4 {
		t.Fatalf("expected total 4, got %d", got)
	}

	nhmw := root.Children["NHMW"]
	if nhmw == nil || nhmw.Leaf() {
		t.Fatal("expected NHMW interior node")
	}
	if got := nhmw.Children["Museum Wien"].Count; got != 3 {
		t.Errorf("expected Museum Wien count 3, got %d", got)
	}
}

func TestBuildUnique(t *testing.T) {
	root, kept, err := Build(sampleTable(t), "Sample-ID", []string{"Partner_sub", "partner"}, true)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	// All four valid rows contribute, but s2 is only counted once.
	if kept != 4 {
		t.Fatalf("expected 4 rows kept, got %d", kept)
	}
	if got := root.Total(); got != 3 {
		t.Fatalf("expected total 3 in unique mode, got %d", got)
	}
}

func TestBuildValidation(t *testing.T) {
	tab := sampleTable(t)

	if _, _, err := Build(tab, "Sample-ID", nil, false); err == nil {
		t.Error("expected error for no level columns")
	}
	if _, _, err := Build(tab, "Sample-ID", []string{"a", "b", "c", "d", "e", "f"}, false); err == nil {
		t.Error("expected error for too many level columns")
	}
	if _, _, err := Build(tab, "Sample-ID", []string{"missing"}, false); err == nil {
		t.Error("expected error for unknown level column")
	}
	if _, _, err := Build(tab, "missing", []string{"partner"}, false); err == nil {
		t.Error("expected error for unknown sample column")
	}
}

func TestActiveLevels(t *testing.T) {
	got := ActiveLevels([]string{"a", "", " ", "b"})
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("ActiveLevels = %v", got)
	}
}

func TestAggregate(t *testing.T) {
	children := map[string]*Node{
		"big":    {Count: 90},
		"small1": {Count: 3},
		"small2": {Count: 4},
		"small3": {Count: 3},
	}

	out, folded := Aggregate(children, 5, 100, "Other")
	if len(folded) != 3 {
		t.Fatalf("expected 3 folded keys, got %v", folded)
	}
	if out["Other"] == nil || out["Other"].Count != 10 {
		t.Fatalf("expected Other count 10, got %+v", out["Other"])
	}
	if out["big"] == nil || len(out) != 2 {
		t.Errorf("unexpected child map: %v", out)
	}
}

func TestAggregateLoneSmallSlice(t *testing.T) {
	children := map[string]*Node{
		"big":   {Count: 97},
		"small": {Count: 3},
	}

	out, folded := Aggregate(children, 5, 100, "Other")
	if folded != nil {
		t.Fatalf("lone small slice must not be folded, got %v", folded)
	}
	if len(out) != 2 || out["small"] == nil {
		t.Errorf("children changed: %v", out)
	}
}

func TestAggregateDisabled(t *testing.T) {
	children := map[string]*Node{"a": {Count: 1}, "b": {Count: 1}}
	if _, folded := Aggregate(children, 0, 2, "Other"); folded != nil {
		t.Errorf("threshold 0 must disable aggregation, got %v", folded)
	}
}
