package sunburst

import (
	"math"
	"testing"
)

func testTree() *Node {
	return &Node{Children: map[string]*Node{
		"A": {Children: map[string]*Node{
			"A1": {Count: 30},
			"A2": {Count: 30},
		}},
		"B": {Children: map[string]*Node{
			"B1": {Count: 40},
		}},
	}}
}

func TestLayoutAngles(t *testing.T) {
	res := Layout(testTree(), Config{Levels: 2, InheritLevel: 1})

	byLevel := map[int][]Segment{}
	for _, seg := range res.Segments {
		byLevel[seg.Level] = append(byLevel[seg.Level], seg)
	}

	// Ring 1 covers the full circle.
	sum := 0.0
	for _, seg := range byLevel[1] {
		sum += seg.Angle()
	}
	if math.Abs(sum-360) > 1e-9 {
		t.Fatalf("ring 1 spans %.6f degrees, want 360", sum)
	}

	// Largest subtree first: A (60) before B (40).
	if byLevel[1][0].Key != "A" || byLevel[1][1].Key != "B" {
		t.Fatalf("unexpected ring 1 order: %s, %s", byLevel[1][0].Key, byLevel[1][1].Key)
	}
	if got := byLevel[1][0].Angle(); math.Abs(got-216) > 1e-9 {
		t.Errorf("A spans %.3f degrees, want 216", got)
	}

	// Children exactly tile their parent's span.
	parent := byLevel[1][0]
	childSum := 0.0
	for _, seg := range byLevel[2] {
		if seg.Path[0] == "A" {
			childSum += seg.Angle()
			if seg.Start < parent.Start-1e-9 || seg.End > parent.End+1e-9 {
				t.Errorf("child %s [%f,%f] escapes parent [%f,%f]", seg.Key, seg.Start, seg.End, parent.Start, parent.End)
			}
		}
	}
	if math.Abs(childSum-parent.Angle()) > 1e-9 {
		t.Errorf("children of A span %.6f, parent spans %.6f", childSum, parent.Angle())
	}
}

func TestLayoutRadii(t *testing.T) {
	res := Layout(testTree(), Config{Levels: 2, InheritLevel: 1})

	for _, seg := range res.Segments {
		if seg.InnerR >= seg.OuterR {
			t.Errorf("segment %s: inner %f >= outer %f", seg.Key, seg.InnerR, seg.OuterR)
		}
		if seg.Level == 1 && seg.InnerR != CenterRadius {
			t.Errorf("ring 1 segment %s starts at %f, want %f", seg.Key, seg.InnerR, CenterRadius)
		}
		if seg.Level == 2 && math.Abs(seg.OuterR-MaxRadius) > 1e-9 {
			t.Errorf("ring 2 segment %s ends at %f, want %f", seg.Key, seg.OuterR, MaxRadius)
		}
	}
}

func TestLayoutSameColor(t *testing.T) {
	res := Layout(testTree(), Config{Levels: 2, InheritLevel: 1, SameColor: true})

	colors := map[string]Segment{}
	for _, seg := range res.Segments {
		colors[seg.Key] = seg
	}

	if colors["A1"].Color != colors["A"].Color || colors["A2"].Color != colors["A"].Color {
		t.Error("children should reuse the parent color in same-color mode")
	}
	if colors["A"].Color == colors["B"].Color {
		t.Error("ring 1 siblings should have distinct colors")
	}
}

func TestLayoutAggregation(t *testing.T) {
	root := &Node{Children: map[string]*Node{
		"big":    {Count: 94},
		"small1": {Count: 3},
		"small2": {Count: 3},
	}}

	res := Layout(root, Config{Levels: 1, InheritLevel: 1, ThresholdPct: 5, OtherLabel: "Other"})

	keys := map[string]int{}
	for _, seg := range res.Segments {
		keys[seg.Key] = seg.Value
	}
	if len(keys) != 2 || keys["Other"] != 6 || keys["big"] != 94 {
		t.Fatalf("unexpected segments: %v", keys)
	}
	if got := res.Aggregated[1]; len(got) != 2 {
		t.Errorf("expected 2 aggregated paths on ring 1, got %v", got)
	}
}
