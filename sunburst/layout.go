package sunburst

import (
	"image/color"
	"sort"
	"strings"
)

// Ring geometry, in unit coordinates later scaled by the renderer.
const (
	CenterRadius = 0.15
	MaxRadius    = 0.85
)

// Segment is one annular wedge of the chart.
type Segment struct {
	Level      int // 1-based ring number
	Start, End float64
	InnerR     float64
	OuterR     float64
	Color      color.RGBA
	Key        string
	Value      int
	Path       []string
}

// Angle returns the angular width in degrees.
func (s Segment) Angle() float64 { return s.End - s.Start }

type Config struct {
	Levels       int
	InheritLevel int     // rings up to this get distinct colors (1-based)
	SameColor    bool    // inherited rings reuse the parent color exactly
	ThresholdPct float64 // small-slice aggregation threshold, 0 disables
	OtherLabel   string
}

type Result struct {
	Segments []Segment

	// Aggregated maps ring number to the slash-joined paths folded into the
	// Other bucket there.
	Aggregated map[int][]string
}

// Layout converts the hierarchy into wedges. Children split their parent's
// angular span proportionally to subtree totals, largest first; ring 1 spans
// the full circle starting at zero degrees.
func Layout(root *Node, cfg Config) *Result {
	res := &Result{Aggregated: map[int][]string{}}

	ringWidth := (MaxRadius - CenterRadius) / float64(cfg.Levels)
	radii := make([]float64, cfg.Levels+1)
	for i := range radii {
		radii[i] = CenterRadius + float64(i)*ringWidth
	}

	res.walk(root.Children, 0, 0, 360, color.RGBA{}, nil, radii, cfg)
	return res
}

func (res *Result) walk(children map[string]*Node, level int, start, span float64, parent color.RGBA, path []string, radii []float64, cfg Config) {
	if level >= cfg.Levels || len(children) == 0 {
		return
	}

	// Small-slice bucketing per level, but never inside an Other bucket
	if cfg.ThresholdPct > 0 && !pathContains(path, cfg.OtherLabel) {
		levelTotal := 0
		for _, child := range children {
			levelTotal += child.Total()
		}

		var folded []string
		children, folded = Aggregate(children, cfg.ThresholdPct, levelTotal, cfg.OtherLabel)
		for _, key := range folded {
			res.Aggregated[level+1] = append(res.Aggregated[level+1], strings.Join(append(append([]string{}, path...), key), "/"))
		}
	}

	type item struct {
		key   string
		node  *Node
		total int
	}
	items := make([]item, 0, len(children))
	levelTotal := 0
	for key, child := range children {
		total := child.Total()
		items = append(items, item{key, child, total})
		levelTotal += total
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].total != items[j].total {
			return items[i].total > items[j].total
		}
		return items[i].key < items[j].key
	})

	var colors []color.RGBA
	switch {
	case level+1 <= cfg.InheritLevel:
		colors = DistinctColors(len(items))
	case cfg.SameColor:
		colors = make([]color.RGBA, len(items))
		for i := range colors {
			colors[i] = parent
		}
	default:
		colors = Variations(parent, len(items))
	}

	angle := start
	for i, it := range items {
		size := 0.0
		if levelTotal > 0 {
			size = float64(it.total) / float64(levelTotal) * span
		}

		segPath := append(append([]string{}, path...), it.key)
		res.Segments = append(res.Segments, Segment{
			Level:  level + 1,
			Start:  angle,
			End:    angle + size,
			InnerR: radii[level],
			OuterR: radii[level+1],
			Color:  colors[i],
			Key:    it.key,
			Value:  it.total,
			Path:   segPath,
		})

		if !it.node.Leaf() {
			res.walk(it.node.Children, level+1, angle, size, colors[i], segPath, radii, cfg)
		}

		angle += size
	}
}

func pathContains(path []string, label string) bool {
	for _, p := range path {
		if p == label {
			return true
		}
	}
	return false
}
