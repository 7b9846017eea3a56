// Package sunburst builds hierarchical count trees from tabular data and
// renders them as concentric-ring charts.
package sunburst

import (
	"fmt"
	"strings"

	"github.com/carbocation/pfx"

	"github.com/bge-barcoding/boldtools/tabular"
)

// MaxLevels bounds the hierarchy depth.
const MaxLevels = 5

// Node is one category in the hierarchy. Interior nodes carry Children;
// leaves carry a Count.
type Node struct {
	Count    int
	Children map[string]*Node

	// distinct sample IDs, only while building in unique mode
	samples map[string]bool
}

// Leaf reports whether the node has no children.
func (n *Node) Leaf() bool { return n.Children == nil }

// Total is the recursive count of the subtree.
func (n *Node) Total() int {
	if n.Leaf() {
		return n.Count
	}

	total := 0
	for _, child := range n.Children {
		total += child.Total()
	}
	return total
}

// ActiveLevels filters out unset level column names, preserving order.
func ActiveLevels(levels []string) []string {
	out := make([]string, 0, len(levels))
	for _, l := range levels {
		if strings.TrimSpace(l) != "" {
			out = append(out, l)
		}
	}
	return out
}

// Build assembles the count tree from up to MaxLevels category columns. Rows
// with an empty value in the sample-ID column or any level column are
// skipped. In unique mode leaves count distinct sample IDs rather than rows.
// The returned node is a synthetic root whose children are the level-1
// categories; kept is the number of rows that contributed.
func Build(t *tabular.Table, sampleCol string, levels []string, unique bool) (root *Node, kept int, err error) {
	levels = ActiveLevels(levels)
	if len(levels) == 0 || len(levels) > MaxLevels {
		return nil, 0, pfx.Err(fmt.Errorf("need between 1 and %d level columns, got %d", MaxLevels, len(levels)))
	}

	for _, col := range append([]string{sampleCol}, levels...) {
		if !t.HasCol(col) {
			return nil, 0, pfx.Err(fmt.Errorf("column %q not found; available columns: %v", col, t.Cols()))
		}
	}

	root = &Node{Children: map[string]*Node{}}

rows:
	for i := 0; i < t.NumRows(); i++ {
		sample := strings.TrimSpace(t.Get(i, sampleCol))
		if sample == "" {
			continue
		}

		keys := make([]string, len(levels))
		for j, col := range levels {
			keys[j] = strings.TrimSpace(t.Get(i, col))
			if keys[j] == "" {
				continue rows
			}
		}

		node := root
		for j, key := range keys {
			last := j == len(keys)-1

			child, ok := node.Children[key]
			if !ok {
				child = &Node{}
				if !last {
					child.Children = map[string]*Node{}
				}
				node.Children[key] = child
			}

			if last {
				if unique {
					if child.samples == nil {
						child.samples = map[string]bool{}
					}
					if !child.samples[sample] {
						child.samples[sample] = true
						child.Count++
					}
				} else {
					child.Count++
				}
			}
			node = child
		}

		kept++
	}

	return root, kept, nil
}
