package sunburst

// Aggregate buckets children whose subtree total falls below thresholdPct
// percent of levelTotal into a single leaf labeled otherLabel. Aggregation
// only happens when at least two children are small, so a lone small slice
// is never hidden. It returns the (possibly new) child map plus the keys that
// were folded away.
func Aggregate(children map[string]*Node, thresholdPct float64, levelTotal int, otherLabel string) (map[string]*Node, []string) {
	if thresholdPct <= 0 || len(children) == 0 {
		return children, nil
	}

	thresholdCount := thresholdPct / 100.0 * float64(levelTotal)

	main := make(map[string]*Node, len(children))
	var smallKeys []string
	otherTotal := 0

	for key, child := range children {
		if total := child.Total(); float64(total) >= thresholdCount {
			main[key] = child
		} else {
			smallKeys = append(smallKeys, key)
			otherTotal += total
		}
	}

	if len(smallKeys) < 2 || otherTotal == 0 {
		return children, nil
	}

	main[otherLabel] = &Node{Count: otherTotal}
	return main, smallKeys
}
