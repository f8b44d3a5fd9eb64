package bidi

// reorderVisual implements L2: reverse maximal contiguous runs of positions
// at or above each level, from the highest level down to the lowest odd
// level, over the positions not marked removed.
func reorderVisual(levels []Level) []int {
	order := make([]int, 0, len(levels))
	hi, lo := Level(0), Level(1<<30)
	for i, lvl := range levels {
		if lvl.Removed() {
			continue
		}
		order = append(order, i)
		if lvl > hi {
			hi = lvl
		}
		if lvl < lo {
			lo = lvl
		}
	}
	if len(order) == 0 {
		return order
	}
	if lo%2 == 0 {
		lo++
	}

	for level := hi; level >= lo; level-- {
		i := 0
		for i < len(order) {
			if levels[order[i]] < level {
				i++
				continue
			}
			j := i
			for j < len(order) && levels[order[j]] >= level {
				j++
			}
			reverseInts(order[i:j])
			i = j
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
