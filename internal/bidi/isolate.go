package bidi

// buildIsolatedRunList linearizes a paragraph's types into a tree of runs:
// each isolate initiator (LRI/RLI/FSI) starts a nested child RunList
// terminated by a matching PDI; unmatched initiators are left with an open
// child list, to be recursed into at paragraph end as if terminated.
//
// offset is the absolute input index of types[0], so every Run produced
// carries ranges in terms of the original document, not the paragraph.
func buildIsolatedRunList(types []Type, offset int) *RunList {
	base := &RunList{}
	target := base
	stack := []*RunList{base}

	for i, t := range types {
		run := newSingleton(offset+i, t)

		switch {
		case t.IsIsolateInitiator():
			run.OrigType = t
			children := &RunList{}
			run.Children = children
			target.push(run)
			stack = append(stack, target)
			target = children

		case t == PDI && len(stack) > 1:
			target = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			target.push(run)

		default:
			target.push(run)
		}
	}

	return base
}
