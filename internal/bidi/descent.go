package bidi

// resolveRunList is the shared engine behind both a paragraph's top level
// and every isolate's child list: it applies X1-X9, recurses into any
// isolate it finds (4.6), then runs W1-W7/N1-N2/I1-I2 per level-run and
// writes the resulting levels into the shared, paragraph-wide levels slice.
//
// raw is the run list as produced by buildIsolatedRunList (untouched by
// explicit processing yet); level is the embedding level this list itself
// resolves against -- the paragraph level at the top, or the already-raised
// child level during isolate descent.
func resolveRunList(raw []*Run, level Level, levels []Level) {
	surviving, removed := applyExplicit(raw, level)
	for _, rg := range removed {
		markRemoved(levels, rg)
	}

	for _, r := range surviving {
		if r.Children == nil {
			continue
		}
		childLevel := childEmbeddingLevel(r)
		resolveRunList(r.Children.Runs, childLevel, levels)
		r.Children = nil
	}

	groups := splitLevelRuns(surviving)
	resolved := make([]*Run, 0, len(surviving))
	for i, group := range groups {
		sor, eor := sorEorFor(groups, i, level)
		g := applyWeakRules(group.runs, sor, eor)
		g = applyNeutralRules(g, sor, eor)
		resolved = append(resolved, g...)
	}
	resolved = applyImplicitRules(resolved)

	for _, r := range resolved {
		writeLevels(levels, r)
	}
}

// childEmbeddingLevel implements 4.6: compute the child paragraph's base
// level from its initiator kind (FSI/LRI/RLI), then raise it to at least
// one above the parent run's own level, preserving the parity P2/P3 chose.
func childEmbeddingLevel(isolateRun *Run) Level {
	base := childBaseFor(isolateRun.OrigType)
	computed := paragraphEmbeddingLevel(isolateRun.Children.Runs, base)
	return raiseToAtLeast(computed, isolateRun.Level+1)
}

func childBaseFor(origType Type) BaseDirection {
	switch origType {
	case FSI:
		return Auto
	case LRI:
		return LeftToRight
	case RLI:
		return RightToLeft
	default:
		return Auto
	}
}

// raiseToAtLeast raises level to at least min, then adds one more if doing
// so changed its parity, so the child keeps the direction 4.4 chose for it
// while still nesting strictly above the parent.
func raiseToAtLeast(level, min Level) Level {
	raised := level
	if raised < min {
		raised = min
	}
	if raised%2 != level%2 {
		raised++
	}
	return raised
}

func markRemoved(levels []Level, rg byteRange) {
	for i := rg.Start; i < rg.End; i++ {
		levels[i] = LevelRemoved
	}
}

func writeLevels(levels []Level, r *Run) {
	for _, rg := range r.Ranges {
		for i := rg.Start; i < rg.End; i++ {
			levels[i] = r.Level
		}
	}
}
