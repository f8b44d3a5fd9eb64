package bidi

// explicitFrame is the (level, directional override) state X1 pushes and
// pops as it walks embedding initiators and PDFs. Isolate initiators push no
// frame here; their interiors are resolved by the recursive descent of 4.6.
type explicitFrame struct {
	level    Level
	override Type // ON, L, or R
}

// explicitState is the X1-X9 stack machine's mutable state, threaded across
// one run list (one call covers one paragraph's top level, or one isolate
// child list during the recursive descent of 4.6).
type explicitState struct {
	frame        explicitFrame
	stack        []explicitFrame
	invalidCount int
}

func newExplicitState(level Level) *explicitState {
	return &explicitState{frame: explicitFrame{level: level, override: ON}}
}

// push installs a new frame for an accepted embedding or override,
// after recording the current frame on the stack.
func (s *explicitState) push(level Level, override Type) {
	s.stack = append(s.stack, s.frame)
	s.frame = explicitFrame{level: level, override: override}
}

// pop restores the most recently pushed frame, if any.
func (s *explicitState) pop() {
	if n := len(s.stack); n > 0 {
		s.frame = s.stack[n-1]
		s.stack = s.stack[:n-1]
	}
}

// resetToBottom implements the B-before-X6 termination: it collapses the
// stack back to its bottom frame (the paragraph's own), clearing every
// pushed embedding. Per the distilled spec this must run before the run's
// own level is assigned, so B receives the paragraph level, not the level
// of whatever embedding it terminates.
func (s *explicitState) resetToBottom() {
	if len(s.stack) > 0 {
		s.frame = s.stack[0]
		s.stack = nil
	}
}

// applyExplicit runs X1-X9 over runs in left-to-right order. It returns a
// compacted run list of the surviving (non-removed) runs for the weak/
// neutral/implicit phases to continue on, plus the ranges X9 stripped --
// those positions carry no further run but must still be reported as
// LevelRemoved in the final per-position output.
func applyExplicit(runs []*Run, parLevel Level) (surviving []*Run, removed []byteRange) {
	state := newExplicitState(parLevel)
	out := make([]*Run, 0, len(runs))

	for _, r := range runs {
		switch {
		case r.Type.IsEmbeddingInitiator():
			applyEmbeddingInitiator(state, r)

		case r.Type == B && len(state.stack) > 0:
			state.resetToBottom()
		}

		if !isExemptFromLevelAssignment(r.Type) {
			r.Level = state.frame.level
			if state.frame.override != ON {
				r.Type = state.frame.override
			}
		}

		if r.Type == PDF {
			for i := 0; i < r.Len(); i++ {
				if state.invalidCount > 0 {
					state.invalidCount--
				} else if len(state.stack) > 0 {
					state.pop()
				}
			}
		}

		if r.Type.IsRemovedByX9() {
			r.Level = LevelRemoved
		}

		out = append(out, r)
	}

	for _, r := range out {
		if r.Level.Removed() {
			removed = append(removed, r.Ranges...)
		}
	}

	return compact(dropRemoved(out)), removed
}

// isExemptFromLevelAssignment reports whether t is excluded from the
// "set run.level from current state" bucket: {BN, RLE, LRE, RLO, LRO, PDF}.
func isExemptFromLevelAssignment(t Type) bool {
	switch t {
	case BN, RLE, LRE, RLO, LRO, PDF:
		return true
	default:
		return false
	}
}

// applyEmbeddingInitiator applies X2-X5 once per input position covered by
// run (a run may span several consecutive positions of the same initiator
// type), since each position observes and mutates the stack in sequence.
func applyEmbeddingInitiator(state *explicitState, run *Run) {
	var override Type
	var makeOdd bool
	switch run.Type {
	case RLE:
		override, makeOdd = ON, true
	case LRE:
		override, makeOdd = ON, false
	case RLO:
		override, makeOdd = R, true
	case LRO:
		override, makeOdd = L, false
	}

	for i := 0; i < run.Len(); i++ {
		var candidate Level
		if makeOdd {
			candidate = leastGreaterOdd(state.frame.level)
		} else {
			candidate = leastGreaterEven(state.frame.level)
		}
		if state.invalidCount == 0 && candidate >= 0 && candidate <= maxExplicitLevel {
			state.push(candidate, override)
		} else {
			state.invalidCount++
		}
	}
}

// dropRemoved filters out runs marked removed by X9, preserving order.
func dropRemoved(runs []*Run) []*Run {
	out := make([]*Run, 0, len(runs))
	for _, r := range runs {
		if !r.Level.Removed() {
			out = append(out, r)
		}
	}
	return out
}
