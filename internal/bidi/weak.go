package bidi

// neighborType returns the type immediately to the left (i<0) or right
// (i>=len(runs)) of the window at i, substituting the sor/eor sentinel at
// the level-run's edges.
func neighborType(runs []*Run, i int, sor, eor Type) Type {
	if i < 0 {
		return sor
	}
	if i >= len(runs) {
		return eor
	}
	return runs[i].Type
}

// applyWeakRules runs W1-W7 over one level-run, in order, compacting after
// each rule. Each rule mutates only the run under consideration; a rule that
// reads a neighbour's type sees whatever that neighbour currently holds,
// including any change an earlier position in the same pass already made --
// this is what lets a chain of adjacent NSMs (W1) or ETs (W5) resolve
// left-to-right in one pass instead of needing a fixed point loop.
func applyWeakRules(runs []*Run, sor, eor Type) []*Run {
	runs = weakW1(runs, sor, eor)
	runs = weakW2(runs)
	runs = weakW3(runs)
	runs = weakW4(runs, sor, eor)
	runs = weakW5(runs, sor, eor)
	runs = weakW6(runs)
	runs = weakW7(runs)
	return runs
}

// W1: a non-spacing mark takes the type of the character before it, or sor.
func weakW1(runs []*Run, sor, eor Type) []*Run {
	for i, r := range runs {
		if r.Type == NSM {
			r.Type = neighborType(runs, i-1, sor, eor)
		}
	}
	return compact(runs)
}

// W2: a European number takes type AN if the last strong type seen (L, R,
// or AL; sor counts as neither, so the accumulator starts at ON) was AL.
func weakW2(runs []*Run) []*Run {
	lastStrong := ON
	for _, r := range runs {
		if r.Type == EN && lastStrong == AL {
			r.Type = AN
		}
		lastStrong = lastStrongAccumulator(lastStrong, r)
	}
	return compact(runs)
}

// W3: Arabic letters become R.
func weakW3(runs []*Run) []*Run {
	for _, r := range runs {
		if r.Type == AL {
			r.Type = R
		}
	}
	return compact(runs)
}

// W4: a single European separator between two European numbers becomes EN;
// a single common separator between two numbers of the same type (EN or AN)
// takes that type. Only single-character runs qualify.
func weakW4(runs []*Run, sor, eor Type) []*Run {
	for i, r := range runs {
		if r.Len() != 1 {
			continue
		}
		prev := neighborType(runs, i-1, sor, eor)
		next := neighborType(runs, i+1, sor, eor)
		switch r.Type {
		case ES:
			if prev == EN && next == EN {
				r.Type = EN
			}
		case CS:
			if prev == next && (prev == EN || prev == AN) {
				r.Type = prev
			}
		}
	}
	return compact(runs)
}

// W5: a run of European terminators adjacent to a European number becomes EN.
func weakW5(runs []*Run, sor, eor Type) []*Run {
	for i, r := range runs {
		if r.Type != ET {
			continue
		}
		prev := neighborType(runs, i-1, sor, eor)
		next := neighborType(runs, i+1, sor, eor)
		if prev == EN || next == EN {
			r.Type = EN
		}
	}
	return compact(runs)
}

// W6: remaining separators and terminators become ON.
func weakW6(runs []*Run) []*Run {
	for _, r := range runs {
		switch r.Type {
		case ET, ES, CS:
			r.Type = ON
		}
	}
	return compact(runs)
}

// W7: a European number takes type L if the last strong type seen was L.
func weakW7(runs []*Run) []*Run {
	lastStrong := ON
	for _, r := range runs {
		if r.Type == EN && lastStrong == L {
			r.Type = L
		}
		lastStrong = lastStrongAccumulator(lastStrong, r)
	}
	return compact(runs)
}
