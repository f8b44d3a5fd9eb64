package bidi

// applyNeutralRules runs the N1-N2 pre-step and rules over one level-run.
// Bracket-pair resolution (BD16/N0) is intentionally not implemented --
// neutrals are resolved by N1/N2 alone.
func applyNeutralRules(runs []*Run, sor, eor Type) []*Run {
	runs = coalesceNeutralsAndIsolates(runs)
	runs = neutralN1(runs, sor, eor)
	runs = neutralN2(runs)
	return runs
}

// coalesceNeutralsAndIsolates retypes every run whose type is a neutral or
// an isolate marker (B, S, WS, ON, FSI, LRI, RLI, PDI) to ON, then
// recompacts so a stretch of mixed neutral/isolate types is seen as one run
// by N1.
func coalesceNeutralsAndIsolates(runs []*Run) []*Run {
	for _, r := range runs {
		if r.Type.IsNeutralOrIsolate() {
			r.Type = ON
		}
	}
	return compact(runs)
}

// nOrSubstitute maps EN/AN to R for N1's adjacency comparison; every other
// type (L, R, or a yet-unresolved ON from a preceding window) passes through.
func nOrSubstitute(t Type) Type {
	if t == R || t == EN || t == AN {
		return R
	}
	return t
}

// N1: a run of neutrals takes the direction of its neighbours when both
// sides (R/EN/AN treated as R) agree.
func neutralN1(runs []*Run, sor, eor Type) []*Run {
	for i, r := range runs {
		if r.Type != ON {
			continue
		}
		p := nOrSubstitute(neighborType(runs, i-1, sor, eor))
		n := nOrSubstitute(neighborType(runs, i+1, sor, eor))
		if p == n {
			r.Type = p
		}
	}
	return compact(runs)
}

// N2: any neutral that N1 left unresolved takes the embedding direction.
func neutralN2(runs []*Run) []*Run {
	for _, r := range runs {
		if r.Type == ON {
			r.Type = lOrRFor(r.Level)
		}
	}
	return compact(runs)
}
