package bidi

// applyLineReset implements L1 over one paragraph's span: scanning
// right-to-left, trailing whitespace and isolate markers immediately before
// a segment/paragraph separator (or the end of the line) are reset to the
// paragraph's own embedding level. origTypes is the pre-resolution type
// array for the same span; levels is mutated in place.
func applyLineReset(levels []Level, parLevel Level, origTypes []Type) {
	reset := true
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i].Removed() {
			continue
		}
		switch {
		case origTypes[i] == S || origTypes[i] == B:
			reset = true
		case !isResetExempt(origTypes[i]):
			reset = false
		}
		if reset {
			levels[i] = parLevel
		}
	}
}

// isResetExempt reports whether t is one of the whitespace/isolate-marker
// types that do not end an L1 reset window: {WS, FSI, LRI, RLI, PDI}.
func isResetExempt(t Type) bool {
	switch t {
	case WS, FSI, LRI, RLI, PDI:
		return true
	default:
		return false
	}
}
