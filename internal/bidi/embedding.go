package bidi

// paragraphEmbeddingLevel implements P2/P3/HL1: the base embedding level for
// a paragraph given its top-level runs and a base direction hint. Isolates on
// the top level do not alter this -- runs is exactly the top-level run list
// from buildIsolatedRunList, so positions nested inside isolate children are
// not examined here.
func paragraphEmbeddingLevel(runs []*Run, base BaseDirection) Level {
	switch Type(base) {
	case L:
		return 0
	case R:
		return 1
	case ON:
		for _, r := range runs {
			if r.Type.IsStrong() {
				if r.Type == AL || r.Type == R {
					return 1
				}
				return 0
			}
		}
		return 0
	default:
		return 0
	}
}
