package bidi

import "testing"

func rangesOf(runs []*Run) []byteRange {
	var out []byteRange
	for _, r := range runs {
		out = append(out, r.Ranges...)
	}
	return out
}

func TestApplyExplicitPlainTextAssignsParagraphLevel(t *testing.T) {
	runs := singletonsOf([]Type{L, L, L})
	surviving, removed := applyExplicit(runs, 0)
	if len(removed) != 0 {
		t.Errorf("expected no removed ranges, got %v", removed)
	}
	if len(surviving) != 1 || surviving[0].Level != 0 {
		t.Errorf("surviving = %+v, want one run at level 0", surviving)
	}
}

func TestApplyExplicitRLEOpensOddLevelAndPDFCloses(t *testing.T) {
	// L RLE R PDF L at paragraph level 0: RLE raises to 1 for its content,
	// PDF restores level 0, and both initiator/terminator are removed by X9.
	runs := singletonsOf([]Type{L, RLE, R, PDF, L})
	surviving, removed := applyExplicit(runs, 0)

	wantRemoved := []byteRange{{1, 2}, {3, 4}}
	if len(removed) != len(wantRemoved) || removed[0] != wantRemoved[0] || removed[1] != wantRemoved[1] {
		t.Errorf("removed = %v, want %v", removed, wantRemoved)
	}

	if len(surviving) != 3 {
		t.Fatalf("surviving = %+v, want 3 runs (L, R, L)", surviving)
	}
	if surviving[0].Level != 0 || surviving[0].Type != L {
		t.Errorf("first run = %+v, want L at level 0", surviving[0])
	}
	if surviving[1].Level != 1 || surviving[1].Type != R {
		t.Errorf("middle run = %+v, want R at level 1", surviving[1])
	}
	if surviving[2].Level != 0 || surviving[2].Type != L {
		t.Errorf("last run = %+v, want L at level 0", surviving[2])
	}
}

func TestApplyExplicitOverrideForcesType(t *testing.T) {
	// LRO forces everything inside it to L regardless of its own type, until PDF.
	runs := singletonsOf([]Type{LRO, R, AN, PDF})
	surviving, _ := applyExplicit(runs, 0)
	if len(surviving) != 1 {
		t.Fatalf("surviving = %+v, want the overridden span merged into one L run", surviving)
	}
	if surviving[0].Type != L {
		t.Errorf("overridden type = %v, want L", surviving[0].Type)
	}
}

func TestApplyExplicitUnmatchedPDFIsNoop(t *testing.T) {
	runs := singletonsOf([]Type{L, PDF, L})
	surviving, removed := applyExplicit(runs, 0)
	if len(removed) != 1 || removed[0] != (byteRange{1, 2}) {
		t.Errorf("removed = %v, want just the PDF position", removed)
	}
	if len(surviving) != 1 || surviving[0].Level != 0 {
		t.Errorf("surviving = %+v, want both Ls merged at level 0", surviving)
	}
}

func TestApplyExplicitBTerminatesAllEmbeddings(t *testing.T) {
	// RLE opens level 1; B (a paragraph separator appearing mid-run, as can
	// happen when a caller resolves multiple paragraphs in one call) must
	// reset to the paragraph's own level before it is itself leveled.
	runs := singletonsOf([]Type{RLE, R, B})
	surviving, _ := applyExplicit(runs, 0)
	last := surviving[len(surviving)-1]
	if last.Type != B || last.Level != 0 {
		t.Errorf("B run = %+v, want level 0", last)
	}
}

func TestApplyExplicitInvalidDepthIsCounted(t *testing.T) {
	// Pushing past maxExplicitLevel (61) must not silently wrap; every
	// rejected initiator increments invalidCount so its matching PDF is a
	// no-op rather than popping a frame it never pushed.
	runs := make([]*Run, 0, 64)
	for i := 0; i < 62; i++ {
		runs = append(runs, newSingleton(i, RLE))
	}
	runs = append(runs, newSingleton(62, L))
	surviving, _ := applyExplicit(runs, 0)
	if len(surviving) != 1 {
		t.Fatalf("surviving = %+v, want just the trailing L", surviving)
	}
	if surviving[0].Level > maxExplicitLevel {
		t.Errorf("level = %d, exceeds maxExplicitLevel %d", surviving[0].Level, maxExplicitLevel)
	}
}
