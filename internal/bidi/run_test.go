package bidi

import (
	"reflect"
	"testing"

	"bidi/internal/bidierr"
)

func TestRunAppendMergesAdjacentRanges(t *testing.T) {
	a := newSingleton(0, L)
	b := newSingleton(1, L)

	if err := a.append(b); err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	want := []byteRange{{Start: 0, End: 2}}
	if !reflect.DeepEqual(a.Ranges, want) {
		t.Errorf("Ranges = %v, want %v", a.Ranges, want)
	}
}

func TestRunAppendConcatenatesNonAdjacentRanges(t *testing.T) {
	a := newSingleton(0, L)
	b := newSingleton(5, L)

	if err := a.append(b); err != nil {
		t.Fatalf("append returned error: %v", err)
	}
	want := []byteRange{{Start: 0, End: 1}, {Start: 5, End: 6}}
	if !reflect.DeepEqual(a.Ranges, want) {
		t.Errorf("Ranges = %v, want %v", a.Ranges, want)
	}
}

func TestRunAppendMismatch(t *testing.T) {
	tests := []struct {
		name string
		a, b *Run
		attr bidierr.MismatchAttr
	}{
		{"type", newSingleton(0, L), newSingleton(1, R), bidierr.AttrType},
		{"level", &Run{Ranges: []byteRange{{0, 1}}, Type: L, Level: 0}, &Run{Ranges: []byteRange{{1, 2}}, Type: L, Level: 1}, bidierr.AttrLevel},
		{"children", &Run{Ranges: []byteRange{{0, 1}}, Type: L}, &Run{Ranges: []byteRange{{1, 2}}, Type: L, Children: &RunList{}}, bidierr.AttrChildren},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.a.append(tc.b)
			if err == nil {
				t.Fatalf("expected a Mismatch error, got nil")
			}
			if !bidierr.IsMismatch(err) {
				t.Errorf("expected IsMismatch to report true for %v", err)
			}
		})
	}
}

func TestCompactIsIdempotent(t *testing.T) {
	runs := []*Run{
		newSingleton(0, L),
		newSingleton(1, L),
		newSingleton(2, R),
		newSingleton(3, R),
		newSingleton(4, R),
	}

	once := compact(runs)
	twice := compact(once)

	if len(once) != 2 {
		t.Fatalf("compact once: got %d runs, want 2", len(once))
	}
	if len(twice) != len(once) {
		t.Fatalf("compact twice changed run count: %d vs %d", len(twice), len(once))
	}
	for i := range once {
		if !reflect.DeepEqual(once[i].Ranges, twice[i].Ranges) || once[i].Type != twice[i].Type {
			t.Errorf("run %d changed across a second compact: %+v vs %+v", i, once[i], twice[i])
		}
	}
	if totalLen(twice) != 5 {
		t.Errorf("totalLen = %d, want 5", totalLen(twice))
	}
}

func TestCompactPreservesDistinctLevels(t *testing.T) {
	runs := []*Run{
		{Ranges: []byteRange{{0, 1}}, Type: L, Level: 0},
		{Ranges: []byteRange{{1, 2}}, Type: L, Level: 1},
		{Ranges: []byteRange{{2, 3}}, Type: L, Level: 0},
	}
	out := compact(runs)
	if len(out) != 3 {
		t.Fatalf("got %d runs, want 3 (levels differ, none should merge)", len(out))
	}
}

func TestLastStrongAccumulator(t *testing.T) {
	if got := lastStrongAccumulator(ON, &Run{Type: EN}); got != ON {
		t.Errorf("EN should not update the accumulator, got %v", got)
	}
	if got := lastStrongAccumulator(ON, &Run{Type: R}); got != R {
		t.Errorf("R should update the accumulator, got %v", got)
	}
}
