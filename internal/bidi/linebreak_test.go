package bidi

import (
	"reflect"
	"testing"
)

func TestApplyLineResetTrailingWhitespaceToParagraphLevel(t *testing.T) {
	levels := []Level{2, 2, 2}
	applyLineReset(levels, 0, []Type{R, R, WS})
	want := []Level{2, 2, 0}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
}

func TestApplyLineResetStopsAtNonExemptCharacter(t *testing.T) {
	levels := []Level{2, 2, 2, 2}
	applyLineReset(levels, 0, []Type{R, L, WS, WS})
	want := []Level{2, 2, 0, 0}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
}

func TestApplyLineResetSegmentSeparatorReopensWindow(t *testing.T) {
	// The trailing WS resets on its own; the non-exempt R before it closes
	// that window, but the S itself -- a segment separator -- always resets
	// to the paragraph level regardless of the window state.
	levels := []Level{2, 2, 2, 2}
	applyLineReset(levels, 0, []Type{R, S, R, WS})
	want := []Level{2, 0, 2, 0}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
}

func TestApplyLineResetSkipsRemovedPositions(t *testing.T) {
	levels := []Level{2, LevelRemoved, 2}
	applyLineReset(levels, 0, []Type{R, RLE, WS})
	want := []Level{2, LevelRemoved, 0}
	if !reflect.DeepEqual(levels, want) {
		t.Errorf("levels = %v, want %v", levels, want)
	}
}

func TestIsResetExempt(t *testing.T) {
	for _, ty := range []Type{WS, FSI, LRI, RLI, PDI} {
		if !isResetExempt(ty) {
			t.Errorf("%v should be reset-exempt", ty)
		}
	}
	for _, ty := range []Type{L, R, EN, ON, S, B} {
		if isResetExempt(ty) {
			t.Errorf("%v should not be reset-exempt", ty)
		}
	}
}
