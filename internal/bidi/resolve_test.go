package bidi

import (
	"context"
	"reflect"
	"testing"
)

func TestResolveConcreteScenarios(t *testing.T) {
	tests := []struct {
		name       string
		types      []Type
		base       BaseDirection
		wantLevels []Level
		wantOrder  []int
	}{
		{
			name:       "all L, auto base",
			types:      []Type{L, L, L},
			base:       Auto,
			wantLevels: []Level{0, 0, 0},
			wantOrder:  []int{0, 1, 2},
		},
		{
			name:       "all R, auto base",
			types:      []Type{R, R, R},
			base:       Auto,
			wantLevels: []Level{1, 1, 1},
			wantOrder:  []int{2, 1, 0},
		},
		{
			name:       "L R L, auto base",
			types:      []Type{L, R, L},
			base:       Auto,
			wantLevels: []Level{0, 1, 0},
			wantOrder:  []int{0, 1, 2},
		},
		{
			name:       "R L R, forced RTL base",
			types:      []Type{R, L, R},
			base:       RightToLeft,
			wantLevels: []Level{1, 2, 1},
			wantOrder:  []int{2, 1, 0},
		},
		{
			name:       "embedding opened and closed, forced LTR base",
			types:      []Type{L, RLE, R, R, PDF, L},
			base:       LeftToRight,
			wantLevels: []Level{0, LevelRemoved, 1, 1, LevelRemoved, 0},
			wantOrder:  []int{0, 3, 2, 5},
		},
		{
			name:       "EN resolves to L under W7, auto base",
			types:      []Type{L, EN, L},
			base:       Auto,
			wantLevels: []Level{0, 0, 0},
			wantOrder:  []int{0, 1, 2},
		},
		{
			// The RLI/PDI pair isolates R at a recursively-raised level 1;
			// the isolate markers themselves stay at the paragraph's own
			// level and are coalesced into the surrounding L as one
			// neutral run by N1, exactly as BD13 treats an isolating run
			// sequence as a single unit at its enclosing level.
			name:       "isolate nests a single run at a raised level",
			types:      []Type{L, RLI, R, PDI, L},
			base:       Auto,
			wantLevels: []Level{0, 0, 1, 0, 0},
			wantOrder:  []int{0, 1, 2, 3, 4},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			levels, order := Resolve(tc.types, tc.base)
			if !reflect.DeepEqual(levels, tc.wantLevels) {
				t.Errorf("levels = %v, want %v", levels, tc.wantLevels)
			}
			if !reflect.DeepEqual(order, tc.wantOrder) {
				t.Errorf("order = %v, want %v", order, tc.wantOrder)
			}
		})
	}
}

func TestResolveDocumentMatchesResolve(t *testing.T) {
	types := []Type{L, R, L, B, R, L, R}
	wantLevels, wantOrder := Resolve(types, Auto)

	gotLevels, gotOrder, err := ResolveDocument(context.Background(), types, Auto)
	if err != nil {
		t.Fatalf("ResolveDocument returned error: %v", err)
	}
	if !reflect.DeepEqual(gotLevels, wantLevels) {
		t.Errorf("levels = %v, want %v", gotLevels, wantLevels)
	}
	if !reflect.DeepEqual(gotOrder, wantOrder) {
		t.Errorf("order = %v, want %v", gotOrder, wantOrder)
	}
}

func TestResolveDocumentRespectsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	types := make([]Type, 0, 200)
	for i := 0; i < 100; i++ {
		types = append(types, L, B)
	}

	_, _, err := ResolveDocument(ctx, types, Auto)
	if err == nil {
		t.Fatalf("expected a cancellation error, got nil")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate([]Type{L, R, EN, AN, B}); err != nil {
		t.Errorf("Validate rejected well-formed input: %v", err)
	}

	err := Validate([]Type{L, "XX", R})
	if err == nil {
		t.Fatalf("expected an error for an unknown type code, got nil")
	}
}

func TestResolveEmptyInput(t *testing.T) {
	levels, order := Resolve(nil, Auto)
	if len(levels) != 0 {
		t.Errorf("levels = %v, want empty", levels)
	}
	if len(order) != 0 {
		t.Errorf("order = %v, want empty", order)
	}
}
