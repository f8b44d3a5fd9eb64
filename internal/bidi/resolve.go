package bidi

import (
	"context"

	"bidi/internal/bidierr"
	"bidi/internal/workpool"
)

// validTypes is the closed set of bidirectional type codes this package
// understands.
var validTypes = map[Type]bool{
	L: true, R: true, AL: true, EN: true, ES: true, ET: true, AN: true,
	CS: true, NSM: true, BN: true, B: true, S: true, WS: true, ON: true,
	LRE: true, LRO: true, RLE: true, RLO: true, PDF: true,
	LRI: true, RLI: true, FSI: true, PDI: true,
}

// Validate reports an error naming the offending token if any element of
// types is not one of the closed set of bidirectional type codes.
func Validate(types []Type) error {
	for i, t := range types {
		if !validTypes[t] {
			return bidierr.NewUnknownType(string(t), i)
		}
	}
	return nil
}

// Resolve runs the full pipeline -- paragraph splitting, isolate
// linearization, explicit levels, weak/neutral/implicit resolution, L1
// line reset, and L2 reordering -- over types, treating the entire input as
// one line (the caller is responsible for any finer line-breaking; see
// ResolveDocument for fanning multiple paragraphs out concurrently).
//
// levels[i] is the resolved embedding level at position i, or LevelRemoved
// for positions removed by X9. order lists the surviving positions in
// visual order; len(order) <= len(types) and len(levels) == len(types).
//
// Bracket-pair resolution (BD16/N0) is not implemented: neutrals resolve
// via N1/N2 only.
func Resolve(types []Type, base BaseDirection) (levels []Level, order []int) {
	levels = make([]Level, len(types))
	for _, pr := range splitParagraphs(types) {
		resolveParagraph(types[pr.Start:pr.End], pr.Start, base, levels)
	}
	order = reorderVisual(levels)
	return levels, order
}

// ResolveDocument is Resolve's concurrent sibling: each paragraph is
// resolved on its own worker-pool goroutine (per the pipeline's §5
// concurrency model -- paragraphs are independent of one another), and the
// document-wide L2 reorder runs once the last paragraph's levels have been
// written. Results are assembled by paragraph index, not completion order,
// so output is identical to Resolve's for the same input.
func ResolveDocument(ctx context.Context, types []Type, base BaseDirection) (levels []Level, order []int, err error) {
	levels = make([]Level, len(types))
	paragraphs := splitParagraphs(types)

	err = workpool.Run(ctx, 0, paragraphs, func(_ int, pr byteRange) error {
		resolveParagraph(types[pr.Start:pr.End], pr.Start, base, levels)
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	order = reorderVisual(levels)
	return levels, order, nil
}

// resolveParagraph runs the pipeline for one paragraph's span [offset,
// offset+len(paraTypes)) of the document, writing its levels into the
// shared, document-wide levels slice.
func resolveParagraph(paraTypes []Type, offset int, base BaseDirection, levels []Level) {
	raw := buildIsolatedRunList(paraTypes, offset)
	parLevel := paragraphEmbeddingLevel(raw.Runs, base)

	resolveRunList(raw.Runs, parLevel, levels)

	applyLineReset(levels[offset:offset+len(paraTypes)], parLevel, paraTypes)
}
