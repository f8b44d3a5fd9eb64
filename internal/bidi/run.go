package bidi

import "bidi/internal/bidierr"

// byteRange is a half-open index range [Start, End) over the original input.
type byteRange struct {
	Start, End int
}

// Run is a contiguous view over the input sharing a single type and level.
// It may gather scattered index ranges (Ranges) that share identical type
// and level, and may own a nested Children run list for isolate scopes.
type Run struct {
	Ranges   []byteRange
	Type     Type
	Level    Level
	Children *RunList

	// OrigType remembers the isolate initiator kind (FSI/LRI/RLI) that
	// created Children, used by the recursive descent (4.6) to pick the
	// child paragraph's base direction. Zero value for non-isolate runs.
	OrigType Type
}

// RunList is an ordered, non-overlapping sequence of Runs.
type RunList struct {
	Runs []*Run
}

// Len returns the number of input positions the run covers.
func (r *Run) Len() int {
	n := 0
	for _, rg := range r.Ranges {
		n += rg.End - rg.Start
	}
	return n
}

// newSingleton builds a one-position run at index i with the given type.
func newSingleton(i int, t Type) *Run {
	return &Run{
		Ranges: []byteRange{{Start: i, End: i + 1}},
		Type:   t,
		Level:  0,
	}
}

// sameAttrs reports whether r and other agree on type, level, and children,
// the precondition for append to succeed.
func (r *Run) sameAttrs(other *Run) error {
	if r.Type != other.Type {
		return bidierr.NewMismatch(bidierr.AttrType)
	}
	if r.Level != other.Level {
		return bidierr.NewMismatch(bidierr.AttrLevel)
	}
	if r.Children != other.Children {
		return bidierr.NewMismatch(bidierr.AttrChildren)
	}
	return nil
}

// append extends r with other's ranges. It fails with a Mismatch error when
// the two runs disagree on type, level, or children. On success, if r's last
// range abuts other's first range, the two ranges are merged into one;
// otherwise other's ranges are concatenated onto r's.
func (r *Run) append(other *Run) error {
	if err := r.sameAttrs(other); err != nil {
		return err
	}
	if len(other.Ranges) == 0 {
		return nil
	}
	if n := len(r.Ranges); n > 0 && r.Ranges[n-1].End == other.Ranges[0].Start {
		r.Ranges[n-1].End = other.Ranges[0].End
		r.Ranges = append(r.Ranges, other.Ranges[1:]...)
		return nil
	}
	r.Ranges = append(r.Ranges, other.Ranges...)
	return nil
}

// clone returns a shallow copy of r suitable for pushing onto a new RunList
// (Ranges is copied so later mutation of one copy's Ranges doesn't alias).
func (r *Run) clone() *Run {
	ranges := make([]byteRange, len(r.Ranges))
	copy(ranges, r.Ranges)
	return &Run{
		Ranges:   ranges,
		Type:     r.Type,
		Level:    r.Level,
		Children: r.Children,
		OrigType: r.OrigType,
	}
}

// push appends run as a new entry, attempting to extend the current last run
// first. On Mismatch (attribute disagreement) or an empty list, run is
// pushed as a new element.
func (l *RunList) push(run *Run) {
	if n := len(l.Runs); n > 0 {
		if err := l.Runs[n-1].append(run); err == nil {
			return
		}
	}
	l.Runs = append(l.Runs, run.clone())
}

// compact rebuilds l by left-folding each of its runs through push, merging
// every pair of adjacent, attribute-equal runs. Compaction is idempotent:
// running it again on an already-compacted list changes nothing.
func compact(runs []*Run) []*Run {
	out := &RunList{}
	for _, r := range runs {
		out.push(r)
	}
	return out.Runs
}

// totalLen returns the number of input positions covered by runs.
func totalLen(runs []*Run) int {
	n := 0
	for _, r := range runs {
		n += r.Len()
	}
	return n
}

// lastStrongAccumulator implements the "sor or last strong type" fold used
// by W2 and W7: it returns run.Type when that is a strong type, else prev.
func lastStrongAccumulator(prev Type, run *Run) Type {
	if run.Type.IsStrong() {
		return run.Type
	}
	return prev
}
