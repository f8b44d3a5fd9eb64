package bidi

// Phase names a point in the pipeline a Snapshot was captured after, for
// the `bidi visualize` command.
type Phase string

const (
	PhaseIsolateBuild Phase = "isolate-build"
	PhaseExplicit     Phase = "explicit"
	PhaseWeak         Phase = "weak"
	PhaseNeutral      Phase = "neutral"
	PhaseImplicit     Phase = "implicit"
	PhaseLineReset    Phase = "line-reset"
	PhaseReorder      Phase = "reorder"
)

// Snapshot is the resolved state of one paragraph after one pipeline phase.
type Snapshot struct {
	Phase  Phase
	Levels []Level
	Order  []int // only populated for PhaseReorder
}

// Trace runs the same pipeline as Resolve over a single paragraph (types
// must not itself contain a paragraph separator) but records a Snapshot
// after each top-level phase, for the visualizer to stream to a client.
//
// It traces only the paragraph's outermost run list: an isolate's interior
// is resolved as part of PhaseExplicit (the same as Resolve) but its own
// W1-I2 sub-phases are not separately snapshotted, since they run at a
// different, recursively-raised level than the phases around them.
func Trace(types []Type, base BaseDirection) []Snapshot {
	var snaps []Snapshot
	levels := make([]Level, len(types))

	raw := buildIsolatedRunList(types, 0)
	snaps = append(snaps, snapshotFrom(PhaseIsolateBuild, levels))

	parLevel := paragraphEmbeddingLevel(raw.Runs, base)

	surviving, removed := applyExplicit(raw.Runs, parLevel)
	for _, rg := range removed {
		markRemoved(levels, rg)
	}
	for _, r := range surviving {
		if r.Children == nil {
			continue
		}
		childLevel := childEmbeddingLevel(r)
		resolveRunList(r.Children.Runs, childLevel, levels)
		r.Children = nil
	}
	for _, r := range surviving {
		writeLevels(levels, r)
	}
	snaps = append(snaps, snapshotFrom(PhaseExplicit, levels))

	groups := splitLevelRuns(surviving)
	resolved := make([]*Run, 0, len(surviving))
	for i, group := range groups {
		sor, eor := sorEorFor(groups, i, parLevel)
		resolved = append(resolved, applyWeakRules(group.runs, sor, eor)...)
	}
	for _, r := range resolved {
		writeLevels(levels, r)
	}
	snaps = append(snaps, snapshotFrom(PhaseWeak, levels))

	neutralResolved := make([]*Run, 0, len(resolved))
	regroups := splitLevelRuns(resolved)
	for i, group := range regroups {
		sor, eor := sorEorFor(regroups, i, parLevel)
		neutralResolved = append(neutralResolved, applyNeutralRules(group.runs, sor, eor)...)
	}
	for _, r := range neutralResolved {
		writeLevels(levels, r)
	}
	snaps = append(snaps, snapshotFrom(PhaseNeutral, levels))

	implicitResolved := applyImplicitRules(neutralResolved)
	for _, r := range implicitResolved {
		writeLevels(levels, r)
	}
	snaps = append(snaps, snapshotFrom(PhaseImplicit, levels))

	applyLineReset(levels, parLevel, types)
	snaps = append(snaps, snapshotFrom(PhaseLineReset, levels))

	order := reorderVisual(levels)
	final := snapshotFrom(PhaseReorder, levels)
	final.Order = order
	snaps = append(snaps, final)

	return snaps
}

func snapshotFrom(phase Phase, levels []Level) Snapshot {
	cp := make([]Level, len(levels))
	copy(cp, levels)
	return Snapshot{Phase: phase, Levels: cp}
}
