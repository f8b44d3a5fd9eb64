package conformance

import (
	"fmt"
	"time"

	"github.com/kr/pretty"

	"bidi/internal/bidi"
)

// Reporter mirrors the teacher codebase's TestReporter interface, one
// method per lifecycle event a corpus run fires.
type Reporter interface {
	StartFile(file string, total int)
	EndFile(file string, duration time.Duration)
	CasePassed(result TestResult)
	CaseFailed(result TestResult)
	CaseSkipped(result TestResult)
	Summary(stats *Stats)
}

// Run resolves every case against bidi.Resolve under each base direction its
// flags select, reporting through rep, and returns the aggregate Stats.
func Run(cases []Case, rep Reporter) *Stats {
	stats := &Stats{}
	start := time.Now()

	byFile := groupByFile(cases)
	for _, file := range byFile {
		fileStart := time.Now()
		rep.StartFile(file.name, len(file.cases))
		for _, c := range file.cases {
			for _, nb := range c.bases() {
				stats.TotalTests++
				result := runOne(c, nb)
				switch {
				case result.Skipped:
					stats.SkippedTests++
					rep.CaseSkipped(result)
				case result.Failed:
					stats.FailedTests++
					rep.CaseFailed(result)
				default:
					stats.PassedTests++
					rep.CasePassed(result)
				}
			}
		}
		rep.EndFile(file.name, time.Since(fileStart))
		stats.Files++
	}

	stats.TotalTime = time.Since(start)
	rep.Summary(stats)
	return stats
}

type fileGroup struct {
	name  string
	cases []Case
}

func groupByFile(cases []Case) []fileGroup {
	var groups []fileGroup
	index := map[string]int{}
	for _, c := range cases {
		i, ok := index[c.File]
		if !ok {
			i = len(groups)
			index[c.File] = i
			groups = append(groups, fileGroup{name: c.File})
		}
		groups[i].cases = append(groups[i].cases, c)
	}
	return groups
}

func runOne(c Case, nb namedBase) TestResult {
	name := fmt.Sprintf("%s:%d [%s]", c.File, c.Line, nb.label)
	if c.WantLevels == nil && c.WantOrder == nil {
		return TestResult{Name: name, File: c.File, Skipped: true, Message: "no @Levels/@Reorder expectation in scope"}
	}

	started := time.Now()
	gotLevels, gotOrder := bidi.Resolve(c.Types, nb.base)
	duration := time.Since(started)

	if msg, ok := compare(c, gotLevels, gotOrder); !ok {
		return TestResult{Name: name, File: c.File, Failed: true, Duration: duration, Message: msg}
	}
	return TestResult{Name: name, File: c.File, Passed: true, Duration: duration}
}

// compare checks gotLevels/gotOrder against whichever of WantLevels/WantOrder
// is in scope. Every position is compared exactly: an 'x' in @Levels (parsed
// as LevelRemoved) matches only a position that X9 removed.
func compare(c Case, gotLevels []bidi.Level, gotOrder []int) (string, bool) {
	if c.WantLevels != nil {
		if len(c.WantLevels) != len(gotLevels) {
			return fmt.Sprintf("levels length = %d, want %d", len(gotLevels), len(c.WantLevels)), false
		}
		for i := range c.WantLevels {
			if c.WantLevels[i] != gotLevels[i] {
				return fmt.Sprintf("levels mismatch:\n%s", pretty.Sprint(diff{c.WantLevels, gotLevels})), false
			}
		}
	}
	if c.WantOrder != nil {
		if !equalOrder(c.WantOrder, gotOrder) {
			return fmt.Sprintf("order mismatch:\n%s", pretty.Sprint(diff{c.WantOrder, gotOrder})), false
		}
	}
	return "", true
}

type diff struct {
	Want any
	Got  any
}

func equalOrder(want, got []int) bool {
	if len(want) != len(got) {
		return false
	}
	for i := range want {
		if want[i] != got[i] {
			return false
		}
	}
	return true
}
