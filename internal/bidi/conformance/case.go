// Package conformance runs the Unicode BidiTest.txt/BidiCharacterTest.txt
// corpora against this module's Resolve, reporting results the way the
// teacher codebase's own internal/testing framework reports unit test
// suites: a TestReporter interface with text/JSON/JUnit implementations
// fed TestResult values as cases run.
package conformance

import (
	"time"

	"bidi/internal/bidi"
)

// The flag bits identify which paragraph base directions a case line
// requests, per the corpus's bitmask convention.
const (
	flagAuto = 1 << iota // bit 0: test with base direction auto-detected (ON)
	flagLTR               // bit 1: test with base direction forced to L
	flagRTL               // bit 2: test with base direction forced to R
)

// Case is one `<types>;<flags>` corpus line together with whatever
// @Levels/@Reorder expectation was most recently declared above it.
type Case struct {
	File       string
	Line       int
	Types      []bidi.Type
	Flags      int
	WantLevels []bidi.Level // nil if the corpus only asserts order
	WantOrder  []int        // nil if the corpus only asserts levels
}

// bases returns the BaseDirection values this case's flag bitmask selects,
// each paired with a human-readable label for result naming.
func (c Case) bases() []namedBase {
	var out []namedBase
	if c.Flags&flagAuto != 0 {
		out = append(out, namedBase{"auto", bidi.Auto})
	}
	if c.Flags&flagLTR != 0 {
		out = append(out, namedBase{"ltr", bidi.LeftToRight})
	}
	if c.Flags&flagRTL != 0 {
		out = append(out, namedBase{"rtl", bidi.RightToLeft})
	}
	return out
}

type namedBase struct {
	label string
	base  bidi.BaseDirection
}

// TestResult is one case-under-one-base outcome, the conformance-package
// analogue of the teacher's internal/testing.TestResult.
type TestResult struct {
	Name     string
	File     string
	Passed   bool
	Failed   bool
	Skipped  bool
	Duration time.Duration
	Error    error
	Message  string
}

// Stats aggregates a run the same way the teacher's internal/testing.TestStats does.
type Stats struct {
	TotalTests   int
	PassedTests  int
	FailedTests  int
	SkippedTests int
	TotalTime    time.Duration
	Files        int
}
