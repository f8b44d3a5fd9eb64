package conformance

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
)

// TextReporter prints human-readable pass/fail lines, the conformance
// sibling of the teacher codebase's internal/testing.TextReporter. Color
// is disabled automatically when stdout is not a terminal, via go-isatty,
// so piping `bidi test` output into CI logs doesn't leave raw escape codes.
type TextReporter struct {
	verbose bool
	color   bool
}

// NewTextReporter builds a TextReporter; verbose additionally prints each
// skipped case's reason.
func NewTextReporter(verbose bool) *TextReporter {
	return &TextReporter{
		verbose: verbose,
		color:   isatty.IsTerminal(os.Stdout.Fd()),
	}
}

func (r *TextReporter) paint(code, s string) string {
	if !r.color {
		return s
	}
	return code + s + "\033[0m"
}

func (r *TextReporter) StartFile(file string, total int) {
	fmt.Printf("\n%s (%s cases)\n", file, humanize.Comma(int64(total)))
}

func (r *TextReporter) EndFile(file string, duration time.Duration) {
	fmt.Printf("  completed in %s\n", duration.Round(time.Microsecond))
}

func (r *TextReporter) CasePassed(result TestResult) {
	fmt.Printf("  %s %s\n", r.paint("\033[32m", "PASS"), result.Name)
}

func (r *TextReporter) CaseFailed(result TestResult) {
	fmt.Printf("  %s %s\n", r.paint("\033[31m", "FAIL"), result.Name)
	for _, line := range strings.Split(result.Message, "\n") {
		fmt.Printf("      %s\n", line)
	}
}

func (r *TextReporter) CaseSkipped(result TestResult) {
	if !r.verbose {
		return
	}
	fmt.Printf("  %s %s (%s)\n", r.paint("\033[33m", "SKIP"), result.Name, result.Message)
}

func (r *TextReporter) Summary(stats *Stats) {
	fmt.Printf("\n%s\n", strings.Repeat("-", 60))
	fmt.Printf("files: %s  cases: %s  passed: %s  failed: %s  skipped: %s  time: %v\n",
		humanize.Comma(int64(stats.Files)),
		humanize.Comma(int64(stats.TotalTests)),
		humanize.Comma(int64(stats.PassedTests)),
		humanize.Comma(int64(stats.FailedTests)),
		humanize.Comma(int64(stats.SkippedTests)),
		stats.TotalTime.Round(time.Millisecond),
	)
	if stats.FailedTests == 0 {
		fmt.Println(r.paint("\033[32m", "all cases passed"))
	} else {
		fmt.Println(r.paint("\033[31m", "some cases failed"))
	}
}

// JSONReporter accumulates results and emits one JSON document in Summary,
// the conformance sibling of the teacher's internal/testing.JSONReporter.
type JSONReporter struct {
	results []jsonResult
}

type jsonResult struct {
	File     string        `json:"file"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Failed   bool          `json:"failed"`
	Skipped  bool          `json:"skipped"`
	Duration time.Duration `json:"duration"`
	Message  string        `json:"message,omitempty"`
}

type jsonSummary struct {
	Results      []jsonResult  `json:"results"`
	TotalTests   int           `json:"total_tests"`
	PassedTests  int           `json:"passed_tests"`
	FailedTests  int           `json:"failed_tests"`
	SkippedTests int           `json:"skipped_tests"`
	TotalTime    time.Duration `json:"total_time"`
}

func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

func (r *JSONReporter) StartFile(file string, total int)        {}
func (r *JSONReporter) EndFile(file string, duration time.Duration) {}

func (r *JSONReporter) CasePassed(result TestResult) {
	r.results = append(r.results, jsonResult{File: result.File, Name: result.Name, Passed: true, Duration: result.Duration})
}

func (r *JSONReporter) CaseFailed(result TestResult) {
	r.results = append(r.results, jsonResult{File: result.File, Name: result.Name, Failed: true, Duration: result.Duration, Message: result.Message})
}

func (r *JSONReporter) CaseSkipped(result TestResult) {
	r.results = append(r.results, jsonResult{File: result.File, Name: result.Name, Skipped: true, Message: result.Message})
}

func (r *JSONReporter) Summary(stats *Stats) {
	summary := jsonSummary{
		Results:      r.results,
		TotalTests:   stats.TotalTests,
		PassedTests:  stats.PassedTests,
		FailedTests:  stats.FailedTests,
		SkippedTests: stats.SkippedTests,
		TotalTime:    stats.TotalTime,
	}
	out, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		fmt.Printf("error generating JSON output: %v\n", err)
		return
	}
	fmt.Println(string(out))
}

// JUnitReporter emits a single JUnit testsuite element covering every file
// in the run, the conformance sibling of the teacher's JUnitReporter.
type JUnitReporter struct {
	cases []junitCase
}

type junitSuites struct {
	XMLName xml.Name    `xml:"testsuites"`
	Suite   junitSuite  `xml:"testsuite"`
}

type junitSuite struct {
	Name     string       `xml:"name,attr"`
	Tests    int          `xml:"tests,attr"`
	Failures int          `xml:"failures,attr"`
	Skipped  int          `xml:"skipped,attr"`
	Cases    []junitCase  `xml:"testcase"`
}

type junitCase struct {
	Name    string         `xml:"name,attr"`
	Time    float64        `xml:"time,attr"`
	Failure *junitFailure  `xml:"failure,omitempty"`
	Skipped *junitSkipped  `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Content string `xml:",chardata"`
}

type junitSkipped struct {
	Message string `xml:"message,attr,omitempty"`
}

func NewJUnitReporter() *JUnitReporter {
	return &JUnitReporter{}
}

func (r *JUnitReporter) StartFile(file string, total int)        {}
func (r *JUnitReporter) EndFile(file string, duration time.Duration) {}

func (r *JUnitReporter) CasePassed(result TestResult) {
	r.cases = append(r.cases, junitCase{Name: result.Name, Time: result.Duration.Seconds()})
}

func (r *JUnitReporter) CaseFailed(result TestResult) {
	r.cases = append(r.cases, junitCase{
		Name: result.Name,
		Time: result.Duration.Seconds(),
		Failure: &junitFailure{Message: "conformance mismatch", Content: result.Message},
	})
}

func (r *JUnitReporter) CaseSkipped(result TestResult) {
	r.cases = append(r.cases, junitCase{Name: result.Name, Skipped: &junitSkipped{Message: result.Message}})
}

func (r *JUnitReporter) Summary(stats *Stats) {
	suites := junitSuites{Suite: junitSuite{
		Name:     "bidi-conformance",
		Tests:    stats.TotalTests,
		Failures: stats.FailedTests,
		Skipped:  stats.SkippedTests,
		Cases:    r.cases,
	}}
	out, err := xml.MarshalIndent(suites, "", "  ")
	if err != nil {
		fmt.Printf("error generating JUnit output: %v\n", err)
		return
	}
	fmt.Println(xml.Header + string(out))
}
