// cmd/bidi/commands/test.go
package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"bidi/internal/bidi/conformance"
	"bidi/internal/bidierr"
	"bidi/internal/bidilog"
	"bidi/internal/history"
)

// TestCommand runs one or more UBA-corpus-shaped files through the
// conformance runner and reports pass/fail/skip counts, optionally
// persisting the summary to the local history store.
func TestCommand(args []string) error {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	format := fs.String("format", "text", "report format: text, json, or junit")
	historyPath := fs.String("history", "", "record this run's summary to the SQLite history store at this path")
	verbose := fs.Bool("verbose", false, "print skipped cases too")
	if err := fs.Parse(args); err != nil {
		return err
	}

	files := fs.Args()
	if len(files) == 0 {
		return bidierr.NewConformance("no corpus files given; usage: bidi test <file>...")
	}

	var cases []conformance.Case
	for _, path := range files {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		fileCases, err := conformance.ParseFile(filepath.Base(path), f)
		f.Close()
		if err != nil {
			return fmt.Errorf("parsing %s: %w", path, err)
		}
		cases = append(cases, fileCases...)
	}

	rep, err := reporterFor(*format, *verbose)
	if err != nil {
		return err
	}

	stats := conformance.Run(cases, rep)

	if *historyPath != "" {
		if err := recordHistory(*historyPath, files, stats); err != nil {
			bidilog.Warn("failed to record history: %v", err)
		}
	}

	if stats.FailedTests > 0 {
		return bidierr.NewConformance(fmt.Sprintf("%d of %d cases failed", stats.FailedTests, stats.TotalTests))
	}
	return nil
}

func reporterFor(format string, verbose bool) (conformance.Reporter, error) {
	switch format {
	case "text":
		return conformance.NewTextReporter(verbose), nil
	case "json":
		return conformance.NewJSONReporter(), nil
	case "junit":
		return conformance.NewJUnitReporter(), nil
	default:
		return nil, bidierr.NewConformance(fmt.Sprintf("unknown report format %q", format))
	}
}

func recordHistory(path string, files []string, stats *conformance.Stats) error {
	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	name := files[0]
	if len(files) > 1 {
		name = fmt.Sprintf("%s (+%d more)", files[0], len(files)-1)
	}
	_, err = store.Record(context.Background(), name, stats.PassedTests, stats.FailedTests, stats.SkippedTests, stats.TotalTime)
	return err
}
