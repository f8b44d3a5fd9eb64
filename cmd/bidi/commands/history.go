// cmd/bidi/commands/history.go
package commands

import (
	"context"
	"flag"
	"fmt"

	"bidi/internal/history"
)

// HistoryCommand lists prior `bidi test` runs recorded in the local
// history store, newest first, with a pass-rate trend.
func HistoryCommand(args []string) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	path := fs.String("path", "bidi_history.sqlite", "path to the SQLite history store")
	limit := fs.Int("limit", 20, "maximum number of runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	store, err := history.Open(*path)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(context.Background(), *limit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no recorded runs")
		return nil
	}

	fmt.Printf("%-20s  %-30s  %6s  %6s  %6s  %7s  %s\n", "timestamp", "file", "passed", "failed", "skipped", "rate", "duration")
	for _, r := range runs {
		fmt.Printf("%-20s  %-30s  %6d  %6d  %6d  %6.1f%%  %s\n",
			r.Timestamp.Format("2006-01-02 15:04:05"), r.File, r.Passed, r.Failed, r.Skipped, r.PassRate()*100, r.Duration)
	}
	return nil
}
