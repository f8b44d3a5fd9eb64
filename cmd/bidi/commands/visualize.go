// cmd/bidi/commands/visualize.go
package commands

import (
	"context"
	"flag"
	"os/signal"
	"syscall"

	"bidi/internal/bidi"
	"bidi/internal/bidierr"
	"bidi/internal/bidilog"
	"bidi/internal/visualize"
)

// VisualizeCommand starts a local HTTP+WebSocket server streaming a
// phase-by-phase trace of one paragraph's resolution, until interrupted.
func VisualizeCommand(args []string) error {
	fs := flag.NewFlagSet("visualize", flag.ContinueOnError)
	addr := fs.String("addr", "127.0.0.1:8420", "listen address")
	rtl := fs.Bool("rtl", false, "force paragraph base direction to right-to-left")
	ltr := fs.Bool("ltr", false, "force paragraph base direction to left-to-right")
	auto := fs.Bool("auto", false, "auto-detect paragraph base direction (default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	tokens := fs.Args()
	if len(tokens) == 0 {
		return bidierr.NewConformance("no type tokens given; usage: bidi visualize <types...>")
	}
	base, err := resolveBase(*rtl, *ltr, *auto)
	if err != nil {
		return err
	}

	types := make([]bidi.Type, len(tokens))
	for i, tok := range tokens {
		types[i] = bidi.Type(tok)
	}
	if err := bidi.Validate(types); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bidilog.Info("open http://%s in a browser, or connect a WebSocket client to /ws", *addr)
	server := visualize.New(*addr, types, base)
	return server.ListenAndServe(ctx)
}
