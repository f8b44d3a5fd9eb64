// cmd/bidi/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"bidi/cmd/bidi/commands"
)

const version = "1.0.0"

// commandAliases maps short aliases to their full command name, the same
// dispatch convention the teacher's own CLI uses.
var commandAliases = map[string]string{
	"r": "run",
	"t": "test",
	"h": "history",
	"v": "visualize",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is main's logic pulled out into a plain func returning an exit code,
// so cmd/bidi's own tests can drive it in-process via testscript.Main
// instead of shelling out to a built binary.
func run(args []string) int {
	if len(args) == 0 {
		showUsage()
		return 0
	}

	cmd := args[0]
	if alias, ok := commandAliases[cmd]; ok {
		cmd = alias
		args[0] = alias
	}

	if cmd == "--help" || cmd == "-h" || cmd == "help" {
		showUsage()
		return 0
	}
	if cmd == "--version" || cmd == "-v" || cmd == "version" {
		fmt.Println("bidi version", version)
		return 0
	}

	var err error
	switch cmd {
	case "run":
		err = commands.RunCommand(args[1:])
	case "test":
		err = commands.TestCommand(args[1:])
	case "history":
		err = commands.HistoryCommand(args[1:])
	case "visualize":
		err = commands.VisualizeCommand(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		showUsage()
		return 1
	}
	if err != nil {
		log.Printf("Error: %v", err)
		return 1
	}
	return 0
}

func showUsage() {
	fmt.Println("bidi - Unicode Bidirectional Algorithm toolkit")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  bidi run (--rtl|--ltr|--auto) <type-tokens...>   Resolve one type list      (alias: r)")
	fmt.Println("  bidi test <file>...                              Run a conformance corpus   (alias: t)")
	fmt.Println("  bidi history                                     List past test runs         (alias: h)")
	fmt.Println("  bidi visualize <type-tokens...>                  Serve a phase-by-phase trace (alias: v)")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --format text|json|junit   bidi test report format (default text)")
	fmt.Println("  --history <path>           bidi test: record run to the SQLite history store")
	fmt.Println("  --verbose                  bidi test: also print skipped cases")
	fmt.Println("  --addr <host:port>         bidi visualize: listen address (default 127.0.0.1:8420)")
}
