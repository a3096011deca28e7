// Command mosaic is a small CLI harness around internal/layout: it loads
// a scenario file, replays it as mutations on a fresh layout tree, and
// prints the resulting tree (run) or checks its invariants (validate).
// It stands in for the rest
// of a tiling compositor, which is out of scope for this module.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sbwtw/way-cooler/internal/logging"
)

var version = "dev"

func main() {
	logging.Setup()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: mosaic [run|validate|version] [flags]")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "run":
		if err := runScenario(os.Args[2:]); err != nil {
			slog.Error("fatal", "error", err)
			os.Exit(1)
		}
	case "validate":
		if err := validateScenario(os.Args[2:]); err != nil {
			slog.Error("fatal", "error", err)
			os.Exit(1)
		}
	case "version":
		fmt.Println(version)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", os.Args[1])
		fmt.Fprintln(os.Stderr, "usage: mosaic [run|validate|version] [flags]")
		os.Exit(1)
	}
}
