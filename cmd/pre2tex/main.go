package main

import (
	"fmt"
	"os"

	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Configure GOMAXPROCS for containerized environments before sizing the
	// worker pool. Error ignored: maxprocs.Set only fails if the GOMAXPROCS
	// env is invalid, in which case Go runtime defaults apply and the
	// program continues safely.
	verbose := hasVerboseFlag(os.Args[1:])
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(run(os.Args, DefaultEnv()))
}

// hasVerboseFlag peeks at the raw args before the real parse so maxprocs
// logging can be decided first.
func hasVerboseFlag(args []string) bool {
	for _, a := range args {
		if a == "-v" || a == "--verbose" {
			return true
		}
	}
	return false
}
