package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	verbose := false
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "--verbose" {
			verbose = true
			break
		}
	}

	// Configure GOMAXPROCS with conditional logging.
	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain dispatches the command line and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	switch args[1] {
	case "export":
		flags, positional, err := parseExportFlags(args[2:])
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return ExitSuccess
			}
			return ExitUsage
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := runExport(ctx, positional, flags, env); err != nil {
			printError(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "catalog":
		flags, _, err := parseCatalogFlags(args[2:])
		if err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return ExitSuccess
			}
			return ExitUsage
		}
		if err := runCatalog(flags, env); err != nil {
			printError(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "version":
		fmt.Fprintf(env.Stdout, "quotepdf %s\n", Version)
		return ExitSuccess

	case "completion":
		if err := runCompletion(args[2:], env); err != nil {
			printError(env.Stderr, err)
			return exitCodeFor(err)
		}
		return ExitSuccess

	case "help":
		runHelp(args[2:], env)
		return ExitSuccess

	default:
		fmt.Fprintf(env.Stderr, "unknown command: %s\n", args[1])
		printUsage(env.Stderr)
		return ExitUsage
	}
}
