package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/desertwitch/pathkit/internal/pathing"
	"github.com/lmittmann/tint"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	debugLog = flag.Bool("debug", false, "enable debug logging")
)

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `pathkit %s - recursive file tree operations

Usage: pathkit [-debug] <command> [flags] <args>

Commands:
  rmtree [-ignore] PATH          remove a file or directory tree
  copytree [-symlinks] SRC DST   copy a directory tree to a new location
  movetree SRC DST               move a file or directory tree
  lexists PATH                   check existence, including broken symlinks
  ismount PATH                   check if a path is a mount point
  touch PATH                     set timestamps of a path to now
  resettemp [-env FILE]          empty the configured test temporary directory

Flags:
`, Version)
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	flag.Usage = usage
	flag.Parse()
	setupLogging(*debugLog)

	if flag.NArg() < 1 {
		usage()
		ExitCode = 2

		return
	}

	app := NewApp(pathing.Default(), os.Stdout)

	if err := app.Run(flag.Arg(0), flag.Args()[1:]); err != nil {
		ExitCode = exitCodeFor(err)
		if ExitCode == 0 {
			return
		}

		slog.Error("Command failed.",
			"cmd", flag.Arg(0),
			"err", err,
		)
	}
}

// exitCodeFor returns the exit code for an error returned by a command: 2 for
// a wrong invocation, 0 for a requested help text and 1 otherwise.
func exitCodeFor(err error) int {
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.Is(err, ErrUnknownCommand),
		errors.Is(err, ErrWrongArgs),
		errors.Is(err, ErrInvalidFlags):
		return 2 //nolint:mnd
	default:
		return 1
	}
}
