package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/desertwitch/pathkit/internal/pathing"
	"github.com/desertwitch/pathkit/internal/testsession"
)

type pathProvider interface {
	CopyTree(p pathing.Path, dst pathing.Path, opts ...pathing.CopyOption) error
	IsMount(p pathing.Path) bool
	LExists(p pathing.Path) bool
	MoveTree(p pathing.Path, dst pathing.Path) error
	RemoveTree(p pathing.Path, opts ...pathing.RemoveOption) error
	SetTimes(p pathing.Path, atime, mtime time.Time) error
}

// App is the principal structure of the command line interface.
type App struct {
	pathHandler pathProvider
	out         io.Writer
}

// NewApp returns a pointer to a new [App].
func NewApp(pathHandler pathProvider, out io.Writer) *App {
	return &App{
		pathHandler: pathHandler,
		out:         out,
	}
}

// Run runs the command cmd with the given arguments.
func (app *App) Run(cmd string, args []string) error {
	switch cmd {
	case "rmtree":
		return app.removeTree(args)
	case "copytree":
		return app.copyTree(args)
	case "movetree", "move":
		return app.moveTree(args)
	case "lexists":
		return app.check(args, app.pathHandler.LExists)
	case "ismount":
		return app.check(args, app.pathHandler.IsMount)
	case "touch":
		return app.touch(args)
	case "resettemp":
		return app.resetTemp(args)
	default:
		return fmt.Errorf("(app) %w: %s", ErrUnknownCommand, cmd)
	}
}

func (app *App) parse(name string, args []string, nargs int, setup func(*flag.FlagSet)) ([]pathing.Path, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(app.out)

	if setup != nil {
		setup(fs)
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, fmt.Errorf("(app-%s) %w", name, err)
		}

		return nil, fmt.Errorf("(app-%s) %w: %w", name, ErrInvalidFlags, err)
	}

	if fs.NArg() != nargs {
		return nil, fmt.Errorf("(app-%s) %w: want %d, got %d", name, ErrWrongArgs, nargs, fs.NArg())
	}

	paths := make([]pathing.Path, 0, nargs)
	for _, arg := range fs.Args() {
		paths = append(paths, pathing.New(arg))
	}

	return paths, nil
}

func (app *App) removeTree(args []string) error {
	var ignore bool

	paths, err := app.parse("rmtree", args, 1, func(fs *flag.FlagSet) {
		fs.BoolVar(&ignore, "ignore", false, "ignore all errors, reporting them as warnings")
	})
	if err != nil {
		return err
	}

	var opts []pathing.RemoveOption
	if ignore {
		opts = append(opts, pathing.WithOnError(func(op pathing.Op, path string, err error) {
			slog.Warn("Failure removing (skipped)",
				"op", op.String(),
				"path", path,
				"err", err,
			)
		}))
	}

	if err := app.pathHandler.RemoveTree(paths[0], opts...); err != nil {
		return fmt.Errorf("(app-rmtree) %w", err)
	}

	slog.Info("Removed:", "path", paths[0].String())

	return nil
}

func (app *App) copyTree(args []string) error {
	var symlinks bool

	paths, err := app.parse("copytree", args, 2, func(fs *flag.FlagSet) { //nolint:mnd
		fs.BoolVar(&symlinks, "symlinks", false, "recreate symbolic links instead of copying their targets")
	})
	if err != nil {
		return err
	}

	var opts []pathing.CopyOption
	if symlinks {
		opts = append(opts, pathing.WithPreserveSymlinks())
	}

	start := time.Now()
	if err := app.pathHandler.CopyTree(paths[0], paths[1], opts...); err != nil {
		return fmt.Errorf("(app-copytree) %w", err)
	}

	slog.Info("Copied:",
		"src", paths[0].String(),
		"dst", paths[1].String(),
		"elapsed", time.Since(start).Round(time.Millisecond),
	)

	return nil
}

func (app *App) moveTree(args []string) error {
	paths, err := app.parse("movetree", args, 2, nil) //nolint:mnd
	if err != nil {
		return err
	}

	if err := app.pathHandler.MoveTree(paths[0], paths[1]); err != nil {
		return fmt.Errorf("(app-movetree) %w", err)
	}

	slog.Info("Moved:",
		"src", paths[0].String(),
		"dst", paths[1].String(),
	)

	return nil
}

func (app *App) check(args []string, fn func(pathing.Path) bool) error {
	paths, err := app.parse("check", args, 1, nil)
	if err != nil {
		return err
	}

	ok := fn(paths[0])
	fmt.Fprintln(app.out, ok)

	if !ok {
		return fmt.Errorf("(app-check) %w: %s", ErrCheckFailed, paths[0].String())
	}

	return nil
}

func (app *App) touch(args []string) error {
	paths, err := app.parse("touch", args, 1, nil)
	if err != nil {
		return err
	}

	now := time.Now()
	if err := app.pathHandler.SetTimes(paths[0], now, now); err != nil {
		return fmt.Errorf("(app-touch) %w", err)
	}

	return nil
}

func (app *App) resetTemp(args []string) error {
	var envFile string

	if _, err := app.parse("resettemp", args, 0, func(fs *flag.FlagSet) {
		fs.StringVar(&envFile, "env", "", "also read the settings from this dotenv file")
	}); err != nil {
		return err
	}

	opts := []testsession.Option{
		testsession.WithReferenceFile("pathkit"),
		testsession.WithExistingLogger(),
		testsession.WithHeaderOutput(app.out),
	}
	if envFile != "" {
		opts = append(opts, testsession.WithEnvFiles(envFile))
	}

	session, err := testsession.Start(opts...)
	if err != nil {
		return fmt.Errorf("(app-resettemp) %w", err)
	}

	dir, ok := session.TempDir()
	if !ok {
		return fmt.Errorf("(app-resettemp) %w", ErrNoTempDir)
	}

	fmt.Fprintln(app.out, dir.String())

	return nil
}
