// Package testsession bootstraps a test run once per test binary, driven from
// a TestMain function. A [Session] provides the fixture root directory next to
// the test files, optionally resets a configured temporary directory before
// any test runs, contributes a report header to the test output and renders
// equality-assertion failures through a comparer.
//
//	var session *testsession.Session
//
//	func TestMain(m *testing.M) {
//		var err error
//		if session, err = testsession.Start(); err != nil {
//			os.Exit(1)
//		}
//		os.Exit(session.Run(m))
//	}
package testsession

import (
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"

	"github.com/desertwitch/pathkit/internal/comparer"
	"github.com/desertwitch/pathkit/internal/configuration"
	"github.com/desertwitch/pathkit/internal/pathing"
)

const (
	rootsDirName = "roots"
	tempDirPerms = 0o755
)

type configProvider interface {
	ReadSessionConfig(filenames ...string) (*configuration.SessionConfig, error)
}

type renderer interface {
	Render(op string, left, right any) []string
}

type runner interface {
	Run() int
}

// Session is the context of a test run, established once by [Start].
type Session struct {
	config       *configuration.SessionConfig
	rootDir      pathing.Path
	tempDir      pathing.Path
	hasTempDir   bool
	comparer     renderer
	headerOutput io.Writer
}

// Start establishes a new [Session]. Unless [WithReferenceFile] is given, the
// fixture root directory is resolved relative to the file calling Start.
func Start(opts ...Option) (*Session, error) {
	options := newOptions(opts...)

	if options.referenceFile == "" {
		file, err := callerFile(1)
		if err != nil {
			return nil, err
		}
		options.referenceFile = file
	}

	return start(options)
}

// Main establishes a new [Session] and runs the tests with it, returning the
// exit code for [os.Exit]. It is meant to be called from TestMain when the
// tests need no access to the [Session] itself.
func Main(m runner, opts ...Option) int {
	options := newOptions(opts...)

	if options.referenceFile == "" {
		file, err := callerFile(1)
		if err != nil {
			slog.Error("Failed to start test session.", "err", err)

			return 1
		}
		options.referenceFile = file
	}

	session, err := start(options)
	if err != nil {
		slog.Error("Failed to start test session.", "err", err)

		return 1
	}

	return session.Run(m)
}

func start(options *options) (*Session, error) {
	config, err := options.configHandler.ReadSessionConfig(options.envFiles...)
	if err != nil {
		return nil, fmt.Errorf("(session-start) %w", err)
	}

	if !options.keepLogger {
		setupLogging(options.logOutput, config.LogLevel)
	}

	rootDir, err := RootDirFor(options.referenceFile)
	if err != nil {
		return nil, err
	}

	cmp := options.comparer
	if cmp == nil {
		cmp = comparer.NewComparer(false)
	}

	s := &Session{
		config:       config,
		rootDir:      rootDir,
		comparer:     cmp,
		headerOutput: options.headerOutput,
	}

	if err := s.InitializeTestDirectory(); err != nil {
		return nil, err
	}

	return s, nil
}

// Run prints the report header and runs the tests, returning their exit code.
func (s *Session) Run(m runner) int {
	fmt.Fprintln(s.headerOutput, s.Header())

	return m.Run()
}

// RootDir returns the absolute fixture root directory.
func (s *Session) RootDir() pathing.Path {
	return s.rootDir
}

// TempDir returns the temporary directory of the session, if one was
// configured.
func (s *Session) TempDir() (pathing.Path, bool) {
	return s.tempDir, s.hasTempDir
}

// InitializeTestDirectory resets the configured temporary directory, if any,
// by removing whatever exists there and creating it anew (empty). A failure to
// do so is returned and meant to abort the test run.
func (s *Session) InitializeTestDirectory() error {
	if s.config.TempDir == "" {
		return nil
	}

	tempDir, err := pathing.New(s.config.TempDir).Absolute()
	if err != nil {
		return fmt.Errorf("(session-tempdir) %w", err)
	}

	slog.Info("Temporary files will be placed in:", "path", tempDir.String())

	if tempDir.Exists() {
		if err := tempDir.RemoveTree(); err != nil {
			return fmt.Errorf("(session-tempdir) failed to remove: %w", err)
		}
	}

	if err := tempDir.Mkdir(tempDirPerms); err != nil {
		return fmt.Errorf("(session-tempdir) failed to create: %w", err)
	}

	s.tempDir = tempDir
	s.hasTempDir = true

	return nil
}

// RootDirFor returns the absolute fixture root directory for a reference file,
// being the "roots" directory next to that file.
func RootDirFor(referenceFile string) (pathing.Path, error) {
	dir, err := pathing.New(referenceFile).Parent().Absolute()
	if err != nil {
		return pathing.Path{}, fmt.Errorf("(session-rootdir) %w", err)
	}

	return dir.Join(rootsDirName), nil
}

// CallerRootDir returns the fixture root directory for the file of the calling
// function, so the "roots" directory next to the calling test file.
func CallerRootDir() (pathing.Path, error) {
	file, err := callerFile(1)
	if err != nil {
		return pathing.Path{}, err
	}

	return RootDirFor(file)
}

func callerFile(skip int) (string, error) {
	_, file, _, ok := runtime.Caller(skip + 1)
	if !ok || file == "" {
		return "", fmt.Errorf("(session-caller) %w", ErrNoCaller)
	}

	return filepath.FromSlash(file), nil
}
