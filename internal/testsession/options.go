package testsession

import (
	"io"
	"os"

	"github.com/desertwitch/pathkit/internal/configuration"
)

type options struct {
	referenceFile string
	envFiles      []string
	configHandler configProvider
	comparer      renderer
	logOutput     io.Writer
	keepLogger    bool
	headerOutput  io.Writer
}

// Option configures a [Session] on [Start] or [Main].
type Option func(*options)

func newOptions(opts ...Option) *options {
	o := &options{
		configHandler: configuration.NewHandler(&configuration.GodotenvProvider{}),
		logOutput:     os.Stderr,
		headerOutput:  os.Stdout,
	}

	for _, opt := range opts {
		opt(o)
	}

	return o
}

// WithReferenceFile resolves the fixture root directory next to file instead
// of next to the calling file.
func WithReferenceFile(file string) Option {
	return func(o *options) {
		o.referenceFile = file
	}
}

// WithEnvFiles reads the session configuration also from the given
// dotenv-style files. The process environment takes precedence.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.envFiles = append(o.envFiles, files...)
	}
}

// WithConfigProvider replaces the source of the session configuration.
func WithConfigProvider(provider configProvider) Option {
	return func(o *options) {
		o.configHandler = provider
	}
}

// WithComparer replaces the renderer of equality-assertion failures.
func WithComparer(cmp renderer) Option {
	return func(o *options) {
		o.comparer = cmp
	}
}

// WithLogOutput directs the session's logging to w.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		o.logOutput = w
	}
}

// WithExistingLogger leaves the default slog logger of the process as it is,
// for sessions started by a program that set up its own logging. The log level
// of the session configuration and [WithLogOutput] have no effect then.
func WithExistingLogger() Option {
	return func(o *options) {
		o.keepLogger = true
	}
}

// WithHeaderOutput directs the report header to w.
func WithHeaderOutput(w io.Writer) Option {
	return func(o *options) {
		o.headerOutput = w
	}
}
