// Package configuration resolves the settings of a test session. Settings are
// read from optional dotenv-style files and from the process environment, with
// the process environment taking precedence over any file.
package configuration

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvTempDir names a directory to be used (and emptied) for the temporary
	// artifacts of a test session.
	EnvTempDir = "PATHKIT_TEST_TEMPDIR"

	// EnvLogLevel selects the log level of a test session.
	EnvLogLevel = "PATHKIT_TEST_LOGLEVEL"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// SessionConfig is the principal structure holding a test session's settings.
type SessionConfig struct {
	// TempDir is the temporary directory, empty if none was configured.
	TempDir  string
	LogLevel slog.Level
}

// Handler is the principal implementation for the configuration services.
type Handler struct {
	genericHandler genericConfigProvider
	lookupEnv      func(key string) (string, bool)
}

// NewHandler returns a pointer to a new configuration [Handler], reading files
// with the given provider and the environment of the process.
func NewHandler(genericHandler genericConfigProvider) *Handler {
	return &Handler{
		genericHandler: genericHandler,
		lookupEnv:      os.LookupEnv,
	}
}

// ReadGeneric reads the given configuration files into a map.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.genericHandler.Read(filenames...)
}

// ReadSessionConfig resolves the [SessionConfig] from the given files (if any)
// and the process environment.
func (c *Handler) ReadSessionConfig(filenames ...string) (*SessionConfig, error) {
	envMap := make(map[string]string)

	if len(filenames) > 0 {
		data, err := c.ReadGeneric(filenames...)
		if err != nil {
			return nil, fmt.Errorf("(config-session) failed to read: %w", err)
		}
		envMap = data
	}

	for _, key := range []string{EnvTempDir, EnvLogLevel} {
		if value, ok := c.lookupEnv(key); ok {
			envMap[key] = value
		}
	}

	config := &SessionConfig{
		TempDir:  c.MapKeyToString(envMap, EnvTempDir),
		LogLevel: slog.LevelInfo,
	}

	if level := c.MapKeyToString(envMap, EnvLogLevel); level != "" {
		if err := config.LogLevel.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
			return nil, fmt.Errorf("(config-session) invalid %s: %w", EnvLogLevel, err)
		}
	}

	return config, nil
}

// MapKeyToString returns the value of a key in a configuration map, or an
// empty string if the key does not exist.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}
