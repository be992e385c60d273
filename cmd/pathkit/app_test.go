package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertwitch/pathkit/internal/configuration"
	"github.com/desertwitch/pathkit/internal/pathing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var errTest = errors.New("test error")

type mockPathProvider struct {
	mock.Mock
}

func (m *mockPathProvider) CopyTree(p pathing.Path, dst pathing.Path, opts ...pathing.CopyOption) error {
	args := m.Called(p.String(), dst.String(), len(opts))

	return args.Error(0)
}

func (m *mockPathProvider) IsMount(p pathing.Path) bool {
	args := m.Called(p.String())

	return args.Bool(0)
}

func (m *mockPathProvider) LExists(p pathing.Path) bool {
	args := m.Called(p.String())

	return args.Bool(0)
}

func (m *mockPathProvider) MoveTree(p pathing.Path, dst pathing.Path) error {
	args := m.Called(p.String(), dst.String())

	return args.Error(0)
}

func (m *mockPathProvider) RemoveTree(p pathing.Path, opts ...pathing.RemoveOption) error {
	args := m.Called(p.String(), len(opts))

	return args.Error(0)
}

func (m *mockPathProvider) SetTimes(p pathing.Path, atime, mtime time.Time) error {
	args := m.Called(p.String(), atime, mtime)

	return args.Error(0)
}

func newTestApp() (*App, *mockPathProvider, *bytes.Buffer) {
	provider := &mockPathProvider{}
	out := &bytes.Buffer{}

	return NewApp(provider, out), provider, out
}

func TestRun_Fail_UnknownCommand(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp()

	require.ErrorIs(t, app.Run("explode", nil), ErrUnknownCommand)
}

func TestRun_Fail_WrongArgs(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()

	require.ErrorIs(t, app.Run("rmtree", nil), ErrWrongArgs)
	require.ErrorIs(t, app.Run("copytree", []string{"/a"}), ErrWrongArgs)
	require.ErrorIs(t, app.Run("movetree", []string{"/a", "/b", "/c"}), ErrWrongArgs)

	provider.AssertExpectations(t)
}

func TestRun_Fail_UnknownFlag(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp()

	require.ErrorIs(t, app.Run("rmtree", []string{"-force", "/a"}), ErrInvalidFlags)
}

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"Success", nil, 0},
		{"Help", fmt.Errorf("(app-rmtree) %w", flag.ErrHelp), 0},
		{"UnknownCommand", fmt.Errorf("(app) %w: x", ErrUnknownCommand), 2},
		{"WrongArgs", fmt.Errorf("(app-rmtree) %w", ErrWrongArgs), 2},
		{"InvalidFlags", fmt.Errorf("(app-rmtree) %w", ErrInvalidFlags), 2},
		{"CheckFailed", fmt.Errorf("(app-check) %w", ErrCheckFailed), 1},
		{"OperationFailed", errTest, 1},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, exitCodeFor(tc.err))
		})
	}
}

func TestRun_UsageErrorsExitTwo(t *testing.T) {
	t.Parallel()

	app, _, _ := newTestApp()

	assert.Equal(t, 2, exitCodeFor(app.Run("explode", nil)))
	assert.Equal(t, 2, exitCodeFor(app.Run("rmtree", nil)))
	assert.Equal(t, 2, exitCodeFor(app.Run("rmtree", []string{"-force", "/a"})))
	assert.Zero(t, exitCodeFor(app.Run("rmtree", []string{"-h"})))
}

func TestRun_RemoveTree(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("RemoveTree", "/data/tree", 0).Return(nil).Once()

	require.NoError(t, app.Run("rmtree", []string{"/data/tree"}))

	provider.AssertExpectations(t)
}

func TestRun_RemoveTree_Ignore(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("RemoveTree", "/data/tree", 1).Return(nil).Once()

	require.NoError(t, app.Run("rmtree", []string{"-ignore", "/data/tree"}))

	provider.AssertExpectations(t)
}

func TestRun_RemoveTree_Fail(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("RemoveTree", "/data/tree", 0).Return(errTest).Once()

	require.ErrorIs(t, app.Run("rmtree", []string{"/data/tree"}), errTest)

	provider.AssertExpectations(t)
}

func TestRun_CopyTree(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("CopyTree", "/src", "/dst", 0).Return(nil).Once()
	provider.On("CopyTree", "/src", "/dst2", 1).Return(nil).Once()

	require.NoError(t, app.Run("copytree", []string{"/src", "/dst"}))
	require.NoError(t, app.Run("copytree", []string{"-symlinks", "/src", "/dst2"}))

	provider.AssertExpectations(t)
}

func TestRun_MoveTree(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("MoveTree", "/src", "/dst").Return(nil).Twice()

	require.NoError(t, app.Run("movetree", []string{"/src", "/dst"}))
	require.NoError(t, app.Run("move", []string{"/src", "/dst"}))

	provider.AssertExpectations(t)
}

func TestRun_MoveTree_Fail(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()
	provider.On("MoveTree", "/src", "/dst").Return(errTest).Once()

	require.ErrorIs(t, app.Run("movetree", []string{"/src", "/dst"}), errTest)
}

func TestRun_Checks(t *testing.T) {
	t.Parallel()

	app, provider, out := newTestApp()
	provider.On("LExists", "/link").Return(true).Once()
	provider.On("IsMount", "/data").Return(false).Once()

	require.NoError(t, app.Run("lexists", []string{"/link"}))
	require.ErrorIs(t, app.Run("ismount", []string{"/data"}), ErrCheckFailed)

	assert.Equal(t, "true\nfalse\n", out.String())
	provider.AssertExpectations(t)
}

func TestRun_Touch(t *testing.T) {
	t.Parallel()

	app, provider, _ := newTestApp()

	before := time.Now()
	provider.On("SetTimes", "/file", mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			atime := args.Get(1).(time.Time) //nolint:forcetypeassert
			mtime := args.Get(2).(time.Time) //nolint:forcetypeassert

			assert.Equal(t, atime, mtime)
			assert.False(t, atime.Before(before))
		}).
		Return(nil).Once()

	require.NoError(t, app.Run("touch", []string{"/file"}))

	provider.AssertExpectations(t)
}

func TestRun_ResetTemp(t *testing.T) {
	t.Parallel()

	if _, ok := os.LookupEnv(configuration.EnvTempDir); ok {
		t.Skip("temporary directory is configured by the environment")
	}

	tempDir := filepath.Join(t.TempDir(), "session")
	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, "stale"), 0o755))

	envFile := filepath.Join(t.TempDir(), "session.env")
	require.NoError(t, os.WriteFile(envFile, []byte(configuration.EnvTempDir+"="+tempDir+"\n"), 0o644))

	app, _, out := newTestApp()
	logger := slog.Default()

	require.NoError(t, app.Run("resettemp", []string{"-env", envFile}))
	assert.Same(t, logger, slog.Default(), "the logger of the command line should be kept")
	assert.Equal(t, tempDir+"\n", out.String())

	entries, err := os.ReadDir(tempDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
