package filesystem

import (
	"os"

	"github.com/stretchr/testify/mock"
	"golang.org/x/sys/unix"
)

type mockOsProvider struct {
	mock.Mock
}

func (m *mockOsProvider) Lstat(name string) (os.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}

func (m *mockOsProvider) ReadDir(name string) ([]os.DirEntry, error) {
	args := m.Called(name)
	entries, _ := args.Get(0).([]os.DirEntry)

	return entries, args.Error(1)
}

func (m *mockOsProvider) Readlink(name string) (string, error) {
	args := m.Called(name)

	return args.String(0), args.Error(1)
}

func (m *mockOsProvider) Stat(name string) (os.FileInfo, error) {
	args := m.Called(name)
	info, _ := args.Get(0).(os.FileInfo)

	return info, args.Error(1)
}

type mockUnixProvider struct {
	mock.Mock
}

func (m *mockUnixProvider) Lstat(path string, stat *unix.Stat_t) error {
	args := m.Called(path, stat)

	return args.Error(0)
}

func (m *mockUnixProvider) Stat(path string, stat *unix.Stat_t) error {
	args := m.Called(path, stat)

	return args.Error(0)
}

// withStat returns a mock run function filling the stat buffer with st.
func withStat(st unix.Stat_t) func(mock.Arguments) {
	return func(args mock.Arguments) {
		buf, _ := args.Get(1).(*unix.Stat_t)
		*buf = st
	}
}
