package filesystem

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/pathkit/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func newOSHandler() *Handler {
	return NewHandler(&schema.OS{}, &schema.Unix{})
}

func TestExists_BrokenSymlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(target, []byte("x"), 0o644))
	require.NoError(t, os.Symlink(target, link))
	require.NoError(t, os.Remove(target))

	handler := newOSHandler()

	exists, err := handler.Exists(link)
	require.NoError(t, err)
	assert.False(t, exists, "a broken symlink should not exist when followed")

	lexists, err := handler.LExists(link)
	require.NoError(t, err)
	assert.True(t, lexists, "a broken symlink should exist when not followed")

	isLink, err := handler.IsSymlink(link)
	require.NoError(t, err)
	assert.True(t, isLink)
}

func TestExists_Nonexistent(t *testing.T) {
	t.Parallel()

	handler := newOSHandler()
	path := filepath.Join(t.TempDir(), "missing")

	exists, err := handler.Exists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	lexists, err := handler.LExists(path)
	require.NoError(t, err)
	assert.False(t, lexists)
}

func TestExists_StatFailure(t *testing.T) {
	t.Parallel()

	osProv := new(mockOsProvider)
	handler := NewHandler(osProv, new(mockUnixProvider))

	osProv.On("Stat", "/some/path").Return(nil, fs.ErrPermission).Once()

	exists, err := handler.Exists("/some/path")
	require.ErrorIs(t, err, fs.ErrPermission)
	assert.False(t, exists)

	osProv.AssertExpectations(t)
}

func TestIsDir_IsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	handler := newOSHandler()

	isDir, err := handler.IsDir(dir)
	require.NoError(t, err)
	assert.True(t, isDir)

	isFile, err := handler.IsFile(dir)
	require.NoError(t, err)
	assert.False(t, isFile)

	isDir, err = handler.IsDir(file)
	require.NoError(t, err)
	assert.False(t, isDir)

	isFile, err = handler.IsFile(file)
	require.NoError(t, err)
	assert.True(t, isFile)
}

func TestIsEmptyFolder(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	handler := newOSHandler()

	empty, err := handler.IsEmptyFolder(dir)
	require.NoError(t, err)
	assert.True(t, empty)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "f"), nil, 0o644))

	empty, err = handler.IsEmptyFolder(dir)
	require.NoError(t, err)
	assert.False(t, empty)

	_, err = handler.IsEmptyFolder(filepath.Join(dir, "missing"))
	require.ErrorIs(t, err, fs.ErrNotExist)
}

func TestIsMount_RegularDirectory(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "sub")
	require.NoError(t, os.Mkdir(dir, 0o755))

	assert.False(t, newOSHandler().IsMount(dir))
}

func TestIsMount_Nonexistent(t *testing.T) {
	t.Parallel()

	assert.False(t, newOSHandler().IsMount(filepath.Join(t.TempDir(), "missing")))
}

func TestIsMount_Root(t *testing.T) {
	t.Parallel()

	assert.True(t, newOSHandler().IsMount("/"))
}

func TestIsMount_DifferentDevice(t *testing.T) {
	t.Parallel()

	unixProv := new(mockUnixProvider)
	handler := NewHandler(new(mockOsProvider), unixProv)

	unixProv.On("Lstat", "/mnt/disk1", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 2, Ino: 2, Mode: unix.S_IFDIR})).Return(nil).Once()
	unixProv.On("Lstat", "/mnt/disk1/..", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 1, Ino: 10, Mode: unix.S_IFDIR})).Return(nil).Once()

	assert.True(t, handler.IsMount("/mnt/disk1"))

	unixProv.AssertExpectations(t)
}

func TestIsMount_ParentResolvedByKernel(t *testing.T) {
	t.Parallel()

	unixProv := new(mockUnixProvider)
	handler := NewHandler(new(mockOsProvider), unixProv)

	unixProv.On("Lstat", "/data/link/sub", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 2, Ino: 20, Mode: unix.S_IFDIR})).Return(nil).Once()
	unixProv.On("Lstat", "/data/link/sub/..", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 2, Ino: 10, Mode: unix.S_IFDIR})).Return(nil).Once()

	assert.False(t, handler.IsMount("/data/link/sub"))

	unixProv.AssertExpectations(t)
}

func TestIsMount_SymlinkedParentOnOtherDevice(t *testing.T) {
	t.Parallel()

	const otherFS = "/dev/shm"

	other, err := os.MkdirTemp(otherFS, "pathkit-")
	if err != nil {
		t.Skipf("no %s available: %v", otherFS, err)
	}
	t.Cleanup(func() { _ = os.RemoveAll(other) })

	dir := t.TempDir()

	var local, remote unix.Stat_t
	require.NoError(t, unix.Stat(dir, &local))
	require.NoError(t, unix.Stat(other, &remote))
	if local.Dev == remote.Dev {
		t.Skipf("%s is on the same device as %s", otherFS, dir)
	}

	require.NoError(t, os.Mkdir(filepath.Join(other, "sub"), 0o755))
	link := filepath.Join(dir, "link")
	require.NoError(t, os.Symlink(other, link))

	assert.False(t, newOSHandler().IsMount(filepath.Join(link, "sub")))
}

func TestIsMount_Symlink(t *testing.T) {
	t.Parallel()

	unixProv := new(mockUnixProvider)
	handler := NewHandler(new(mockOsProvider), unixProv)

	unixProv.On("Lstat", "/mnt/link", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 2, Ino: 2, Mode: unix.S_IFLNK})).Return(nil).Once()

	assert.False(t, handler.IsMount("/mnt/link"))

	unixProv.AssertExpectations(t)
}

func TestIsMount_ParentFailure(t *testing.T) {
	t.Parallel()

	unixProv := new(mockUnixProvider)
	handler := NewHandler(new(mockOsProvider), unixProv)

	unixProv.On("Lstat", "/mnt/disk1", mock.Anything).
		Run(withStat(unix.Stat_t{Dev: 2, Ino: 2, Mode: unix.S_IFDIR})).Return(nil).Once()
	unixProv.On("Lstat", "/mnt/disk1/..", mock.Anything).Return(unix.EACCES).Once()

	assert.False(t, handler.IsMount("/mnt/disk1"))

	unixProv.AssertExpectations(t)
}

func TestGetMetadata_Symlink(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	target := filepath.Join(dir, "target.txt")
	link := filepath.Join(dir, "link")

	require.NoError(t, os.WriteFile(target, []byte("hello"), 0o640))
	require.NoError(t, os.Symlink("target.txt", link))

	handler := newOSHandler()

	metadata, err := handler.GetMetadata(link)
	require.NoError(t, err)
	assert.True(t, metadata.IsSymlink)
	assert.False(t, metadata.IsRegular)
	assert.Equal(t, "target.txt", metadata.SymlinkTo)

	metadata, err = handler.GetTargetMetadata(link)
	require.NoError(t, err)
	assert.False(t, metadata.IsSymlink)
	assert.True(t, metadata.IsRegular)
	assert.Equal(t, uint64(5), metadata.Size)
	assert.Equal(t, uint32(0o640), metadata.Perms)
}

func TestGetMetadata_Nonexistent(t *testing.T) {
	t.Parallel()

	_, err := newOSHandler().GetMetadata(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, unix.ENOENT))
}
