package schema

import (
	"os"

	"golang.org/x/sys/unix"
)

// OS is an implementation wrapping operating system functions.
type OS struct{}

// Remove wraps around [os.Remove].
func (*OS) Remove(name string) error {
	return os.Remove(name)
}

// Readlink wraps around [os.Readlink].
func (*OS) Readlink(name string) (string, error) {
	return os.Readlink(name)
}

// ReadDir wraps around [os.ReadDir].
func (*OS) ReadDir(name string) ([]os.DirEntry, error) {
	return os.ReadDir(name)
}

// Open wraps around [os.Open].
func (*OS) Open(name string) (*os.File, error) {
	return os.Open(name)
}

// CreateTemp wraps around [os.CreateTemp].
func (*OS) CreateTemp(dir, pattern string) (*os.File, error) {
	return os.CreateTemp(dir, pattern)
}

// Stat wraps around [os.Stat].
func (*OS) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Lstat wraps around [os.Lstat].
func (*OS) Lstat(name string) (os.FileInfo, error) {
	return os.Lstat(name)
}

// Rename wraps around [os.Rename].
func (*OS) Rename(oldpath, newpath string) error {
	return os.Rename(oldpath, newpath)
}

// Mkdir wraps around [os.Mkdir].
func (*OS) Mkdir(name string, perm os.FileMode) error {
	return os.Mkdir(name, perm)
}

// MkdirAll wraps around [os.MkdirAll].
func (*OS) MkdirAll(path string, perm os.FileMode) error {
	return os.MkdirAll(path, perm)
}

// ReadFile wraps around [os.ReadFile].
func (*OS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}

// WriteFile wraps around [os.WriteFile].
func (*OS) WriteFile(name string, data []byte, perm os.FileMode) error {
	return os.WriteFile(name, data, perm)
}

// Unix is an implementation wrapping Unix operating system functions.
type Unix struct{}

// Lstat wraps around [unix.Lstat].
func (*Unix) Lstat(path string, stat *unix.Stat_t) error {
	return unix.Lstat(path, stat)
}

// Stat wraps around [unix.Stat].
func (*Unix) Stat(path string, stat *unix.Stat_t) error {
	return unix.Stat(path, stat)
}

// Rmdir wraps around [unix.Rmdir].
func (*Unix) Rmdir(path string) error {
	return unix.Rmdir(path)
}

// Symlink wraps around [unix.Symlink].
func (*Unix) Symlink(oldpath, newpath string) error {
	return unix.Symlink(oldpath, newpath)
}

// Chmod wraps around [unix.Chmod].
func (*Unix) Chmod(path string, mode uint32) error {
	return unix.Chmod(path, mode)
}

// Chown wraps around [unix.Chown].
func (*Unix) Chown(path string, uid, gid int) error {
	return unix.Chown(path, uid, gid)
}

// Lchown wraps around [unix.Lchown].
func (*Unix) Lchown(path string, uid, gid int) error {
	return unix.Lchown(path, uid, gid)
}

// UtimesNano wraps around [unix.UtimesNano].
func (*Unix) UtimesNano(path string, times []unix.Timespec) error {
	return unix.UtimesNano(path, times)
}

// Lutimes sets the timestamps of a symbolic link itself, wrapping around
// [unix.UtimesNanoAt] with [unix.AT_SYMLINK_NOFOLLOW].
func (*Unix) Lutimes(path string, times []unix.Timespec) error {
	return unix.UtimesNanoAt(unix.AT_FDCWD, path, times, unix.AT_SYMLINK_NOFOLLOW)
}
