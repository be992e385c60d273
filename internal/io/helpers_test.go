package io

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/pathkit/internal/filesystem"
	"github.com/desertwitch/pathkit/internal/schema"
	"github.com/stretchr/testify/require"
)

// faultyOS is an operating system implementation failing on chosen paths.
type faultyOS struct {
	*schema.OS
	removeErrs  map[string]error
	readDirErrs map[string]error
	renameErrs  map[string]error
}

func newFaultyOS() *faultyOS {
	return &faultyOS{
		OS:          &schema.OS{},
		removeErrs:  make(map[string]error),
		readDirErrs: make(map[string]error),
		renameErrs:  make(map[string]error),
	}
}

func (f *faultyOS) Remove(name string) error {
	if err, ok := f.removeErrs[name]; ok {
		return &os.PathError{Op: "remove", Path: name, Err: err}
	}

	return f.OS.Remove(name)
}

func (f *faultyOS) ReadDir(name string) ([]os.DirEntry, error) {
	if err, ok := f.readDirErrs[name]; ok {
		return nil, &os.PathError{Op: "open", Path: name, Err: err}
	}

	return f.OS.ReadDir(name)
}

func (f *faultyOS) Rename(oldpath, newpath string) error {
	if err, ok := f.renameErrs[oldpath]; ok {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: err}
	}

	return f.OS.Rename(oldpath, newpath)
}

// faultyUnix is a Unix implementation recording ownership changes and failing
// them on chosen paths.
type faultyUnix struct {
	*schema.Unix
	chownErrs map[string]error
	owned     map[string][2]int
}

func newFaultyUnix() *faultyUnix {
	return &faultyUnix{
		Unix:      &schema.Unix{},
		chownErrs: make(map[string]error),
		owned:     make(map[string][2]int),
	}
}

func (f *faultyUnix) Chown(path string, uid, gid int) error {
	if err, ok := f.chownErrs[path]; ok {
		return err
	}
	f.owned[path] = [2]int{uid, gid}

	return f.Unix.Chown(path, uid, gid)
}

func (f *faultyUnix) Lchown(path string, uid, gid int) error {
	if err, ok := f.chownErrs[path]; ok {
		return err
	}
	f.owned[path] = [2]int{uid, gid}

	return f.Unix.Lchown(path, uid, gid)
}

func newOSHandler() *Handler {
	return newHandlerWith(&schema.OS{})
}

func newHandlerWith(osProv osProvider) *Handler {
	return newHandlerWithUnix(osProv, &schema.Unix{})
}

func newHandlerWithUnix(osProv osProvider, unixProv unixProvider) *Handler {
	fsHandler := filesystem.NewHandler(&schema.OS{}, &schema.Unix{})

	return NewHandler(fsHandler, osProv, unixProv)
}

// writeFiles creates the given files (map[relPath]content) below root.
func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for rel, content := range files {
		path := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// readTree returns all regular files below root (map[relPath]content).
func readTree(t *testing.T, root string) map[string]string {
	t.Helper()

	files := make(map[string]string)

	err := filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files[rel] = string(data)

		return nil
	})
	require.NoError(t, err)

	return files
}

func skipIfRoot(t *testing.T) {
	t.Helper()

	if os.Geteuid() == 0 {
		t.Skip("permission checks do not apply to root")
	}
}
