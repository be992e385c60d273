package pathing

import "log/slog"

// Exists reports whether something exists at the [Path], following symbolic
// links. A broken symbolic link does not exist, and neither does a location
// that cannot be inspected.
func (h *Handler) Exists(p Path) bool {
	return h.query("exists", p, h.fsHandler.Exists)
}

// LExists reports whether something exists at the [Path] without following
// symbolic links, so that also a broken symbolic link exists.
func (h *Handler) LExists(p Path) bool {
	return h.query("lexists", p, h.fsHandler.LExists)
}

// IsDir reports whether the [Path] is a directory, following symbolic links.
func (h *Handler) IsDir(p Path) bool {
	return h.query("isdir", p, h.fsHandler.IsDir)
}

// IsFile reports whether the [Path] is a regular file, following symbolic
// links.
func (h *Handler) IsFile(p Path) bool {
	return h.query("isfile", p, h.fsHandler.IsFile)
}

// IsSymlink reports whether the [Path] is itself a symbolic link.
func (h *Handler) IsSymlink(p Path) bool {
	return h.query("issymlink", p, h.fsHandler.IsSymlink)
}

// IsMount reports whether the [Path] is a mount point. A location that does not
// exist is not a mount point.
func (h *Handler) IsMount(p Path) bool {
	return h.fsHandler.IsMount(p.String())
}

func (h *Handler) query(name string, p Path, fn func(string) (bool, error)) bool {
	ok, err := fn(p.String())
	if err != nil {
		slog.Debug("Path query failed (assuming false):",
			"query", name,
			"path", p.String(),
			"err", err,
		)

		return false
	}

	return ok
}

// Exists reports whether something exists at the [Path], following symbolic
// links. See [Handler.Exists].
func (p Path) Exists() bool {
	return defaultHandler.Exists(p)
}

// LExists reports whether something exists at the [Path], including a broken
// symbolic link. See [Handler.LExists].
func (p Path) LExists() bool {
	return defaultHandler.LExists(p)
}

// IsDir reports whether the [Path] is a directory.
func (p Path) IsDir() bool {
	return defaultHandler.IsDir(p)
}

// IsFile reports whether the [Path] is a regular file.
func (p Path) IsFile() bool {
	return defaultHandler.IsFile(p)
}

// IsSymlink reports whether the [Path] is a symbolic link.
func (p Path) IsSymlink() bool {
	return defaultHandler.IsSymlink(p)
}

// IsMount reports whether the [Path] is a mount point.
func (p Path) IsMount() bool {
	return defaultHandler.IsMount(p)
}
