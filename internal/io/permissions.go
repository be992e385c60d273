package io

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/desertwitch/pathkit/internal/schema"
	"golang.org/x/sys/unix"
)

func (i *Handler) ensurePermissions(path string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Chown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		if !errors.Is(err, unix.EPERM) {
			return fmt.Errorf("failed to set ownership on %s: %w", path, err)
		}
		logOwnershipSkipped(path, metadata, err)
	}

	if err := i.unixHandler.Chmod(path, metadata.Perms); err != nil {
		return fmt.Errorf("failed to set permissions on %s: %w", path, err)
	}

	return nil
}

func (i *Handler) ensureLinkPermissions(path string, metadata *schema.Metadata) error {
	if err := i.unixHandler.Lchown(path, int(metadata.UID), int(metadata.GID)); err != nil {
		if !errors.Is(err, unix.EPERM) {
			return fmt.Errorf("failed to set ownership on link %s: %w", path, err)
		}
		logOwnershipSkipped(path, metadata, err)
	}

	return nil
}

// logOwnershipSkipped reports ownership that could not be taken over, as only
// a privileged process may give elements away to other users.
func logOwnershipSkipped(path string, metadata *schema.Metadata, err error) {
	slog.Debug("Failure taking over ownership (skipped)",
		"path", path,
		"uid", metadata.UID,
		"gid", metadata.GID,
		"err", err,
	)
}
