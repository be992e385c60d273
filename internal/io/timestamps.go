package io

import (
	"fmt"
	"time"

	"github.com/desertwitch/pathkit/internal/schema"
	"golang.org/x/sys/unix"
)

// SetTimes sets the access and modification timestamps of the element at path,
// following symbolic links. A zero [time.Time] leaves that timestamp as is.
func (i *Handler) SetTimes(path string, atime, mtime time.Time) error {
	ts := []unix.Timespec{toTimespec(atime), toTimespec(mtime)}

	if err := i.unixHandler.UtimesNano(path, ts); err != nil {
		return fmt.Errorf("(io-utimes) failed to set timestamps on %s: %w", path, err)
	}

	return nil
}

func toTimespec(t time.Time) unix.Timespec {
	if t.IsZero() {
		return unix.Timespec{Nsec: unix.UTIME_OMIT}
	}

	return unix.Timespec{Sec: t.Unix(), Nsec: int64(t.Nanosecond())}
}

func (i *Handler) ensureTimestamp(path string, metadata *schema.Metadata) error {
	ts := []unix.Timespec{metadata.AccessedAt, metadata.ModifiedAt}
	if err := i.unixHandler.UtimesNano(path, ts); err != nil {
		return fmt.Errorf("failed to set timestamp on %s: %w", path, err)
	}

	return nil
}

func (i *Handler) ensureLinkTimestamp(path string, metadata *schema.Metadata) error {
	ts := []unix.Timespec{metadata.AccessedAt, metadata.ModifiedAt}
	if err := i.unixHandler.Lutimes(path, ts); err != nil {
		return fmt.Errorf("failed to set link timestamp on %s: %w", path, err)
	}

	return nil
}
