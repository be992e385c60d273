package io

import (
	"log/slog"

	"github.com/dustin/go-humanize"
)

// copyReport accounts for the elements created by a tree copy.
type copyReport struct {
	DirsCreated     int
	FilesCopied     int
	SymlinksCreated int
	BytesCopied     uint64
}

func (r *copyReport) logSummary(src, dst string) {
	slog.Debug("Copied tree:",
		"src", src,
		"dst", dst,
		"dirs", r.DirsCreated,
		"files", r.FilesCopied,
		"symlinks", r.SymlinksCreated,
		"size", humanize.IBytes(r.BytesCopied),
	)
}
