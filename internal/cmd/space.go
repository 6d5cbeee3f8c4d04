// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

//go:build unix

package cmd

import (
	"log/slog"

	"golang.org/x/sys/unix"
)

// logFreeSpace reports the space available on the destination file system.
// It is informational only and never fails the run.
func logFreeSpace(dir string) {
	var stat unix.Statfs_t

	err := unix.Statfs(dir, &stat)
	if err != nil {
		slog.Debug("Failed to stat destination file system",
			slog.String("path", dir),
			slog.Any("error", err))

		return
	}

	free := stat.Bavail * uint64(stat.Bsize) //nolint:gosec

	slog.Debug("Destination file system",
		slog.String("path", dir),
		slog.Uint64("free_bytes", free))
}
