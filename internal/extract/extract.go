// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"path"
	"path/filepath"
)

// internalNames are entries placed in the payload by the embedding tooling
// itself. They are not part of the user payload and are never extracted.
// Ignoring a directory suppresses its whole subtree.
var internalNames = map[string]bool{
	".cosmo":        true,
	".symtab.amd64": true,
	".symtab.arm64": true,
}

// Result holds the counters accumulated over one extraction run. It contains
// counts only, never the entries themselves.
type Result struct {
	// Extracted is the number of directories and files that were created
	// successfully.
	Extracted int

	// Errors is the number of entries that could not be processed.
	Errors int
}

// Extractor materializes the file tree of a read-only [fs.FS] below a
// destination directory on the real file system.
//
// The zero value is not usable, at least Fsys and Dest must be set.
type Extractor struct {
	// Fsys is the source tree. It is never written to.
	Fsys fs.FS

	// Dir is the directory within Fsys the walk starts at. Entries are
	// recreated relative to it. Empty means the root of Fsys.
	Dir string

	// Dest is the destination root directory. It must exist.
	Dest string

	// Out receives one progress notice per successfully processed entry.
	// Defaults to [io.Discard].
	Out io.Writer

	// Log is used for per-entry failure reports. Defaults to
	// [slog.Default].
	Log *slog.Logger
}

// Extract walks the source tree depth first and recreates it below the
// destination root.
//
// Each entry failure is logged and counted, but the walk always continues
// with the next sibling. Only a source directory that cannot be listed ends
// the walk of that particular subtree. There is no rollback: output created
// before a failure is left in place.
func (e *Extractor) Extract() Result {
	var result Result

	e.extractDir(e.root(), &result)

	return result
}

func (e *Extractor) extractDir(dir string, result *Result) {
	entries, err := fs.ReadDir(e.Fsys, dir)
	if err != nil {
		e.log().Error("Failed to list source directory",
			slog.String("path", dir),
			slog.Any("error", err))

		result.Errors++

		return
	}

	for _, entry := range entries {
		if internalNames[entry.Name()] {
			continue
		}

		e.extractEntry(dir, entry, result)
	}
}

func (e *Extractor) extractEntry(
	dir string,
	entry fs.DirEntry,
	result *Result,
) {
	sourcePath := path.Join(dir, entry.Name())
	relPath := relative(e.root(), sourcePath)
	destPath := DestinationPath(e.Dest, relPath)

	info, err := entry.Info()
	if err != nil {
		e.log().Error("Failed to read entry info",
			slog.String("path", sourcePath),
			slog.Any("error", err))

		result.Errors++

		return
	}

	if info.IsDir() {
		err = MkdirChain(destPath)
		if err != nil {
			e.log().Error("Failed to create directory",
				slog.String("path", destPath),
				slog.Any("error", err))

			result.Errors++

			// Do not descend into a directory that could not be created.
			return
		}

		fmt.Fprintf(e.out(), "  d %s\n", relPath)

		result.Extracted++

		e.extractDir(sourcePath, result)

		return
	}

	err = MkdirChain(filepath.Dir(destPath))
	if err != nil {
		e.log().Error("Failed to create parent directory",
			slog.String("path", destPath),
			slog.Any("error", err))

		result.Errors++

		return
	}

	err = copyFile(e.Fsys, sourcePath, destPath)
	if err != nil {
		e.log().Error("Failed to copy file",
			slog.String("path", sourcePath),
			slog.Any("error", err))

		result.Errors++

		return
	}

	fmt.Fprintf(e.out(), "  f %s  (%d bytes)\n", relPath, info.Size())

	result.Extracted++
}

func (e *Extractor) root() string {
	if e.Dir == "" {
		return "."
	}

	return e.Dir
}

func (e *Extractor) out() io.Writer {
	if e.Out == nil {
		return io.Discard
	}

	return e.Out
}

func (e *Extractor) log() *slog.Logger {
	if e.Log == nil {
		return slog.Default()
	}

	return e.Log
}
