// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const dirMode = 0o755

// DestinationPath maps a slash-separated source-relative path to its
// location below the destination root.
func DestinationPath(destRoot, relPath string) string {
	return filepath.Join(destRoot, filepath.FromSlash(relPath))
}

// MkdirChain creates the named directory along with all missing parents,
// like mkdir -p.
//
// Each separator-delimited prefix is created in order, shortest first.
// Prefixes that already exist as directories are fine. The first prefix that
// cannot be created aborts the chain and is reported in the returned
// [*fs.PathError].
func MkdirChain(name string) error {
	name = filepath.Clean(name)

	for idx := 1; idx < len(name); idx++ {
		if !os.IsPathSeparator(name[idx]) {
			continue
		}

		err := mkdir(name[:idx])
		if err != nil {
			return err
		}
	}

	return mkdir(name)
}

func mkdir(name string) error {
	err := os.Mkdir(name, dirMode)
	if err == nil || !errors.Is(err, fs.ErrExist) {
		return err //nolint:wrapcheck
	}

	// The path exists already. That is fine as long as it is a directory.
	info, statErr := os.Stat(name)
	if statErr == nil && info.IsDir() {
		return nil
	}

	return &fs.PathError{
		Op:   "mkdir",
		Path: name,
		Err:  ErrNotDir,
	}
}

// relative strips the walk root prefix from a path produced by the walk.
//
// All walk paths are built by joining entry names below the root, so the
// prefix is always present.
func relative(root, walkPath string) string {
	if root == "." {
		return walkPath
	}

	return strings.TrimPrefix(walkPath, root+"/")
}
