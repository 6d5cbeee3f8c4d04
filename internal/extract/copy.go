// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

const (
	// copyBufferSize is the chunk size for file content copies.
	copyBufferSize = 64 * 1024

	fileMode = 0o644
)

// copyFile transfers the content of the source file to the destination path.
//
// An existing destination file is truncated and overwritten unconditionally.
// If the copy fails after some bytes have been written, the partial
// destination file is left in place.
func copyFile(fsys fs.FS, sourcePath, destPath string) error {
	source, err := fsys.Open(sourcePath)
	if err != nil {
		return fmt.Errorf("open source: %w", err)
	}
	defer source.Close()

	dest, err := os.OpenFile(destPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		return fmt.Errorf("open destination: %w", err)
	}

	buf := make([]byte, copyBufferSize)

	_, err = io.CopyBuffer(dest, source, buf)
	if err != nil {
		_ = dest.Close()
		return fmt.Errorf("copy content: %w", err)
	}

	err = dest.Close()
	if err != nil {
		return fmt.Errorf("close destination: %w", err)
	}

	return nil
}
