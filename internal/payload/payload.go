// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// SourceEnv is the environment variable that overrides the payload source
// with an explicit archive file path. If unset, the payload is read from the
// running executable itself.
const SourceEnv = "EXPAND_PAYLOAD"

// Payload is the read-only virtual file tree embedded into the program.
//
// It stays valid until [Payload.Close] is called.
type Payload struct {
	fsys fs.FS
	file *os.File
}

// FS returns the payload's file tree.
func (p *Payload) FS() fs.FS {
	return p.fsys
}

// Close releases the underlying archive file, if any.
func (p *Payload) Close() error {
	if p.file == nil {
		return nil
	}

	return p.file.Close() //nolint:wrapcheck
}

// Open mounts the payload embedded into the running executable. If
// [SourceEnv] is set in the environment, the archive file it points to is
// mounted instead.
func Open() (*Payload, error) {
	path := os.Getenv(SourceEnv)
	if path == "" {
		var err error

		path, err = os.Executable()
		if err != nil {
			return nil, fmt.Errorf("locate executable: %w", err)
		}
	}

	return OpenFile(path)
}

// OpenFile mounts the payload carried by the given file.
//
// It returns [ErrNoPayload] if the file does not contain an archive in a
// supported format.
func OpenFile(path string) (*Payload, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	fsys, keepOpen, err := mount(file)
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	payload := &Payload{fsys: fsys}
	if keepOpen {
		payload.file = file
	} else {
		_ = file.Close()
	}

	return payload, nil
}

// mount probes the archive format and builds the file tree. The second
// return value reports whether the tree reads from the file lazily, so the
// file must stay open.
func mount(file *os.File) (fs.FS, bool, error) {
	info, err := file.Stat()
	if err != nil {
		return nil, false, fmt.Errorf("stat: %w", err)
	}

	// A zip archive is located from the end of the file, which makes it
	// work for archives appended to an executable.
	zipReader, err := zip.NewReader(file, info.Size())
	if err == nil {
		return zipReader, true, nil
	}

	if !errors.Is(err, zip.ErrFormat) {
		return nil, false, fmt.Errorf("read zip: %w", err)
	}

	isCpio, err := hasCpioMagic(file)
	if err != nil {
		return nil, false, err
	}

	if !isCpio {
		return nil, false, ErrNoPayload
	}

	fsys, err := mountCpio(file)
	if err != nil {
		return nil, false, err
	}

	return fsys, false, nil
}
