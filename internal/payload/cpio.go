// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/cavaliergopher/cpio"

	"github.com/aibor/expand/internal/memfs"
)

// SVR4 cpio magic values, without and with checksums.
var cpioMagics = []string{"070701", "070702"}

func hasCpioMagic(file *os.File) (bool, error) {
	magic := make([]byte, 6)

	_, err := file.ReadAt(magic, 0)
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return false, nil
	}

	if err != nil {
		return false, fmt.Errorf("read magic: %w", err)
	}

	for _, m := range cpioMagics {
		if string(magic) == m {
			return true, nil
		}
	}

	return false, nil
}

// mountCpio streams all cpio records into an in-memory file tree.
//
// Only directories and regular files are taken over. Anything else a cpio
// archive can carry is not part of a payload and is skipped.
func mountCpio(file *os.File) (*memfs.FS, error) {
	_, err := file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, fmt.Errorf("seek: %w", err)
	}

	fsys := memfs.New()
	reader := cpio.NewReader(file)

	for {
		header, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read cpio record: %w", err)
		}

		name := cleanName(header.Name)
		if name == "." {
			continue
		}

		switch {
		case header.Mode.IsDir():
			err = fsys.MkdirAll(name)
		case header.Mode.IsRegular():
			err = addRegular(fsys, reader, name)
		default:
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("add %s: %w", name, err)
		}
	}

	return fsys, nil
}

func addRegular(fsys *memfs.FS, reader io.Reader, name string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read content: %w", err)
	}

	err = fsys.MkdirAll(path.Dir(name))
	if err != nil {
		return err //nolint:wrapcheck
	}

	return fsys.Add(name, data) //nolint:wrapcheck
}

func cleanName(name string) string {
	name = path.Clean(name)
	name = strings.TrimPrefix(name, "/")

	if name == "" {
		return "."
	}

	return name
}
