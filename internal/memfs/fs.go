// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memfs

import (
	"io/fs"
	"path"
	"strings"
)

var _ fs.FS = (*FS)(nil)

// FS is a simple in-memory [fs.FS] that supports directories and regular
// files.
//
// Regular files are added with [FS.Add] and hold their complete content in
// memory. Use [FS.Mkdir] or [FS.MkdirAll] to create any required directories
// beforehand.
type FS struct {
	root directory
}

// New creates a new empty [FS].
func New() *FS {
	return &FS{
		root: make(directory),
	}
}

// Open opens the named file.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Open(name string) (fs.File, error) {
	file, err := fsys.open(name)
	if err != nil {
		return nil, &PathError{
			Op:   "open",
			Path: name,
			Err:  err,
		}
	}

	return file, nil
}

// Mkdir creates a new directory with the given name. The parent directory
// must exist already.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Mkdir(name string) error {
	parentName, dirName := path.Split(clean(name))

	parent, err := fsys.subDir(clean(parentName))
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	err = parent.add(dirName, &directory{})
	if err != nil {
		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

// MkdirAll creates a directory with the given name along with all necessary
// parents.
//
// It returns a [PathError] in case of errors. If the directory exists
// already, it does nothing and returns nil.
func (fsys *FS) MkdirAll(name string) error {
	cleaned := clean(name)

	file, err := fsys.find(cleaned)
	if err == nil {
		if file.mode().IsDir() {
			return nil
		}

		return &PathError{
			Op:   "mkdir",
			Path: name,
			Err:  ErrFileNotDir,
		}
	}

	parent := path.Dir(cleaned)
	if parent != cleaned && parent != "." {
		err = fsys.MkdirAll(parent)
		if err != nil {
			return err
		}
	}

	return fsys.Mkdir(name)
}

// Add creates a new regular file with the given name and content. The parent
// directory must exist already.
//
// It returns a [PathError] in case of errors.
func (fsys *FS) Add(name string, data []byte) error {
	err := fsys.add(name, regularFile(data))
	if err != nil {
		return &PathError{
			Op:   "add",
			Path: name,
			Err:  err,
		}
	}

	return nil
}

func (fsys *FS) subDir(name string) (*directory, error) {
	file, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	dir, isDir := file.(*directory)
	if !isDir {
		return nil, ErrFileNotDir
	}

	return dir, nil
}

func (fsys *FS) add(name string, file file) error {
	dirName, fileName := path.Split(clean(name))

	parent, err := fsys.subDir(clean(dirName))
	if err != nil {
		return err
	}

	err = parent.add(fileName, file)
	if err != nil {
		return err
	}

	return nil
}

func (fsys *FS) open(name string) (fs.File, error) {
	file, err := fsys.find(name)
	if err != nil {
		return nil, err
	}

	info := dirEntry{
		name: name,
		file: file,
	}

	return file.open(info), nil
}

//nolint:ireturn
func (fsys *FS) find(name string) (file, error) {
	var file file = &fsys.root

	if name == "" || name == "." {
		return file, nil
	}

	if !fs.ValidPath(name) {
		return nil, ErrFileInvalid
	}

	for _, name := range strings.Split(name, "/") {
		dir, isDir := file.(*directory)
		if !isDir {
			return nil, ErrFileNotExist
		}

		next, exists := (*dir)[name]
		if !exists {
			return nil, ErrFileNotExist
		}

		file = next
	}

	return file, nil
}

func clean(p string) string {
	p = path.Clean(p)
	return strings.TrimPrefix(p, "/")
}
