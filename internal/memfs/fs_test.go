// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package memfs_test

import (
	"io"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/aibor/expand/internal/memfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.MkdirAll("a/b"))
	require.NoError(t, fsys.Add("a/b/file1", []byte("file 1")))
	require.NoError(t, fsys.Add("a/file2", []byte("file 2")))
	require.NoError(t, fsys.Mkdir("empty"))

	err := fstest.TestFS(fsys, "a/b/file1", "a/file2", "empty")
	require.NoError(t, err)
}

func TestFS_Open(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.MkdirAll("dir"))
	require.NoError(t, fsys.Add("dir/file", []byte("content")))

	tests := []struct {
		name        string
		path        string
		expected    string
		expectedErr error
	}{
		{
			name:     "regular file",
			path:     "dir/file",
			expected: "content",
		},
		{
			name:        "missing file",
			path:        "dir/other",
			expectedErr: memfs.ErrFileNotExist,
		},
		{
			name:        "missing directory",
			path:        "other/file",
			expectedErr: memfs.ErrFileNotExist,
		},
		{
			name:        "invalid path",
			path:        "../file",
			expectedErr: memfs.ErrFileInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			file, err := fsys.Open(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)

			if tt.expectedErr != nil {
				return
			}

			defer file.Close()

			content, err := io.ReadAll(file)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, string(content))
		})
	}
}

func TestFS_Mkdir(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.Mkdir("dir"))
	require.NoError(t, fsys.Add("dir/file", nil))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "new directory",
			path: "dir/sub",
		},
		{
			name:        "exists already",
			path:        "dir",
			expectedErr: memfs.ErrFileExist,
		},
		{
			name:        "missing parent",
			path:        "other/sub",
			expectedErr: memfs.ErrFileNotExist,
		},
		{
			name:        "parent is a file",
			path:        "dir/file/sub",
			expectedErr: memfs.ErrFileNotDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fsys.Mkdir(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFS_MkdirAll(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.Add("file", nil))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "deep chain",
			path: "a/b/c",
		},
		{
			name: "exists already",
			path: "a/b",
		},
		{
			name: "root",
			path: ".",
		},
		{
			name:        "file in the way",
			path:        "file",
			expectedErr: memfs.ErrFileNotDir,
		},
		{
			name:        "file as parent",
			path:        "file/sub",
			expectedErr: memfs.ErrFileNotDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fsys.MkdirAll(tt.path)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFS_Add(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.Mkdir("dir"))
	require.NoError(t, fsys.Add("dir/file", []byte("content")))

	tests := []struct {
		name        string
		path        string
		expectedErr error
	}{
		{
			name: "new file",
			path: "dir/new",
		},
		{
			name: "top level",
			path: "top",
		},
		{
			name:        "exists already",
			path:        "dir/file",
			expectedErr: memfs.ErrFileExist,
		},
		{
			name:        "missing parent",
			path:        "other/file",
			expectedErr: memfs.ErrFileNotExist,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := fsys.Add(tt.path, nil)
			require.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func TestFS_ReadDir(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.MkdirAll("dir/sub"))
	require.NoError(t, fsys.Add("dir/file", []byte("content")))

	entries, err := fs.ReadDir(fsys, "dir")
	require.NoError(t, err)

	type entry struct {
		name  string
		isDir bool
	}

	actual := make([]entry, 0, len(entries))
	for _, e := range entries {
		actual = append(actual, entry{e.Name(), e.IsDir()})
	}

	expected := []entry{
		{"file", false},
		{"sub", true},
	}

	assert.Equal(t, expected, actual)
}

func TestFS_Stat(t *testing.T) {
	fsys := memfs.New()

	require.NoError(t, fsys.Mkdir("dir"))
	require.NoError(t, fsys.Add("dir/file", []byte("content")))

	info, err := fs.Stat(fsys, "dir/file")
	require.NoError(t, err)

	assert.Equal(t, "file", info.Name())
	assert.Equal(t, int64(7), info.Size())
	assert.True(t, info.Mode().IsRegular())

	info, err = fs.Stat(fsys, "dir")
	require.NoError(t, err)

	assert.True(t, info.IsDir())
}
