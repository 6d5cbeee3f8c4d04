// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyFile(t *testing.T) {
	sourceFS := fstest.MapFS{
		"file.txt": {Data: []byte("content")},
	}

	t.Run("copies content", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "file.txt")

		require.NoError(t, copyFile(sourceFS, "file.txt", dest))

		content, err := os.ReadFile(dest)
		require.NoError(t, err)

		assert.Equal(t, "content", string(content))
	})

	t.Run("truncates existing content", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "file.txt")

		longer := []byte("pre-existing content that is longer than the source")
		require.NoError(t, os.WriteFile(dest, longer, 0o644))

		require.NoError(t, copyFile(sourceFS, "file.txt", dest))

		content, err := os.ReadFile(dest)
		require.NoError(t, err)

		assert.Equal(t, "content", string(content))
	})

	t.Run("missing source", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "file.txt")

		err := copyFile(sourceFS, "missing.txt", dest)
		require.ErrorContains(t, err, "open source")

		assert.NoFileExists(t, dest)
	})

	t.Run("destination is a directory", func(t *testing.T) {
		err := copyFile(sourceFS, "file.txt", t.TempDir())
		require.ErrorContains(t, err, "open destination")
	})
}
