// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Expand extracts the archive embedded in its own binary into a directory on
// the real file system.
//
// At build time a payload archive is appended to the executable. At runtime
// the payload's directory tree is recreated at the given output directory,
// overwriting existing files. The run is fully synchronous and per-entry
// failures never abort it; they are reported and reflected in the exit code.
//
// Usage:
//
//	expand [flags...] [OUTPUT_DIR]
//
// OUTPUT_DIR defaults to the current directory.
package main

import (
	"os"

	"github.com/aibor/expand/internal/cmd"
)

func main() {
	rc := cmd.Run(os.Args, cmd.IO{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})

	os.Exit(rc)
}
