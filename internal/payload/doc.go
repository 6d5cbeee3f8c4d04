// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package payload locates and mounts the archive that was embedded into the
// program at build time.
//
// The payload is appended to the executable file. Zip payloads are
// self-describing from the end of the file and are read in place. Cpio
// payloads are streamed into an in-memory file tree. Either way the payload
// is exposed as a read-only [io/fs.FS].
package payload
