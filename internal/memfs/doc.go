// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package memfs provides a simple in-memory [io/fs.FS] consisting of
// directories and regular files.
//
// It is intended as a mount target for archive formats that can only be read
// as a stream of records, like cpio. The records are added one by one with
// [FS.MkdirAll] and [FS.Add] and the resulting tree is consumed through the
// regular [io/fs.FS] interface.
package memfs
