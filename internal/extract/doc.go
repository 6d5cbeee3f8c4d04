// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

// Package extract materializes a read-only file tree onto a real file
// system.
//
// The tree is walked depth first. For each directory a matching directory is
// created below the destination root and for each regular file the complete
// content is copied. A fixed set of internal marker entries is skipped.
// Failures are handled per entry: they are logged and counted but never stop
// the walk.
package extract
