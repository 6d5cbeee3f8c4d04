// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package extract

import (
	"errors"
)

// ErrNotDir is returned if a destination path exists but is not a directory.
var ErrNotDir = errors.New("not a directory")
