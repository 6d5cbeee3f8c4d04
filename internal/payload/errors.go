// SPDX-FileCopyrightText: 2025 Tobias Böhm <code@aibor.de>
//
// SPDX-License-Identifier: GPL-3.0-or-later

package payload

import (
	"errors"
)

// ErrNoPayload is returned if the file does not carry a payload archive in
// any of the supported formats.
var ErrNoPayload = errors.New("no embedded payload found")
