// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/btcsuite/btclog"

// log is the package-level logger used throughout coinselect. It is
// disabled by default; callers that want logging should call UseLogger
// with a concrete backend, following the convention used across the
// btcsuite family of packages.
var log = btclog.Disabled

// UseLogger sets the subsystem logger used by this package. This follows
// the btcsuite convention of exposing logging as an injectable dependency
// rather than a global singleton tied to a specific backend.
func UseLogger(logger btclog.Logger) {
	log = logger
}
