// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import "errors"

var (
	// ErrNoOutputs is returned when FundTransaction is asked to build a
	// transaction with no payment outputs.
	ErrNoOutputs = errors.New("wallet: transaction has no outputs")

	// ErrNoEligibleFilters is returned when FundTransaction is called with
	// an empty filter ladder, leaving it nothing to try.
	ErrNoEligibleFilters = errors.New("wallet: no eligibility filters supplied")

	// ErrMissingChangeSource is returned when a coin selection attempt
	// would create change but no ChangeSource was supplied.
	ErrMissingChangeSource = errors.New("wallet: change required but no change source supplied")

	// ErrCoinSelectionFailed wraps coinselect.ErrInsufficientFunds: every
	// filter/algorithm combination was tried and none produced a result
	// that covers the requested outputs.
	ErrCoinSelectionFailed = errors.New("wallet: coin selection exhausted all filters and algorithms")
)
