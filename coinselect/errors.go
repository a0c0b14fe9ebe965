// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "errors"

var (
	// ErrInsufficientFunds is returned by the driver when the sum of all
	// eligible effective values is less than the selection target. The
	// solvers themselves never return this; they report "no solution" by
	// returning a false/nil result, since they only see one filter's
	// worth of eligible groups at a time and cannot tell "too little
	// money exists" apart from "this filter is too strict".
	ErrInsufficientFunds = errors.New("coinselect: insufficient funds")

	// ErrDuplicateUTXO is an InvariantViolation: it is raised when a
	// UTXO is inserted into a SelectionResult, or merged in from
	// another SelectionResult, that is already present. This is always a
	// defect in the caller or in a solver, never a property of the
	// input data.
	ErrDuplicateUTXO = errors.New("coinselect: duplicate utxo")

	// ErrNegativeChangeCost is an InvariantViolation: ComputeAndSetWaste
	// requires change_cost > 0 whenever a change output is created.
	ErrNegativeChangeCost = errors.New("coinselect: change cost must be positive when change exists")

	// ErrFeeExceedsValue is an InvariantViolation: raised by NewUtxo and
	// NewUtxoWithFee when a Utxo's fee is negative, nonzero while
	// InputBytes is UnknownInputBytes, or greater than its value while
	// InputBytes is known.
	ErrFeeExceedsValue = errors.New("coinselect: fee exceeds value for utxo with known input weight")

	// ErrAmountOverflow is raised when summing amounts would exceed the
	// signed 64-bit range used by btcutil.Amount.
	ErrAmountOverflow = errors.New("coinselect: amount overflow")

	// ErrWasteNotComputed is returned by SelectionResult.Less when
	// either operand has not yet had ComputeAndSetWaste called on it.
	ErrWasteNotComputed = errors.New("coinselect: waste has not been computed")

	// ErrEmptyGroup is raised by ValidateGroups when handed a group with
	// no member UTXOs - a driver's defensive check before invoking a
	// solver, since the solvers themselves assume every group they see
	// has at least one selectable UTXO.
	ErrEmptyGroup = errors.New("coinselect: output group has no members")

	// ErrGroupTooLarge is raised when an OutputGroup would grow beyond
	// OutputGroupMaxEntries.
	ErrGroupTooLarge = errors.New("coinselect: output group exceeds max entries")
)
