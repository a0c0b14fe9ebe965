// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
)

// Amount is the scalar monetary unit used throughout coin selection. It is
// an alias of btcutil.Amount (a signed count of satoshis) rather than a new
// type, so that a coinselect.Utxo's value can be handed to and from the
// rest of the wallet stack - txauthor, txrules, txsizes - without
// conversion.
type Amount = btcutil.Amount

// ChangeLower and ChangeUpper are the lower and upper bounds used by
// GenerateChangeTarget. The minimum final change amount is not a constant
// of this package: it corresponds to the host chain's dust/consensus floor
// and is supplied by the caller as minViableChange (see
// SelectionResult.ComputeAndSetWaste and GetChange).
const (
	// ChangeLower is the lower bound for a randomly-chosen target change
	// amount.
	ChangeLower Amount = 50_000

	// ChangeUpper is the upper bound for a randomly-chosen target change
	// amount.
	ChangeUpper Amount = 1_000_000
)

// sumAmounts adds a sequence of amounts, returning ErrAmountOverflow if the
// running sum would exceed the signed 64-bit range. Intermediate over/underflow
// is detected the same way the standard library's math/bits.Add64 overflow
// check is usually expressed: by comparing the result against the operands.
func sumAmounts(values ...Amount) (Amount, error) {
	var total Amount
	for _, v := range values {
		next := total + v

		// Overflow occurred if the sign of the sum is inconsistent
		// with the signs of the operands (two positives can't sum to
		// a negative, and vice versa).
		if (v > 0 && next < total) || (v < 0 && next > total) {
			return 0, fmt.Errorf("%w: %d + %d", ErrAmountOverflow,
				total, v)
		}

		total = next
	}

	return total, nil
}

// checkedAdd adds two amounts, detecting 64-bit overflow.
func checkedAdd(a, b Amount) (Amount, error) {
	return sumAmounts(a, b)
}
