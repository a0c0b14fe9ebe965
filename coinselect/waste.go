// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// SelectionWaste computes the waste for a set of selected inputs given the
// cost of change, the selection target, and whether change is being
// created.
//
//   - If changeCost > 0 (change exists): waste = changeCost + feeDiff
//   - If changeCost == 0 (no change):    waste = excess + feeDiff
//
// where feeDiff = sum(fee - longTermFee) over the inputs, and
// excess = selectedValue - target (selectedValue is effective value when
// useEffectiveValue is set, else raw value).
//
// changeCost must be zero when there is no change and strictly positive
// when there is; this invariant is the caller's responsibility to uphold
// (SelectionResult.ComputeAndSetWaste enforces it for the common path).
//
// This function is deliberately free of any SelectionResult state so that
// it can be exercised directly by tests, matching the teacher domain's own
// separation of GetSelectionWaste from the result type it is usually
// invoked from.
//
// The accumulations below sum caller-supplied input values, so they are
// checked for 64-bit overflow the same way OutputGroup.Insert is; a
// resulting ErrAmountOverflow is an InvariantViolation, not a "no solution"
// outcome.
func SelectionWaste(inputs []*Utxo, changeCost, target Amount,
	useEffectiveValue bool) (Amount, error) {

	var (
		feeDiff Amount
		err     error
	)

	for _, u := range inputs {
		feeDiff, err = checkedAdd(feeDiff, u.Fee()-u.LongTermFee())
		if err != nil {
			return 0, err
		}
	}

	if changeCost > 0 {
		return checkedAdd(changeCost, feeDiff)
	}

	var selected Amount
	for _, u := range inputs {
		v := u.Value
		if useEffectiveValue {
			v = u.EffectiveValue()
		}

		selected, err = checkedAdd(selected, v)
		if err != nil {
			return 0, err
		}
	}

	excess, err := checkedAdd(selected, -target)
	if err != nil {
		return 0, err
	}

	return checkedAdd(excess, feeDiff)
}
