// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// SelectCoinsSRD selects coins by Single Random Draw: groups are drawn
// uniformly at random, without replacement, from the pool until their
// accumulated effective value reaches target. If the pool is exhausted
// first, selection fails. The returned result always intends to create
// change and always uses effective value.
//
// target is expected to already be inflated by the caller with the change
// fee and a minimum change target, per the external interface contract.
func SelectCoinsSRD(groups []*OutputGroup, target Amount, rng Randomizer) (*SelectionResult, bool) {
	if len(groups) == 0 {
		if target <= 0 {
			result := NewSelectionResult(target, AlgoSRD)
			result.useEffective = true

			return result, true
		}

		return nil, false
	}

	order := make([]int, len(groups))
	for i := range order {
		order[i] = i
	}

	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})

	result := NewSelectionResult(target, AlgoSRD)
	result.useEffective = true

	var total Amount
	for _, i := range order {
		g := groups[i]

		if err := result.AddInput(g); err != nil {
			return nil, false
		}

		total += g.SelectionAmount()
		if total >= target {
			return result, true
		}
	}

	return nil, false
}
