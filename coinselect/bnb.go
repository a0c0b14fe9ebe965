// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "sort"

// BnBMaxTotalTries bounds the number of tree nodes visited per group in the
// pool, so a pathological input can't make SelectCoinsBnB run unbounded.
// On exhaustion the best candidate found so far (if any) is returned.
const BnBMaxTotalTries = 100_000

// SelectCoinsBnB performs an exact-match branch-and-bound search over
// groups for a subset whose effective value lands in
// [target, target+costOfChange]. It uses only effective values and never
// creates change: on success, the returned SelectionResult's selected
// effective value satisfies target <= V <= target+costOfChange.
//
// groups must already be filtered to positive-effective-value groups; BnB
// does not filter eligibility itself (see EligibleGroups).
func SelectCoinsBnB(groups []*OutputGroup, target, costOfChange Amount) (*SelectionResult, bool) {
	if len(groups) == 0 {
		return nil, false
	}

	sorted := make([]*OutputGroup, len(groups))
	copy(sorted, groups)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].SelectionAmount() > sorted[j].SelectionAmount()
	})

	// tailSums[i] is the sum of SelectionAmount() over sorted[i:], so
	// tailSums[len(sorted)] == 0 and tailSums[0] is the total pool. This
	// sums caller-supplied effective values, so it is overflow-checked the
	// same way OutputGroup.Insert is; an overflowing pool can't be solved
	// at all, so it's treated as "no solution" rather than surfaced as an
	// error SelectCoinsBnB has no channel to return.
	tailSums := make([]Amount, len(sorted)+1)
	for i := len(sorted) - 1; i >= 0; i-- {
		sum, err := checkedAdd(tailSums[i+1], sorted[i].SelectionAmount())
		if err != nil {
			return nil, false
		}

		tailSums[i] = sum
	}

	if tailSums[0] < target {
		return nil, false
	}

	maxTries := BnBMaxTotalTries * len(sorted)

	var (
		bestSelected []int
		bestWaste    Amount
		haveBest     bool
	)

	// The stack holds "what to try next" frames. Each frame represents
	// having decided on groups[0:index) and now deciding on groups[index].
	// We explore "include" before "exclude" so that near-greedy solutions
	// - usually lower-waste - are found early, letting later exhaustion
	// still return something reasonable.
	type pending struct {
		index    int
		sum      Amount
		selected []int
	}

	stack := []pending{{index: 0, sum: 0, selected: nil}}
	tries := 0

	for len(stack) > 0 && tries < maxTries {
		tries++

		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if cur.sum+tailSums[cur.index] < target {
			// Can never reach target even with every remaining
			// group; prune.
			continue
		}

		if cur.sum > target+costOfChange {
			// Overshoots the allowed window. Every value is
			// positive, so any superset would too; prune.
			continue
		}

		if cur.sum >= target {
			candidateWaste, err := selectionWasteForIndices(sorted, cur.selected, target)
			if err == nil && (!haveBest || candidateWaste < bestWaste) {
				bestSelected = append([]int(nil), cur.selected...)
				bestWaste = candidateWaste
				haveBest = true
			}
		}

		if cur.index >= len(sorted) {
			continue
		}

		// Exclude branch: pushed first so it's popped second (after
		// include), since we want to explore "include" first.
		stack = append(stack, pending{
			index:    cur.index + 1,
			sum:      cur.sum,
			selected: cur.selected,
		})

		// Include branch.
		included := append(append([]int(nil), cur.selected...), cur.index)
		stack = append(stack, pending{
			index:    cur.index + 1,
			sum:      cur.sum + sorted[cur.index].SelectionAmount(),
			selected: included,
		})
	}

	if !haveBest {
		return nil, false
	}

	result := NewSelectionResult(target, AlgoBnB)
	result.useEffective = true

	for _, i := range bestSelected {
		if err := result.AddInput(sorted[i]); err != nil {
			return nil, false
		}
	}

	return result, true
}

// selectionWasteForIndices computes the "no change" waste
// (excess + feeDiff) for the groups at the given indices, used as BnB's
// tie-break between in-window candidates per the spec's §4.3 contract.
func selectionWasteForIndices(groups []*OutputGroup, indices []int, target Amount) (Amount, error) {
	inputs := make([]*Utxo, 0)

	for _, i := range indices {
		inputs = append(inputs, groups[i].Outputs...)
	}

	return SelectionWaste(inputs, 0, target, true)
}
