// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// knapsackPasses is the number of independent stochastic-inclusion sweeps
// the approximation stage runs, per the spec's two-pass contract.
const knapsackPasses = 2

// SelectCoinsKnapsack approximates a minimal-excess subset covering
// target+changeTarget via: an exact-match scan, a "lowest larger single
// group" fallback, and a two-pass randomized inclusion sweep. It returns
// the best (lowest total value) of the fallback and the stochastic
// candidates. It fails if nothing reaches target+changeTarget.
func SelectCoinsKnapsack(groups []*OutputGroup, target, changeTarget Amount,
	rng Randomizer) (*SelectionResult, bool) {

	need := target + changeTarget

	// Exact-match scan: any single group with effective value exactly
	// `need` is returned immediately.
	for _, g := range groups {
		if g.SelectionAmount() == need {
			result := NewSelectionResult(target, AlgoKnapsack)
			result.useEffective = true

			if err := result.AddInput(g); err != nil {
				return nil, false
			}

			return result, true
		}
	}

	// Lowest-larger fallback: the smallest single group whose value is
	// still >= need.
	var (
		lowestLarger      *OutputGroup
		haveLowestLarger  bool
		lowestLargerValue Amount
	)

	for _, g := range groups {
		v := g.SelectionAmount()
		if v < need {
			continue
		}

		if !haveLowestLarger || v < lowestLargerValue {
			lowestLarger = g
			lowestLargerValue = v
			haveLowestLarger = true
		}
	}

	// Stochastic approximation: two independent passes of randomized
	// inclusion.
	var (
		bestStochastic      []*OutputGroup
		bestStochasticValue Amount
		haveStochastic      bool
	)

	for pass := 0; pass < knapsackPasses; pass++ {
		var (
			sum    Amount
			picked []*OutputGroup
		)

		for _, g := range groups {
			if sum >= need {
				break
			}

			if rng.Int63n(2) == 1 {
				picked = append(picked, g)
				sum += g.SelectionAmount()
			}
		}

		if sum >= need && (!haveStochastic || sum < bestStochasticValue) {
			bestStochastic = picked
			bestStochasticValue = sum
			haveStochastic = true
		}
	}

	switch {
	case haveLowestLarger && haveStochastic:
		if lowestLargerValue <= bestStochasticValue {
			return buildKnapsackResult(target, []*OutputGroup{lowestLarger})
		}

		return buildKnapsackResult(target, bestStochastic)

	case haveLowestLarger:
		return buildKnapsackResult(target, []*OutputGroup{lowestLarger})

	case haveStochastic:
		return buildKnapsackResult(target, bestStochastic)

	default:
		return nil, false
	}
}

func buildKnapsackResult(target Amount, groups []*OutputGroup) (*SelectionResult, bool) {
	result := NewSelectionResult(target, AlgoKnapsack)
	result.useEffective = true

	for _, g := range groups {
		if err := result.AddInput(g); err != nil {
			return nil, false
		}
	}

	return result, true
}
