// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/wire"
)

// SelectionAlgorithm identifies which algorithm produced a SelectionResult.
// The numeric values are fixed by compatibility with logging/metrics
// consumers that key on them.
type SelectionAlgorithm uint8

const (
	// AlgoBnB identifies a result produced by Branch-and-Bound.
	AlgoBnB SelectionAlgorithm = 0

	// AlgoKnapsack identifies a result produced by the Knapsack solver.
	AlgoKnapsack SelectionAlgorithm = 1

	// AlgoSRD identifies a result produced by Single Random Draw.
	AlgoSRD SelectionAlgorithm = 2

	// AlgoManual identifies a result built from caller-specified inputs,
	// bypassing all solvers.
	AlgoManual SelectionAlgorithm = 3
)

// String returns the algorithm's name, for logging.
func (a SelectionAlgorithm) String() string {
	switch a {
	case AlgoBnB:
		return "bnb"
	case AlgoKnapsack:
		return "knapsack"
	case AlgoSRD:
		return "srd"
	case AlgoManual:
		return "manual"
	default:
		return "unknown"
	}
}

// SelectionResult is the outcome of a coin selection attempt: the set of
// inputs chosen, the target they were chosen for, which algorithm chose
// them, and (once computed) their waste. Two results may be merged provided
// their input sets are disjoint.
//
// SelectionResult moves through three states: empty, inputs-added, and
// waste-computed. AddInput/AddInputs move it from empty (or inputs-added)
// to inputs-added; ComputeAndSetWaste moves it to waste-computed; Merge
// returns it to inputs-added, invalidating any previously computed waste;
// Clear resets it to empty.
type SelectionResult struct {
	inputs map[wire.OutPoint]*Utxo

	target        Amount
	algo          SelectionAlgorithm
	useEffective  bool
	waste         Amount
	wasteComputed bool
	weight        int64
}

// NewSelectionResult returns an empty SelectionResult for the given target
// and algorithm.
func NewSelectionResult(target Amount, algo SelectionAlgorithm) *SelectionResult {
	return &SelectionResult{
		inputs: make(map[wire.OutPoint]*Utxo),
		target: target,
		algo:   algo,
	}
}

// AddInput adds every UTXO of group to the result, accumulating weight. It
// fails loudly (returns ErrDuplicateUTXO) if any member UTXO is already
// present, per the no-duplicate-UTXOs invariant.
func (r *SelectionResult) AddInput(group *OutputGroup) error {
	for _, u := range group.Outputs {
		if _, ok := r.inputs[u.OutPoint]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateUTXO, u.OutPoint)
		}

		r.inputs[u.OutPoint] = u
	}

	weight, err := checkedAdd(Amount(r.weight), Amount(group.Weight))
	if err != nil {
		return err
	}

	r.weight = int64(weight)
	r.wasteComputed = false

	return nil
}

// AddInputs bulk-adds a set of UTXOs directly (bypassing OutputGroup),
// setting UseEffective to the negation of subtractFeeOutputs.
func (r *SelectionResult) AddInputs(inputs []*Utxo, subtractFeeOutputs bool) error {
	for _, u := range inputs {
		if _, ok := r.inputs[u.OutPoint]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateUTXO, u.OutPoint)
		}

		weight, err := checkedAdd(Amount(r.weight), Amount(u.InputBytes))
		if err != nil {
			return err
		}

		r.inputs[u.OutPoint] = u
		r.weight = int64(weight)
	}

	r.useEffective = !subtractFeeOutputs
	r.wasteComputed = false

	return nil
}

// Merge combines other into r. Both results must have disjoint input sets;
// if they don't, ErrDuplicateUTXO is returned and r is left unmodified.
// Merge sums weights and unions inputs but deliberately does not recompute
// waste - the caller is expected to call ComputeAndSetWaste again once both
// halves are in place.
func (r *SelectionResult) Merge(other *SelectionResult) error {
	for op := range other.inputs {
		if _, ok := r.inputs[op]; ok {
			return fmt.Errorf("%w: %v", ErrDuplicateUTXO, op)
		}
	}

	weight, err := checkedAdd(Amount(r.weight), Amount(other.weight))
	if err != nil {
		return err
	}

	for op, u := range other.inputs {
		r.inputs[op] = u
	}

	r.weight = int64(weight)
	r.wasteComputed = false

	return nil
}

// Clear resets the result to the empty state.
func (r *SelectionResult) Clear() {
	r.inputs = make(map[wire.OutPoint]*Utxo)
	r.weight = 0
	r.wasteComputed = false
	r.waste = 0
}

// InputSet returns the set of selected UTXOs. The returned slice is a fresh
// copy; mutating it does not affect the result.
func (r *SelectionResult) InputSet() []*Utxo {
	out := make([]*Utxo, 0, len(r.inputs))
	for _, u := range r.inputs {
		out = append(out, u)
	}

	return out
}

// ShuffledInputs returns the selected UTXOs in a uniformly random order,
// using the supplied randomness context. The result is a permutation of
// InputSet.
func (r *SelectionResult) ShuffledInputs(rng Randomizer) []*Utxo {
	out := r.InputSet()

	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}

// SelectedValue returns the sum of raw values of the selected inputs.
func (r *SelectionResult) SelectedValue() Amount {
	var total Amount
	for _, u := range r.inputs {
		total += u.Value
	}

	return total
}

// SelectedEffectiveValue returns the sum of effective values of the
// selected inputs.
func (r *SelectionResult) SelectedEffectiveValue() Amount {
	var total Amount
	for _, u := range r.inputs {
		total += u.EffectiveValue()
	}

	return total
}

// ComputeAndSetWaste computes and caches this result's waste via
// SelectionWaste, deciding whether change is being created via GetChange:
// change exists when the leftover value (selected effective value minus
// target minus changeFee) is at least minViableChange and greater than zero.
func (r *SelectionResult) ComputeAndSetWaste(minViableChange, changeCost, changeFee Amount) error {
	var cost Amount
	if r.GetChange(minViableChange, changeFee) > 0 {
		if changeCost <= 0 {
			return ErrNegativeChangeCost
		}

		cost = changeCost
	}

	waste, err := SelectionWaste(r.InputSet(), cost, r.target, r.useEffective)
	if err != nil {
		return err
	}

	r.waste = waste
	r.wasteComputed = true

	return nil
}

// Waste returns the cached waste computed by ComputeAndSetWaste.
func (r *SelectionResult) Waste() Amount { return r.waste }

// WasteComputed reports whether ComputeAndSetWaste has been called since
// the last AddInput, AddInputs, Merge or Clear.
func (r *SelectionResult) WasteComputed() bool { return r.wasteComputed }

// GetChange returns the change amount after paying target and changeFee,
// or zero if that amount is below minViableChange.
func (r *SelectionResult) GetChange(minViableChange, changeFee Amount) Amount {
	change := r.SelectedEffectiveValue() - r.target - changeFee
	if change < minViableChange {
		return 0
	}

	return change
}

// Target returns the amount this result was selected for.
func (r *SelectionResult) Target() Amount { return r.target }

// Algo returns the algorithm that produced this result.
func (r *SelectionResult) Algo() SelectionAlgorithm { return r.algo }

// Weight returns the cached total weight of the selected inputs.
func (r *SelectionResult) Weight() int64 { return r.weight }

// UseEffective reports whether this result compares/reports using
// effective value (true) or raw value (false).
func (r *SelectionResult) UseEffective() bool { return r.useEffective }

// Less compares two results by waste, ascending - lower waste is better.
// It returns ErrWasteNotComputed if either result hasn't had its waste
// computed yet, per the open question in the spec's design notes: rather
// than silently treating uncomputed waste as infinite, this makes the
// ambiguity a hard error so callers can't accidentally compare
// not-yet-evaluated results.
func (r *SelectionResult) Less(other *SelectionResult) (bool, error) {
	if !r.wasteComputed || !other.wasteComputed {
		return false, ErrWasteNotComputed
	}

	return r.waste < other.waste, nil
}
