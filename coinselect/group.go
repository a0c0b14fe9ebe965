// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// OutputGroupMaxEntries bounds how many UTXOs a single OutputGroup may
// accumulate. This mirrors the teacher domain's own limit on how many
// same-script outputs are grouped together for avoid-partial-spends
// purposes; beyond this, additional outputs to the same script are placed
// in a new group by the driver.
const OutputGroupMaxEntries = 10

// OutputGroup is a bundle of Utxos that pay to the same destination script,
// treated atomically for privacy (avoid-partial-spends). It accumulates
// value, weight, and mempool-chain-limit metadata as Utxos are inserted.
type OutputGroup struct {
	// Outputs is the ordered list of UTXOs in this group.
	Outputs []*Utxo

	// FromMe is the logical AND of every member Utxo's FromMe flag.
	FromMe bool

	// Value is the cumulative raw value of the group.
	Value Amount

	// EffectiveValue is the cumulative effective value of the group: the
	// sum of each member's effective value, or its raw value when
	// SubtractFeeOutputs is set.
	EffectiveValue Amount

	// Fee is the cumulative fee to spend every UTXO in this group at the
	// target fee rate.
	Fee Amount

	// LongTermFee is the cumulative fee to spend every UTXO in this
	// group at the consolidation fee rate.
	LongTermFee Amount

	// Weight is the cumulative estimated input weight of the group's
	// members, in virtual bytes.
	Weight int64

	// Depth is the minimum confirmation depth across all members.
	Depth int64

	// Ancestors is the unconfirmed-ancestor count as accumulated by
	// Insert with min(prior + new, new); since prior + new is never
	// smaller than new, this leaves the count of the most recently
	// inserted member.
	Ancestors uint64

	// Descendants is the maximum count of unconfirmed descendants across
	// a single member.
	Descendants uint64

	// SubtractFeeOutputs, when true, indicates that fees are being
	// subtracted from the outputs being paid, so selection should use
	// raw value rather than effective value for this group.
	SubtractFeeOutputs bool
}

// NewOutputGroup returns an empty OutputGroup ready for Insert calls. The
// depth sentinel starts at 999 - "unset" is modeled as "deeper than any
// filter will ever require", the same convention the teacher domain uses,
// rather than a signed sentinel that would need an extra branch on every
// comparison.
func NewOutputGroup(subtractFeeOutputs bool) *OutputGroup {
	return &OutputGroup{
		FromMe:             true,
		Depth:              999,
		SubtractFeeOutputs: subtractFeeOutputs,
	}
}

// Insert appends u to the group, folding its value, fee, weight, and
// mempool-chain-limit metadata into the group's running totals.
//
// The ancestors accumulation intentionally follows the inherited formula
// `m_ancestors = min(prior + u_anc, u_anc)`: a newly-inserted UTXO with
// fewer ancestors than the running total pulls the aggregate back down to
// its own count. Whether that is the intended semantic or a historical
// artifact of the domain this is grounded on is an open question the
// original spec explicitly declines to resolve (see DESIGN.md); this
// package preserves the inherited behavior rather than "fixing" it.
func (g *OutputGroup) Insert(u *Utxo, ancestors, descendants uint64) error {
	if len(g.Outputs) >= OutputGroupMaxEntries {
		return ErrGroupTooLarge
	}

	value, err := checkedAdd(g.Value, u.Value)
	if err != nil {
		return err
	}

	effectiveAdd := u.EffectiveValue()
	if g.SubtractFeeOutputs {
		effectiveAdd = u.Value
	}

	effectiveValue, err := checkedAdd(g.EffectiveValue, effectiveAdd)
	if err != nil {
		return err
	}

	fee, err := checkedAdd(g.Fee, u.Fee())
	if err != nil {
		return err
	}

	longTermFee, err := checkedAdd(g.LongTermFee, u.LongTermFee())
	if err != nil {
		return err
	}

	g.Outputs = append(g.Outputs, u)
	g.Value = value
	g.EffectiveValue = effectiveValue
	g.Fee = fee
	g.LongTermFee = longTermFee
	g.Weight += u.InputBytes

	if u.Depth < g.Depth {
		g.Depth = u.Depth
	}

	g.Ancestors = minUint64(g.Ancestors+ancestors, ancestors)
	if descendants > g.Descendants {
		g.Descendants = descendants
	}

	g.FromMe = g.FromMe && u.FromMe

	return nil
}

func minUint64(a, b uint64) uint64 {
	if a < b {
		return a
	}

	return b
}

// SelectionAmount is the value this group contributes toward a selection
// target: EffectiveValue in the normal case, since SubtractFeeOutputs
// selections already folded raw value into EffectiveValue above.
func (g *OutputGroup) SelectionAmount() Amount {
	return g.EffectiveValue
}

// ValidateGroups reports ErrEmptyGroup if any group in groups has no member
// UTXOs. The solvers assume every group they are handed has at least one
// selectable UTXO; a driver calls this once after eligibility filtering and
// before invoking a solver, the same way the teacher domain asserts
// non-empty groups before running its own selection algorithms.
func ValidateGroups(groups []*OutputGroup) error {
	for _, g := range groups {
		if len(g.Outputs) == 0 {
			return ErrEmptyGroup
		}
	}

	return nil
}

// EligibleForSpending reports whether every predicate of filter holds for
// this group.
func (g *OutputGroup) EligibleForSpending(filter EligibilityFilter) bool {
	if g.FromMe {
		if g.Depth < int64(filter.ConfMine) {
			return false
		}
	} else if g.Depth < int64(filter.ConfTheirs) {
		return false
	}

	if g.Ancestors > filter.MaxAncestors {
		return false
	}

	if g.Descendants > filter.MaxDescendants {
		return false
	}

	return true
}
