// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// EligibilityFilter gates which OutputGroups may be used in a given coin
// selection attempt. A driver typically tries a sequence of these, starting
// strict (requiring many confirmations and no mempool chain) and becoming
// more permissive if the strict attempt cannot fund the transaction.
type EligibilityFilter struct {
	// ConfMine is the minimum number of confirmations required for
	// outputs the wallet sent to itself.
	ConfMine int64

	// ConfTheirs is the minimum number of confirmations required for
	// outputs received from a different wallet.
	ConfTheirs int64

	// MaxAncestors is the maximum number of aggregated unconfirmed
	// ancestors an OutputGroup may have.
	MaxAncestors uint64

	// MaxDescendants is the maximum number of unconfirmed descendants a
	// single UTXO within the group may have.
	MaxDescendants uint64

	// IncludePartialGroups marks whether groups with fewer than
	// OutputGroupMaxEntries members may be filed into the "mixed" lists
	// when avoid-partial-spends is requested. It is not read by
	// EligibleForSpending, and the reference driver's indexer
	// (wallet.indexUtxos) does not read it either.
	IncludePartialGroups bool
}

// NewEligibilityFilter constructs a filter with max-descendants defaulted
// to max-ancestors, matching the teacher domain's three-argument
// CoinEligibilityFilter constructor.
func NewEligibilityFilter(confMine, confTheirs int64, maxAncestors uint64) EligibilityFilter {
	return EligibilityFilter{
		ConfMine:       confMine,
		ConfTheirs:     confTheirs,
		MaxAncestors:   maxAncestors,
		MaxDescendants: maxAncestors,
	}
}

// Less implements the filter's total order: lexicographic over
// (ConfMine, ConfTheirs, MaxAncestors, MaxDescendants, IncludePartialGroups).
// This order is what lets a driver store per-filter results in a sorted
// associative structure and is also the monotonicity relation property 7
// of the spec is stated in terms of.
func (f EligibilityFilter) Less(other EligibilityFilter) bool {
	if f.ConfMine != other.ConfMine {
		return f.ConfMine < other.ConfMine
	}
	if f.ConfTheirs != other.ConfTheirs {
		return f.ConfTheirs < other.ConfTheirs
	}
	if f.MaxAncestors != other.MaxAncestors {
		return f.MaxAncestors < other.MaxAncestors
	}
	if f.MaxDescendants != other.MaxDescendants {
		return f.MaxDescendants < other.MaxDescendants
	}

	return !f.IncludePartialGroups && other.IncludePartialGroups
}
