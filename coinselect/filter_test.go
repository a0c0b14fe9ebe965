// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEligibilityFilterLessLexicographic(t *testing.T) {
	t.Parallel()

	base := NewEligibilityFilter(6, 1, 0)

	moreConfMine := base
	moreConfMine.ConfMine = 7
	require.True(t, base.Less(moreConfMine))
	require.False(t, moreConfMine.Less(base))

	moreConfTheirs := base
	moreConfTheirs.ConfTheirs = 2
	require.True(t, base.Less(moreConfTheirs))

	moreAncestors := base
	moreAncestors.MaxAncestors = 5
	require.True(t, base.Less(moreAncestors))

	moreDescendants := base
	moreDescendants.MaxDescendants = 5
	require.True(t, base.Less(moreDescendants))

	partial := base
	partial.IncludePartialGroups = true
	require.True(t, base.Less(partial))
	require.False(t, partial.Less(base))
}

func TestEligibilityFilterMonotonicity(t *testing.T) {
	t.Parallel()

	// Property 7: a group eligible under a stricter filter must remain
	// eligible under any looser filter (higher confs allowance isn't
	// relevant here, but higher MaxAncestors/MaxDescendants never
	// disqualifies a group that already passed a lower bound).
	strict := NewEligibilityFilter(6, 1, 1)
	loose := NewEligibilityFilter(6, 1, 10)
	require.True(t, strict.Less(loose))

	g := NewOutputGroup(false)
	require.NoError(t, g.Insert(newTestUtxo(1000, 0, 0, 6, true), 1, 1))

	require.True(t, g.EligibleForSpending(strict))
	require.True(t, g.EligibleForSpending(loose))
}

func TestNewEligibilityFilterDefaultsMaxDescendants(t *testing.T) {
	t.Parallel()

	f := NewEligibilityFilter(1, 6, 3)
	require.Equal(t, f.MaxAncestors, f.MaxDescendants)
}
