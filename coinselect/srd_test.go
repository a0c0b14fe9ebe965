// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSelectCoinsSRDSuccess is scenario S5: four groups of 100 each, target
// 250. Three of the four groups (sum 300) must be selected, regardless of
// which three the shuffle happens to land on.
func TestSelectCoinsSRDSuccess(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(100, 100, 100, 100)

	result, ok := SelectCoinsSRD(groups, 250, deterministicRNG(7))
	require.True(t, ok)

	require.Len(t, result.InputSet(), 3)
	require.Equal(t, Amount(300), result.SelectedEffectiveValue())
	require.Equal(t, AlgoSRD, result.Algo())
}

func TestSelectCoinsSRDExhaustsPool(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(50, 50)

	_, ok := SelectCoinsSRD(groups, 1_000, deterministicRNG(1))
	require.False(t, ok)
}

func TestSelectCoinsSRDEmptyPoolWithNonPositiveTarget(t *testing.T) {
	t.Parallel()

	result, ok := SelectCoinsSRD(nil, 0, deterministicRNG(1))
	require.True(t, ok)
	require.Empty(t, result.InputSet())
}

func TestSelectCoinsSRDEmptyPoolWithPositiveTargetFails(t *testing.T) {
	t.Parallel()

	_, ok := SelectCoinsSRD(nil, 1, deterministicRNG(1))
	require.False(t, ok)
}

// TestSelectCoinsSRDNoDuplicateUTXOs is a testable property: each group
// appears at most once across many independent draws.
func TestSelectCoinsSRDNoDuplicateUTXOs(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(100, 150, 200, 50, 75)

	for seed := int64(0); seed < 20; seed++ {
		result, ok := SelectCoinsSRD(groups, 300, deterministicRNG(seed))
		require.True(t, ok)

		seen := make(map[Amount]bool)
		for _, u := range result.InputSet() {
			require.False(t, seen[u.Value])
			seen[u.Value] = true
		}

		require.GreaterOrEqual(t, result.SelectedEffectiveValue(), Amount(300))
	}
}
