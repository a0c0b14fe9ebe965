// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSelectCoinsKnapsackExactMatch is scenario S4: values {400, 300, 200},
// target 300, changeTarget 0. The exact-match scan must short-circuit to
// {300}.
func TestSelectCoinsKnapsackExactMatch(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(400, 300, 200)

	result, ok := SelectCoinsKnapsack(groups, 300, 0, deterministicRNG(3))
	require.True(t, ok)
	require.Len(t, result.InputSet(), 1)
	require.Equal(t, Amount(300), result.SelectedEffectiveValue())
	require.Equal(t, AlgoKnapsack, result.Algo())
}

func TestSelectCoinsKnapsackLowestLargerFallback(t *testing.T) {
	t.Parallel()

	// No exact match for 500; the smallest single group >= 500 is 600.
	groups := newEffectiveValueGroups(600, 1000, 100, 50)

	result, ok := SelectCoinsKnapsack(groups, 500, 0, deterministicRNG(3))
	require.True(t, ok)
	require.Equal(t, Amount(600), result.SelectedEffectiveValue())
}

func TestSelectCoinsKnapsackFailsWhenUnreachable(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(10, 20, 30)

	_, ok := SelectCoinsKnapsack(groups, 1_000, 0, deterministicRNG(3))
	require.False(t, ok)
}

func TestSelectCoinsKnapsackHonorsChangeTarget(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(1_000)

	_, ok := SelectCoinsKnapsack(groups, 500, 600, deterministicRNG(3))
	require.False(t, ok, "target+changeTarget of 1100 exceeds the sole 1000-value group")

	result, ok := SelectCoinsKnapsack(groups, 500, 400, deterministicRNG(3))
	require.True(t, ok)
	require.Equal(t, Amount(1_000), result.SelectedEffectiveValue())
}
