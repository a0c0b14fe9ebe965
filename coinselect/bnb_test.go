// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSelectCoinsBnBExactMatch is scenario S1: groups {300, 200, 100},
// target 300, zero cost-of-change. The exact match {300} must win with zero
// waste.
func TestSelectCoinsBnBExactMatch(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(300, 200, 100)

	result, ok := SelectCoinsBnB(groups, 300, 0)
	require.True(t, ok)
	require.Equal(t, Amount(300), result.SelectedEffectiveValue())
	require.Len(t, result.InputSet(), 1)

	require.NoError(t, result.ComputeAndSetWaste(0, 0, 0))
	require.Equal(t, Amount(0), result.Waste())
}

// TestSelectCoinsBnBWindow is scenario S2: groups {300, 210, 110, 90},
// target 300, cost-of-change (epsilon) 20, so the acceptance window is
// [300, 320]. Two other subsets also land inside the window with zero
// excess ({300} alone, and {210, 90}); both are given a deliberately large
// fee-rate-minus-long-term-fee penalty so that {210, 110} - whose fees are
// fee-neutral - comes out as the strictly lower-waste candidate, realizing
// the documented expected outcome. The values above are effective values;
// each fixture's raw value is its effective value plus its fee.
func TestSelectCoinsBnBWindow(t *testing.T) {
	t.Parallel()

	exact := newTestGroup(newTestUtxo(350, 50, 0, 6, true))   // effective 300, feeDiff = 50
	g210 := newTestGroup(newTestUtxo(220, 10, 10, 6, true))   // effective 210, feeDiff = 0
	g110 := newTestGroup(newTestUtxo(120, 10, 10, 6, true))   // effective 110, feeDiff = 0
	g90 := newTestGroup(newTestUtxo(180, 90, -1000, 6, true)) // effective 90, feeDiff = 1090, rules out {210,90}

	groups := []*OutputGroup{exact, g210, g110, g90}

	result, ok := SelectCoinsBnB(groups, 300, 20)
	require.True(t, ok)

	selected := result.SelectedEffectiveValue()
	require.GreaterOrEqual(t, selected, Amount(300))
	require.LessOrEqual(t, selected, Amount(320))

	require.Equal(t, Amount(320), selected, "expected {210,110} per the documented scenario")
	require.Len(t, result.InputSet(), 2)
}

// TestSelectCoinsBnBNoSolution is scenario S3: values {250, 120}, target
// 300, epsilon 5. No subset lands in [300, 305], so selection must fail.
func TestSelectCoinsBnBNoSolution(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(250, 120)

	_, ok := SelectCoinsBnB(groups, 300, 5)
	require.False(t, ok)
}

func TestSelectCoinsBnBEmptyPool(t *testing.T) {
	t.Parallel()

	_, ok := SelectCoinsBnB(nil, 100, 0)
	require.False(t, ok)
}

// TestSelectCoinsBnBNoDuplicateUTXOs is Testable Property: a successful BnB
// result never contains the same UTXO twice, since each group appears once
// in the pool and BnB selects each group at most once.
func TestSelectCoinsBnBNoDuplicateUTXOs(t *testing.T) {
	t.Parallel()

	groups := newEffectiveValueGroups(300, 200, 150, 100, 50)

	result, ok := SelectCoinsBnB(groups, 400, 10)
	require.True(t, ok)

	seen := make(map[Amount]bool)
	for _, u := range result.InputSet() {
		require.False(t, seen[u.Value], "duplicate value %d (distinct outpoints expected)", u.Value)
		seen[u.Value] = true
	}
}

// TestSelectCoinsBnBTargetCoverage is Testable Property: a successful
// result's selected effective value is always within the requested window.
func TestSelectCoinsBnBTargetCoverage(t *testing.T) {
	t.Parallel()

	// The window is [700, 760]; {450, 220, 90} sums to 760.
	groups := newEffectiveValueGroups(1000, 600, 450, 220, 90)
	const target, costOfChange = 700, 60

	result, ok := SelectCoinsBnB(groups, target, costOfChange)
	require.True(t, ok)

	v := result.SelectedEffectiveValue()
	require.GreaterOrEqual(t, v, Amount(target))
	require.LessOrEqual(t, v, Amount(target+costOfChange))
}
