// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/btcsuite/btcd/txscript"
	"github.com/stretchr/testify/require"
)

func TestGroupIndexPushAndLookup(t *testing.T) {
	t.Parallel()

	idx := NewGroupIndex()

	g1 := newTestGroup(newTestUtxo(10_000, 0, 0, 6, true))
	g2 := newTestGroup(newTestUtxo(20_000, 0, 0, 6, true))

	idx.Push(g1, txscript.WitnessV0PubKeyHashTy, true, true)
	idx.Push(g2, txscript.ScriptHashTy, true, false)

	require.Equal(t, 2, idx.TypesCount())

	wpkh := idx.GroupsForType(txscript.WitnessV0PubKeyHashTy)
	require.Len(t, wpkh.Positive, 1)
	require.Len(t, wpkh.Mixed, 1)

	sh := idx.GroupsForType(txscript.ScriptHashTy)
	require.Len(t, sh.Positive, 1)
	require.Len(t, sh.Mixed, 0)

	require.Len(t, idx.AllGroups.Positive, 2)
	require.Len(t, idx.AllGroups.Mixed, 1)
}

func TestGroupIndexUnknownTypeIsZeroValue(t *testing.T) {
	t.Parallel()

	idx := NewGroupIndex()
	groups := idx.GroupsForType(txscript.NonStandardTy)
	require.Empty(t, groups.Positive)
	require.Empty(t, groups.Mixed)
}

func TestEligibleGroupsFiltersByPredicate(t *testing.T) {
	t.Parallel()

	filter := NewEligibilityFilter(6, 1, 0)

	eligible := newTestGroup(newTestUtxo(10_000, 0, 0, 6, true))
	ineligible := newTestGroup(newTestUtxo(10_000, 0, 0, 1, true))

	got := EligibleGroups([]*OutputGroup{eligible, ineligible}, filter)
	require.Equal(t, []*OutputGroup{eligible}, got)
}
