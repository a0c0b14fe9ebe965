// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"math/rand"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// p2wpkhScript is a stand-in witness-v0 locking script used across tests;
// its exact contents don't matter, only that txscript can classify it.
var p2wpkhScript = []byte{
	0x00, 0x14,
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,
	0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10,
	0x11, 0x12, 0x13, 0x14,
}

// testOutpointCounter gives each call to newOutpoint a distinct txid so
// fixtures never collide.
var testOutpointCounter uint32

func newOutpoint() wire.OutPoint {
	testOutpointCounter++

	var hash chainhash.Hash
	hash[0] = byte(testOutpointCounter)
	hash[1] = byte(testOutpointCounter >> 8)

	return wire.OutPoint{Hash: hash, Index: 0}
}

// newTestUtxo builds a Utxo with an explicit fee/long-term-fee pair, the
// same test-oriented constructor the spec describes in EXTERNAL
// INTERFACES §6.1.
func newTestUtxo(value, fee, longTermFee Amount, depth int64, fromMe bool) *Utxo {
	u, err := NewUtxoWithFee(
		newOutpoint(), value, p2wpkhScript, depth,
		200, true, true, true, 0, fromMe, fee, longTermFee,
	)
	if err != nil {
		panic(err)
	}

	return u
}

// newTestGroup wraps a single Utxo in its own OutputGroup, the common case
// used by the BnB/SRD/Knapsack scenario tests where every group has exactly
// one member.
func newTestGroup(u *Utxo) *OutputGroup {
	g := NewOutputGroup(false)
	if err := g.Insert(u, 0, 0); err != nil {
		panic(err)
	}

	return g
}

// newEffectiveValueGroups builds one single-member group per value, with
// zero fee and zero long-term fee, i.e. effective value == value.
func newEffectiveValueGroups(values ...Amount) []*OutputGroup {
	groups := make([]*OutputGroup, len(values))
	for i, v := range values {
		groups[i] = newTestGroup(newTestUtxo(v, 0, 0, 6, true))
	}

	return groups
}

// deterministicRNG returns a seeded math/rand.Rand, matching the teacher's
// own use of math/rand for coin-selection randomness; the seed is fixed so
// tests are repeatable.
func deterministicRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
