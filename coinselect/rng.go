// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// Randomizer is the randomness context every algorithm that needs
// randomness takes as an explicit parameter, rather than reaching for a
// package-level source. This is what makes SRD, Knapsack, change-target
// generation, and input shuffling deterministic and repeatable in tests:
// callers pass a seeded *math/rand.Rand in tests and a process-wide one in
// production.
//
// *math/rand.Rand satisfies this interface directly, matching the
// teacher's own choice of math/rand (not crypto/rand) for coin-selection
// randomness in wallet/tx_creator.go's RandomCoinSelector - fingerprinting
// resistance here comes from the distribution of values chosen, not from
// the unpredictability of the generator itself.
type Randomizer interface {
	// Int63n returns a non-negative, pseudo-random number in [0,n).
	Int63n(n int64) int64

	// Shuffle pseudo-randomizes the order of n elements via swap.
	Shuffle(n int, swap func(i, j int))
}
