// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package coinselect implements the coin selection core of a bitcoin wallet:
// given a pool of spendable UTXOs and a payment target, it produces a
// subset of inputs that covers the target plus fees while minimizing waste
// and preserving privacy.
//
// The package is a pure, synchronous computation. It performs no I/O, no
// persistence, and no network access: ancestor/descendant counts, fee
// rates, and output types are all supplied by the caller as plain data.
// Three independent algorithms are provided - Branch-and-Bound (BnB),
// Single Random Draw (SRD), and Knapsack - and a caller (the "driver", see
// package wallet for a reference implementation) is expected to try them
// against increasingly permissive EligibilityFilters and keep the
// lowest-waste SelectionResult.
package coinselect
