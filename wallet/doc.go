// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wallet provides FundTransaction, a reference driver that exercises
// package coinselect end to end: it groups a flat UTXO snapshot into
// coinselect.OutputGroups, walks a ladder of eligibility filters from strict
// to permissive, invokes BnB, SRD, and Knapsack at each rung, and keeps the
// lowest-waste result across every attempt.
//
// FundTransaction takes no database, network, or signing dependency: the
// UTXO snapshot, ancestor/descendant counts, and change script are all
// supplied by the caller. Everything this package does is downstream of
// coin selection; key management, signing, and broadcast remain the
// responsibility of callers not included here.
package wallet
