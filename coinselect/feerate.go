// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import "github.com/btcsuite/walletcore/pkg/btcunit"

// FeeRate is the per-virtual-byte fee rate type used to derive a Utxo's Fee
// and LongTermFee. It is an alias of the teacher's own btcunit.SatPerVByte
// rather than a new type, so a fee-rate value computed elsewhere in the
// wallet (e.g. from mempool estimation) can be passed straight into NewUtxo
// without conversion.
type FeeRate = btcunit.SatPerVByte

// FeeForInputBytes returns the fee to spend an input of the given estimated
// virtual size at the given fee rate. inputBytes must not be
// UnknownInputBytes; callers check that invariant before calling this (see
// NewUtxo).
func FeeForInputBytes(rate FeeRate, inputBytes int64) Amount {
	return rate.FeeForVByte(btcunit.NewVByte(uint64(inputBytes)))
}
