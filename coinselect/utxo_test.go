// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"testing"

	"github.com/btcsuite/walletcore/pkg/btcunit"
	"github.com/stretchr/testify/require"
)

func TestNewUtxoDerivesFee(t *testing.T) {
	t.Parallel()

	rate := btcunit.NewSatPerVByte(2)
	u, err := NewUtxo(
		newOutpoint(), 100_000, p2wpkhScript, 6, 148,
		true, true, true, 0, true, rate, rate,
	)
	require.NoError(t, err)

	require.Equal(t, Amount(296), u.Fee())
	require.Equal(t, Amount(296), u.LongTermFee())
	require.Equal(t, u.Value-u.Fee(), u.EffectiveValue())
}

func TestNewUtxoUnknownInputBytesImpliesZeroFee(t *testing.T) {
	t.Parallel()

	rate := btcunit.NewSatPerVByte(50)
	u, err := NewUtxo(
		newOutpoint(), 100_000, p2wpkhScript, 6, UnknownInputBytes,
		true, true, true, 0, true, rate, rate,
	)
	require.NoError(t, err)

	require.Equal(t, Amount(0), u.Fee())
	require.Equal(t, Amount(0), u.LongTermFee())
	require.Equal(t, u.Value, u.EffectiveValue())
}

func TestNewUtxoWithFeeExplicit(t *testing.T) {
	t.Parallel()

	u := newTestUtxo(50_000, 500, 300, 6, true)

	require.Equal(t, Amount(500), u.Fee())
	require.Equal(t, Amount(300), u.LongTermFee())
	require.Equal(t, Amount(49_500), u.EffectiveValue())
}

// TestNewUtxoRejectsFeeExceedingValue pins the Utxo data-model invariant:
// a known input size may never carry a fee larger than the value it spends.
func TestNewUtxoRejectsFeeExceedingValue(t *testing.T) {
	t.Parallel()

	_, err := NewUtxoWithFee(
		newOutpoint(), 100, p2wpkhScript, 6, 148,
		true, true, true, 0, true, 101, 0,
	)
	require.ErrorIs(t, err, ErrFeeExceedsValue)
}

// TestNewUtxoRejectsNegativeFee pins the other half of the same invariant:
// fee must never be negative, independent of whether input size is known.
func TestNewUtxoRejectsNegativeFee(t *testing.T) {
	t.Parallel()

	_, err := NewUtxoWithFee(
		newOutpoint(), 100, p2wpkhScript, 6, 148,
		true, true, true, 0, true, -1, 0,
	)
	require.ErrorIs(t, err, ErrFeeExceedsValue)
}

// TestNewUtxoRejectsNonZeroFeeWithUnknownInputBytes pins the remaining part
// of the invariant: when input size is unknown the fee must be zero, so an
// explicit nonzero fee passed to NewUtxoWithFee is rejected.
func TestNewUtxoRejectsNonZeroFeeWithUnknownInputBytes(t *testing.T) {
	t.Parallel()

	u, err := NewUtxoWithFee(
		newOutpoint(), 100, p2wpkhScript, 6, UnknownInputBytes,
		true, true, true, 0, true, 100, 0,
	)
	require.ErrorIs(t, err, ErrFeeExceedsValue)
	require.Nil(t, u)
}
