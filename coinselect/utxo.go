// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

import (
	"fmt"

	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
)

// UnknownInputBytes is the sentinel used for Utxo.InputBytes when the size
// of the signed input could not be estimated (e.g. an unsolvable or
// watch-only script). Per the Utxo invariant, a Utxo with this sentinel
// must carry a zero Fee.
const UnknownInputBytes = -1

// Utxo is a candidate output under consideration for spending. It is built
// once by the driver from a wallet snapshot and is treated as immutable by
// everything in this package; the same Utxo may be referenced by multiple
// OutputGroups and SelectionResults.
type Utxo struct {
	// OutPoint identifies this UTXO.
	OutPoint wire.OutPoint

	// Value is the UTXO's raw value.
	Value Amount

	// PkScript is the output's locking script. It is used only by the
	// driver to group UTXOs by destination; the solvers never inspect
	// it.
	PkScript []byte

	// OutputType is the script class of PkScript, resolved once by
	// NewUtxo/NewUtxoWithFee (txscript.GetScriptClass) and carried here so
	// that OutputGroup construction does not need to re-parse the script.
	OutputType txscript.ScriptClass

	// Depth is this UTXO's position in the chain. Positive values are a
	// confirmation count; zero means unconfirmed; negative means a
	// conflicting transaction is on chain with that many confirmations.
	Depth int64

	// InputBytes is the estimated size, in virtual bytes, of this UTXO
	// fully signed as a transaction input, or UnknownInputBytes if that
	// size could not be calculated.
	InputBytes int64

	// Spendable reports whether the wallet holds the private key needed
	// to spend this output.
	Spendable bool

	// Solvable reports whether the wallet knows how to spend this
	// output, irrespective of whether it holds the keys to do so.
	Solvable bool

	// Safe reports whether this output is considered safe to spend.
	// Unconfirmed transactions from outside keys, and unconfirmed
	// replacement transactions, are considered unsafe.
	Safe bool

	// Time is the smart timestamp of the transaction containing this
	// UTXO.
	Time int64

	// FromMe reports whether the transaction containing this UTXO was
	// created by the owning wallet.
	FromMe bool

	// fee is the cost of spending this UTXO at the transaction's target
	// fee rate. Zero when InputBytes is UnknownInputBytes.
	fee Amount

	// longTermFee is the cost of spending this UTXO at the consolidation
	// (long-run) fee rate, used to estimate the opportunity cost of
	// spending now versus later.
	longTermFee Amount
}

// NewUtxo constructs a Utxo and derives its fee and long-term fee from the
// given effective and long-term fee rates. If inputBytes is
// UnknownInputBytes, both fees are zero regardless of the supplied rates,
// matching the teacher's invariant that unknown input size implies unknown
// (zero) fee.
func NewUtxo(outpoint wire.OutPoint, value Amount, pkScript []byte,
	depth int64, inputBytes int64, spendable, solvable, safe bool,
	timestamp int64, fromMe bool, effectiveRate, longTermRate FeeRate) (*Utxo, error) {

	u := &Utxo{
		OutPoint:   outpoint,
		Value:      value,
		PkScript:   pkScript,
		OutputType: txscript.GetScriptClass(pkScript),
		Depth:      depth,
		InputBytes: inputBytes,
		Spendable:  spendable,
		Solvable:   solvable,
		Safe:       safe,
		Time:       timestamp,
		FromMe:     fromMe,
	}

	if inputBytes != UnknownInputBytes {
		u.fee = FeeForInputBytes(effectiveRate, inputBytes)
		u.longTermFee = FeeForInputBytes(longTermRate, inputBytes)
	}

	if err := u.validateFee(); err != nil {
		return nil, err
	}

	return u, nil
}

// NewUtxoWithFee is the test-oriented constructor from EXTERNAL INTERFACES
// §6.1: it takes an explicit fee rather than deriving one from a fee rate,
// which is how the bulk of this package's own tests build fixtures.
func NewUtxoWithFee(outpoint wire.OutPoint, value Amount, pkScript []byte,
	depth int64, inputBytes int64, spendable, solvable, safe bool,
	timestamp int64, fromMe bool, fee, longTermFee Amount) (*Utxo, error) {

	u := &Utxo{
		OutPoint:    outpoint,
		Value:       value,
		PkScript:    pkScript,
		OutputType:  txscript.GetScriptClass(pkScript),
		Depth:       depth,
		InputBytes:  inputBytes,
		Spendable:   spendable,
		Solvable:    solvable,
		Safe:        safe,
		Time:        timestamp,
		FromMe:      fromMe,
		fee:         fee,
		longTermFee: longTermFee,
	}

	if err := u.validateFee(); err != nil {
		return nil, err
	}

	return u, nil
}

// validateFee enforces the Utxo data-model invariant: fee is never negative,
// is zero whenever InputBytes is UnknownInputBytes, and - whenever
// InputBytes is known - never exceeds Value.
func (u *Utxo) validateFee() error {
	if u.fee < 0 {
		return fmt.Errorf("%w: %v fee %d is negative", ErrFeeExceedsValue,
			u.OutPoint, u.fee)
	}

	if u.InputBytes == UnknownInputBytes && u.fee != 0 {
		return fmt.Errorf("%w: %v fee %d must be zero when input size "+
			"is unknown", ErrFeeExceedsValue, u.OutPoint, u.fee)
	}

	if u.InputBytes != UnknownInputBytes && u.fee > u.Value {
		return fmt.Errorf("%w: %v fee %d exceeds value %d",
			ErrFeeExceedsValue, u.OutPoint, u.fee, u.Value)
	}

	return nil
}

// Fee returns the cost of spending this UTXO at the transaction's target
// fee rate.
func (u *Utxo) Fee() Amount { return u.fee }

// LongTermFee returns the cost of spending this UTXO at the consolidation
// fee rate.
func (u *Utxo) LongTermFee() Amount { return u.longTermFee }

// EffectiveValue is the UTXO's value minus the fee required to spend it.
func (u *Utxo) EffectiveValue() Amount { return u.Value - u.fee }
