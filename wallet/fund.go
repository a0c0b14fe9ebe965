// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wallet/txauthor"
	"github.com/btcsuite/walletcore/coinselect"
	"github.com/btcsuite/walletcore/pkg/btcunit"
)

// InputCoin is a caller-resolved spendable output: everything coinselect.Utxo
// needs, plus the mempool-chain-limit counts that would normally come from a
// live mempool view. Building this snapshot is the caller's job; nothing in
// this package queries a database or a node.
type InputCoin struct {
	wire.OutPoint
	wire.TxOut

	Depth       int64
	InputBytes  int64
	Spendable   bool
	Solvable    bool
	Safe        bool
	Time        int64
	FromMe      bool
	Ancestors   uint64
	Descendants uint64
}

// FundRequest bundles everything FundTransaction needs to run coin selection
// and assemble an unsigned transaction.
type FundRequest struct {
	// Coins is the full snapshot of candidate inputs.
	Coins []InputCoin

	// Outputs is the payment the transaction must make.
	Outputs []*wire.TxOut

	// FeeRate is the target fee rate for this transaction.
	FeeRate coinselect.FeeRate

	// LongTermFeeRate is the consolidation fee rate used to compute each
	// coin's opportunity cost of spending now versus later.
	LongTermFeeRate coinselect.FeeRate

	// ChangeSource supplies a fresh change script on demand; it is
	// consulted only if a selection attempt decides change is warranted.
	ChangeSource *txauthor.ChangeSource

	// Filters is the eligibility-filter ladder to try, strict first. If
	// nil, defaultFilterLadder is used.
	Filters []coinselect.EligibilityFilter

	// Rng drives SRD, Knapsack, and change-target randomization.
	Rng coinselect.Randomizer
}

// defaultFilterLadder mirrors the strict-to-permissive coin eligibility
// progression used by the teacher domain's own CWallet::AvailableCoins /
// SelectCoins: first own coins with 1 confirmation and others' coins with 6,
// no unconfirmed ancestors; then 1 confirmation for both; then unconfirmed
// own coins with up to 5 unconfirmed ancestors, while others' coins still
// need 1 confirmation.
func defaultFilterLadder() []coinselect.EligibilityFilter {
	return []coinselect.EligibilityFilter{
		coinselect.NewEligibilityFilter(1, 6, 0),
		coinselect.NewEligibilityFilter(1, 1, 0),
		coinselect.NewEligibilityFilter(0, 1, 5),
	}
}

// candidate pairs a SelectionResult with the change parameters it was
// evaluated against, so the winning candidate's change decision doesn't need
// to be recomputed after the fact.
type candidate struct {
	result      *coinselect.SelectionResult
	changeCost  coinselect.Amount
	changeFee   coinselect.Amount
	neverChange bool
}

// FundTransaction groups req.Coins into OutputGroups, walks the eligibility
// filter ladder invoking BnB, SRD, and Knapsack at each rung, and keeps the
// lowest-waste successful selection. It then hands the selected inputs to
// txauthor.NewUnsignedTransaction to assemble the final unsigned
// transaction, matching the division of labor in the teacher's own
// CreateTransaction: this package only ever decides *which* coins to spend.
func FundTransaction(req *FundRequest) (*txauthor.AuthoredTx,
	*coinselect.SelectionResult, error) {

	if len(req.Outputs) == 0 {
		return nil, nil, ErrNoOutputs
	}

	filters := req.Filters
	if filters == nil {
		filters = defaultFilterLadder()
	}
	if len(filters) == 0 {
		return nil, nil, ErrNoEligibleFilters
	}

	var target coinselect.Amount
	for _, out := range req.Outputs {
		target += coinselect.Amount(out.Value)
	}

	utxos, err := buildUtxos(req.Coins, req.FeeRate, req.LongTermFeeRate)
	if err != nil {
		return nil, nil, fmt.Errorf("building utxos: %w", err)
	}
	index := indexUtxos(utxos, req.Coins)

	changeOutputVBytes := changeOutputSize(req.ChangeSource)
	changeFee := req.FeeRate.FeeForVByte(btcunit.NewVByte(changeOutputVBytes))
	changeSpendFee := req.LongTermFeeRate.FeeForVByte(
		btcunit.NewVByte(estimateChangeSpendVBytes(req.ChangeSource)),
	)
	changeCost := changeFee + changeSpendFee

	var best *candidate

	for _, filter := range filters {
		eligible := coinselect.EligibleGroups(index.AllGroups.Positive, filter)
		if len(eligible) == 0 {
			continue
		}

		if err := coinselect.ValidateGroups(eligible); err != nil {
			return nil, nil, fmt.Errorf("validating eligible groups: %w", err)
		}

		attempts := runSolvers(eligible, target, changeCost, changeFee, req.Rng)
		for _, c := range attempts {
			if best == nil {
				best = c
				continue
			}

			less, err := c.result.Less(best.result)
			if err != nil {
				return nil, nil, fmt.Errorf("comparing selections: %w", err)
			}
			if less {
				best = c
			}
		}
	}

	if best == nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrCoinSelectionFailed,
			coinselect.ErrInsufficientFunds)
	}

	wantsChange := !best.neverChange &&
		best.result.GetChange(0, best.changeFee) > 0
	if wantsChange && req.ChangeSource == nil {
		return nil, nil, ErrMissingChangeSource
	}

	inputSource := constantInputSource(best.result.InputSet())

	feePerKVByte := req.FeeRate.ToSatPerKVByte().FeeForKVByte(btcunit.NewKVByte(1))

	tx, err := txauthor.NewUnsignedTransaction(
		req.Outputs, feePerKVByte, inputSource, req.ChangeSource,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("assembling transaction: %w", err)
	}

	if tx.ChangeIndex >= 0 {
		tx.RandomizeChangePosition()
	}

	return tx, best.result, nil
}

// runSolvers tries BnB, SRD, and Knapsack against one rung of eligible
// groups and returns every successful attempt with its waste already
// computed.
func runSolvers(eligible []*coinselect.OutputGroup, target, changeCost,
	changeFee coinselect.Amount, rng coinselect.Randomizer) []*candidate {

	var out []*candidate

	// BnB never creates change, so it is scored with a minViableChange
	// high enough that ComputeAndSetWaste always takes the no-change
	// branch - matching the invariant that a BnB result's effective
	// value already lands inside [target, target+changeCost].
	if result, ok := coinselect.SelectCoinsBnB(eligible, target, changeCost); ok {
		if err := result.ComputeAndSetWaste(changeCost+1, changeCost, 0); err == nil {
			out = append(out, &candidate{result, changeCost, changeFee, true})
		}
	}

	srdTarget := target + coinselect.GenerateChangeTarget(target, changeFee, rng)
	if result, ok := coinselect.SelectCoinsSRD(eligible, srdTarget, rng); ok {
		if err := result.ComputeAndSetWaste(0, changeCost, changeFee); err == nil {
			out = append(out, &candidate{result, changeCost, changeFee, false})
		}
	}

	if result, ok := coinselect.SelectCoinsKnapsack(eligible, target, changeFee, rng); ok {
		if err := result.ComputeAndSetWaste(0, changeCost, changeFee); err == nil {
			out = append(out, &candidate{result, changeCost, changeFee, false})
		}
	}

	return out
}

// buildUtxos derives one coinselect.Utxo per InputCoin.
func buildUtxos(coins []InputCoin, feeRate,
	longTermRate coinselect.FeeRate) ([]*coinselect.Utxo, error) {

	utxos := make([]*coinselect.Utxo, len(coins))
	for i, c := range coins {
		u, err := coinselect.NewUtxo(
			c.OutPoint, coinselect.Amount(c.Value), c.PkScript, c.Depth,
			c.InputBytes, c.Spendable, c.Solvable, c.Safe, c.Time,
			c.FromMe, feeRate, longTermRate,
		)
		if err != nil {
			return nil, err
		}

		utxos[i] = u
	}

	return utxos, nil
}

// indexUtxos groups utxos by (PkScript, OutputType) - the avoid-partial-spends
// unit - and files the resulting groups into a coinselect.GroupIndex. A
// script that accumulates more than OutputGroupMaxEntries UTXOs spills into
// additional groups for the same script, none of which are dropped.
func indexUtxos(utxos []*coinselect.Utxo, coins []InputCoin) *coinselect.GroupIndex {
	current := make(map[string]*coinselect.OutputGroup)
	groups := make([]*coinselect.OutputGroup, 0, len(utxos))

	for i, u := range utxos {
		key := string(u.PkScript)

		group, ok := current[key]
		if !ok {
			group = coinselect.NewOutputGroup(false)
			current[key] = group
			groups = append(groups, group)
		}

		if err := group.Insert(u, coins[i].Ancestors, coins[i].Descendants); err != nil {
			group = coinselect.NewOutputGroup(false)
			_ = group.Insert(u, coins[i].Ancestors, coins[i].Descendants)
			current[key] = group
			groups = append(groups, group)
		}
	}

	index := coinselect.NewGroupIndex()
	for _, group := range groups {
		index.Push(group, group.Outputs[0].OutputType, group.SelectionAmount() > 0, true)
	}

	return index
}

// changeOutputSize estimates the on-chain virtual size of adding a change
// output with the given ChangeSource's script size: 8 bytes for the value
// field, a varint length prefix, and the script itself.
func changeOutputSize(source *txauthor.ChangeSource) uint64 {
	if source == nil {
		return 0
	}

	return uint64(8 + wire.VarIntSerializeSize(uint64(source.ScriptSize)) +
		source.ScriptSize)
}

// estimateChangeSpendVBytes approximates the future cost of spending the
// change output this transaction creates. This is a rough, script-size-based
// estimate appropriate for a reference driver; a production wallet would use
// the teacher's own txsizes tables keyed on the concrete address type.
func estimateChangeSpendVBytes(source *txauthor.ChangeSource) uint64 {
	if source == nil {
		return 0
	}

	const genericInputOverhead = 68

	return uint64(source.ScriptSize + genericInputOverhead)
}

// constantInputSource returns a txauthor.InputSource that always hands back
// the same, already-selected set of inputs - the "manual" pattern the
// teacher domain uses for user- or policy-selected UTXOs, applied here to
// coinselect's own output instead of a caller-specified list.
func constantInputSource(selected []*coinselect.Utxo) txauthor.InputSource {
	total := btcutil.Amount(0)
	inputs := make([]*wire.TxIn, 0, len(selected))
	scripts := make([][]byte, 0, len(selected))
	values := make([]btcutil.Amount, 0, len(selected))

	for _, u := range selected {
		outpoint := u.OutPoint
		inputs = append(inputs, wire.NewTxIn(&outpoint, nil, nil))
		scripts = append(scripts, u.PkScript)
		values = append(values, u.Value)
		total += u.Value
	}

	return func(_ btcutil.Amount) (btcutil.Amount, []*wire.TxIn,
		[]btcutil.Amount, [][]byte, error) {

		return total, inputs, values, scripts, nil
	}
}
