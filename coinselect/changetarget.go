// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package coinselect

// GenerateChangeTarget returns a randomized change target so that a
// wallet's change outputs resemble its payment outputs, defeating the
// "unnecessary-input" heuristic used to fingerprint wallets.
//
//   - If paymentValue*2 <= ChangeLower, the random component is fixed at
//     ChangeLower.
//   - Otherwise it is drawn uniformly from
//     [ChangeLower, min(2*paymentValue, ChangeUpper)].
//
// The returned value always includes changeFee on top of the random
// component.
func GenerateChangeTarget(paymentValue, changeFee Amount, rng Randomizer) Amount {
	if paymentValue*2 <= ChangeLower {
		return changeFee + ChangeLower
	}

	upper := 2 * paymentValue
	if upper > ChangeUpper {
		upper = ChangeUpper
	}

	span := int64(upper - ChangeLower)
	r := ChangeLower
	if span > 0 {
		r += Amount(rng.Int63n(span + 1))
	}

	return changeFee + r
}
