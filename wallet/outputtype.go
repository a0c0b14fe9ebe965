// Copyright (c) 2025 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import "github.com/btcsuite/btcd/txscript"

// ResolveOutputType classifies pkScript so it can be attached to a
// coinselect.Utxo and used to key OutputGroups by (PkScript, OutputType).
// This is the "output type ... supplied per group" input coinselect takes
// as given rather than resolving itself.
func ResolveOutputType(pkScript []byte) txscript.ScriptClass {
	return txscript.GetScriptClass(pkScript)
}
