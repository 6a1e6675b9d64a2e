// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import "github.com/bitweb-project/bewcore/chaincfg"

// NextRequiredWork picks between LwmaRetarget and LegacyRetarget for the
// block following last, based on params.LWMAHeight. A network with
// LWMAHeight == 0 runs LWMA-3 from genesis; NoRetargeting networks (e.g.
// regtest) short-circuit to the previous block's bits before either rule
// runs.
func NextRequiredWork(last ChainIndexEntry, newBlockTime uint32, params *chaincfg.Params) (uint32, error) {
	if params.NoRetargeting {
		return last.Bits(), nil
	}
	if last.Height() >= params.LWMAHeight {
		return LwmaRetarget(last, params)
	}
	return LegacyRetarget(last, newBlockTime, params)
}
