// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chainhash"
	"github.com/bitweb-project/bewcore/chaincfg"
)

// CheckProofOfWork validates that hash satisfies the claimed difficulty
// bits. It returns false for every malformed-target case (negative, zero,
// overflowing, or exceeding the network's pow limit) as well as for a hash
// that simply doesn't meet the target. Both are normal rejection outcomes,
// never errors: a caller rejects the block and moves on.
func CheckProofOfWork(hash *chainhash.Hash, bits uint32, params *chaincfg.Params) bool {
	target, negative, overflow := standalone.SetCompact(bits)

	if negative || target.Sign() == 0 || overflow || target.Cmp(params.PowLimit) > 0 {
		return false
	}

	hashNum := standalone.HashToBig(hash)
	return hashNum.Cmp(target) <= 0
}
