// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"github.com/bitweb-project/bewcore/chaincfg"
	"github.com/bitweb-project/bewcore/pow"
	"github.com/bitweb-project/bewcore/wire"
)

// EngineForAlgo maps a chaincfg.PowAlgo, the consensus-parameter-side
// algorithm identifier a network's PowAlgoSchedule is built from, onto the
// pow.Engine that implements it. Package pow itself stays unaware of
// chaincfg so the hash engines remain pure functions of header bytes
// alone.
func EngineForAlgo(algo chaincfg.PowAlgo) pow.Engine {
	switch algo {
	case chaincfg.AlgoYespowerA:
		return pow.YespowerA
	case chaincfg.AlgoYespowerB:
		return pow.YespowerB
	case chaincfg.AlgoArgon2idTwoRound:
		return pow.Argon2idTwoRound
	case chaincfg.AlgoCustom:
		return pow.Custom
	default:
		return pow.YespowerA
	}
}

// CheckHeaderProofOfWork computes h's proof-of-work hash under whichever
// engine params.PowAlgoSchedule has active at height, then validates it
// against h.Bits via CheckProofOfWork. height is the height the candidate
// block would occupy once connected, matching the meaning
// chaincfg.Params.AlgoAt expects.
//
// An error from the engine (a yespower binding failure) is bubbled up as
// an error rather than folded into the false-means-reject boolean;
// primitive failure is fatal, not a normal rejection.
func CheckHeaderProofOfWork(h *wire.BlockHeader, height int32, params *chaincfg.Params) (bool, error) {
	engine := EngineForAlgo(params.AlgoAt(height))

	hash, err := engine.Compute(h)
	if err != nil {
		return false, err
	}

	return CheckProofOfWork(&hash, h.Bits, params), nil
}
