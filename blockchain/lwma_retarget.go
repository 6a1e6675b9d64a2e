// LWMA-1 for BTC & Zcash clones
// Copyright (c) 2017-2019 The Bitcoin Gold developers, Zawy, iamstenman (Microbitcoin)
// Algorithm by Zawy, a modification of WT-144 by Tom Harding.

package blockchain

import (
	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chaincfg"
)

// lwmaBootstrapWindow (L) is the number of low-height blocks for which
// LWMA-3 defers to the network's pow limit rather than its own average.
// New coins effectively "give away" these first blocks.
const lwmaBootstrapWindow = 1000

// LwmaRetarget computes the required nBits for the block following last
// using the LWMA-3 weighted moving average algorithm. N (the averaging
// window) and T (the target spacing) come from params.
func LwmaRetarget(last ChainIndexEntry, params *chaincfg.Params) (uint32, error) {
	n := params.LWMAAveragingWindow
	t := params.PowTargetSpacing
	k := n * (n + 1) * t / 2

	height := last.Height()
	if int64(height) <= lwmaBootstrapWindow {
		return params.PowLimitBits, nil
	}

	prevAncestor := last.Ancestor(height - int32(n))
	if prevAncestor == nil {
		return 0, AssertError("unable to obtain LWMA window start ancestor")
	}
	prevTime := prevAncestor.Time()

	var avgTarget standalone.Uint256
	var sumWeightedSolvetimes int64
	var j int64

	for i := height - int32(n) + 1; i <= height; i++ {
		block := last.Ancestor(i)
		if block == nil {
			return 0, AssertError("unable to obtain LWMA window block")
		}

		// Prevent negative solvetimes by forcing strictly increasing
		// virtual timestamps. Do NOT instead clamp the subtraction result
		// to max(1, ...); that is a different, consensus-incompatible
		// function.
		thisTime := block.Time()
		if thisTime <= prevTime {
			thisTime = prevTime + 1
		}

		solvetime := thisTime - prevTime
		if solvetime > 6*t {
			solvetime = 6 * t
		}
		prevTime = thisTime

		j++
		sumWeightedSolvetimes += solvetime * j

		target, _, _ := standalone.DiffBitsToUint256(block.Bits())
		// Divide per-term, before accumulating, to keep every partial
		// sum inside 256 bits. Accumulating raw targets and dividing by
		// N*k only at the end would overflow well before N blocks are
		// summed, and the per-term truncation is itself consensus.
		avgTarget = avgTarget.Add256(target.DivUint64(uint64(n)).DivUint64(uint64(k)))

		log.Debugf("LWMA block #%d: solvetime=%d target=%x", block.Height(), solvetime, target)
	}

	nextTarget := avgTarget.MulUint64(uint64(sumWeightedSolvetimes))

	powLimit := standalone.Uint256FromBig(params.PowLimit)
	if nextTarget.Cmp(powLimit) > 0 {
		nextTarget = powLimit
	}

	return standalone.Uint256ToDiffBits(nextTarget), nil
}
