// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chaincfg"
)

// LegacyRetarget computes the required nBits for the block following last
// under the classic per-interval retargeting rule. newBlockTime is the
// candidate block's own timestamp, needed only for the testnet
// minimum-difficulty rule.
func LegacyRetarget(last ChainIndexEntry, newBlockTime uint32, params *chaincfg.Params) (uint32, error) {
	interval := params.DifficultyAdjustmentInterval()
	limitBits := params.PowLimitBits

	// Only change once per difficulty adjustment interval.
	if (int64(last.Height())+1)%interval != 0 {
		if params.AllowMinDifficultyBlocks {
			// Special difficulty rule for testnet: if the new block's
			// timestamp is more than 2x the target spacing beyond the
			// last block, allow the minimum difficulty.
			if int64(newBlockTime) > last.Time()+2*params.PowTargetSpacing {
				return limitBits, nil
			}

			// Otherwise return the last non-special-min-difficulty
			// block's bits, walking backward over the chain.
			entry := last
			for {
				prev := entry.Ancestor(entry.Height() - 1)
				if prev == nil || int64(entry.Height())%interval == 0 || entry.Bits() != limitBits {
					break
				}
				entry = prev
			}
			return entry.Bits(), nil
		}
		return last.Bits(), nil
	}

	// Retarget boundary: walk back to the first block of the window.
	firstHeight := last.Height() - int32(interval-1)
	if firstHeight < 0 {
		return limitBits, nil
	}

	first := last.Ancestor(firstHeight)
	if first == nil {
		return 0, AssertError("unable to obtain first block of retarget window")
	}

	return CalculateNextWorkRequired(last, first.Time(), params)
}

// CalculateNextWorkRequired applies the actual retarget math given the
// last block and the timestamp of the first block in its retarget window.
func CalculateNextWorkRequired(last ChainIndexEntry, firstTime int64, params *chaincfg.Params) (uint32, error) {
	if params.NoRetargeting {
		return last.Bits(), nil
	}

	actualTimespan := last.Time() - firstTime

	minTimespan := params.PowTargetTimespan / 4
	maxTimespan := params.PowTargetTimespan * 4
	switch {
	case actualTimespan < minTimespan:
		actualTimespan = minTimespan
	case actualTimespan > maxTimespan:
		actualTimespan = maxTimespan
	}

	// The timespan clamp must happen before the multiplication; clamping
	// the product instead yields different bits on chains that hit the
	// bound.
	oldTarget := standalone.CompactToBig(last.Bits())
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(actualTimespan))
	newTarget.Div(newTarget, big.NewInt(params.PowTargetTimespan))

	if newTarget.Cmp(params.PowLimit) > 0 {
		newTarget.Set(params.PowLimit)
	}

	newBits := standalone.BigToCompact(newTarget)

	log.Debugf("Difficulty retarget at block height %d", last.Height()+1)
	log.Debugf("Old target %08x (%064x)", last.Bits(), oldTarget)
	log.Debugf("New target %08x (%064x)", newBits, newTarget)
	log.Debugf("Actual timespan %d, target timespan %d", actualTimespan, params.PowTargetTimespan)

	return newBits, nil
}
