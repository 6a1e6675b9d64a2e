// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"math/big"

	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chaincfg"
)

// TransitionMode selects how strictly PermittedDifficultyTransition
// enforces the legacy retarget bounds. The C++ bewcore1 sources ship this
// check entirely commented out, permitting any transition; both behaviors
// are kept selectable here, defaulting to strict.
type TransitionMode int

const (
	// TransitionStrict enforces the full legacy min/max retarget bound
	// check at adjustment boundaries, and equality otherwise. This is the
	// default.
	TransitionStrict TransitionMode = iota

	// TransitionPermissive always returns true, matching chains whose
	// deployed nodes never enforced the check. Kept only so a caller can
	// deliberately opt into the historical behavior; new deployments
	// should use TransitionStrict.
	TransitionPermissive
)

// PermittedDifficultyTransition checks that an old to new nBits transition
// at the given height is permitted. At a retarget boundary the new target
// must fall within the bounds the legacy retarget could have produced from
// the old bits; anywhere else the bits must not change at all.
func PermittedDifficultyTransition(mode TransitionMode, height int32, oldBits, newBits uint32, params *chaincfg.Params) bool {
	if mode == TransitionPermissive {
		return true
	}

	if params.AllowMinDifficultyBlocks {
		return true
	}

	interval := params.DifficultyAdjustmentInterval()
	if int64(height)%interval != 0 {
		return oldBits == newBits
	}

	smallestTimespan := params.PowTargetTimespan / 4
	largestTimespan := params.PowTargetTimespan * 4

	observedNewTarget := standalone.CompactToBig(newBits)

	largestTarget := new(big.Int).Mul(standalone.CompactToBig(oldBits), big.NewInt(largestTimespan))
	largestTarget.Div(largestTarget, big.NewInt(params.PowTargetTimespan))
	if largestTarget.Cmp(params.PowLimit) > 0 {
		largestTarget.Set(params.PowLimit)
	}
	maxNewTarget := standalone.CompactToBig(standalone.BigToCompact(largestTarget))
	if maxNewTarget.Cmp(observedNewTarget) < 0 {
		return false
	}

	smallestTarget := new(big.Int).Mul(standalone.CompactToBig(oldBits), big.NewInt(smallestTimespan))
	smallestTarget.Div(smallestTarget, big.NewInt(params.PowTargetTimespan))
	if smallestTarget.Cmp(params.PowLimit) > 0 {
		smallestTarget.Set(params.PowLimit)
	}
	minNewTarget := standalone.CompactToBig(standalone.BigToCompact(smallestTarget))
	if minNewTarget.Cmp(observedNewTarget) > 0 {
		return false
	}

	return true
}
