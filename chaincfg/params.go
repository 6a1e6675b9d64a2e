// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the consensus parameters that drive the
// retargeting and proof-of-work-hash algorithm selection for each network
// the node can run on.
package chaincfg

import (
	"math/big"
)

// PowAlgo identifies which proof-of-work hash engine (package pow) a
// network requires, and at what height it is active. A network may list
// more than one entry to describe a hard-fork algorithm switch.
type PowAlgo int

const (
	// AlgoYespowerA is yespower with N=2048, r=8, personalised. See
	// pow.YespowerA.
	AlgoYespowerA PowAlgo = iota
	// AlgoYespowerB is yespower with N=2048, r=32, unpersonalised. See
	// pow.YespowerB.
	AlgoYespowerB
	// AlgoArgon2idTwoRound is the two-round Argon2id construction. See
	// pow.Argon2idTwoRound.
	AlgoArgon2idTwoRound
	// AlgoCustom is the auxiliary CustomHash engine. See pow.Custom.
	AlgoCustom
)

// AlgoActivation pairs a PowAlgo with the height at which it becomes the
// active engine for a network.
type AlgoActivation struct {
	Height int32
	Algo   PowAlgo
}

// Params defines a network by its proof-of-work consensus rules.
type Params struct {
	// Name is a human readable identifier for the network.
	Name string

	// PowLimit is the highest allowed proof-of-work target (the easiest
	// target) for the network, as an unsigned 256-bit integer.
	PowLimit *big.Int

	// PowLimitBits is PowLimit's compact encoding, kept alongside PowLimit
	// to avoid re-encoding it on every genesis or minimum-difficulty check.
	PowLimitBits uint32

	// GenesisBits, GenesisTimestamp and GenesisNonce describe the header
	// fields of the network's genesis block. The genesis block uses
	// PowLimit exactly rather than a decoded value below it.
	GenesisBits      uint32
	GenesisTimestamp uint32
	GenesisNonce     uint32
	GenesisVersion   int32

	// PowTargetSpacing is the desired number of seconds between blocks (T).
	PowTargetSpacing int64

	// PowTargetTimespan is the number of seconds in a legacy retarget
	// window.
	PowTargetTimespan int64

	// AllowMinDifficultyBlocks enables the testnet minimum-difficulty
	// rule in both LegacyRetarget and PermittedDifficultyTransition.
	AllowMinDifficultyBlocks bool

	// NoRetargeting disables retargeting entirely (regtest rule);
	// CalculateNextWorkRequired always returns the previous block's bits.
	NoRetargeting bool

	// LWMAAveragingWindow is N, the LWMA-3 averaging window size.
	LWMAAveragingWindow int64

	// LWMAHeight is the height at which the network switches from the
	// legacy retarget rule to LWMA-3. The switch is a deployment decision
	// recorded here, not inferred from chain history.
	LWMAHeight int32

	// PowAlgoSchedule lists the proof-of-work hash engine in effect from
	// each activation height onward, ordered by ascending Height. The
	// engine active at a given height is the last entry whose Height is
	// <= that height.
	PowAlgoSchedule []AlgoActivation
}

// DifficultyAdjustmentInterval returns the legacy number of blocks between
// retargets: PowTargetTimespan / PowTargetSpacing.
func (p *Params) DifficultyAdjustmentInterval() int64 {
	return p.PowTargetTimespan / p.PowTargetSpacing
}

// AlgoAt returns the proof-of-work engine active at the given height
// according to PowAlgoSchedule.
func (p *Params) AlgoAt(height int32) PowAlgo {
	algo := AlgoYespowerA
	for _, a := range p.PowAlgoSchedule {
		if a.Height > height {
			break
		}
		algo = a.Algo
	}
	return algo
}

var (
	// mainPowLimit is the highest proof-of-work value a mainnet block can
	// have: the expansion of the 0x1f1fffff genesis bits (mantissa
	// 0x1fffff, exponent 31), i.e. 0x1fffff << 224.
	mainPowLimit = new(big.Int).Lsh(big.NewInt(0x1fffff), 224)

	// regressionPowLimit is the highest proof-of-work value a regtest
	// block can have: the expansion of the 0x207fffff regtest genesis
	// bits (mantissa 0x7fffff, exponent 32), i.e. 0x7fffff << 232.
	regressionPowLimit = new(big.Int).Lsh(big.NewInt(0x7fffff), 232)

	// testNetPowLimit is the highest proof-of-work value a testnet block
	// can have: the expansion of the 0x1e3fffff testnet genesis bits
	// (mantissa 0x3fffff, exponent 30), i.e. 0x3fffff << 216.
	testNetPowLimit = new(big.Int).Lsh(big.NewInt(0x3fffff), 216)
)

// MainNetParams defines the network parameters for the main network.
var MainNetParams = Params{
	Name:                     "mainnet",
	PowLimit:                 mainPowLimit,
	PowLimitBits:             0x1f1fffff,
	GenesisBits:              0x1f1fffff,
	GenesisTimestamp:         1619971700,
	GenesisNonce:             651,
	GenesisVersion:           1,
	PowTargetSpacing:         60,
	PowTargetTimespan:        60 * 90,
	AllowMinDifficultyBlocks: false,
	NoRetargeting:            false,
	LWMAAveragingWindow:      90,
	LWMAHeight:               91,
	PowAlgoSchedule: []AlgoActivation{
		{Height: 0, Algo: AlgoYespowerB},
	},
}

// TestNetParams defines the network parameters for the test network.
var TestNetParams = Params{
	Name:                     "testnet",
	PowLimit:                 testNetPowLimit,
	PowLimitBits:             0x1e3fffff,
	GenesisBits:              0x1e3fffff,
	GenesisTimestamp:         1619971765,
	GenesisNonce:             18156,
	GenesisVersion:           1,
	PowTargetSpacing:         60,
	PowTargetTimespan:        60 * 90,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            false,
	LWMAAveragingWindow:      90,
	LWMAHeight:               91,
	PowAlgoSchedule: []AlgoActivation{
		{Height: 0, Algo: AlgoYespowerB},
	},
}

// RegressionNetParams defines the network parameters for the regression
// test network.
var RegressionNetParams = Params{
	Name:                     "regtest",
	PowLimit:                 regressionPowLimit,
	PowLimitBits:             0x207fffff,
	GenesisBits:              0x207fffff,
	GenesisTimestamp:         1619971818,
	GenesisNonce:             1,
	GenesisVersion:           1,
	PowTargetSpacing:         60,
	PowTargetTimespan:        60 * 90,
	AllowMinDifficultyBlocks: true,
	NoRetargeting:            true,
	LWMAAveragingWindow:      90,
	LWMAHeight:               0,
	PowAlgoSchedule: []AlgoActivation{
		{Height: 0, Algo: AlgoYespowerB},
	},
}
