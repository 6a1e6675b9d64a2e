// Copyright (c) 2014-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chaincfg"
)

func TestDifficultyAdjustmentInterval(t *testing.T) {
	require.Equal(t, int64(90), chaincfg.MainNetParams.DifficultyAdjustmentInterval())
	require.Equal(t, int64(90), chaincfg.TestNetParams.DifficultyAdjustmentInterval())
}

func TestAlgoAtBeforeAndAfterActivation(t *testing.T) {
	params := chaincfg.Params{
		PowAlgoSchedule: []chaincfg.AlgoActivation{
			{Height: 0, Algo: chaincfg.AlgoYespowerB},
			{Height: 1000, Algo: chaincfg.AlgoYespowerA},
			{Height: 5000, Algo: chaincfg.AlgoArgon2idTwoRound},
		},
	}

	require.Equal(t, chaincfg.AlgoYespowerB, params.AlgoAt(0))
	require.Equal(t, chaincfg.AlgoYespowerB, params.AlgoAt(999))
	require.Equal(t, chaincfg.AlgoYespowerA, params.AlgoAt(1000))
	require.Equal(t, chaincfg.AlgoYespowerA, params.AlgoAt(4999))
	require.Equal(t, chaincfg.AlgoArgon2idTwoRound, params.AlgoAt(5000))
	require.Equal(t, chaincfg.AlgoArgon2idTwoRound, params.AlgoAt(1_000_000))
}

func TestNetworkParamsPowLimitBitsMatchPowLimit(t *testing.T) {
	for _, params := range []*chaincfg.Params{
		&chaincfg.MainNetParams,
		&chaincfg.TestNetParams,
		&chaincfg.RegressionNetParams,
	} {
		require.Equal(t, params.GenesisBits, params.PowLimitBits, params.Name)
		require.Equal(t, params.PowLimitBits, standalone.BigToCompact(params.PowLimit), params.Name)
	}
}

func TestRegressionNetDisablesRetargeting(t *testing.T) {
	require.True(t, chaincfg.RegressionNetParams.NoRetargeting)
	require.False(t, chaincfg.MainNetParams.NoRetargeting)
}

func TestTestNetAllowsMinDifficultyBlocks(t *testing.T) {
	require.True(t, chaincfg.TestNetParams.AllowMinDifficultyBlocks)
	require.False(t, chaincfg.MainNetParams.AllowMinDifficultyBlocks)
}
