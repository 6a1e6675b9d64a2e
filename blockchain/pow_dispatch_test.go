// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/chaincfg"
	"github.com/bitweb-project/bewcore/chainhash"
	"github.com/bitweb-project/bewcore/pow"
	"github.com/bitweb-project/bewcore/wire"
)

func TestEngineForAlgoMapsEveryVariant(t *testing.T) {
	require.Equal(t, pow.YespowerA, blockchain.EngineForAlgo(chaincfg.AlgoYespowerA))
	require.Equal(t, pow.YespowerB, blockchain.EngineForAlgo(chaincfg.AlgoYespowerB))
	require.Equal(t, pow.Argon2idTwoRound, blockchain.EngineForAlgo(chaincfg.AlgoArgon2idTwoRound))
	require.Equal(t, pow.Custom, blockchain.EngineForAlgo(chaincfg.AlgoCustom))
}

func TestCheckHeaderProofOfWorkUsesScheduleBeforeAndAfterActivation(t *testing.T) {
	params := chaincfg.MainNetParams
	params.PowAlgoSchedule = []chaincfg.AlgoActivation{
		{Height: 0, Algo: chaincfg.AlgoYespowerB},
		{Height: 10, Algo: chaincfg.AlgoYespowerA},
	}

	h := &wire.BlockHeader{
		Version:    1,
		PrevBlock:  chainhash.Hash{},
		MerkleRoot: chainhash.Hash{},
		Timestamp:  params.GenesisTimestamp,
		Bits:       params.PowLimitBits,
		Nonce:      params.GenesisNonce,
	}

	beforeEngine := blockchain.EngineForAlgo(params.AlgoAt(5))
	wantBefore, err := beforeEngine.Compute(h)
	require.NoError(t, err)

	okBefore, err := blockchain.CheckHeaderProofOfWork(h, 5, &params)
	require.NoError(t, err)
	require.Equal(t, blockchain.CheckProofOfWork(&wantBefore, h.Bits, &params), okBefore)

	afterEngine := blockchain.EngineForAlgo(params.AlgoAt(10))
	require.NotEqual(t, beforeEngine, afterEngine)

	wantAfter, err := afterEngine.Compute(h)
	require.NoError(t, err)

	okAfter, err := blockchain.CheckHeaderProofOfWork(h, 10, &params)
	require.NoError(t, err)
	require.Equal(t, blockchain.CheckProofOfWork(&wantAfter, h.Bits, &params), okAfter)
}
