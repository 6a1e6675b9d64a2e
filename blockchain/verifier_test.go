// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/blockchain/standalone"
	"github.com/bitweb-project/bewcore/chaincfg"
	"github.com/bitweb-project/bewcore/chainhash"
)

func TestCheckProofOfWorkAcceptsHashBelowTarget(t *testing.T) {
	params := chaincfg.MainNetParams

	// A hash of all zero bytes is numerically zero, the smallest possible
	// value, so it satisfies any positive target.
	var hash chainhash.Hash
	require.True(t, blockchain.CheckProofOfWork(&hash, params.PowLimitBits, &params))
}

func TestCheckProofOfWorkRejectsHashAboveTarget(t *testing.T) {
	params := chaincfg.MainNetParams

	// A maximal hash (all 0xff bytes) vastly exceeds any reasonable
	// target.
	var hash chainhash.Hash
	for i := range hash {
		hash[i] = 0xff
	}
	require.False(t, blockchain.CheckProofOfWork(&hash, params.PowLimitBits, &params))
}

func TestCheckProofOfWorkRejectsNegativeTarget(t *testing.T) {
	params := chaincfg.MainNetParams
	var hash chainhash.Hash
	require.False(t, blockchain.CheckProofOfWork(&hash, 0x01800001, &params))
}

func TestCheckProofOfWorkRejectsTargetAbovePowLimit(t *testing.T) {
	params := chaincfg.MainNetParams

	// One exponent step above the mainnet pow limit's own bits encodes a
	// target far beyond what the network permits.
	tooEasyBits := params.PowLimitBits + 0x01000000

	var hash chainhash.Hash
	require.False(t, blockchain.CheckProofOfWork(&hash, tooEasyBits, &params))
}

func TestCheckProofOfWorkBoundaryIsInclusive(t *testing.T) {
	params := chaincfg.MainNetParams
	target := standalone.CompactToBig(params.PowLimitBits)

	buf := target.Bytes()
	var big32 [32]byte
	copy(big32[32-len(buf):], buf)
	// HashToBig reverses the hash's byte order, so build the hash as the
	// byte-reversal of target's big-endian form.
	var hash chainhash.Hash
	for i := 0; i < 32; i++ {
		hash[i] = big32[32-1-i]
	}

	require.True(t, blockchain.CheckProofOfWork(&hash, params.PowLimitBits, &params))

	// One past the target (the hash is little-endian, so bump the low
	// byte, which the target leaves at zero) must fail.
	hash[0]++
	require.False(t, blockchain.CheckProofOfWork(&hash, params.PowLimitBits, &params))
}
