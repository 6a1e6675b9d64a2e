// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/chaincfg"
)

func TestPermittedDifficultyTransitionPermissiveAlwaysTrue(t *testing.T) {
	params := chaincfg.MainNetParams
	ok := blockchain.PermittedDifficultyTransition(blockchain.TransitionPermissive, 90, 0x1d00ffff, 0x1d00ffff, &params)
	require.True(t, ok)

	ok = blockchain.PermittedDifficultyTransition(blockchain.TransitionPermissive, 90, 0x1d00ffff, 0x01000001, &params)
	require.True(t, ok)
}

func TestPermittedDifficultyTransitionStrictNonBoundaryRequiresEquality(t *testing.T) {
	params := chaincfg.MainNetParams
	require.True(t, blockchain.PermittedDifficultyTransition(blockchain.TransitionStrict, 5, 0x1d00ffff, 0x1d00ffff, &params))
	require.False(t, blockchain.PermittedDifficultyTransition(blockchain.TransitionStrict, 5, 0x1d00ffff, 0x1d01ffff, &params))
}

func TestPermittedDifficultyTransitionStrictBoundaryRejectsOutOfBounds(t *testing.T) {
	params := chaincfg.MainNetParams
	interval := params.DifficultyAdjustmentInterval()

	// A transition far beyond the 4x widening bound must be rejected.
	require.False(t, blockchain.PermittedDifficultyTransition(
		blockchain.TransitionStrict, int32(interval), 0x1d00ffff, 0x2100ffff, &params))
}

func TestPermittedDifficultyTransitionStrictBoundaryAcceptsSameBits(t *testing.T) {
	params := chaincfg.MainNetParams
	interval := params.DifficultyAdjustmentInterval()

	require.True(t, blockchain.PermittedDifficultyTransition(
		blockchain.TransitionStrict, int32(interval), 0x1d00ffff, 0x1d00ffff, &params))
}

func TestPermittedDifficultyTransitionAllowMinDifficultyBypassesCheck(t *testing.T) {
	params := chaincfg.TestNetParams // AllowMinDifficultyBlocks: true
	ok := blockchain.PermittedDifficultyTransition(
		blockchain.TransitionStrict, 90, 0x1d00ffff, 0x01000001, &params)
	require.True(t, ok)
}
