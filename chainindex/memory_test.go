// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/chainindex"
)

func TestMemoryIndexAppendAssignsSequentialHeights(t *testing.T) {
	idx := chainindex.NewMemoryIndex()

	e0 := idx.Append(1000, 0x1d00ffff)
	e1 := idx.Append(1060, 0x1d00ffff)
	e2 := idx.Append(1120, 0x1d00ffff)

	require.Equal(t, int32(0), e0.Height())
	require.Equal(t, int32(1), e1.Height())
	require.Equal(t, int32(2), e2.Height())
	require.Equal(t, int32(3), idx.Height())
}

func TestMemoryIndexTipReturnsMostRecentlyAppended(t *testing.T) {
	idx := chainindex.NewMemoryIndex()
	require.Nil(t, idx.Tip())

	idx.Append(1000, 0x1d00ffff)
	second := idx.Append(1060, 0x1d01ffff)

	require.Equal(t, second, idx.Tip())
}

func TestMemoryIndexAncestorReturnsEarlierEntry(t *testing.T) {
	idx := chainindex.NewMemoryIndex()
	genesis := idx.Append(1000, 0x1d00ffff)
	idx.Append(1060, 0x1d00ffff)
	tip := idx.Append(1120, 0x1d00ffff)

	got := tip.Ancestor(0)
	require.NotNil(t, got)
	require.Equal(t, genesis.Height(), got.Height())
	require.Equal(t, genesis.Time(), got.Time())
	require.Equal(t, genesis.Bits(), got.Bits())
}

func TestMemoryIndexAncestorOutOfRangeIsNilInterface(t *testing.T) {
	idx := chainindex.NewMemoryIndex()
	tip := idx.Append(1000, 0x1d00ffff)

	// A nil *memoryEntry boxed into blockchain.ChainIndexEntry must compare
	// equal to a plain nil interface value, not merely have a nil pointer
	// underneath it.
	require.Nil(t, tip.Ancestor(-1))
	require.Nil(t, tip.Ancestor(5))
}

func TestMemoryIndexFieldsRoundTrip(t *testing.T) {
	idx := chainindex.NewMemoryIndex()
	e := idx.Append(1234, 0x1c00ffff)

	require.Equal(t, int64(1234), e.Time())
	require.Equal(t, uint32(0x1c00ffff), e.Bits())
}
