// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/chainindex"
)

func openTestLevelDBIndex(t *testing.T) *chainindex.LevelDBIndex {
	t.Helper()
	dir := t.TempDir()
	idx, err := chainindex.OpenLevelDBIndex(filepath.Join(dir, "chainindex"))
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, idx.Close()) })
	return idx
}

func TestLevelDBIndexEmptyTipIsNil(t *testing.T) {
	idx := openTestLevelDBIndex(t)

	tip, err := idx.Tip()
	require.NoError(t, err)
	require.Nil(t, tip)
}

func TestLevelDBIndexAppendAssignsSequentialHeights(t *testing.T) {
	idx := openTestLevelDBIndex(t)

	e0, err := idx.Append(1000, 0x1d00ffff)
	require.NoError(t, err)
	e1, err := idx.Append(1060, 0x1d00ffff)
	require.NoError(t, err)

	require.Equal(t, int32(0), e0.Height())
	require.Equal(t, int32(1), e1.Height())
}

func TestLevelDBIndexTipPersistsAcrossReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "chainindex")

	idx, err := chainindex.OpenLevelDBIndex(dir)
	require.NoError(t, err)
	idx.Append(1000, 0x1d00ffff)
	idx.Append(1060, 0x1c00ffff)
	require.NoError(t, idx.Close())

	reopened, err := chainindex.OpenLevelDBIndex(dir)
	require.NoError(t, err)
	defer reopened.Close()

	tip, err := reopened.Tip()
	require.NoError(t, err)
	require.NotNil(t, tip)
	require.Equal(t, int32(1), tip.Height())
	require.Equal(t, uint32(0x1c00ffff), tip.Bits())
}

func TestLevelDBIndexAncestorReturnsEarlierEntry(t *testing.T) {
	idx := openTestLevelDBIndex(t)

	genesis, err := idx.Append(1000, 0x1d00ffff)
	require.NoError(t, err)
	idx.Append(1060, 0x1d00ffff)
	tip, err := idx.Append(1120, 0x1d00ffff)
	require.NoError(t, err)

	got := tip.Ancestor(0)
	require.NotNil(t, got)
	require.Equal(t, genesis.Height(), got.Height())
}

func TestLevelDBIndexAncestorOutOfRangeIsNilInterface(t *testing.T) {
	idx := openTestLevelDBIndex(t)
	tip, err := idx.Append(1000, 0x1d00ffff)
	require.NoError(t, err)

	require.Nil(t, tip.Ancestor(-1))
	require.Nil(t, tip.Ancestor(5))
}
