// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chainindex supplies concrete blockchain.ChainIndexEntry
// implementations. The consensus code in package blockchain deliberately
// stays agnostic of block storage; this package provides the in-memory
// and LevelDB-backed indexes that tests, tools, and a hosting node use to
// drive it.
package chainindex

import (
	"sync"

	"github.com/bitweb-project/bewcore/blockchain"
)

// memoryEntry is one block's worth of the header fields the retarget
// algorithms need, plus a back-reference to the index that owns it so
// Ancestor lookups can be served.
type memoryEntry struct {
	idx    *MemoryIndex
	height int32
	time   int64
	bits   uint32
}

func (e *memoryEntry) Height() int32 { return e.height }
func (e *memoryEntry) Time() int64   { return e.time }
func (e *memoryEntry) Bits() uint32  { return e.bits }

func (e *memoryEntry) Ancestor(height int32) blockchain.ChainIndexEntry {
	a := e.idx.at(height)
	if a == nil {
		// A nil *memoryEntry boxed into a non-nil interface value would
		// break every "== nil" check callers make against the returned
		// blockchain.ChainIndexEntry; return an explicit nil interface.
		return nil
	}
	return a
}

// MemoryIndex is an in-memory, append-only chain index: blocks are added
// one at a time from genesis forward. Because entries are stored
// contiguously by height, Ancestor lookups are a direct slice index
// rather than needing the skip-list a reorganizable block index carries;
// MemoryIndex does not support reorgs, only linear append, which is
// sufficient for driving the retarget/verify algorithms against a fixed
// header sequence.
type MemoryIndex struct {
	mu      sync.RWMutex
	entries []*memoryEntry
}

// NewMemoryIndex returns an empty index. Append the genesis block first,
// at height 0.
func NewMemoryIndex() *MemoryIndex {
	return &MemoryIndex{}
}

// Append adds a new tip block at height len(entries) with the given
// header timestamp and compact difficulty bits, and returns its entry.
func (m *MemoryIndex) Append(timeUnix int64, bits uint32) blockchain.ChainIndexEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e := &memoryEntry{
		idx:    m,
		height: int32(len(m.entries)),
		time:   timeUnix,
		bits:   bits,
	}
	m.entries = append(m.entries, e)
	return e
}

// Tip returns the most recently appended entry, or nil if the index is
// empty.
func (m *MemoryIndex) Tip() blockchain.ChainIndexEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.entries) == 0 {
		return nil
	}
	return m.entries[len(m.entries)-1]
}

// Height returns the number of blocks appended so far. The genesis block,
// once appended, is at height 0, so a non-empty index reports
// len(entries)-1 as its tip height; Height reports len(entries) so
// callers can tell an empty index (0) from a genesis-only one (1).
func (m *MemoryIndex) Height() int32 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int32(len(m.entries))
}

// at returns the entry at the given height, or nil if out of range. It
// is the lookup primitive behind Ancestor.
func (m *MemoryIndex) at(height int32) *memoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if height < 0 || int(height) >= len(m.entries) {
		return nil
	}
	return m.entries[height]
}
