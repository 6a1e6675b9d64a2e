// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainindex

import (
	"encoding/binary"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitweb-project/bewcore/blockchain"
)

// ldbEntryLen is the on-disk record size: an 8-byte Unix timestamp
// followed by a 4-byte compact difficulty target, both big-endian.
const ldbEntryLen = 8 + 4

// ldbTipKey stores the current tip height as its own record, so Tip/Append
// don't need a key-range scan to find the frontier.
var ldbTipKey = []byte("tip")

// LevelDBIndex is a disk-backed blockchain.ChainIndexEntry collaborator,
// for callers (notably cmd/powtool) that want a chain index to survive
// process restarts rather than living only in memory. Keys are 4-byte
// big-endian heights; this gives natural ascending iteration order, which
// goleveldb's LSM layout is built to serve efficiently.
type LevelDBIndex struct {
	db *leveldb.DB
}

// OpenLevelDBIndex opens (creating if necessary) a LevelDB-backed chain
// index at the given directory path.
func OpenLevelDBIndex(path string) (*LevelDBIndex, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("chainindex: open %s: %w", path, err)
	}
	return &LevelDBIndex{db: db}, nil
}

// Close releases the underlying database handle.
func (l *LevelDBIndex) Close() error {
	return l.db.Close()
}

// Append adds a new tip block at the current height+1 (or 0, for an empty
// index) with the given header timestamp and compact difficulty bits.
func (l *LevelDBIndex) Append(timeUnix int64, bits uint32) (blockchain.ChainIndexEntry, error) {
	height, err := l.tipHeight()
	if err != nil && err != leveldb.ErrNotFound {
		return nil, err
	}
	newHeight := int32(0)
	if err == nil {
		newHeight = height + 1
	}

	if err := l.db.Put(heightKey(newHeight), encodeEntry(timeUnix, bits), nil); err != nil {
		return nil, fmt.Errorf("chainindex: put height %d: %w", newHeight, err)
	}
	if err := l.db.Put(ldbTipKey, heightKey(newHeight), nil); err != nil {
		return nil, fmt.Errorf("chainindex: update tip: %w", err)
	}

	return &ldbEntry{idx: l, height: newHeight, time: timeUnix, bits: bits}, nil
}

// Tip returns the current tip entry, or (nil, nil) if the index is empty.
func (l *LevelDBIndex) Tip() (blockchain.ChainIndexEntry, error) {
	height, err := l.tipHeight()
	if err == leveldb.ErrNotFound {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	e := l.at(height)
	if e == nil {
		return nil, fmt.Errorf("chainindex: missing record for tip height %d", height)
	}
	return e, nil
}

func (l *LevelDBIndex) tipHeight() (int32, error) {
	raw, err := l.db.Get(ldbTipKey, nil)
	if err != nil {
		return 0, err
	}
	return decodeHeightKey(raw), nil
}

// at returns the entry at the given height, or nil if no such record
// exists.
func (l *LevelDBIndex) at(height int32) *ldbEntry {
	if height < 0 {
		return nil
	}
	raw, err := l.db.Get(heightKey(height), nil)
	if err != nil {
		return nil
	}
	timeUnix, bits := decodeEntry(raw)
	return &ldbEntry{idx: l, height: height, time: timeUnix, bits: bits}
}

type ldbEntry struct {
	idx    *LevelDBIndex
	height int32
	time   int64
	bits   uint32
}

func (e *ldbEntry) Height() int32 { return e.height }
func (e *ldbEntry) Time() int64   { return e.time }
func (e *ldbEntry) Bits() uint32  { return e.bits }

func (e *ldbEntry) Ancestor(height int32) blockchain.ChainIndexEntry {
	a := e.idx.at(height)
	if a == nil {
		return nil
	}
	return a
}

func heightKey(height int32) []byte {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], uint32(height))
	return buf[:]
}

func decodeHeightKey(buf []byte) int32 {
	return int32(binary.BigEndian.Uint32(buf))
}

func encodeEntry(timeUnix int64, bits uint32) []byte {
	buf := make([]byte, ldbEntryLen)
	binary.BigEndian.PutUint64(buf[0:8], uint64(timeUnix))
	binary.BigEndian.PutUint32(buf[8:12], bits)
	return buf
}

func decodeEntry(buf []byte) (timeUnix int64, bits uint32) {
	timeUnix = int64(binary.BigEndian.Uint64(buf[0:8]))
	bits = binary.BigEndian.Uint32(buf[8:12])
	return
}
