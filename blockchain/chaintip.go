// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// ChainIndexEntry is a read-only view of a historical block header as
// needed by the retarget algorithms in this package. The consensus code
// never mutates it and never needs more than height, time, bits, and
// ancestor lookups to do its job. A caller may back this with an
// in-memory slice (see package chainindex), a skip-list, a database cursor, or
// anything else that can answer Ancestor in O(log depth) or better.
type ChainIndexEntry interface {
	// Height returns the height of this block, with the genesis block at
	// height 0.
	Height() int32

	// Time returns this block's header timestamp, in Unix seconds.
	Time() int64

	// Bits returns this block's compact difficulty target.
	Bits() uint32

	// Ancestor returns the ancestor block at the given height. The given
	// height must be less than or equal to Height(); implementations
	// return nil if no such ancestor is known.
	Ancestor(height int32) ChainIndexEntry
}
