// Copyright (c) 2021 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone

import (
	"math/big"
	"math/bits"

	"github.com/bitweb-project/bewcore/chainhash"
)

// Uint256 is a fixed-precision unsigned 256-bit integer, stored as four
// little-endian 64-bit words (word 0 is least significant). It exists
// alongside the math/big-based helpers in compact.go because LWMA-3's
// per-term division must happen in bounded, allocation-free 256-bit
// arithmetic to avoid the overflow that an accumulate-then-divide ordering
// would hit, and a fixed-width word array makes that bound explicit
// instead of relying on big.Int's unbounded growth.
type Uint256 [4]uint64

// Uint256FromBig converts a big.Int in [0, 2^256) to a Uint256. Values
// outside that range are truncated to their low 256 bits, matching the
// wraparound behavior of the fixed-width type. Conversion goes through a
// fixed 32-byte big-endian buffer rather than big.Int.Bits() so the result
// is identical regardless of the platform's native big.Word size.
func Uint256FromBig(n *big.Int) Uint256 {
	be := n.Bytes()
	var buf [32]byte
	if len(be) > 32 {
		be = be[len(be)-32:]
	}
	copy(buf[32-len(be):], be)

	var v Uint256
	for i := 0; i < 4; i++ {
		// Word i holds the i-th least-significant 8 bytes; buf is
		// big-endian, so word 0 comes from the tail of buf.
		off := 32 - (i+1)*8
		v[i] = uint64(buf[off])<<56 | uint64(buf[off+1])<<48 | uint64(buf[off+2])<<40 |
			uint64(buf[off+3])<<32 | uint64(buf[off+4])<<24 | uint64(buf[off+5])<<16 |
			uint64(buf[off+6])<<8 | uint64(buf[off+7])
	}
	return v
}

// ToBig converts a Uint256 back to a big.Int.
func (n Uint256) ToBig() *big.Int {
	buf := make([]byte, 32)
	for i := 0; i < 4; i++ {
		putUint64LE(buf[i*8:i*8+8], n[i])
	}
	// big.Int.SetBytes wants big-endian.
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return new(big.Int).SetBytes(buf)
}

func putUint64LE(b []byte, v uint64) {
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

// IsZero reports whether n is zero.
func (n Uint256) IsZero() bool {
	return n[0] == 0 && n[1] == 0 && n[2] == 0 && n[3] == 0
}

// Cmp compares n to other, returning -1, 0, or 1 as n is less than, equal
// to, or greater than other.
func (n Uint256) Cmp(other Uint256) int {
	for i := 3; i >= 0; i-- {
		if n[i] < other[i] {
			return -1
		}
		if n[i] > other[i] {
			return 1
		}
	}
	return 0
}

// Add256 returns n + other, truncating on overflow past 2^256, which never
// legitimately happens for in-range targets.
func (n Uint256) Add256(other Uint256) Uint256 {
	var out Uint256
	var carry uint64
	for i := 0; i < 4; i++ {
		out[i], carry = bits.Add64(n[i], other[i], carry)
	}
	return out
}

// DivUint64 returns n / d, truncating toward zero, using schoolbook long
// division over the four 64-bit words from most to least significant.
func (n Uint256) DivUint64(d uint64) Uint256 {
	if d == 0 {
		return Uint256{}
	}
	var quotient Uint256
	var remainder uint64
	for i := 3; i >= 0; i-- {
		quotient[i], remainder = bits.Div64(remainder, n[i], d)
	}
	return quotient
}

// MulUint64 returns n * m, truncating on overflow past 2^256.
func (n Uint256) MulUint64(m uint64) Uint256 {
	var out Uint256
	var carry uint64
	for i := 0; i < 4; i++ {
		hi, lo := bits.Mul64(n[i], m)
		lo, c := bits.Add64(lo, carry, 0)
		out[i] = lo
		carry = hi + c
	}
	return out
}

// DiffBitsToUint256 decodes a compact target into fixed-precision form by
// way of SetCompact's big.Int result, so it applies the same
// negative/overflow detection as SetCompact.
func DiffBitsToUint256(compact uint32) (target Uint256, negative bool, overflow bool) {
	t, neg, of := SetCompact(compact)
	return Uint256FromBig(t), neg, of
}

// Uint256ToDiffBits encodes a fixed-precision target back to compact form.
func Uint256ToDiffBits(n Uint256) uint32 {
	return BigToCompact(n.ToBig())
}

// HashToUint256 converts a chainhash.Hash (little-endian bytes) into its
// fixed-precision unsigned integer value.
func HashToUint256(hash *chainhash.Hash) Uint256 {
	var v Uint256
	for i := 0; i < 4; i++ {
		v[i] = uint64(hash[i*8]) | uint64(hash[i*8+1])<<8 | uint64(hash[i*8+2])<<16 |
			uint64(hash[i*8+3])<<24 | uint64(hash[i*8+4])<<32 | uint64(hash[i*8+5])<<40 |
			uint64(hash[i*8+6])<<48 | uint64(hash[i*8+7])<<56
	}
	return v
}
