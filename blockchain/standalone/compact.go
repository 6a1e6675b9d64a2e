// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package standalone holds the pure, state-free primitives of the
// proof-of-work consensus core: the compact target codec, fixed-precision
// 256-bit arithmetic, and the hash/work helpers built on top of them. None
// of these functions touch chain history; that lives one layer up in
// package blockchain.
package standalone

import (
	"math/big"

	"github.com/bitweb-project/bewcore/chainhash"
)

var (
	// bigOne is 1 represented as a big.Int. Defined here to avoid the
	// overhead of creating it multiple times.
	bigOne = big.NewInt(1)

	// oneLsh256 is 1 shifted left 256 bits. Defined here to avoid the
	// overhead of creating it multiple times.
	oneLsh256 = new(big.Int).Lsh(bigOne, 256)
)

// HashToBig converts a chainhash.Hash into a big.Int that can be used to
// perform math comparisons.
func HashToBig(hash *chainhash.Hash) *big.Int {
	// A Hash is in little-endian, but the big package wants the bytes in
	// big-endian, so reverse them.
	buf := *hash
	blen := len(buf)
	for i := 0; i < blen/2; i++ {
		buf[i], buf[blen-1-i] = buf[blen-1-i], buf[i]
	}

	return new(big.Int).SetBytes(buf[:])
}

// CompactToBig converts a compact representation of a whole number N, held
// in an unsigned 32-bit number, to a big.Int. The representation is similar
// to IEEE754 floating point numbers.
//
// Like IEEE754 floating point, there are three basic components: the sign,
// the exponent, and the mantissa. They are broken out as follows:
//
//   - the most significant 8 bits represent the unsigned base 256 exponent
//   - bit 23 (the 24th bit) represents the sign bit
//   - the least significant 23 bits represent the mantissa
//
//	-------------------------------------------------
//	|   Exponent     |    Sign    |    Mantissa     |
//	-------------------------------------------------
//	| 8 bits [31-24] | 1 bit [23] | 23 bits [22-00] |
//	-------------------------------------------------
//
// The formula to calculate N is:
//
//	N = (-1^sign) * mantissa * 256^(exponent-3)
//
// This does not flag the negative/overflow conditions a consensus check
// must reject; use SetCompact for that. CompactToBig always returns
// a usable (possibly negative) big.Int.
func CompactToBig(compact uint32) *big.Int {
	mantissa := compact & 0x007fffff
	isNegative := compact&0x00800000 != 0
	exponent := uint(compact >> 24)

	var bn *big.Int
	if exponent <= 3 {
		mantissa >>= 8 * (3 - exponent)
		bn = big.NewInt(int64(mantissa))
	} else {
		bn = big.NewInt(int64(mantissa))
		bn.Lsh(bn, 8*(exponent-3))
	}

	if isNegative {
		bn = bn.Neg(bn)
	}

	return bn
}

// SetCompact decodes a compact target, additionally reporting the negative
// and overflow conditions a consensus check must reject. It mirrors
// arith_uint256::SetCompact from the C++ sources:
//
//	size = bits >> 24; word = bits & 0x007fffff
//	target = word >> 8*(3-size)   if size <= 3
//	target = word << 8*(size-3)   otherwise
//	negative = word != 0 && bits&0x00800000 != 0
//	overflow = word != 0 && (size > 34 || (word > 0xff && size > 33) || (word > 0xffff && size > 32))
func SetCompact(bits uint32) (target *big.Int, negative bool, overflow bool) {
	size := bits >> 24
	word := bits & 0x007fffff

	negative = word != 0 && bits&0x00800000 != 0

	overflow = word != 0 &&
		(size > 34 ||
			(word > 0xff && size > 33) ||
			(word > 0xffff && size > 32))

	target = new(big.Int)
	switch {
	case size <= 3:
		target.SetUint64(uint64(word) >> (8 * (3 - size)))
	default:
		target.SetUint64(uint64(word))
		target.Lsh(target, 8*uint(size-3))
	}

	return target, negative, overflow
}

// BigToCompact converts a whole number N to a compact representation using
// an unsigned 32-bit number. The compact representation only provides 23
// bits of precision, so values larger than (2^23 - 1) only encode the most
// significant digits of the number. See CompactToBig for details.
func BigToCompact(n *big.Int) uint32 {
	if n.Sign() == 0 {
		return 0
	}

	var mantissa uint32
	exponent := uint(len(n.Bytes()))
	if exponent <= 3 {
		mantissa = uint32(n.Bits()[0])
		mantissa <<= 8 * (3 - exponent)
	} else {
		tn := new(big.Int).Set(n)
		mantissa = uint32(tn.Rsh(tn, 8*(exponent-3)).Bits()[0])
	}

	// When the mantissa already has the sign bit set, the number is too
	// large to fit into the available 23 bits, so divide the number by
	// 256 and increment the exponent accordingly.
	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	compact := uint32(exponent<<24) | mantissa
	if n.Sign() < 0 {
		compact |= 0x00800000
	}
	return compact
}

// CalcWork calculates a work value from difficulty bits. A lower target
// difficulty value equates to higher actual difficulty, so the accumulated
// work value is the inverse of the target. To avoid division by zero and
// vanishingly small floating point results, 1 is added to the denominator
// and the numerator is 2^256.
func CalcWork(bits uint32) *big.Int {
	difficultyNum := CompactToBig(bits)
	if difficultyNum.Sign() <= 0 {
		return big.NewInt(0)
	}

	denominator := new(big.Int).Add(difficultyNum, bigOne)
	return new(big.Int).Div(oneLsh256, denominator)
}
