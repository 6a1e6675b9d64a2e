// Copyright (c) 2009-2010 Satoshi Nakamoto
// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package pow implements the family of proof-of-work hash engines: a plain
// double-SHA256 block-identity hash, two yespower parameterizations, a
// two-round Argon2id construction, and an auxiliary CustomHash. Every
// engine is a pure function of the 80-byte serialized header (package
// wire); none hold state beyond the optional cache in cache.go.
package pow

import (
	"fmt"

	"github.com/bitweb-project/bewcore/chainhash"
	"github.com/bitweb-project/bewcore/wire"
)

// Engine identifies one proof-of-work hash construction. It is modeled as
// a closed tagged variant dispatched by value rather than as an interface
// hierarchy: there is a fixed, small set of algorithms and each is a value
// with its own parameters, not a type hierarchy a caller ever extends.
type Engine int

const (
	// Sha2d is the plain block-identity hash: SHA-256(SHA-256(header)).
	Sha2d Engine = iota

	// YespowerA is yespower with N=2048, r=8, and the bewcore1
	// personalisation string.
	YespowerA

	// YespowerB is yespower with N=2048, r=32, unpersonalised.
	YespowerB

	// Argon2idTwoRound chains two Argon2id invocations with a
	// SHA-512-derived salt; see argon2.go.
	Argon2idTwoRound

	// Custom is the auxiliary CustomHash engine; see custom.go.
	Custom
)

// String returns a human-readable name for the engine, used in logging and
// CLI output.
func (e Engine) String() string {
	switch e {
	case Sha2d:
		return "sha2d"
	case YespowerA:
		return "yespower-a"
	case YespowerB:
		return "yespower-b"
	case Argon2idTwoRound:
		return "argon2id-2r"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("pow.Engine(%d)", int(e))
	}
}

// Compute runs the engine's hash construction over the header's canonical
// 80-byte serialization and returns the resulting 256-bit PoW hash. An
// error reported by the yespower binding, or an unknown engine value, is
// surfaced here as an error for the caller to turn into a graceful
// shutdown, rather than folded into a rejection boolean. The Sha2d,
// Argon2idTwoRound and Custom constructions have no error path and always
// return a nil error.
func (e Engine) Compute(h *wire.BlockHeader) (chainhash.Hash, error) {
	data := h.Bytes()
	switch e {
	case Sha2d:
		return chainhash.DoubleHashH(data), nil
	case YespowerA:
		return yespowerHash(data, yespowerAParams)
	case YespowerB:
		return yespowerHash(data, yespowerBParams)
	case Argon2idTwoRound:
		return argon2idTwoRound(data)
	case Custom:
		return customHash(data)
	default:
		return chainhash.Hash{}, fmt.Errorf("pow: unknown engine %d", int(e))
	}
}
