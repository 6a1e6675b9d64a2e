// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"crypto/sha512"

	"golang.org/x/crypto/argon2"

	"github.com/bitweb-project/bewcore/chainhash"
)

// The C++ bewcore1 sources carried several conflicting Argon2id parameter
// drafts: m=500 KiB with p=8, m=8000 then 16000 KiB with p=16, and m=4096
// then 32768 KiB with p=2. The drafts are kept here, unused, purely so the
// alternatives stay traceable; only argon2Round1Params/argon2Round2Params
// below are ever invoked.
const (
	argon2DraftAMemKiB  = 500
	argon2DraftAThreads = 8

	argon2DraftBRound1MemKiB = 8000
	argon2DraftBRound2MemKiB = 16000
	argon2DraftBThreads      = 16
)

// argon2Round1Params and argon2Round2Params are the canonical parameter
// set: t=2, p=2, with memory stepping from 4096 KiB to 32768 KiB between
// rounds.
var (
	argon2Round1Params = argon2Params{Time: 2, MemoryKiB: 4096, Threads: 2}
	argon2Round2Params = argon2Params{Time: 2, MemoryKiB: 32768, Threads: 2}
)

type argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// argon2idTwoRound computes the two-round Argon2id construction: the
// password is the serialized header in both rounds; the first round's salt
// is a double SHA-512 of the header, and the second round's salt is the
// first round's 32-byte output.
func argon2idTwoRound(data []byte) (chainhash.Hash, error) {
	salt1 := doubleSHA512(data)

	h1 := argon2.IDKey(data, salt1, argon2Round1Params.Time, argon2Round1Params.MemoryKiB,
		argon2Round1Params.Threads, chainhash.HashSize)

	h2 := argon2.IDKey(data, h1, argon2Round2Params.Time, argon2Round2Params.MemoryKiB,
		argon2Round2Params.Threads, chainhash.HashSize)

	var out chainhash.Hash
	copy(out[:], h2)
	return out, nil
}

// doubleSHA512 returns SHA-512(SHA-512(data)), the salt derivation for the
// first Argon2id round.
func doubleSHA512(data []byte) []byte {
	first := sha512.Sum512(data)
	second := sha512.Sum512(first[:])
	return second[:]
}
