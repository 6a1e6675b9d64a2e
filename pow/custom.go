// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

import (
	"github.com/decred/dcrd/crypto/blake256"
	"golang.org/x/crypto/blake2b"

	"github.com/bitweb-project/bewcore/chainhash"
)

// customHash implements the Custom engine (GetPoWHash2 in the C++
// sources): blake256(blake2b-256(header)). Chaining two distinct hash
// families keeps this engine's output distinguishable from Sha2d and
// Argon2id's SHA-2/SHA-512 lineage without inventing a new primitive.
func customHash(data []byte) (chainhash.Hash, error) {
	inner := blake2b.Sum256(data)
	outer := blake256.Sum256(inner[:])
	return chainhash.Hash(outer), nil
}
