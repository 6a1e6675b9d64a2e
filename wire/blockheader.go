// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire defines the on-wire block header used as the hash input to
// every proof-of-work engine in the consensus core.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/bitweb-project/bewcore/chainhash"
)

// MaxBlockHeaderPayload is the number of bytes a block header takes up on
// the wire: 4 byte version + 32 byte prev hash + 32 byte merkle root + 4
// byte timestamp + 4 byte difficulty bits + 4 byte nonce.
const MaxBlockHeaderPayload = 4 + (chainhash.HashSize * 2) + 4 + 4 + 4

// BlockHeader defines information about a block. It carries no
// transactions; only the 80 fixed-size bytes consumed by the proof-of-work
// hash engines.
type BlockHeader struct {
	// Version of the block. This is not the same as the protocol version.
	Version int32

	// PrevBlock is the hash of the previous block header in the block chain.
	PrevBlock chainhash.Hash

	// MerkleRoot is the merkle tree reference to the hash of all
	// transactions for the block.
	MerkleRoot chainhash.Hash

	// Timestamp is the time the block was created, encoded on the wire as
	// Unix seconds in a uint32.
	Timestamp uint32

	// Bits is the difficulty target for the block in compact form.
	Bits uint32

	// Nonce is used to generate the block.
	Nonce uint32
}

// BlockHash computes the block identifier hash for the given block header:
// a double SHA-256 over the serialized header, the same construction
// CBlockHeader::GetHash uses in the C++ sources.
func (h *BlockHeader) BlockHash() chainhash.Hash {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	_ = writeBlockHeader(buf, h)
	return chainhash.DoubleHashH(buf.Bytes())
}

// Serialize encodes the receiver to w using the canonical 80-byte,
// little-endian-per-field layout. This exact byte sequence is the input to
// every hash engine in package pow.
func (h *BlockHeader) Serialize(w io.Writer) error {
	return writeBlockHeader(w, h)
}

// Deserialize decodes a block header from r into the receiver.
func (h *BlockHeader) Deserialize(r io.Reader) error {
	return readBlockHeader(r, h)
}

// Bytes returns the canonical 80-byte serialized form of the header.
func (h *BlockHeader) Bytes() []byte {
	buf := bytes.NewBuffer(make([]byte, 0, MaxBlockHeaderPayload))
	// Serialize only fails if the underlying writer fails; bytes.Buffer
	// never does.
	_ = h.Serialize(buf)
	return buf.Bytes()
}

// FromBytes deserializes a block header from a byte slice of exactly
// MaxBlockHeaderPayload bytes.
func (h *BlockHeader) FromBytes(b []byte) error {
	if len(b) != MaxBlockHeaderPayload {
		return fmt.Errorf("invalid block header length %d, want %d", len(b), MaxBlockHeaderPayload)
	}
	return h.Deserialize(bytes.NewReader(b))
}

func writeBlockHeader(w io.Writer, h *BlockHeader) error {
	var buf [MaxBlockHeaderPayload]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(h.Version))
	copy(buf[4:36], h.PrevBlock[:])
	copy(buf[36:68], h.MerkleRoot[:])
	binary.LittleEndian.PutUint32(buf[68:72], h.Timestamp)
	binary.LittleEndian.PutUint32(buf[72:76], h.Bits)
	binary.LittleEndian.PutUint32(buf[76:80], h.Nonce)
	_, err := w.Write(buf[:])
	return err
}

func readBlockHeader(r io.Reader, h *BlockHeader) error {
	var buf [MaxBlockHeaderPayload]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return err
	}
	h.Version = int32(binary.LittleEndian.Uint32(buf[0:4]))
	copy(h.PrevBlock[:], buf[4:36])
	copy(h.MerkleRoot[:], buf[36:68])
	h.Timestamp = binary.LittleEndian.Uint32(buf[68:72])
	h.Bits = binary.LittleEndian.Uint32(buf[72:76])
	h.Nonce = binary.LittleEndian.Uint32(buf[76:80])
	return nil
}

// NewBlockHeader returns a new BlockHeader using the provided version,
// previous block hash, merkle root hash, difficulty bits, and nonce.
func NewBlockHeader(version int32, prevHash, merkleRootHash *chainhash.Hash, bits, timestamp, nonce uint32) *BlockHeader {
	return &BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleRootHash,
		Timestamp:  timestamp,
		Bits:       bits,
		Nonce:      nonce,
	}
}
