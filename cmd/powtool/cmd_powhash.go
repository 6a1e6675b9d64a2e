// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/wire"
)

// powHashCmd implements `powtool pow-hash --header=<hex> --height=<n> [--network=...]`.
// header is the canonical 80-byte serialization, hex encoded. It reports
// which engine is active at height, the resulting PoW hash, and whether
// that hash satisfies the header's own bits.
type powHashCmd struct {
	Network string `long:"network" description:"mainnet, testnet, or regtest" default:"mainnet"`
	Header  string `long:"header" description:"80-byte block header, hex" required:"true"`
	Height  int32  `long:"height" description:"height the candidate block would occupy" required:"true"`
}

func (c *powHashCmd) Execute(args []string) error {
	if err := prepareLogging(); err != nil {
		return err
	}

	params, err := paramsForNetwork(c.Network)
	if err != nil {
		return err
	}

	raw, err := hex.DecodeString(c.Header)
	if err != nil {
		return fmt.Errorf("powtool: invalid header hex: %w", err)
	}

	var header wire.BlockHeader
	if err := header.FromBytes(raw); err != nil {
		return fmt.Errorf("powtool: decoding header: %w", err)
	}

	algo := params.AlgoAt(c.Height)
	engine := blockchain.EngineForAlgo(algo)

	hash, err := engine.Compute(&header)
	if err != nil {
		return fmt.Errorf("powtool: computing pow hash: %w", err)
	}

	ok, err := blockchain.CheckHeaderProofOfWork(&header, c.Height, params)
	if err != nil {
		return fmt.Errorf("powtool: checking pow hash: %w", err)
	}

	fmt.Printf("network:    %s\n", params.Name)
	fmt.Printf("height:     %d\n", c.Height)
	fmt.Printf("engine:     %s\n", engine)
	fmt.Printf("block hash: %s\n", header.BlockHash())
	fmt.Printf("pow hash:   %s\n", hash)
	fmt.Printf("bits:       %08x\n", header.Bits)
	fmt.Printf("valid:      %t\n", ok)
	if !ok {
		return fmt.Errorf("powtool: proof of work does not meet target")
	}
	return nil
}
