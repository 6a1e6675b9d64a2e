// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/chainhash"
)

// verifyCmd implements `powtool verify --bits=<hex> --hash=<hex> [--network=...]`.
type verifyCmd struct {
	Bits    string `long:"bits" description:"compact difficulty bits, hex" required:"true"`
	Hash    string `long:"hash" description:"block hash, hex, in standard (reversed) display order" required:"true"`
	Network string `long:"network" description:"mainnet, testnet, or regtest" default:"mainnet"`
}

func (c *verifyCmd) Execute(args []string) error {
	if err := prepareLogging(); err != nil {
		return err
	}

	params, err := paramsForNetwork(c.Network)
	if err != nil {
		return err
	}

	bits, err := strconv.ParseUint(c.Bits, 16, 32)
	if err != nil {
		return fmt.Errorf("powtool: invalid bits %q: %w", c.Bits, err)
	}

	hash, err := chainhash.NewHashFromStr(c.Hash)
	if err != nil {
		return fmt.Errorf("powtool: invalid hash %q: %w", c.Hash, err)
	}

	ok := blockchain.CheckProofOfWork(hash, uint32(bits), params)
	fmt.Printf("network: %s\n", params.Name)
	fmt.Printf("hash:    %s\n", hash)
	fmt.Printf("bits:    %08x\n", bits)
	fmt.Printf("valid:   %t\n", ok)
	if !ok {
		return fmt.Errorf("powtool: proof of work does not meet target")
	}
	return nil
}
