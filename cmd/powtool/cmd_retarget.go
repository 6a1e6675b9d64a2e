// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/chainindex"
)

// retargetCmd implements `powtool retarget --index=<dir> --time=<unix> [--network=...]`.
// It reads the current tip from a LevelDB-backed chain index and reports
// the compact difficulty required for the block built on top of it.
type retargetCmd struct {
	Network string `long:"network" description:"mainnet, testnet, or regtest" default:"mainnet"`
	Index   string `long:"index" description:"leveldb chain index directory" required:"true"`
	Time    int64  `long:"time" description:"candidate block timestamp, unix seconds" required:"true"`
}

func (c *retargetCmd) Execute(args []string) error {
	if err := prepareLogging(); err != nil {
		return err
	}

	params, err := paramsForNetwork(c.Network)
	if err != nil {
		return err
	}

	idx, err := chainindex.OpenLevelDBIndex(c.Index)
	if err != nil {
		return err
	}
	defer idx.Close()

	tip, err := idx.Tip()
	if err != nil {
		return fmt.Errorf("powtool: reading chain tip: %w", err)
	}
	if tip == nil {
		fmt.Printf("network: %s\n", params.Name)
		fmt.Printf("index is empty; next block would use genesis bits %08x\n", params.GenesisBits)
		return nil
	}

	bits, err := blockchain.NextRequiredWork(tip, uint32(c.Time), params)
	if err != nil {
		return fmt.Errorf("powtool: computing next required work: %w", err)
	}

	fmt.Printf("network:      %s\n", params.Name)
	fmt.Printf("tip height:   %d\n", tip.Height())
	fmt.Printf("tip bits:     %08x\n", tip.Bits())
	fmt.Printf("next bits:    %08x\n", bits)
	return nil
}
