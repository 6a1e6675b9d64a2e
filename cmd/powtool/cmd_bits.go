// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/bitweb-project/bewcore/blockchain/standalone"
)

// decodeBitsCmd implements `powtool decode-bits <bits>`.
type decodeBitsCmd struct {
	Positional struct {
		Bits string `positional-arg-name:"bits" description:"compact difficulty bits, hex (e.g. 1d00ffff)"`
	} `positional-args:"yes" required:"yes"`
}

func (c *decodeBitsCmd) Execute(args []string) error {
	if err := prepareLogging(); err != nil {
		return err
	}

	bits, err := strconv.ParseUint(c.Positional.Bits, 16, 32)
	if err != nil {
		return fmt.Errorf("powtool: invalid bits %q: %w", c.Positional.Bits, err)
	}

	target, negative, overflow := standalone.SetCompact(uint32(bits))
	fmt.Printf("bits:     %08x\n", uint32(bits))
	fmt.Printf("target:   %064x\n", target)
	fmt.Printf("negative: %t\n", negative)
	fmt.Printf("overflow: %t\n", overflow)
	return nil
}

// encodeBitsCmd implements `powtool encode-bits <target-hex>`.
type encodeBitsCmd struct {
	Positional struct {
		Target string `positional-arg-name:"target" description:"full 256-bit target value, hex"`
	} `positional-args:"yes" required:"yes"`
}

func (c *encodeBitsCmd) Execute(args []string) error {
	if err := prepareLogging(); err != nil {
		return err
	}

	target, ok := new(big.Int).SetString(c.Positional.Target, 16)
	if !ok {
		return fmt.Errorf("powtool: invalid target %q", c.Positional.Target)
	}

	bits := standalone.BigToCompact(target)
	fmt.Printf("target: %064x\n", target)
	fmt.Printf("bits:   %08x\n", bits)
	return nil
}
