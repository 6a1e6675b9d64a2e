// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitweb-project/bewcore/chaincfg"
)

// paramsForNetwork resolves a --network flag value to the corresponding
// chaincfg.Params table.
func paramsForNetwork(name string) (*chaincfg.Params, error) {
	switch name {
	case "mainnet", "":
		return &chaincfg.MainNetParams, nil
	case "testnet":
		return &chaincfg.TestNetParams, nil
	case "regtest":
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("powtool: unknown network %q (want mainnet, testnet, or regtest)", name)
	}
}
