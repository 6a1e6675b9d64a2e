// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"path/filepath"

	flags "github.com/jessevdk/go-flags"
)

const (
	defaultLogFilename = "powtool.log"
	defaultLogDirname  = "logs"
)

// globalOptions are flags shared across every subcommand, parsed by
// go-flags before it dispatches to whichever Commander the caller named:
// a small set of process-wide knobs (here, just logging) layered on top
// of commands that each have their own, narrower flag set.
type globalOptions struct {
	LogDir string `long:"logdir" description:"Directory to log output" default:"."`
	Debug  string `short:"d" long:"debuglevel" description:"Logging level: trace, debug, info, warn, error, critical" default:"info"`
}

// logFilePath returns the rotated log file path under the configured log
// directory.
func (o *globalOptions) logFilePath() string {
	return filepath.Join(o.LogDir, defaultLogDirname, defaultLogFilename)
}

// newParser builds the go-flags parser for powtool: globalOptions plus
// one Commander per subcommand.
func newParser(opts *globalOptions) *flags.Parser {
	parser := flags.NewParser(opts, flags.Default)

	parser.AddCommand("decode-bits", "Decode a compact difficulty target",
		"Decode a compact (nBits) difficulty target into its expanded 256-bit target value.",
		&decodeBitsCmd{})

	parser.AddCommand("encode-bits", "Encode a 256-bit target into compact form",
		"Encode a full 256-bit target (hex) into its compact (nBits) representation.",
		&encodeBitsCmd{})

	parser.AddCommand("verify", "Check a header hash against a difficulty target",
		"Check whether a block hash satisfies a compact difficulty target's proof-of-work requirement.",
		&verifyCmd{})

	parser.AddCommand("retarget", "Compute the next required difficulty",
		"Compute the next required compact difficulty target from a chain index, using either the legacy or LWMA retarget rule.",
		&retargetCmd{})

	parser.AddCommand("pow-hash", "Compute and verify a header's proof-of-work hash",
		"Compute a block header's proof-of-work hash under the engine active at the given height (per the network's algorithm activation schedule) and check it against the header's own bits.",
		&powHashCmd{})

	return parser
}
