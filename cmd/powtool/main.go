// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command powtool is a diagnostic CLI over the bewcore consensus
// primitives: encoding/decoding compact difficulty targets, checking a
// header hash against a target, and computing the next required
// difficulty from a chain index. It is a small, scriptable front end over
// library code that otherwise has no standalone entry point.
package main

import (
	"fmt"
	"os"

	flags "github.com/jessevdk/go-flags"
)

// cfg holds the parsed global options, set once in main and read by every
// command's Execute method.
var cfg = &globalOptions{}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses arguments and lets go-flags dispatch to the named command's
// Execute method. Logging is initialized lazily, from within
// prepareLogging (called by each command before it does any work), since
// cfg's fields are only fully populated once argument parsing reaches the
// command itself.
func run() error {
	parser := newParser(cfg)
	_, err := parser.Parse()
	if err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	return nil
}

// prepareLogging initializes file log rotation and subsystem log levels
// from cfg. Every command's Execute calls this first.
func prepareLogging() error {
	if err := initLogRotator(cfg.logFilePath()); err != nil {
		return fmt.Errorf("powtool: unable to initialize log rotation: %w", err)
	}
	setLogLevels(cfg.Debug)
	return nil
}
