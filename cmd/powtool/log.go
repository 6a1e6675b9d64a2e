// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/btcsuite/btclog"
	"github.com/jrick/logrotate/rotator"

	"github.com/bitweb-project/bewcore/blockchain"
	"github.com/bitweb-project/bewcore/pow"
)

// logRotator rotates the log file written by the file logging backend once
// it has grown beyond a fixed size.
var logRotator *rotator.Rotator

// backendLog is the logging backend used to create all subsystem loggers.
// The backend itself writes to both stdout and logRotator.
var backendLog = btclog.NewBackend(logWriter{})

var log = backendLog.Logger("POWT")

// logWriter implements io.Writer and writes to both standard output and
// the log rotator.
type logWriter struct{}

func (logWriter) Write(p []byte) (n int, err error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogRotator initializes the logging rotator to write logs to
// logFile and create roll files in the same directory. It must be
// called before the package-level log rotator is used.
func initLogRotator(logFile string) error {
	logDir := filepath.Dir(logFile)
	if err := os.MkdirAll(logDir, 0700); err != nil {
		return err
	}

	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		return err
	}
	logRotator = r
	return nil
}

// setLogLevels wires the given level into every subsystem logger powtool
// knows about, fanning a single configured level out to each package's
// UseLogger.
func setLogLevels(levelStr string) {
	level, ok := btclog.LevelFromString(levelStr)
	if !ok {
		level = btclog.LevelInfo
	}

	log.SetLevel(level)

	chainLog := backendLog.Logger("CHAN")
	chainLog.SetLevel(level)
	blockchain.UseLogger(chainLog)

	powLog := backendLog.Logger("POW ")
	powLog.SetLevel(level)
	pow.UseLogger(powLog)
}
