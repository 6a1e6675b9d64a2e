// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package pow

// AssertError identifies an internal code consistency issue that must be
// treated as a critical and unrecoverable error, mirroring
// blockchain.AssertError. A drifted cached block hash is a programmer
// error (a caller mutated a header after it was cached without
// invalidating the cache first), not a runtime data error, and must never
// be silently absorbed into a stale cache hit.
type AssertError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}
