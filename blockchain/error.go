// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

// AssertError identifies an error that indicates an internal code
// consistency issue and should therefore be treated as a critical and
// unrecoverable error. A missing ancestor or a corrupted cache is a
// programmer error, not a runtime data error, and must never be silently
// absorbed into a boolean rejection.
type AssertError string

// Error returns the assertion error as a human-readable string and
// satisfies the error interface.
func (e AssertError) Error() string {
	return "assertion failed: " + string(e)
}
