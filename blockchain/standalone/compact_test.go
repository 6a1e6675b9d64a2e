// Copyright (c) 2013-2017 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package standalone_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitweb-project/bewcore/blockchain/standalone"
)

func TestCompactToBig(t *testing.T) {
	tests := []struct {
		name    string
		compact uint32
		want    string
	}{
		{"bitcoin-era retarget bits", 0x1b00ffff, "000000000000ffff000000000000000000000000000000000000000000000000"},
		{"zero mantissa", 0x01000000, "0"},
		{"small exponent", 0x03123456, "123456"},
		{"exponent below three shifts right", 0x02008000, "80"},
		{"mantissa fully shifted out", 0x01003456, "0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := standalone.CompactToBig(tc.compact)
			want, ok := new(big.Int).SetString(tc.want, 16)
			require.True(t, ok)
			require.Equal(t, 0, got.Cmp(want), "got %x want %x", got, want)
		})
	}
}

func TestBigToCompactRoundTrip(t *testing.T) {
	values := []uint32{
		453115903,
		0x1d00ffff,
		0x1f1fffff,
		0x1e3fffff,
		0x207fffff,
	}
	for _, compact := range values {
		n := standalone.CompactToBig(compact)
		got := standalone.BigToCompact(n)
		require.Equal(t, compact, got, "round trip mismatch for %08x", compact)
	}
}

func TestSetCompact(t *testing.T) {
	tests := []struct {
		name     string
		compact  uint32
		negative bool
		overflow bool
	}{
		{"valid mainnet limit", 0x1f1fffff, false, false},
		{"negative flag set", 0x01800001, true, false},
		{"overflowing mantissa", 0xff123456, false, true},
		{"zero", 0x00000000, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, negative, overflow := standalone.SetCompact(tc.compact)
			require.Equal(t, tc.negative, negative)
			require.Equal(t, tc.overflow, overflow)
		})
	}
}

func TestCalcWorkZeroForNonPositiveDifficulty(t *testing.T) {
	work := standalone.CalcWork(0x01800001) // negative bit set
	require.Equal(t, 0, work.Sign())
}

func TestCalcWorkDecreasesAsTargetGrows(t *testing.T) {
	easier := standalone.CalcWork(0x1f1fffff)
	harder := standalone.CalcWork(0x1d00ffff)
	require.Equal(t, 1, harder.Cmp(easier), "a smaller target must represent more work")
}
