// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitSink_SendBitsAcrossByteBoundaries(t *testing.T) {
	var b bitSink
	b.sendBits(0x3, 2)  // 11
	b.sendBits(0x5, 3)  // 101
	b.sendBits(0x7F, 7) // 1111111
	b.alignToByte()

	// LSB-first packing: byte0 = 11 101 111, i.e. bits written in order.
	require.Len(t, b.pending, 2)
}

func TestBitSink_SendBitsSpanningAccumulator(t *testing.T) {
	var b bitSink
	for i := 0; i < 20; i++ {
		b.sendBits(uint16(i&1), 1)
	}
	b.alignToByte()
	require.Len(t, b.pending, 3) // 20 bits -> 3 bytes
	require.Zero(t, b.biValid)
}

func TestBitSink_FlushBitsIsIdempotentWhenEmpty(t *testing.T) {
	var b bitSink
	b.sendByte(0xAB)
	b.flushBits()
	require.Equal(t, []byte{0xAB}, b.pending)
}

func TestBitSink_FlushBitsLeavesResidualBitsUnlikeAlignToByte(t *testing.T) {
	var b bitSink
	b.sendBits(0x3, 2)
	b.sendBits(0x7F, 7) // 9 bits total: 1 full byte + 1 residual bit
	b.flushBits()

	require.Len(t, b.pending, 1)
	require.Equal(t, 1, b.biValid, "flushBits must not pad or clear the residual bits")

	b.alignToByte()
	require.Len(t, b.pending, 2)
	require.Zero(t, b.biValid)
}

func TestBitSink_RoundTripsThroughManualBitReader(t *testing.T) {
	var b bitSink
	values := []struct {
		v uint16
		n int
	}{
		{5, 3}, {0, 1}, {1023, 10}, {1, 1}, {7, 3},
	}
	for _, tc := range values {
		b.sendBits(tc.v, tc.n)
	}
	b.alignToByte()

	var acc uint32
	var avail int
	pos := 0
	readBits := func(n int) uint16 {
		for avail < n {
			acc |= uint32(b.pending[pos]) << uint(avail)
			pos++
			avail += 8
		}
		v := uint16(acc & ((1 << uint(n)) - 1))
		acc >>= uint(n)
		avail -= n
		return v
	}

	for _, tc := range values {
		require.Equal(t, tc.v, readBits(tc.n))
	}
}
