// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanTree_RunLengthEncodesRepeatedLengths(t *testing.T) {
	lens := make([]uint8, 20)
	for i := range lens {
		lens[i] = 4
	}
	syms, freq := scanTree(lens, len(lens)-1)

	require.NotEmpty(t, syms)
	require.Greater(t, int(freq[repSameLengths]), 0)
}

func TestScanTree_ZeroRunsUseRepZeroSymbols(t *testing.T) {
	lens := make([]uint8, 50)
	syms, freq := scanTree(lens, len(lens)-1)

	require.NotEmpty(t, syms)
	require.Greater(t, int(freq[repZeroLong])+int(freq[repZeroShort]), 0)
}

func TestBlHeaderCount_NeverBelowFour(t *testing.T) {
	lens := make([]uint8, blCodes)
	lens[blOrder[0]] = 3 // only the first transmitted entry is nonzero
	tree := &huffTree{lens: lens}
	require.GreaterOrEqual(t, blHeaderCount(tree), 4)
}

func TestSendStoredBlock_HeaderAndLengthFields(t *testing.T) {
	var bits bitSink
	data := []byte("hello")
	sendStoredBlock(&bits, data, true)

	require.Equal(t, byte(1|btypeStored<<1), bits.pending[0])
	n := uint16(bits.pending[1]) | uint16(bits.pending[2])<<8
	require.EqualValues(t, len(data), n)
	nlen := uint16(bits.pending[3]) | uint16(bits.pending[4])<<8
	require.EqualValues(t, ^n, nlen)
	require.Equal(t, data, bits.pending[5:])
}

func TestEmitBlock_StaticStrategyAlwaysUsesStaticHeader(t *testing.T) {
	lb := newLiteralBuffer(8)
	for _, c := range []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa") {
		lb.tallyLit(c)
	}

	var bits bitSink
	emitBlock(&bits, lb, []byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"), true, StrategyFixed)

	header := bits.pending[0]
	btype := (header >> 1) & 0x3
	require.EqualValues(t, btypeStatic, btype)
}

func TestEmitBlock_DynamicBlockRoundTripsThroughStandardInflate(t *testing.T) {
	lb := newLiteralBuffer(8)
	raw := bytes.Repeat([]byte("mississippi river "), 40)
	for _, c := range raw {
		lb.tallyLit(c)
	}

	var bits bitSink
	emitBlock(&bits, lb, raw, true, StrategyDefault)
	bits.alignToByte()

	require.True(t, bytes.Equal(inflate(t, bits.pending), raw))
}
