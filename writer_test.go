// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"bytes"
	"compress/flate"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func testInputSet() []struct {
	name string
	data []byte
} {
	return []struct {
		name string
		data []byte
	}{
		{name: "nil", data: nil},
		{name: "empty", data: []byte{}},
		{name: "single-byte", data: []byte{0xAB}},
		{name: "short-text", data: []byte("hello world, deflate test")},
		{name: "repeated-pattern", data: bytes.Repeat([]byte("abc123"), 2000)},
		{name: "long-run", data: bytes.Repeat([]byte{0xFF}, 12000)},
		{name: "byte-cycle", data: bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 1200)},
		{name: "binary-random", data: pseudoRandomBytes(5000)},
	}
}

func pseudoRandomBytes(n int) []byte {
	b := make([]byte, n)
	var x uint32 = 0x2545F491
	for i := range b {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		b[i] = byte(x)
	}
	return b
}

func inflate(t *testing.T, compressed []byte) []byte {
	t.Helper()
	r := flate.NewReader(bytes.NewReader(compressed))
	defer r.Close()
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func TestWriter_RoundTripAcrossLevelsAndStrategies(t *testing.T) {
	strategies := []Strategy{StrategyDefault, StrategyFiltered, StrategyHuffmanOnly, StrategyRLE, StrategyFixed}

	for _, in := range testInputSet() {
		for level := 0; level <= 9; level++ {
			for _, strat := range strategies {
				name := fmt.Sprintf("%s/level-%d/strategy-%d", in.name, level, strat)
				t.Run(name, func(t *testing.T) {
					opts := &Options{Level: level, WindowBits: 15, MemLevel: 8, Strategy: strat}
					compressed, err := Compress(in.data, opts)
					require.NoError(t, err)

					got := inflate(t, compressed)
					require.True(t, bytes.Equal(got, in.data), "round-trip mismatch for %s", name)
				})
			}
		}
	}
}

func TestWriter_StreamingWritesMatchOneShot(t *testing.T) {
	data := bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog. "), 500)

	var buf bytes.Buffer
	z, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)

	for i := 0; i < len(data); i += 37 {
		end := i + 37
		if end > len(data) {
			end = len(data)
		}
		n, err := z.Write(data[i:end])
		require.NoError(t, err)
		require.Equal(t, end-i, n)
	}
	require.NoError(t, z.Close())

	require.Equal(t, data, inflate(t, buf.Bytes()))
}

func TestWriter_SyncFlushProducesResynchronizableStream(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)

	_, err = z.Write([]byte("first segment of data"))
	require.NoError(t, err)
	require.NoError(t, z.Flush(SyncFlush))
	firstLen := buf.Len()

	_, err = z.Write([]byte("second segment of data"))
	require.NoError(t, err)
	require.NoError(t, z.Close())

	require.Greater(t, buf.Len(), firstLen)
	require.Equal(t, "first segment of datasecond segment of data", string(inflate(t, buf.Bytes())))
}

func TestWriter_ResetAllowsReuse(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	z, err := NewWriter(&buf1, DefaultOptions())
	require.NoError(t, err)

	_, err = z.Write([]byte("stream one"))
	require.NoError(t, err)
	require.NoError(t, z.Close())

	z.Reset(&buf2)
	_, err = z.Write([]byte("stream two"))
	require.NoError(t, err)
	require.NoError(t, z.Close())

	require.Equal(t, "stream one", string(inflate(t, buf1.Bytes())))
	require.Equal(t, "stream two", string(inflate(t, buf2.Bytes())))
}

func TestWriter_WriteAfterCloseFails(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, z.Close())

	_, err = z.Write([]byte("too late"))
	require.ErrorIs(t, err, ErrClosed)
}

func TestNewWriter_RejectsInvalidOptions(t *testing.T) {
	cases := []*Options{
		{Level: 10, WindowBits: 15, MemLevel: 8},
		{Level: 6, WindowBits: 3, MemLevel: 8},
		{Level: 6, WindowBits: 15, MemLevel: 0},
		{Level: 6, WindowBits: 15, MemLevel: 8, Strategy: Strategy(99)},
	}
	for _, opts := range cases {
		_, err := NewWriter(&bytes.Buffer{}, opts)
		require.ErrorIs(t, err, ErrConfig)
	}
}

func TestWriter_DataTypeDetection(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	_, err = z.Write([]byte("plain ASCII text with punctuation.\n"))
	require.NoError(t, err)
	require.NoError(t, z.Close())
	require.Equal(t, DataTypeText, z.DataType())

	var buf2 bytes.Buffer
	z2, err := NewWriter(&buf2, DefaultOptions())
	require.NoError(t, err)
	_, err = z2.Write(pseudoRandomBytes(64))
	require.NoError(t, err)
	require.NoError(t, z2.Close())
}

func TestWriter_SetDictionarySeedsHistoryWithoutEmittingOutput(t *testing.T) {
	dict := []byte("the quick brown fox jumps over the lazy dog")
	data := []byte("the quick brown fox jumps over the lazy dog again and again")

	var buf bytes.Buffer
	z, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	require.NoError(t, z.SetDictionary(dict))
	require.Equal(t, 0, buf.Len(), "SetDictionary must not emit output on its own")

	_, err = z.Write(data)
	require.NoError(t, err)
	require.NoError(t, z.Close())
	require.NotEmpty(t, buf.Bytes())
}

func TestWriter_SetDictionaryAfterWriteIsRejected(t *testing.T) {
	var buf bytes.Buffer
	z, err := NewWriter(&buf, DefaultOptions())
	require.NoError(t, err)
	_, err = z.Write([]byte("already started"))
	require.NoError(t, err)

	require.ErrorIs(t, z.SetDictionary([]byte("dict")), ErrConfig)
}
