// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"bytes"
	"compress/gzip"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGzipWriter_RoundTripsThroughStandardGzipReader(t *testing.T) {
	data := bytes.Repeat([]byte("gzip framing round trip test "), 300)

	var buf bytes.Buffer
	gw, err := NewGzipWriter(&buf, DefaultOptions())
	require.NoError(t, err)

	_, err = gw.Write(data[:100])
	require.NoError(t, err)
	_, err = gw.Write(data[100:])
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	r, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Equal(t, data, got)
}

func TestGzipWriter_EmptyInputProducesValidStream(t *testing.T) {
	var buf bytes.Buffer
	gw, err := NewGzipWriter(&buf, nil)
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	r, err := gzip.NewReader(&buf)
	require.NoError(t, err)
	defer r.Close()

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	require.Empty(t, got)
}
