// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"encoding/binary"
	"hash/crc32"
	"io"
)

// GzipWriter is a trivial gzip (RFC 1952) outer-framing adapter around
// Writer: a 10-byte header, a raw deflate stream, then the CRC-32 and
// uncompressed size trailer. It exists only as framing — all compression
// decisions still belong to Writer; this type never inspects or alters the
// deflate stream it wraps. hash/crc32 is the one deliberate standard-library
// dependency in this package: the pack's hashing libraries (xxhash, FNV
// variants seen elsewhere in the examples) are all non-standard checksums,
// while gzip's trailer is specifically, unconditionally CRC-32.
type GzipWriter struct {
	inner     *Writer
	out       io.Writer
	crc       uint32
	size      uint32
	wroteHead bool
}

// NewGzipWriter wraps w with gzip framing, compressing with opts (nil for
// DefaultOptions).
func NewGzipWriter(w io.Writer, opts *Options) (*GzipWriter, error) {
	z, err := NewWriter(w, opts)
	if err != nil {
		return nil, err
	}
	return &GzipWriter{inner: z, out: w}, nil
}

func (g *GzipWriter) writeHeader() error {
	if g.wroteHead {
		return nil
	}
	header := [10]byte{0x1f, 0x8b, 8, 0, 0, 0, 0, 0, 0, 0xff}
	if _, err := g.out.Write(header[:]); err != nil {
		return err
	}
	g.wroteHead = true
	return nil
}

// Write compresses p, updating the gzip trailer's running CRC-32 and size.
func (g *GzipWriter) Write(p []byte) (int, error) {
	if err := g.writeHeader(); err != nil {
		return 0, err
	}
	n, err := g.inner.Write(p)
	g.crc = crc32.Update(g.crc, crc32.IEEETable, p[:n])
	g.size += uint32(n)
	return n, err
}

// Close finishes the deflate stream and appends the gzip trailer.
func (g *GzipWriter) Close() error {
	if err := g.writeHeader(); err != nil {
		return err
	}
	if err := g.inner.Close(); err != nil {
		return err
	}
	var trailer [8]byte
	binary.LittleEndian.PutUint32(trailer[0:4], g.crc)
	binary.LittleEndian.PutUint32(trailer[4:8], g.size)
	_, err := g.out.Write(trailer[:])
	return err
}
