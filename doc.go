// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

/*
Package deflate implements a streaming RFC 1951 DEFLATE encoder.

The encoder interleaves LZ77 dictionary matching over a sliding window with
dynamic Huffman code construction and bit-packed block emission. It has no
decompressor: pair it with any RFC 1951 compliant inflater (including the
standard library's compress/flate) to round-trip data.

# Writer

Options may be nil (defaults to level 6, window 15, mem level 8, default
strategy):

	w, err := deflate.NewWriter(out, nil)
	w, err := deflate.NewWriter(out, &deflate.Options{Level: 9, WindowBits: 15, MemLevel: 8, Strategy: deflate.StrategyFiltered})

Write accumulates input and emits completed blocks as they become available.
Flush forces a flush boundary without closing the stream; Close finishes the
stream with the last-block marker.

	n, err := w.Write(data)
	err = w.Flush(deflate.SyncFlush)
	err = w.Close()

# Strategies

StrategyDefault uses lazy matching at levels 4-9; StrategyFiltered restricts accepted
matches to length >= 6; StrategyHuffmanOnly never searches for matches;
StrategyRLE restricts match distance to 1; StrategyFixed forces static
Huffman blocks.
*/
package deflate
