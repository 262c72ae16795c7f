// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Strategy selects the match-acceptance policy used by the Match Finder.
type Strategy int

const (
	// StrategyDefault adds no restriction of its own. At levels 4-9 it uses
	// lazy matching: a match is deferred by one byte if the next position
	// offers a strictly longer one. Levels 1-3 take the first match found.
	StrategyDefault Strategy = iota
	// StrategyFiltered only accepts matches of length >= 6, favoring small
	// repeats over long back-references. Intended for filtered data such
	// as PNG scanlines.
	StrategyFiltered
	// StrategyHuffmanOnly never searches for matches; every byte is coded
	// as a literal.
	StrategyHuffmanOnly
	// StrategyRLE restricts match distance to 1, trading ratio for a much
	// cheaper match finder.
	StrategyRLE
	// StrategyFixed forces every block to use the static Huffman trees
	// (BTYPE=01), skipping dynamic-tree construction entirely.
	StrategyFixed
)

// DataType classifies the literal byte distribution of a closed block.
// Reported to the caller; does not alter the bitstream.
type DataType int

const (
	DataTypeUnknown DataType = iota
	DataTypeText
	DataTypeBinary
)

// Options configures a Writer. A nil Options is equivalent to
// DefaultOptions().
type Options struct {
	// Level is the compression level, 0-9. 0 emits stored blocks only; 1
	// uses fast matching with a short chain and no lazy matching; 4-9 use
	// lazy matching with progressively larger chain/good/nice thresholds.
	Level int

	// WindowBits sets the sliding window size to 2^WindowBits bytes,
	// 9-15.
	WindowBits int

	// MemLevel controls the hash table and literal buffer sizes (log2),
	// 1-9. Higher values trade memory for fewer block flushes and a
	// better hash table.
	MemLevel int

	// Strategy selects the match-acceptance policy.
	Strategy Strategy
}

// DefaultOptions returns the conventional "level 6" configuration: window
// 2^15, mem level 8, default strategy.
func DefaultOptions() *Options {
	return &Options{
		Level:      6,
		WindowBits: 15,
		MemLevel:   8,
		Strategy:   StrategyDefault,
	}
}

// validate checks parameter ranges, returning ErrConfig on the first
// violation.
func (o *Options) validate() error {
	if o.Level < 0 || o.Level > 9 {
		return ErrConfig
	}
	if o.WindowBits < 9 || o.WindowBits > 15 {
		return ErrConfig
	}
	if o.MemLevel < 1 || o.MemLevel > 9 {
		return ErrConfig
	}
	switch o.Strategy {
	case StrategyDefault, StrategyFiltered, StrategyHuffmanOnly, StrategyRLE, StrategyFixed:
	default:
		return ErrConfig
	}
	return nil
}

// FlushMode selects how Flush (or the final Close) drains pending state.
type FlushMode int

const (
	// NoFlush may defer emitting a block indefinitely; used internally by
	// Write.
	NoFlush FlushMode = iota
	// PartialFlush emits the pending block and writes out every complete
	// byte of the bit accumulator, without marking the block last. Up to 7
	// bits stay buffered and no padding is inserted, so the output is not
	// byte-aligned.
	PartialFlush
	// SyncFlush emits the current block, then an empty stored block (00 00
	// FF FF) so a decoder can resynchronize mid-stream.
	SyncFlush
	// FullFlush is SyncFlush plus a hash-table reset, so the decoder can
	// resume without any dictionary context from before the flush.
	FullFlush
	// BlockFlush closes the current block right away, with no byte
	// alignment and no sync marker.
	BlockFlush
	// Finish emits all pending data, marks the final block, and aligns to
	// a byte boundary. Used internally by Close.
	Finish
)
