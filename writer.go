// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import "io"

// Writer is a streaming deflate (RFC 1951) encoder. It implements io.Writer;
// compressed output is written to the underlying io.Writer as input is
// consumed and blocks fill, the way the teacher's lzoCompressor drives
// output incrementally rather than buffering a whole-input result.
type Writer struct {
	out  io.Writer
	opts Options

	params levelParams
	win    *window
	lit    *literalBuffer
	bits   bitSink

	matchLength    int
	matchStart     int
	prevLength     int
	prevMatch      int
	matchAvailable bool

	dataType DataType
	closed   bool
}

// NewWriter creates a Writer with the given options, writing compressed
// output to w. A nil Options uses DefaultOptions.
func NewWriter(w io.Writer, opts *Options) (*Writer, error) {
	o := *DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	z := &Writer{
		out:         w,
		opts:        o,
		params:      fixedLevels[o.Level],
		win:         acquireWindow(o.WindowBits, o.MemLevel),
		lit:         newLiteralBuffer(o.MemLevel),
		matchLength: minMatch - 1,
		dataType:    DataTypeUnknown,
	}
	return z, nil
}

// Write compresses p, buffering any portion that doesn't yet fill a block.
// It always consumes all of p or returns a non-nil error.
func (z *Writer) Write(p []byte) (int, error) {
	if z.closed {
		return 0, ErrClosed
	}

	total := 0
	for total < len(p) {
		z.win.setInput(p[total:])
		z.run(NoFlush)
		consumed := z.win.inputPos
		total += consumed

		if err := z.drainOutput(); err != nil {
			return total, err
		}
		if consumed == 0 {
			return total, ErrBuffer
		}
	}
	return total, nil
}

// Close flushes any remaining input as the final block and releases the
// Writer's window back to its pool. After Close, the Writer must not be
// used except via Reset.
func (z *Writer) Close() error {
	var err error
	if !z.closed {
		err = z.finish()
	}
	if z.win != nil {
		releaseWindow(z.win)
		z.win = nil
	}
	return err
}

// Reset discards all state and prepares the Writer to compress a fresh
// stream to w, reusing its window and literal buffer allocations.
func (z *Writer) Reset(w io.Writer) {
	z.out = w
	if z.win == nil {
		z.win = acquireWindow(z.opts.WindowBits, z.opts.MemLevel)
	} else {
		z.win.reset()
	}
	z.lit.reset()
	z.bits = bitSink{}
	z.matchLength = minMatch - 1
	z.matchStart = 0
	z.prevLength = 0
	z.prevMatch = 0
	z.matchAvailable = false
	z.dataType = DataTypeUnknown
	z.closed = false
}

// SetDictionary preloads the window with dict as compression history
// without emitting any output for it. It must be called before the first
// Write after NewWriter or Reset.
func (z *Writer) SetDictionary(dict []byte) error {
	if z.win.strStart != 0 || z.win.lookahead != 0 || !z.lit.empty() {
		return ErrConfig
	}
	if len(dict) == 0 {
		return nil
	}

	limit := z.win.wSize - minLookahead
	if len(dict) > limit {
		dict = dict[len(dict)-limit:]
	}

	n := copy(z.win.data, dict)
	if n >= minMatch {
		z.win.primeHash(0)
		for i := 0; i < n-minMatch; i++ {
			z.win.insertString(i)
		}
	}
	z.win.strStart = n
	z.win.blockStart = n
	return nil
}

// DataType reports the TEXT/BINARY classification of the data seen so far
// (spec.md §4.6 supplement), sticky once determined.
func (z *Writer) DataType() DataType {
	if z.dataType != DataTypeUnknown {
		return z.dataType
	}
	return detectDataType(z.lit.litFreq[:])
}

func (z *Writer) drainOutput() error {
	if len(z.bits.pending) == 0 {
		return nil
	}
	_, err := z.out.Write(z.bits.pending)
	z.bits.pending = z.bits.pending[:0]
	return err
}
