// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Flush executes the given FlushMode (spec.md §4.9): it drives the Stream
// Driver over whatever input has been buffered, then performs the flush
// mode's own finalization (block boundary, byte alignment, sync marker, or
// hash reset) before draining to the underlying writer.
func (z *Writer) Flush(mode FlushMode) error {
	if z.closed {
		return ErrClosed
	}

	switch mode {
	case NoFlush:
		z.run(mode)

	case BlockFlush:
		z.run(mode)
		z.flushBlock(false)

	case PartialFlush:
		z.run(mode)
		z.flushBlock(false)
		z.bits.flushBits()

	case SyncFlush:
		z.run(mode)
		z.flushBlock(false)
		sendStoredBlock(&z.bits, nil, false)

	case FullFlush:
		z.run(mode)
		z.flushBlock(false)
		sendStoredBlock(&z.bits, nil, false)
		z.win.resetHash()

	case Finish:
		return z.finish()

	default:
		return ErrConfig
	}

	return z.drainOutput()
}

// flushBlock hands the tallied symbols and their backing raw bytes to the
// Block Emitter, updates the sticky data-type classification, and resets
// the Literal Buffer for the next block.
func (z *Writer) flushBlock(last bool) {
	raw := z.win.data[z.win.blockStart:z.win.strStart]
	if z.opts.Level == 0 {
		sendStoredBlock(&z.bits, raw, last)
	} else {
		emitBlock(&z.bits, z.lit, raw, last, z.opts.Strategy)
	}

	if z.dataType == DataTypeUnknown {
		z.dataType = detectDataType(z.lit.litFreq[:])
	}

	z.win.blockStart = z.win.strStart
	z.lit.reset()
}

// finish drains all remaining input and emits the final block (BFINAL=1),
// then byte-aligns the stream. Idempotent after the first call.
func (z *Writer) finish() error {
	if z.closed {
		return nil
	}
	z.run(Finish)
	z.flushBlock(true)
	z.bits.alignToByte()
	z.closed = true
	return z.drainOutput()
}
