// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Bit Sink (spec.md §4.1): accumulates sub-byte codes into a byte stream
// with LSB-first packing. sendBits is a hot inner loop; biBuf/biValid are
// kept as plain struct fields rather than behind an interface so the
// compiler can keep them in registers across calls.
type bitSink struct {
	pending []byte // completed output bytes, drained by the caller
	biBuf   uint16 // bit accumulator, valid bits are in the low biValid bits
	biValid int    // number of valid bits in biBuf, always < 16
}

// sendBits packs value's low length bits (length in [1,16]) into the
// accumulator, spilling completed bytes to pending as needed.
func (b *bitSink) sendBits(value uint16, length int) {
	if b.biValid >= 16-length {
		b.biBuf |= value << uint(b.biValid)
		b.pending = append(b.pending, byte(b.biBuf), byte(b.biBuf>>8))
		b.biBuf = value >> uint(16-b.biValid)
		b.biValid += length - 16
		return
	}

	b.biBuf |= value << uint(b.biValid)
	b.biValid += length
}

// flushBits writes any full bytes currently in the accumulator, leaving at
// most 7 residual bits unwritten and unpadded in biBuf/biValid.
func (b *bitSink) flushBits() {
	if b.biValid >= 8 {
		b.pending = append(b.pending, byte(b.biBuf))
		b.biBuf >>= 8
		b.biValid -= 8
	}
}

// alignToByte flushes any full bytes, then pads the residual bits (if any)
// with zero and writes them, used before stored blocks and at Finish.
func (b *bitSink) alignToByte() {
	b.flushBits()
	if b.biValid > 0 {
		b.pending = append(b.pending, byte(b.biBuf))
		b.biBuf = 0
		b.biValid = 0
	}
}

// sendByte appends one raw byte directly to pending, bypassing the bit
// accumulator. Only valid immediately after alignToByte.
func (b *bitSink) sendByte(v byte) {
	b.pending = append(b.pending, v)
}
