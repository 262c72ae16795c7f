// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Literal Buffer (spec.md §4.6): accumulates the literal/length/distance
// symbol stream for one block and tallies the frequency tables the Huffman
// Builder needs, the way the teacher's slidingWindowDict tallies match
// statistics incrementally rather than rescanning the input at flush time.

// litBufSize derives the per-block symbol buffer size from memLevel, the
// same memLevel-scaled relationship the window's hash table uses.
func litBufSize(memLevel int) int {
	return 1 << uint(memLevel+6)
}

type literalBuffer struct {
	dBuf []uint16 // distance of the symbol at this slot, 0 for a literal
	lBuf []uint8  // literal byte, or (length - minMatch) for a match

	litFreq  [litCodes + 2]uint16
	distFreq [distCodes]uint16

	lastLit int
	matches int
}

func newLiteralBuffer(memLevel int) *literalBuffer {
	size := litBufSize(memLevel)
	lb := &literalBuffer{
		dBuf: make([]uint16, size),
		lBuf: make([]uint8, size),
	}
	lb.reset()
	return lb
}

// reset clears the buffer for the next block. END_BLOCK's frequency is
// forced to 1 so every tree the Huffman Builder produces has a code for it,
// satisfying spec.md's invariant that END_BLOCK always has a nonzero count.
func (lb *literalBuffer) reset() {
	for i := range lb.litFreq {
		lb.litFreq[i] = 0
	}
	for i := range lb.distFreq {
		lb.distFreq[i] = 0
	}
	lb.litFreq[endBlockSymbol] = 1
	lb.lastLit = 0
	lb.matches = 0
}

// full reports whether only one slot of the buffer is left (lastLit has
// reached len-1); callers must close out the current block before tallying
// again.
func (lb *literalBuffer) full() bool {
	return lb.lastLit >= len(lb.lBuf)-1
}

// tallyLit records a literal byte. Returns true once the buffer is full.
func (lb *literalBuffer) tallyLit(c byte) bool {
	lb.dBuf[lb.lastLit] = 0
	lb.lBuf[lb.lastLit] = c
	lb.lastLit++
	lb.litFreq[c]++
	return lb.full()
}

// tallyMatch records a length/distance pair. dist is the 1-based match
// distance; length is the full match length (minMatch..maxMatch). Returns
// true once the buffer is full.
func (lb *literalBuffer) tallyMatch(dist, length int) bool {
	lc := length - minMatch
	lb.dBuf[lb.lastLit] = uint16(dist)
	lb.lBuf[lb.lastLit] = uint8(lc)
	lb.lastLit++
	lb.matches++

	code := lengthCode[lc]
	lb.litFreq[literals+1+int(code)]++
	lb.distFreq[distSymbol(dist)]++
	return lb.full()
}

// empty reports whether any symbols have been tallied since the last reset.
func (lb *literalBuffer) empty() bool {
	return lb.lastLit == 0
}
