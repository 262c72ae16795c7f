// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// RFC 1951 format constants: match bounds, alphabet sizes, code-length
// bounds, and the block-header RLE thresholds.

// Match length/distance bounds (spec.md §3 invariants, §4.5).
const (
	minMatch = 3
	maxMatch = 258
)

// Alphabet sizes.
const (
	literals       = 256 // literal byte values 0-255
	lengthCodes    = 29  // length codes 257-285
	litCodes       = literals + 1 + lengthCodes // 286: literals + END_BLOCK + length codes
	distCodes      = 30                         // distance codes 0-29
	blCodes        = 19                         // bit-length alphabet size
	endBlockSymbol = 256
)

// Huffman code-length bounds (spec.md §4.7).
const (
	maxBitsLitDist = 15 // literal/length and distance trees
	maxBitsBL      = 7  // bit-length tree
	heapSize       = 2*litCodes + 1
)

// Bit-length alphabet run-length symbols and thresholds (spec.md §4.8).
const (
	repSameLengths  = 16 // copy previous code length 3-6 times (+2 bits)
	repZeroShort    = 17 // repeat zero length 3-10 times (+3 bits)
	repZeroLong     = 18 // repeat zero length 11-138 times (+7 bits)
	repSameMin      = 3
	repSameMax      = 6
	repZeroShortMin = 3
	repZeroShortMax = 10
	repZeroLongMin  = 11
	repZeroLongMax  = 138
)

// blOrder is the permutation used when transmitting bit-length tree code
// lengths: the most commonly used entries (16,17,18,0) go first and the
// rarely used ones last, so a small HCLEN can omit the trailing zero lengths.
var blOrder = [blCodes]int{16, 17, 18, 0, 8, 7, 9, 6, 10, 5, 11, 4, 12, 3, 13, 2, 14, 1, 15}

// Block-type header values (3-bit header is (btype<<1)|last).
const (
	btypeStored  = 0
	btypeStatic  = 1
	btypeDynamic = 2
)
