// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Static Tables: precomputed fixed Huffman trees for BTYPE=01 blocks,
// length/distance code tables, extra-bit counts and base values for length
// codes 257-285 and distance codes 0-29, and a bit-reversal helper. All of
// this is immutable process-wide state, computed once in init() rather than
// hand-transcribed, so the tables are provably consistent with each other
// (spec.md §9 "Global tables").

// extraLengthBits gives the number of extra bits following each length code
// (257-285, indexed 0-28).
var extraLengthBits = [lengthCodes]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 2, 2,
	3, 3, 3, 3, 4, 4, 4, 4, 5, 5, 5, 5, 0,
}

// baseLength gives the smallest (matchLen - minMatch) value represented by
// each length code, before adding the extra bits' value.
var baseLength = [lengthCodes]uint16{
	0, 1, 2, 3, 4, 5, 6, 7, 8, 10, 12, 14, 16, 20, 24, 28,
	32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 0,
}

// extraDistBits gives the number of extra bits following each distance code
// (0-29).
var extraDistBits = [distCodes]uint8{
	0, 0, 0, 0, 1, 1, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6,
	7, 7, 8, 8, 9, 9, 10, 10, 11, 11, 12, 12, 13, 13,
}

// baseDist gives the smallest distance represented by each distance code,
// before adding the extra bits' value.
var baseDist = [distCodes]uint16{
	1, 2, 3, 4, 5, 7, 9, 13, 17, 25, 33, 49, 65, 97, 129, 193,
	257, 385, 513, 769, 1025, 1537, 2049, 3073, 4097, 6145, 8193, 12289, 16385, 24577,
}

// extraBLBits gives the number of extra bits for bit-length alphabet
// symbols 16-18 (symbols 0-15 carry no extra bits).
var extraBLBits = [blCodes]uint8{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 2, 3, 7,
}

// lengthCode maps (matchLen - minMatch) to its length code (0-28, i.e.
// 257-285 after adding literals+1).
var lengthCode [maxMatch - minMatch + 1]uint8

// distCode maps a 0-based distance bucket to its distance code (0-29).
// Distances 1-256 index directly; distances 257-32768 index via the top
// byte of (dist-1), offset by 256.
var distCode [512]uint8

// staticLTreeLen, staticLTreeCode are the fixed literal/length Huffman tree
// used by BTYPE=01 blocks: bit lengths 8 for symbols 0-143, 9 for 144-255,
// 7 for 256-279, 8 for 280-287 (two unused trailing entries keep the table
// the same shape as the dynamic tree's 286+2 layout).
var staticLTreeLen [litCodes + 2]uint8
var staticLTreeCode [litCodes + 2]uint16

// staticDTreeLen, staticDTreeCode are the fixed distance tree: every code
// is 5 bits, so the codes are simply 0-29 in order (then bit-reversed for
// the bit sink).
var staticDTreeLen [distCodes]uint8
var staticDTreeCode [distCodes]uint16

func init() {
	initLengthCode()
	initDistCode()
	initStaticTrees()
}

// initLengthCode fills lengthCode from baseLength/extraLengthBits: for each
// code, every length it covers (2^extraBits of them) maps back to it.
func initLengthCode() {
	length := 0
	for code := 0; code < lengthCodes-1; code++ {
		span := 1 << extraLengthBits[code]
		for i := 0; i < span; i++ {
			lengthCode[length] = uint8(code)
			length++
		}
	}
	// The final length code (285, extra 0) covers only maxMatch itself;
	// baseLength's trailing 0 entry is a sentinel, not a real base.
	lengthCode[maxMatch-minMatch] = lengthCodes - 1
}

// initDistCode fills distCode the same way, but split into a direct region
// (distances 1-256, 7 bits of precision) and a coarse region (distances
// 257-32768, indexed by the top byte) to keep the table to 512 entries.
func initDistCode() {
	dist := 0
	code := 0
	for ; code < 16; code++ {
		span := 1 << extraDistBits[code]
		for i := 0; i < span; i++ {
			distCode[dist] = uint8(code)
			dist++
		}
	}
	dist >>= 7
	for ; code < distCodes; code++ {
		span := 1 << (extraDistBits[code] - 7)
		for i := 0; i < span; i++ {
			distCode[256+dist] = uint8(code)
			dist++
		}
	}
}

// distSymbol returns the distance code for a 1-based match distance.
func distSymbol(dist int) int {
	d := dist - 1
	if d < 256 {
		return int(distCode[d])
	}
	return int(distCode[256+(d>>7)])
}

// initStaticTrees assigns the fixed BTYPE=01 bit lengths and derives their
// canonical, bit-reversed codes via the same construction the Huffman
// Builder uses for dynamic trees (spec.md §4.7 step 4).
func initStaticTrees() {
	i := 0
	for ; i <= 143; i++ {
		staticLTreeLen[i] = 8
	}
	for ; i <= 255; i++ {
		staticLTreeLen[i] = 9
	}
	for ; i <= 279; i++ {
		staticLTreeLen[i] = 7
	}
	for ; i < litCodes+2; i++ {
		staticLTreeLen[i] = 8
	}
	assignCanonicalCodes(staticLTreeLen[:], staticLTreeCode[:], maxBitsLitDist)

	for i := range staticDTreeLen {
		staticDTreeLen[i] = 5
	}
	assignCanonicalCodes(staticDTreeLen[:], staticDTreeCode[:], maxBitsLitDist)
}

// bitReverse reverses the low n bits of v. DEFLATE Huffman codes are
// described MSB-first but the Bit Sink packs LSB-first, so every code is
// reversed once at construction time (spec.md §4.7 step 4).
func bitReverse(v uint16, n int) uint16 {
	var r uint16
	for i := 0; i < n; i++ {
		r = (r << 1) | (v & 1)
		v >>= 1
	}
	return r
}
