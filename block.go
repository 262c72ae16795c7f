// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Block Emitter (spec.md §4.8): picks between stored, static-Huffman and
// dynamic-Huffman block encodings by comparing their bit costs, then writes
// the chosen block's header and symbol stream through the Bit Sink. The
// bit-length-alphabet RLE scan/send pair mirrors the teacher's
// adjustMatchForOffsetClass in spirit (choosing the cheapest of several
// encodings for the same data) even though the mechanics are deflate's own.

type blSymbol struct {
	sym   uint8
	extra uint16
}

// scanTree RLE-encodes a code-length array (spec.md §4.8 step 2) into the
// bit-length alphabet (symbols 0-15 literal, 16/17/18 run-length), returning
// the symbol stream and the frequency table the BL tree is built from.
func scanTree(lens []uint8, maxCode int) ([]blSymbol, [blCodes]uint16) {
	var freq [blCodes]uint16
	var out []blSymbol

	prevLen := -1
	nextLen := int(lens[0])
	count := 0
	maxCount := 7
	minCount := 4
	if nextLen == 0 {
		maxCount = 138
		minCount = 3
	}

	for n := 0; n <= maxCode; n++ {
		curLen := nextLen
		if n+1 <= maxCode {
			nextLen = int(lens[n+1])
		} else {
			nextLen = -1
		}
		count++

		switch {
		case count < maxCount && curLen == nextLen:
			continue
		case count < minCount:
			freq[curLen] += uint16(count)
			for ; count > 0; count-- {
				out = append(out, blSymbol{sym: uint8(curLen)})
			}
		case curLen != 0:
			if curLen != prevLen {
				freq[curLen]++
				out = append(out, blSymbol{sym: uint8(curLen)})
				count--
			}
			freq[repSameLengths]++
			out = append(out, blSymbol{sym: repSameLengths, extra: uint16(count - 3)})
		case count <= 10:
			freq[repZeroShort]++
			out = append(out, blSymbol{sym: repZeroShort, extra: uint16(count - 3)})
		default:
			freq[repZeroLong]++
			out = append(out, blSymbol{sym: repZeroLong, extra: uint16(count - 11)})
		}

		count = 0
		prevLen = curLen
		switch {
		case nextLen == 0:
			maxCount, minCount = 138, 3
		case curLen == nextLen:
			maxCount, minCount = 6, 3
		default:
			maxCount, minCount = 7, 4
		}
	}
	return out, freq
}

// sendTreeSymbols emits a scanned RLE symbol stream through the already
// built bit-length tree.
func sendTreeSymbols(bits *bitSink, syms []blSymbol, blTree *huffTree) {
	for _, s := range syms {
		bits.sendBits(blTree.codes[s.sym], int(blTree.lens[s.sym]))
		if extra := extraBLBits[s.sym]; extra > 0 {
			bits.sendBits(s.extra, int(extra))
		}
	}
}

// blHeaderCount returns HCLEN: the number of bit-length codes to transmit,
// found by walking blOrder backwards past trailing zero-length entries but
// never going below 4 (spec.md §4.8 step 2).
func blHeaderCount(blTree *huffTree) int {
	i := blCodes - 1
	for i > 3 {
		if blTree.lens[blOrder[i]] != 0 {
			break
		}
		i--
	}
	return i + 1
}

// dynamicTreeCost computes the total bit cost of a dynamic block: the tree
// header plus the symbol stream encoded with ltree/dtree, used to compare
// against the static and stored encodings (spec.md §4.8 step 1).
func dynamicTreeCost(lb *literalBuffer, ltree, dtree *huffTree, lSyms, dSyms []blSymbol, blTree *huffTree) int {
	hclen := blHeaderCount(blTree)
	cost := 5 + 5 + 4 + 3*hclen

	for _, s := range lSyms {
		cost += int(blTree.lens[s.sym])
	}
	for _, s := range dSyms {
		cost += int(blTree.lens[s.sym])
	}
	cost += extraBitsForRunSymbols(lSyms) + extraBitsForRunSymbols(dSyms)

	cost += symbolStreamBits(lb, ltree.lens, dtree.lens)
	return cost
}

func extraBitsForRunSymbols(syms []blSymbol) int {
	n := 0
	for _, s := range syms {
		n += int(extraBLBits[s.sym])
	}
	return n
}

// symbolStreamBits totals the bits needed to send the block's literal and
// match symbols, including length/distance extra bits, under a given pair
// of tree lengths. Used both for cost comparison (static vs dynamic) and
// would match what sendCompressedData actually writes.
func symbolStreamBits(lb *literalBuffer, ltreeLen, dtreeLen []uint8) int {
	cost := 0
	for sym, f := range lb.litFreq {
		if f == 0 {
			continue
		}
		cost += int(f) * int(ltreeLen[sym])
		if sym > literals {
			code := sym - (literals + 1)
			cost += int(f) * int(extraLengthBits[code])
		}
	}
	for sym, f := range lb.distFreq {
		if f == 0 {
			continue
		}
		cost += int(f) * int(dtreeLen[sym])
		cost += int(f) * int(extraDistBits[sym])
	}
	return cost
}

// sendCompressedData writes the block's literal/match/distance stream
// followed by END_BLOCK, under the given trees (spec.md §4.8 step 3).
func sendCompressedData(bits *bitSink, lb *literalBuffer, ltree, dtree *huffTree) {
	for i := 0; i < lb.lastLit; i++ {
		dist := lb.dBuf[i]
		if dist == 0 {
			c := lb.lBuf[i]
			bits.sendBits(ltree.codes[c], int(ltree.lens[c]))
			continue
		}

		lc := int(lb.lBuf[i])
		code := lengthCode[lc]
		sym := literals + 1 + int(code)
		bits.sendBits(ltree.codes[sym], int(ltree.lens[sym]))
		if extra := extraLengthBits[code]; extra > 0 {
			val := uint16(lc) - baseLength[code]
			bits.sendBits(val, int(extra))
		}

		ds := distSymbol(int(dist))
		bits.sendBits(dtree.codes[ds], int(dtree.lens[ds]))
		if extra := extraDistBits[ds]; extra > 0 {
			val := dist - baseDist[ds]
			bits.sendBits(val, int(extra))
		}
	}
	bits.sendBits(ltree.codes[endBlockSymbol], int(ltree.lens[endBlockSymbol]))
}

// sendStoredBlock writes a BTYPE=00 block: header, byte-aligned LEN/NLEN,
// then the raw bytes verbatim (spec.md §4.8, stored blocks).
func sendStoredBlock(bits *bitSink, data []byte, last bool) {
	sendBlockHeader(bits, btypeStored, last)
	bits.alignToByte()

	n := uint16(len(data))
	bits.sendByte(byte(n))
	bits.sendByte(byte(n >> 8))
	nlen := ^n
	bits.sendByte(byte(nlen))
	bits.sendByte(byte(nlen >> 8))
	bits.pending = append(bits.pending, data...)
}

func sendBlockHeader(bits *bitSink, btype int, last bool) {
	var lastBit uint16
	if last {
		lastBit = 1
	}
	bits.sendBits(lastBit|uint16(btype<<1), 3)
}

// emitBlock chooses the cheapest of stored/static/dynamic encodings for the
// symbols tallied in lb (backed by the raw bytes in raw) and writes it
// (spec.md §4.8 step 1, the block-type selection invariant). StrategyFixed
// and an empty block always get a static block; under StrategyHuffmanOnly
// and StrategyRLE only static and dynamic are compared, never stored.
func emitBlock(bits *bitSink, lb *literalBuffer, raw []byte, last bool, strategy Strategy) {
	storedBits := 32 + 8*len(raw)

	if strategy == StrategyFixed || lb.empty() {
		emitStaticBlock(bits, lb, last)
		return
	}

	staticBits := 5*8 + symbolStreamBits(lb, staticLTreeLen[:], staticDTreeLen[:])

	ltree := buildTree(lb.litFreq[:], litCodes, maxBitsLitDist)
	dtree := buildTree(lb.distFreq[:], distCodes, maxBitsLitDist)

	lSyms, lFreq := scanTree(ltree.lens[:ltree.maxCode+1], ltree.maxCode)
	dSyms, dFreq := scanTree(dtree.lens[:dtree.maxCode+1], dtree.maxCode)
	var blFreq [blCodes]uint16
	for i := range blFreq {
		blFreq[i] = lFreq[i] + dFreq[i]
	}
	blTree := buildTree(blFreq[:], blCodes, maxBitsBL)

	dynamicBits := dynamicTreeCost(lb, ltree, dtree, lSyms, dSyms, blTree)

	if strategy != StrategyHuffmanOnly && strategy != StrategyRLE && storedBits <= dynamicBits && storedBits <= staticBits {
		sendStoredBlock(bits, raw, last)
		return
	}

	if staticBits <= dynamicBits {
		emitStaticBlock(bits, lb, last)
		return
	}

	sendBlockHeader(bits, btypeDynamic, last)
	bits.sendBits(uint16(ltree.maxCode+1-257), 5)
	hdist := dtree.maxCode + 1
	if hdist < 1 {
		hdist = 1
	}
	bits.sendBits(uint16(hdist-1), 5)
	hclen := blHeaderCount(blTree)
	bits.sendBits(uint16(hclen-4), 4)
	for i := 0; i < hclen; i++ {
		bits.sendBits(uint16(blTree.lens[blOrder[i]]), 3)
	}
	sendTreeSymbols(bits, lSyms, blTree)
	sendTreeSymbols(bits, dSyms, blTree)
	sendCompressedData(bits, lb, ltree, dtree)
}

func emitStaticBlock(bits *bitSink, lb *literalBuffer, last bool) {
	sendBlockHeader(bits, btypeStatic, last)
	static := &huffTree{lens: staticLTreeLen[:], codes: staticLTreeCode[:]}
	staticD := &huffTree{lens: staticDTreeLen[:], codes: staticDTreeCode[:]}
	sendCompressedData(bits, lb, static, staticD)
}
