// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import "sort"

// Huffman Builder (spec.md §4.7). Builds an optimal canonical Huffman code
// from a frequency table, bounded by a maximum code length, using an
// array + index heap rather than pointer-linked nodes: internal nodes are
// appended past the leaf region of the same arrays, identified by index
// >= elems (spec.md §9 "Cyclic/self-referential trees").

// huffTree is the result of building one Huffman tree: per-symbol bit
// length and canonical (already bit-reversed) code, plus the highest
// symbol index actually used (for HLIT/HDIST-style trimming by callers).
type huffTree struct {
	lens    []uint8
	codes   []uint16
	maxCode int
}

// buildTree builds a canonical Huffman tree over freq[0:elems], bounded by
// maxLength bits. If fewer than two symbols have nonzero frequency, up to
// two dummy symbols of frequency 1 are invented so a valid two-leaf tree
// always exists (DEFLATE requires at least two codes per tree, spec.md
// §4.7 step 1).
func buildTree(freq []uint16, elems, maxLength int) *huffTree {
	size := 2*elems + 1
	dad := make([]int32, size)
	depth := make([]uint8, size)
	nodeFreq := make([]uint32, size)
	for i := 0; i < elems; i++ {
		nodeFreq[i] = uint32(freq[i])
	}

	var heap []int32
	maxCode := -1
	for n := 0; n < elems; n++ {
		if nodeFreq[n] != 0 {
			heap = append(heap, int32(n))
			if n > maxCode {
				maxCode = n
			}
		}
	}

	for len(heap) < 2 {
		var node int32
		if maxCode < 2 {
			maxCode++
			node = int32(maxCode)
		} else {
			node = 0
		}
		nodeFreq[node] = 1
		depth[node] = 0
		heap = append(heap, node)
	}

	heapify(heap, nodeFreq, depth)

	next := elems
	for len(heap) > 1 {
		n := popMin(&heap, nodeFreq, depth)
		m := popMin(&heap, nodeFreq, depth)

		newNode := int32(next)
		next++
		nodeFreq[newNode] = nodeFreq[n] + nodeFreq[m]
		if depth[n] > depth[m] {
			depth[newNode] = depth[n] + 1
		} else {
			depth[newNode] = depth[m] + 1
		}
		dad[n] = newNode
		dad[m] = newNode

		pushNode(&heap, newNode, nodeFreq, depth)
	}

	root := int(heap[0])

	lens := make([]uint8, elems)
	genBitLen(root, elems, dad, nodeFreq, lens, maxLength)

	codes := make([]uint16, elems)
	assignCanonicalCodes(lens, codes, maxLength)

	return &huffTree{lens: lens, codes: codes, maxCode: maxCode}
}

// genBitLen computes each leaf's bit length by walking internal nodes from
// the root downward (root = the highest-index node, since every combine
// step appends a new, higher-indexed parent — processing high-to-low
// guarantees a node's parent length is already known) and redistributes
// any length exceeding maxLength (spec.md §4.7 step 3).
func genBitLen(root, elems int, dad []int32, nodeFreq []uint32, lens []uint8, maxLength int) {
	length := make([]int, len(dad))
	length[root] = 0
	overflow := 0
	blCount := make([]int, maxLength+2)

	type leafInfo struct {
		idx  int
		freq uint32
	}
	var leaves []leafInfo

	// Internal nodes are capped and counted in overflow too, so the repair
	// loop below runs exactly once per unit of excess Kraft sum.
	for n := root - 1; n >= 0; n-- {
		if n < elems && nodeFreq[n] == 0 {
			continue
		}
		bits := length[dad[n]] + 1
		if bits > maxLength {
			bits = maxLength
			overflow++
		}
		length[n] = bits
		if n >= elems {
			continue
		}
		blCount[bits]++
		leaves = append(leaves, leafInfo{idx: n, freq: nodeFreq[n]})
	}

	// Repair: while any length overflowed maxLength, move one leaf down
	// from the deepest non-empty level and compensate by moving one leaf
	// at the shallower level down too, until the counts respect the bound.
	for overflow > 0 {
		bits := maxLength - 1
		for blCount[bits] == 0 {
			bits--
		}
		blCount[bits]--
		blCount[bits+1] += 2
		blCount[maxLength]--
		overflow -= 2
	}

	// Reassign concrete lengths to leaves: lowest-frequency leaves (which
	// would have been deepest in an unbounded tree) get the longest
	// remaining lengths first, which keeps the code close to optimal
	// despite the redistribution.
	sort.SliceStable(leaves, func(i, j int) bool { return leaves[i].freq < leaves[j].freq })

	pos := 0
	for bits := maxLength; bits >= 1; bits-- {
		n := blCount[bits]
		for n > 0 && pos < len(leaves) {
			lens[leaves[pos].idx] = uint8(bits)
			pos++
			n--
		}
	}
}

// assignCanonicalCodes derives canonical codes from already-assigned bit
// lengths: the first code at length L is (firstCode[L-1]+blCount[L-1])<<1,
// then codes within a length increment sequentially (spec.md §4.7 step 4).
// Each code is bit-reversed before storage because the bit sink packs
// LSB-first while DEFLATE transmits codes MSB-first.
func assignCanonicalCodes(lens []uint8, codes []uint16, maxBits int) {
	blCount := make([]int, maxBits+1)
	for _, l := range lens {
		if l > 0 {
			blCount[l]++
		}
	}

	nextCode := make([]uint16, maxBits+1)
	var code uint16
	for bits := 1; bits <= maxBits; bits++ {
		code = (code + uint16(blCount[bits-1])) << 1
		nextCode[bits] = code
	}

	for sym, l := range lens {
		if l == 0 {
			continue
		}
		c := nextCode[l]
		nextCode[l]++
		codes[sym] = bitReverse(c, int(l))
	}
}

// --- minimal binary min-heap over node index, keyed by (freq, depth) ---

func less(nodeFreq []uint32, depth []uint8, a, b int32) bool {
	if nodeFreq[a] != nodeFreq[b] {
		return nodeFreq[a] < nodeFreq[b]
	}
	return depth[a] <= depth[b]
}

func heapify(h []int32, nodeFreq []uint32, depth []uint8) {
	for i := len(h)/2 - 1; i >= 0; i-- {
		siftDown(h, nodeFreq, depth, i)
	}
}

func siftDown(h []int32, nodeFreq []uint32, depth []uint8, i int) {
	n := len(h)
	for {
		l, r := 2*i+1, 2*i+2
		smallest := i
		if l < n && less(nodeFreq, depth, h[l], h[smallest]) {
			smallest = l
		}
		if r < n && less(nodeFreq, depth, h[r], h[smallest]) {
			smallest = r
		}
		if smallest == i {
			return
		}
		h[i], h[smallest] = h[smallest], h[i]
		i = smallest
	}
}

func popMin(h *[]int32, nodeFreq []uint32, depth []uint8) int32 {
	hh := *h
	top := hh[0]
	last := len(hh) - 1
	hh[0] = hh[last]
	hh = hh[:last]
	*h = hh
	siftDown(hh, nodeFreq, depth, 0)
	return top
}

func pushNode(h *[]int32, n int32, nodeFreq []uint32, depth []uint8) {
	hh := append(*h, n)
	i := len(hh) - 1
	for i > 0 {
		parent := (i - 1) / 2
		if less(nodeFreq, depth, hh[i], hh[parent]) {
			hh[i], hh[parent] = hh[parent], hh[i]
			i = parent
		} else {
			break
		}
	}
	*h = hh
}
