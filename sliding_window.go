// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Sliding Window + Hash Index (spec.md §4.3, §4.4), combined into one type
// the way the teacher's slidingWindowDict combined ring buffer and hash
// chains: window holds up to 2*wSize bytes of input history and the
// chained hash on 3-byte prefixes used by the Match Finder.

const (
	// minLookahead is the smallest lookahead the Match Finder needs to
	// safely consider a full-length match plus one lazy byte (maxMatch +
	// minMatch + 1, the classic deflate MIN_LOOKAHEAD).
	minLookahead = maxMatch + minMatch + 1

	// hashNil is the sentinel "no earlier occurrence" value. Position 0 is
	// also a legal chain entry; the chain walk simply treats it as the end
	// of the chain too, which is the behavior spec.md §4.3 describes as
	// unambiguous in practice.
	hashNil = 0
)

type window struct {
	data  []byte // ring-free linear buffer, size 2*wSize
	wSize int
	wMask int

	head      []int32 // hash head: 3-byte hash -> most recent position
	prev      []int32 // chain: position -> earlier position with same hash
	hashSize  int
	hashMask  uint32
	hashShift uint

	strStart   int // next byte to hash/match
	blockStart int // start of the current block within data
	lookahead  int // bytes available past strStart
	insHash    uint32

	input    []byte
	inputPos int
}

// newWindow allocates a window sized from windowBits/memLevel, matching
// spec.md §6's tunables (2^windowBits window, memLevel-scaled hash table).
func newWindow(windowBits, memLevel int) *window {
	wSize := 1 << windowBits
	hashBits := memLevel + 7
	hashSize := 1 << hashBits

	w := &window{
		data:      make([]byte, 2*wSize),
		wSize:     wSize,
		wMask:     wSize - 1,
		head:      make([]int32, hashSize),
		prev:      make([]int32, wSize),
		hashSize:  hashSize,
		hashMask:  uint32(hashSize - 1),
		hashShift: uint((hashBits + minMatch - 1) / minMatch),
	}
	return w
}

// reset clears all window state for reuse without reallocating buffers
// (spec.md §3 lifecycle: reset returns to idle without freeing buffers).
func (w *window) reset() {
	for i := range w.head {
		w.head[i] = hashNil
	}
	for i := range w.prev {
		w.prev[i] = hashNil
	}
	w.strStart = 0
	w.blockStart = 0
	w.lookahead = 0
	w.insHash = 0
	w.input = nil
	w.inputPos = 0
}

// setInput attaches a new source slice for fillWindow to drain from.
func (w *window) setInput(p []byte) {
	w.input = p
	w.inputPos = 0
}

// remainingInput reports how many bytes of the attached input have not yet
// been copied into the window.
func (w *window) remainingInput() int {
	return len(w.input) - w.inputPos
}

// updateHash rolls a 3-byte hash forward by one byte.
func updateHash(hashShift uint, hashMask uint32, h uint32, c byte) uint32 {
	return ((h << hashShift) ^ uint32(c)) & hashMask
}

// insertString inserts the 3-byte prefix at pos into the hash chain and
// returns the previous head (the match candidate, or hashNil if none).
func (w *window) insertString(pos int) int32 {
	w.insHash = updateHash(w.hashShift, w.hashMask, w.insHash, w.data[pos+minMatch-1])
	prevHead := w.head[w.insHash]
	w.prev[pos&w.wMask] = prevHead
	w.head[w.insHash] = int32(pos)
	return prevHead
}

// primeHash seeds insHash from the two bytes at pos, pos+1 so the first
// insertString call folds in the third byte correctly.
func (w *window) primeHash(pos int) {
	w.insHash = uint32(w.data[pos])
	w.insHash = updateHash(w.hashShift, w.hashMask, w.insHash, w.data[pos+1])
}

// slide copies the upper wSize bytes down to the base of the buffer,
// rebases all cursors and hash entries by wSize, and clears entries that
// fell below the window (spec.md §4.3). Called by fillWindow when
// strStart approaches the top of the buffer.
func (w *window) slide() {
	copy(w.data[0:w.wSize], w.data[w.wSize:2*w.wSize])

	w.strStart -= w.wSize
	w.blockStart -= w.wSize

	for i := range w.head {
		if int(w.head[i]) >= w.wSize {
			w.head[i] -= int32(w.wSize)
		} else {
			w.head[i] = hashNil
		}
	}
	for i := range w.prev {
		if int(w.prev[i]) >= w.wSize {
			w.prev[i] -= int32(w.wSize)
		} else {
			w.prev[i] = hashNil
		}
	}
}

// fillWindow copies bytes from the attached input into the window until
// lookahead reaches minLookahead or input is exhausted, sliding first if
// the buffer is nearly full (spec.md §4.9 step 1-2).
func (w *window) fillWindow() {
	for w.lookahead < minLookahead {
		if w.strStart >= w.wSize+(w.wSize-minLookahead) {
			w.slide()
		}

		if w.remainingInput() == 0 {
			return
		}

		more := 2*w.wSize - w.lookahead - w.strStart
		n := w.remainingInput()
		if n > more {
			n = more
		}
		if n == 0 {
			return
		}

		copy(w.data[w.strStart+w.lookahead:], w.input[w.inputPos:w.inputPos+n])
		w.inputPos += n
		w.lookahead += n

		if w.lookahead+w.strStart >= minMatch && w.strStart == 0 && w.lookahead == n {
			w.primeHash(0)
		}
	}
}

// blockTooLarge reports whether the current block's raw run (blockStart..
// strStart) has grown to wSize-minLookahead bytes. memLevel can make
// the Literal Buffer's capacity (spec.md §6's memLevel tunable) far exceed
// the window (spec.md §6's windowBits tunable), so the Literal Buffer alone
// cannot be trusted to force a flush before slide() needs to rebase
// blockStart; this is the backstop that guarantees blockStart never slides
// below zero. fillWindow slides only once strStart reaches
// 2*wSize-minLookahead, and a block closed at this size keeps blockStart at
// or above wSize by then.
func (w *window) blockTooLarge() bool {
	return w.strStart-w.blockStart >= w.wSize-minLookahead
}

// resetHash clears the hash chain heads only, used by FullFlush to ensure
// no future match references data before the flush point while keeping the
// window's byte history intact (spec.md §4.9 FullFlush semantics).
func (w *window) resetHash() {
	for i := range w.head {
		w.head[i] = hashNil
	}
}
