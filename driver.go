// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Stream Driver (spec.md §4.9): the main compression loop. Feeds the
// Sliding Window, runs the Match Finder per position (lazy matching for
// levels that use it, immediate accept otherwise, plus the Strategy
// variants), tallies into the Literal Buffer, and triggers the Block
// Emitter when a block fills or a flush is requested. Grounded in the
// teacher's advanceMatchFinder driving loop, generalized from LZO's
// skip/accept bookkeeping to deflate's lazy one-byte-lookback scheme.

const maxDistLimit = 1 << 15 // largest representable deflate distance

// runLazy implements the lazy-matching algorithm used by levels with
// params.useLazy set: a candidate match is held back one position so a
// longer match starting one byte later can preempt it.
func (z *Writer) runLazy(flush FlushMode) {
	for {
		if z.win.lookahead < minLookahead {
			before := z.win.strStart
			z.win.fillWindow()
			// A slide rebases strStart; the held match position moves with it.
			z.matchStart -= before - z.win.strStart
			if z.win.lookahead < minLookahead && flush == NoFlush {
				return
			}
			if z.win.lookahead == 0 {
				break
			}
		}

		var hashHead int32
		if z.win.lookahead >= minMatch {
			hashHead = z.win.insertString(z.win.strStart)
		}

		z.prevLength = z.matchLength
		z.prevMatch = z.matchStart
		z.matchLength = minMatch - 1

		if hashHead != hashNil && z.prevLength < int(z.params.maxLazy) &&
			z.win.strStart-int(hashHead) <= maxDistLimit {
			ml, ms := findMatch(z.win, z.params, hashHead, z.prevLength)
			z.matchLength = ml
			z.matchStart = ms
			if z.matchLength <= 5 && (z.opts.Strategy == StrategyFiltered ||
				(z.matchLength == minMatch && z.win.strStart-z.matchStart > 4096)) {
				z.matchLength = minMatch - 1
			}
		}

		if z.prevLength >= minMatch && z.matchLength <= z.prevLength {
			maxInsert := z.win.strStart + z.win.lookahead - minMatch
			z.tallyMatch(z.win.strStart-1-z.prevMatch, z.prevLength)

			z.win.lookahead -= z.prevLength - 1
			z.prevLength -= 2
			for {
				z.win.strStart++
				if z.win.strStart <= maxInsert {
					z.win.insertString(z.win.strStart)
				}
				z.prevLength--
				if z.prevLength == 0 {
					break
				}
			}
			z.matchAvailable = false
			z.matchLength = minMatch - 1
			z.win.strStart++

			if z.lit.full() || z.win.blockTooLarge() {
				z.flushBlock(false)
			}
			continue
		}

		if z.matchAvailable {
			z.tallyLit(z.win.data[z.win.strStart-1])
			if z.lit.full() || z.win.blockTooLarge() {
				z.flushBlock(false)
			}
			z.win.strStart++
			z.win.lookahead--
			continue
		}

		z.matchAvailable = true
		z.win.strStart++
		z.win.lookahead--
	}

	if z.matchAvailable {
		z.tallyLit(z.win.data[z.win.strStart-1])
		z.matchAvailable = false
	}
}

// runFast implements the immediate-accept algorithm used by levels with
// params.useLazy unset: the first match found at a position is taken
// without checking whether the next position has a better one.
func (z *Writer) runFast(flush FlushMode) {
	for {
		if z.win.lookahead < minLookahead {
			z.win.fillWindow()
			if z.win.lookahead < minLookahead && flush == NoFlush {
				return
			}
			if z.win.lookahead == 0 {
				break
			}
		}

		var hashHead int32
		if z.win.lookahead >= minMatch {
			hashHead = z.win.insertString(z.win.strStart)
		}

		matchLength, matchStart := 0, 0
		if hashHead != hashNil && z.win.strStart-int(hashHead) <= maxDistLimit {
			matchLength, matchStart = findMatch(z.win, z.params, hashHead, minMatch-1)
		}
		if matchLength <= 5 && z.opts.Strategy == StrategyFiltered {
			matchLength = 0
		}

		if matchLength >= minMatch {
			z.tallyMatch(z.win.strStart-matchStart, matchLength)

			maxInsert := z.win.strStart + z.win.lookahead - minMatch
			z.win.lookahead -= matchLength
			insertUpTo := matchLength - 1
			if insertUpTo > 0 {
				for i := 0; i < insertUpTo; i++ {
					z.win.strStart++
					if z.win.strStart <= maxInsert {
						z.win.insertString(z.win.strStart)
					}
				}
			}
			z.win.strStart++

			if z.lit.full() || z.win.blockTooLarge() {
				z.flushBlock(false)
			}
			continue
		}

		z.tallyLit(z.win.data[z.win.strStart])
		z.win.strStart++
		z.win.lookahead--
		if z.lit.full() || z.win.blockTooLarge() {
			z.flushBlock(false)
		}
	}
}

// runRLE implements the RLE strategy: only distance-1 matches are
// considered (spec.md §4.5 Strategy variants).
func (z *Writer) runRLE(flush FlushMode) {
	for {
		if z.win.lookahead < minLookahead {
			z.win.fillWindow()
			if z.win.lookahead < minLookahead && flush == NoFlush {
				return
			}
			if z.win.lookahead == 0 {
				break
			}
		}

		matchLength, matchStart := rleMatch(z.win)
		if matchLength >= minMatch {
			z.tallyMatch(z.win.strStart-matchStart, matchLength)
			z.win.strStart += matchLength
			z.win.lookahead -= matchLength
		} else {
			z.tallyLit(z.win.data[z.win.strStart])
			z.win.strStart++
			z.win.lookahead--
		}

		if z.lit.full() || z.win.blockTooLarge() {
			z.flushBlock(false)
		}
	}
}

// runHuffmanOnly implements the huffmanOnly strategy: every byte is a
// literal, skipping the Match Finder entirely (spec.md §4.5).
func (z *Writer) runHuffmanOnly(flush FlushMode) {
	for {
		if z.win.lookahead == 0 {
			z.win.fillWindow()
			if z.win.lookahead == 0 {
				if flush == NoFlush {
					return
				}
				break
			}
		}

		z.tallyLit(z.win.data[z.win.strStart])
		z.win.strStart++
		z.win.lookahead--
		if z.lit.full() || z.win.blockTooLarge() {
			z.flushBlock(false)
		}
	}
}

func (z *Writer) tallyLit(c byte) {
	z.lit.tallyLit(c)
}

func (z *Writer) tallyMatch(dist, length int) {
	z.lit.tallyMatch(dist, length)
}

// run dispatches to the strategy-specific loop.
func (z *Writer) run(flush FlushMode) {
	switch {
	case z.opts.Level == 0:
		// Level 0 never searches for matches; flushBlock forces every
		// block to be emitted stored regardless of what gets tallied here.
		z.runHuffmanOnly(flush)
	case z.opts.Strategy == StrategyHuffmanOnly:
		z.runHuffmanOnly(flush)
	case z.opts.Strategy == StrategyRLE:
		z.runRLE(flush)
	case z.params.useLazy:
		z.runLazy(flush)
	default:
		z.runFast(flush)
	}
}
