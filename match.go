// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// Match Finder (spec.md §4.5): walks the hash chain built by the Sliding
// Window, bounded by the level's goodMatch/niceMatch/maxChain tunables, and
// returns the longest match found. The chain-walk shape and the "quick
// reject before full compare" trick are grounded in the teacher's
// advanceMatchFinder/findBestMatch pairing, adapted from LZO's fixed M2/M3/M4
// offset classes to deflate's single hash-chain search.

// matchLenAt returns the number of bytes data[a:] and data[b:] agree on, up
// to limit.
func matchLenAt(data []byte, a, b, limit int) int {
	if m := len(data) - a; m < limit {
		limit = m
	}
	if m := len(data) - b; m < limit {
		limit = m
	}
	n := 0
	for n < limit && data[a+n] == data[b+n] {
		n++
	}
	return n
}

// longestMatch walks the hash chain starting at curMatch looking for a run
// longer than startLen (the length already found by a previous, cheaper
// candidate — 0 if none). maxChain bounds how many chain links are visited;
// niceMatch stops the search early once a long enough match is found.
// Returns (0, 0) if nothing beats startLen.
func longestMatch(w *window, curMatch int32, startLen, niceMatch, maxChain int) (matchLen, matchStart int) {
	limit := 0
	if w.strStart > w.wSize-minLookahead {
		limit = w.strStart - (w.wSize - minLookahead)
	}

	limitBytes := maxMatch
	if w.lookahead < limitBytes {
		limitBytes = w.lookahead
	}
	if niceMatch > limitBytes {
		niceMatch = limitBytes
	}

	bestLen := startLen
	bestStart := 0
	chain := maxChain
	cur := curMatch

	for chain > 0 && int(cur) > limit {
		if bestLen > 0 {
			// Quick reject: the byte one past the current best length must
			// match before a full comparison is worth doing.
			end := int(cur) + bestLen
			if end >= len(w.data) || w.data[end] != w.data[w.strStart+bestLen] {
				cur = w.prev[int(cur)&w.wMask]
				chain--
				continue
			}
		}

		l := matchLenAt(w.data, w.strStart, int(cur), limitBytes)
		if l > bestLen {
			bestLen = l
			bestStart = int(cur)
			if l >= niceMatch {
				break
			}
		}

		next := w.prev[int(cur)&w.wMask]
		if next == hashNil && cur != 0 {
			break
		}
		cur = next
		chain--
	}

	if bestStart == 0 && bestLen <= startLen {
		return 0, 0
	}
	return bestLen, bestStart
}

// findMatch is the per-position entry point the Stream Driver calls: it
// derives the chain-length cutoff from goodMatch (a long prevLength means
// searching less aggressively pays off, per spec.md §4.5) and niceMatch from
// the level params, then delegates to longestMatch.
func findMatch(w *window, params levelParams, curMatch int32, prevLength int) (matchLen, matchStart int) {
	if curMatch == hashNil {
		return 0, 0
	}

	chain := int(params.maxChain)
	if prevLength >= int(params.goodMatch) {
		chain >>= 1
	}
	if chain == 0 {
		chain = 1
	}

	return longestMatch(w, curMatch, prevLength, int(params.niceMatch), chain)
}

// rleMatch implements the RLE strategy's restricted search (spec.md §4.5
// Strategy variants): only distance 1 is considered, so the match is just
// the length of the run of the single byte preceding strStart.
func rleMatch(w *window) (matchLen, matchStart int) {
	if w.strStart == 0 {
		return 0, 0
	}
	limitBytes := maxMatch
	if w.lookahead < limitBytes {
		limitBytes = w.lookahead
	}
	l := matchLenAt(w.data, w.strStart, w.strStart-1, limitBytes)
	if l < minMatch {
		return 0, 0
	}
	return l, w.strStart - 1
}
