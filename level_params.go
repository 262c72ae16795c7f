// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// levelParams holds the Match Finder tuning for one compression level.
// All fields are unexported; the type is used only inside the package.
type levelParams struct {
	goodMatch uint // once a match of this length or longer is found, maxChain is halved
	maxLazy   uint // lazy matching stops once a match at least this long is found
	niceMatch uint // any match at least this long terminates the search immediately
	maxChain  uint // maximum hash-chain probe depth
	useLazy   bool // evaluate the position one byte ahead before committing to a match
}

// fixedLevels defines Match Finder parameters for compression levels 1-9.
// Level 0 bypasses matching entirely (stored blocks only, see the
// level-0 case in driver.go's run() and flush.go's flushBlock).
// Levels 1-3 use a single forward pass (no lazy matching); levels 4-9 add
// lazy matching with progressively larger thresholds, matching spec.md
// §6's level table.
var fixedLevels = [10]levelParams{
	{}, // index 0 unused (level 0 never consults this table)
	{goodMatch: 4, maxLazy: 4, niceMatch: 8, maxChain: 4, useLazy: false},
	{goodMatch: 4, maxLazy: 5, niceMatch: 16, maxChain: 8, useLazy: false},
	{goodMatch: 4, maxLazy: 6, niceMatch: 32, maxChain: 32, useLazy: false},
	{goodMatch: 4, maxLazy: 4, niceMatch: 16, maxChain: 16, useLazy: true},
	{goodMatch: 8, maxLazy: 16, niceMatch: 32, maxChain: 32, useLazy: true},
	{goodMatch: 8, maxLazy: 16, niceMatch: 128, maxChain: 128, useLazy: true},
	{goodMatch: 8, maxLazy: 32, niceMatch: 128, maxChain: 256, useLazy: true},
	{goodMatch: 32, maxLazy: 128, niceMatch: maxMatch, maxChain: 1024, useLazy: true},
	{goodMatch: 32, maxLazy: maxMatch, niceMatch: maxMatch, maxChain: 4096, useLazy: true},
}
