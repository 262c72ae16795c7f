// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import "sync"

// windowPool recycles windows built with the default configuration
// (windowBits=15, memLevel=8) — by far the most common case — to avoid
// reallocating the window/hash buffers on every NewWriter/Close cycle.
// Non-default configurations allocate directly since a pooled buffer sized
// for the default config couldn't be reused without resizing anyway.
var windowPool = sync.Pool{
	New: func() any {
		return newWindow(15, 8)
	},
}

// acquireWindow returns a window for the given configuration, reusing a
// pooled instance when the configuration matches the pool's shape.
func acquireWindow(windowBits, memLevel int) *window {
	if windowBits == 15 && memLevel == 8 {
		w := windowPool.Get().(*window)
		w.reset()
		return w
	}
	return newWindow(windowBits, memLevel)
}

// releaseWindow returns a window to the pool if it matches the pool's
// shape; otherwise it is left for the garbage collector.
func releaseWindow(w *window) {
	if w == nil {
		return
	}
	if w.wSize == 1<<15 && len(w.head) == 1<<(8+7) {
		windowPool.Put(w)
	}
}
