// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindow_FillWindowConsumesInputUntilLookaheadOrExhaustion(t *testing.T) {
	w := newWindow(9, 4) // small window, easy to reason about
	data := bytes.Repeat([]byte("x"), 100)
	w.setInput(data)
	w.fillWindow()

	require.Equal(t, 100, w.lookahead)
	require.Equal(t, 0, w.remainingInput())
}

func TestWindow_InsertStringBuildsChain(t *testing.T) {
	w := newWindow(9, 4)
	data := []byte("abcabcabc")
	w.setInput(data)
	w.fillWindow()
	w.primeHash(0)

	var lastHead int32
	for i := 0; i < 3; i++ {
		lastHead = w.insertString(i)
	}
	require.Equal(t, int32(hashNil), lastHead)

	// "abc" repeats at position 3 and 6; inserting position 3 should chain
	// back to position 0 (same 3-byte hash).
	head := w.insertString(3)
	require.Equal(t, int32(0), head)
}

func TestWindow_SlideRebasesCursorsAndHash(t *testing.T) {
	w := newWindow(9, 4)
	wSize := w.wSize
	data := bytes.Repeat([]byte{0x42}, wSize+50)
	w.setInput(data)
	w.fillWindow()

	preSlideStart := w.strStart
	// Force enough symbol advancement to push strStart past the slide
	// threshold, the way the driver would via repeated insertString/advance.
	w.strStart = wSize + (wSize - minLookahead)
	w.head[0] = int32(wSize + 5)
	w.prev[0] = int32(wSize + 3)

	w.slide()

	require.Equal(t, wSize+(wSize-minLookahead)-wSize, w.strStart)
	require.Equal(t, int32(5), w.head[0])
	require.Equal(t, int32(3), w.prev[0])
	require.Less(t, preSlideStart, wSize+1) // sanity: started below the window
}

func TestWindow_ResetClearsState(t *testing.T) {
	w := newWindow(9, 4)
	w.setInput([]byte("hello"))
	w.fillWindow()
	require.NotZero(t, w.lookahead)

	w.reset()
	require.Zero(t, w.lookahead)
	require.Zero(t, w.strStart)
	require.Zero(t, w.blockStart)
	for _, h := range w.head {
		require.Equal(t, int32(hashNil), h)
	}
}

func TestAcquireReleaseWindow_PoolsDefaultConfigOnly(t *testing.T) {
	w1 := acquireWindow(15, 8)
	releaseWindow(w1)
	w2 := acquireWindow(15, 8)
	require.Same(t, w1, w2)
	releaseWindow(w2)

	w3 := acquireWindow(10, 3)
	require.NotSame(t, w1, w3)
}
