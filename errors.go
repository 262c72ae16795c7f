// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for the encoder. DEFLATE itself cannot reject input (any
// byte sequence is valid), so the only error surfaces are bad configuration
// at construction, transient buffer pressure, and internal invariant
// violations that indicate a bug rather than bad input.
var (
	// ErrConfig is returned when NewWriter is given invalid parameters
	// (level, windowBits, or memLevel out of range).
	ErrConfig = errors.New("deflate: invalid configuration")

	// ErrBuffer is returned when a single internal step could consume no
	// input and produce no output. Callers of this package should not
	// observe it in practice: Writer always drains pending output into its
	// wrapped io.Writer, so progress is always possible. It exists for
	// parity with spec.md's BufferError and for internal step accounting.
	ErrBuffer = errors.New("deflate: no progress possible, need more input or output space")

	// ErrStreamInvariant is the sentinel wrapped by internal invariant
	// violations (a corrupted hash chain, an out-of-range Huffman code
	// length, an overflowed literal buffer). Unreachable in a correct
	// implementation; treat as fatal. Use errors.Is against this sentinel,
	// not against the wrapped error returned from internal functions.
	ErrStreamInvariant = errors.New("deflate: internal invariant violated")

	// ErrClosed is returned by Write/Flush after Close has run.
	ErrClosed = errors.New("deflate: write after close")
)

// streamError wraps ErrStreamInvariant with a stack trace via pkg/errors so
// logs retain a trace while errors.Is(err, ErrStreamInvariant) still holds
// for callers.
func streamError(context string) error {
	return pkgerrors.Wrap(ErrStreamInvariant, context)
}
