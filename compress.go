// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

import "bytes"

// Compress deflates src in one call. opts may be nil (uses DefaultOptions).
// For streaming input, use NewWriter directly instead.
func Compress(src []byte, opts *Options) ([]byte, error) {
	var buf bytes.Buffer
	buf.Grow(len(src)/2 + 64)

	z, err := NewWriter(&buf, opts)
	if err != nil {
		return nil, err
	}
	if _, err := z.Write(src); err != nil {
		return nil, err
	}
	if err := z.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
