// SPDX-License-Identifier: MIT
// Source: github.com/voxflate/deflate

package deflate

// detectDataType classifies the literal byte distribution tallied so far as
// DataType (spec.md §4.6 "data type detection" supplement). Control bytes
// 0-6, 14-25, and 28-31 are black-listed: any occurrence marks the stream
// BINARY outright. Bytes 7, 8, 11, 12, 26, and 27 are gray-listed and never
// influence the classification either way. Bytes 9, 10, 13, and 32-255 are
// white-listed; any occurrence (absent a black-listed byte) marks the
// stream TEXT. An empty or gray-only distribution is BINARY.
func detectDataType(litFreq []uint16) DataType {
	const grayAndWhiteControlMask = (1 << 7) | (1 << 8) | (1 << 9) | (1 << 10) |
		(1 << 11) | (1 << 12) | (1 << 13) | (1 << 26) | (1 << 27)

	for b := 0; b <= 31; b++ {
		if litFreq[b] == 0 {
			continue
		}
		if grayAndWhiteControlMask&(1<<uint(b)) != 0 {
			continue
		}
		return DataTypeBinary
	}

	if litFreq[9] != 0 || litFreq[10] != 0 || litFreq[13] != 0 {
		return DataTypeText
	}
	for b := 32; b < 256; b++ {
		if litFreq[b] != 0 {
			return DataTypeText
		}
	}

	return DataTypeBinary
}
