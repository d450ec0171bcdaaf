package hufftap

import (
	mathbits "math/bits"
)

func minBinaryWidth(b byte) int {
	if b == 0 {
		return 1
	}
	return mathbits.Len8(b)
}
