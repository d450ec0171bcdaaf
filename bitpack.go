package hufftap

import (
	"fmt"
	"strings"
)

// BitSeq is a sequence of bits, one 0 or 1 value per element.  It is the
// only unpacked bitstream representation in the package; packed bytes exist
// on the far side of the Bytes and UnpackBits boundary.
type BitSeq []byte

// ParseBitSeq converts a string of '0' and '1' characters into a BitSeq.
func ParseBitSeq(s string) (BitSeq, error) {
	out := make(BitSeq, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("character %d of %q is not '0' or '1'", i, s)
		}
	}
	return out, nil
}

// String renders the sequence as a string of '0' and '1' characters.
func (s BitSeq) String() string {
	var sb strings.Builder
	sb.Grow(len(s))
	for _, bit := range s {
		if bit <= 1 {
			sb.WriteByte('0' + bit)
		} else {
			sb.WriteByte('?')
		}
	}
	return sb.String()
}

// Pad returns the sequence in its padded framing: each group of up to seven
// data bits is prefixed with a single marker 1 bit, so every full group is
// exactly eight bits.  A final group keeps its marker even when fewer than
// seven data bits remain, and padding an empty sequence yields the lone
// marker bit.  The marker is what lets the packed byte form delimit itself
// without a separately stored bit count.
func (s BitSeq) Pad() BitSeq {
	out := make(BitSeq, 0, len(s)+len(s)/7+8)
	group := make(BitSeq, 1, 8)
	group[0] = 1
	for _, bit := range s {
		if len(group) > 7 {
			out = append(out, group...)
			group = group[:1]
		}
		group = append(group, bit)
	}
	return append(out, group...)
}

// Unpad reverses Pad: it consumes the sequence in groups of eight bits,
// dropping the first bit of each group.  A final short group loses only its
// first bit and keeps the rest, however few.
func (s BitSeq) Unpad() BitSeq {
	out := make(BitSeq, 0, len(s)-len(s)/8)
	for start := 0; start < len(s); start += 8 {
		end := start + 8
		if end > len(s) {
			end = len(s)
		}
		out = append(out, s[start+1:end]...)
	}
	return out
}

// Bytes packs an already padded sequence into bytes, eight bits per byte
// with the first bit in the most significant position.  A final group of
// fewer than eight bits becomes the byte holding that group's value.  Bytes
// fails with ErrByteConversion if any element is neither 0 nor 1.
func (s BitSeq) Bytes() ([]byte, error) {
	out := make([]byte, 0, (len(s)+7)/8)
	var value byte
	var width int
	for i, bit := range s {
		if bit > 1 {
			return nil, fmt.Errorf("%w: element %d is %d", ErrByteConversion, i, bit)
		}
		if width == 8 {
			out = append(out, value)
			value, width = 0, 0
		}
		value = value<<1 | bit
		width++
	}
	if width > 0 {
		out = append(out, value)
	}
	return out, nil
}

// UnpackBits expands packed bytes back into a bit sequence.  Each byte
// contributes its minimal binary form, with no leading zeros.  That inverts
// Bytes exactly for padded sequences, whose groups always begin with the
// marker 1; it is not a general-purpose inverse for arbitrary byte input.
func UnpackBits(p []byte) BitSeq {
	out := make(BitSeq, 0, len(p)*8)
	for _, b := range p {
		for i := minBinaryWidth(b) - 1; i >= 0; i-- {
			out = append(out, (b>>uint(i))&1)
		}
	}
	return out
}
