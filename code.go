package hufftap

import (
	"fmt"
	"strconv"
)

// maxCodeBits is the widest code that Bits can hold.  A Huffman code longer
// than 64 bits cannot arise from any input that fits in memory, so the bound
// is enforced only where codes arrive from outside the package.
const maxCodeBits = 64

// Code represents a sequence of bits: the path from the root of a Huffman
// tree to one of its leaves, where 0 descends left and 1 descends right.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the
	// path is the most significant of the Size low bits, so Bits read as
	// a binary numeral spells the path in root-to-leaf order.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from its textual form, a string of '0' and
// '1' characters in root-to-leaf order.  The empty string parses to the
// zero-length Code.
func ParseCode(s string) (Code, error) {
	if len(s) == 0 {
		return Code{}, nil
	}
	if len(s) > maxCodeBits {
		return Code{}, fmt.Errorf("code %q is %d bits long, max %d", s, len(s), maxCodeBits)
	}
	bits, err := strconv.ParseUint(s, 2, 64)
	if err != nil {
		return Code{}, fmt.Errorf("code %q is not a sequence of 0s and 1s", s)
	}
	return Code{Size: byte(len(s)), Bits: bits}, nil
}

// AppendBit returns the Code extended by one more bit at the leaf end.
func (hc Code) AppendBit(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit&1)}
}

// AppendBits appends this Code's bits to dst in root-to-leaf order and
// returns the extended sequence.  A zero-length Code appends nothing.
func (hc Code) AppendBits(dst BitSeq) BitSeq {
	for i := int(hc.Size) - 1; i >= 0; i-- {
		dst = append(dst, byte(hc.Bits>>uint(i))&1)
	}
	return dst
}

// String returns the textual form of this Code, one '0' or '1' character
// per bit.  The zero-length Code renders as the empty string.
func (hc Code) String() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

// GoString returns a Go expression that constructs this Code.
func (hc Code) GoString() string {
	if hc.Size == 0 {
		return "MakeCode(0, 0)"
	}
	return fmt.Sprintf("MakeCode(%d, %#b)", hc.Size, hc.Bits)
}

// MarshalText implements encoding.TextMarshaler using the same form as
// String.
func (hc Code) MarshalText() ([]byte, error) {
	return []byte(hc.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, accepting the same
// form as ParseCode.
func (hc *Code) UnmarshalText(text []byte) error {
	parsed, err := ParseCode(string(text))
	if err != nil {
		return err
	}
	*hc = parsed
	return nil
}

var _ fmt.Stringer = Code{}
var _ fmt.GoStringer = Code{}
