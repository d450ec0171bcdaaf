package hufftap

import (
	"github.com/chronos-tachyon/assert"
)

// Result is the complete artifact of one Encode call: the packed bitstream,
// the code table it was produced with, and the size accounting.  The code
// table travels alongside the packed bytes rather than inside them, so a
// Result (or an equivalent externally stored pair) is what Decode consumes.
// A Result is never mutated after Encode returns.
type Result struct {
	Packed []byte    `json:"packed"`
	Table  CodeTable `json:"table"`
	Stats  Stats     `json:"stats"`
}

// Encode compresses data with a static Huffman code derived from the
// input's own byte frequencies.  It fails with ErrEmptyInput when data is
// empty; that is its only failure mode.
func Encode(data []byte) (Result, error) {
	freq := CountFrequencies(data)
	root, err := BuildTree(freq)
	if err != nil {
		return Result{}, err
	}
	table := BuildCodeTable(root)

	// The exact bit count is knowable up front: every occurrence of a
	// value contributes that value's code length.
	var totalBits uint64
	for value, count := range freq {
		hc, found := table.Code(value)
		assert.Assertf(found, "no code for byte %d counted in the input", value)
		totalBits += count * uint64(hc.Size)
	}

	bits := make(BitSeq, 0, totalBits)
	for _, value := range data {
		hc, _ := table.Code(value)
		bits = hc.AppendBits(bits)
	}

	packed, err := bits.Pad().Bytes()
	if err != nil {
		return Result{}, err
	}

	return Result{
		Packed: packed,
		Table:  table,
		Stats:  NewStats(len(data), len(packed)),
	}, nil
}
