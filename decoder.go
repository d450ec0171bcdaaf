package hufftap

import (
	"bytes"
)

// Decode reverses Encode.  It unpacks and unpads the bitstream, then walks
// it bit by bit: each bit extends a candidate code, the candidate is
// checked against the table after every bit, and a match emits the byte
// value and resets the candidate.  A trailing candidate that never matches
// is dropped; streams produced by Encode with the same table always consume
// evenly, so nothing is lost on the round trip.
//
// A degenerate table holding a single zero-length code carries no data bits
// at all.  In that case the original length is recovered from Stats, which
// is the only situation where Decode reads anything besides Packed and
// Table.
func (r Result) Decode() []byte {
	if value, ok := r.Table.soleZeroEntry(); ok {
		return bytes.Repeat([]byte{value}, int(r.Stats.DataSizeBits)/8)
	}

	bits := UnpackBits(r.Packed).Unpad()
	out := make([]byte, 0, len(bits)/2)
	var cand Code
	for _, bit := range bits {
		cand = cand.AppendBit(bit)
		if value, found := r.Table.Value(cand); found {
			out = append(out, value)
			cand = Code{}
		}
	}
	return out
}
