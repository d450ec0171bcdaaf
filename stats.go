package hufftap

// Stats is the size accounting of one Encode call.  Both sizes are in bits
// (byte length times eight); RatioPercent is the achieved reduction,
// (1 - encoded/data) * 100, so a value of 50 means the packed form is half
// the size of the input.
type Stats struct {
	DataSizeBits    float64 `json:"data_size_bits"`
	EncodedSizeBits float64 `json:"encoded_size_bits"`
	RatioPercent    float64 `json:"ratio_percent"`
}

// NewStats computes Stats from an input length and its packed output
// length, both in bytes.  dataLen must be positive; Encode never reaches
// stats computation for empty input.
func NewStats(dataLen, packedLen int) Stats {
	dataBits := float64(dataLen) * 8
	encodedBits := float64(packedLen) * 8
	return Stats{
		DataSizeBits:    dataBits,
		EncodedSizeBits: encodedBits,
		RatioPercent:    (1 - encodedBits/dataBits) * 100,
	}
}
