package hufftap

// FrequencyTable maps a byte value to the number of times it occurs.  Byte
// values that never occur have no entry.
type FrequencyTable map[byte]uint64

// CountFrequencies tallies the occurrences of each byte value in data in a
// single pass.  An empty input yields an empty table; the error for that
// case is raised later, by BuildTree, because an empty table is a perfectly
// good answer to the counting question.
func CountFrequencies(data []byte) FrequencyTable {
	table := make(FrequencyTable)
	for _, value := range data {
		table[value]++
	}
	return table
}

// Total returns the sum of all counts, which equals the length of the
// counted input.
func (ft FrequencyTable) Total() uint64 {
	var sum uint64
	for _, freq := range ft {
		sum += freq
	}
	return sum
}
