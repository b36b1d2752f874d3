package huffzip

// countFrequencies counts the occurrences of each byte value in data.
// The sum of all counts equals len(data).
func countFrequencies(data []byte) (freqs [alphabetSize]uint32) {
	for _, b := range data {
		freqs[b]++
	}
	return freqs
}

// distinctSymbols reports the number of byte values with a non-zero count.
func distinctSymbols(freqs *[alphabetSize]uint32) int {
	n := 0
	for _, f := range freqs {
		if f > 0 {
			n++
		}
	}
	return n
}
