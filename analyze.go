package huffzip

// Stats describes how well a code fits a byte distribution, computed
// without producing a container.
type Stats struct {
	// UniqueSymbols is the number of distinct byte values in the input.
	UniqueSymbols int
	// TotalSymbols is the input length in bytes.
	TotalSymbols int
	// AverageCodeLength is the frequency-weighted mean code length in bits.
	AverageCodeLength float64
	// MaxCodeLength and MinCodeLength are the extreme code lengths in bits,
	// 0 for empty input.
	MaxCodeLength int
	MinCodeLength int
	// TheoreticalRatio is the weighted bits-per-symbol divided by 8: the
	// fraction the code achieves relative to plain 8-bit bytes. 1 for
	// empty input.
	TheoreticalRatio float64
}

// Analyze computes compression statistics for data by building the
// frequency table, tree and code table, without encoding a payload. It is
// deterministic: repeated calls on the same input yield identical Stats.
func Analyze(data []byte) Stats {
	freqs := countFrequencies(data)
	root := buildTree(&freqs)
	codes := buildCodes(root)

	var stats Stats
	var totalBits uint64
	minLen := 0
	for sym, f := range freqs {
		if f == 0 {
			continue
		}
		length := int(codes[sym].length)
		totalBits += uint64(f) * uint64(length)
		stats.UniqueSymbols++
		stats.TotalSymbols += int(f)
		if length > stats.MaxCodeLength {
			stats.MaxCodeLength = length
		}
		if minLen == 0 || length < minLen {
			minLen = length
		}
	}
	stats.MinCodeLength = minLen

	if stats.TotalSymbols == 0 {
		stats.TheoreticalRatio = 1
		return stats
	}
	stats.AverageCodeLength = float64(totalBits) / float64(stats.TotalSymbols)
	stats.TheoreticalRatio = stats.AverageCodeLength / 8
	return stats
}
