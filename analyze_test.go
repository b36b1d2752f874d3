package huffzip

import (
	"bytes"
	"math"
	"testing"
)

func TestAnalyzeSmallText(t *testing.T) {
	stats := Analyze([]byte("AAAAABBBCC"))
	if stats.UniqueSymbols != 3 {
		t.Errorf("UniqueSymbols = %d, want 3", stats.UniqueSymbols)
	}
	if stats.TotalSymbols != 10 {
		t.Errorf("TotalSymbols = %d, want 10", stats.TotalSymbols)
	}
	if stats.MinCodeLength < 1 || stats.MaxCodeLength < stats.MinCodeLength {
		t.Errorf("implausible code length bounds: min=%d max=%d",
			stats.MinCodeLength, stats.MaxCodeLength)
	}
	if stats.AverageCodeLength <= 0 || stats.AverageCodeLength >= 8 {
		t.Errorf("AverageCodeLength = %f, want in (0, 8)", stats.AverageCodeLength)
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	stats := Analyze(nil)
	if stats.UniqueSymbols != 0 || stats.TotalSymbols != 0 {
		t.Errorf("empty input: counts = %d/%d, want 0/0", stats.UniqueSymbols, stats.TotalSymbols)
	}
	if stats.AverageCodeLength != 0 || stats.MaxCodeLength != 0 || stats.MinCodeLength != 0 {
		t.Errorf("empty input: lengths should be 0, got %+v", stats)
	}
	if stats.TheoreticalRatio != 1 {
		t.Errorf("empty input: TheoreticalRatio = %f, want 1", stats.TheoreticalRatio)
	}
}

func TestAnalyzeSingleSymbol(t *testing.T) {
	stats := Analyze(bytes.Repeat([]byte{'X'}, 1000))
	if stats.UniqueSymbols != 1 {
		t.Errorf("UniqueSymbols = %d, want 1", stats.UniqueSymbols)
	}
	if stats.TotalSymbols != 1000 {
		t.Errorf("TotalSymbols = %d, want 1000", stats.TotalSymbols)
	}
	if stats.AverageCodeLength != 1 || stats.MinCodeLength != 1 || stats.MaxCodeLength != 1 {
		t.Errorf("single symbol codes to one bit, got %+v", stats)
	}
	if stats.TheoreticalRatio != 0.125 {
		t.Errorf("TheoreticalRatio = %f, want 0.125", stats.TheoreticalRatio)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	input := lcg(21, 4096)
	first := Analyze(input)
	second := Analyze(input)
	if first != second {
		t.Errorf("two analyses differ: %+v vs %+v", first, second)
	}
}

// The average code length can never beat the Shannon entropy of the
// distribution.
func TestAnalyzeEntropyLowerBound(t *testing.T) {
	inputs := [][]byte{
		[]byte("AAAAABBBCC"),
		[]byte("abracadabra abracadabra"),
		lcg(17, 32768),
		bytes.Repeat([]byte("aab"), 1000),
	}
	for _, input := range inputs {
		freqs := countFrequencies(input)
		total := float64(len(input))
		entropy := 0.0
		for _, f := range freqs {
			if f == 0 {
				continue
			}
			p := float64(f) / total
			entropy -= p * math.Log2(p)
		}

		stats := Analyze(input)
		if stats.AverageCodeLength < entropy-1e-9 {
			t.Errorf("average code length %f beats entropy %f", stats.AverageCodeLength, entropy)
		}
		// and within one bit of it, per the classic Huffman bound
		if stats.AverageCodeLength > entropy+1+1e-9 {
			t.Errorf("average code length %f exceeds entropy %f by more than one bit",
				stats.AverageCodeLength, entropy)
		}
	}
}
