package huffzip

import (
	"strings"
	"testing"
)

func countLeaves(n *node) int {
	if n == nil {
		return 0
	}
	if n.leaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// codeString renders a code word as a "0"/"1" string for assertions.
func codeString(c code) string {
	var sb strings.Builder
	for i := c.length; i > 0; i-- {
		if c.bits>>(i-1)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func TestBuildTreeEmpty(t *testing.T) {
	var freqs [alphabetSize]uint32
	if root := buildTree(&freqs); root != nil {
		t.Errorf("expected no tree for an all-zero table, got %+v", root)
	}
}

func TestBuildTreeSingleSymbol(t *testing.T) {
	var freqs [alphabetSize]uint32
	freqs['X'] = 5

	root := buildTree(&freqs)
	if root == nil {
		t.Fatal("expected a tree")
	}
	if root.leaf() {
		t.Fatal("single-symbol root must be internal so traversal emits a bit")
	}
	if root.freq != 5 {
		t.Errorf("root frequency = %d, want 5", root.freq)
	}
	if !root.left.leaf() || root.left.symbol != 'X' {
		t.Errorf("left child should be the real leaf, got %+v", root.left)
	}
	if root.right.freq != 0 {
		t.Errorf("placeholder frequency = %d, want 0", root.right.freq)
	}

	codes := buildCodes(root)
	if got := codeString(codes['X']); got != "0" {
		t.Errorf("single-symbol code = %q, want %q", got, "0")
	}
}

func TestBuildTreeLeafCount(t *testing.T) {
	var freqs [alphabetSize]uint32
	freqs['a'] = 5
	freqs['b'] = 3
	freqs['c'] = 2

	root := buildTree(&freqs)
	if root == nil {
		t.Fatal("expected a tree")
	}
	if root.freq != 10 {
		t.Errorf("root frequency = %d, want 10", root.freq)
	}
	if n := countLeaves(root); n != 3 {
		t.Errorf("leaf count = %d, want 3", n)
	}
}

func TestBuildTreeFullAlphabet(t *testing.T) {
	var freqs [alphabetSize]uint32
	for i := range freqs {
		freqs[i] = 1
	}
	root := buildTree(&freqs)
	if n := countLeaves(root); n != alphabetSize {
		t.Fatalf("leaf count = %d, want %d", n, alphabetSize)
	}

	// A uniform 256-symbol alphabet yields a perfectly balanced tree with
	// fixed 8-bit codes.
	codes := buildCodes(root)
	for sym := 0; sym < alphabetSize; sym++ {
		if codes[sym].length != 8 {
			t.Errorf("symbol %d: code length = %d, want 8", sym, codes[sym].length)
		}
	}
}

func TestCodesPrefixFree(t *testing.T) {
	inputs := [][]byte{
		[]byte("AAAAABBBCC"),
		[]byte("abracadabra"),
		allByteValues(),
		lcg(11, 5000),
	}
	for _, input := range inputs {
		freqs := countFrequencies(input)
		codes := buildCodes(buildTree(&freqs))

		var words []string
		for sym := 0; sym < alphabetSize; sym++ {
			if freqs[sym] > 0 {
				word := codeString(codes[sym])
				if word == "" {
					t.Fatalf("symbol %d got an empty code", sym)
				}
				words = append(words, word)
			}
		}
		for i, a := range words {
			for j, b := range words {
				if i != j && strings.HasPrefix(b, a) {
					t.Errorf("code %q is a prefix of %q", a, b)
				}
			}
		}
	}
}

// More frequent symbols never get longer codes than rarer ones.
func TestCodeLengthsFollowFrequency(t *testing.T) {
	var freqs [alphabetSize]uint32
	freqs['a'] = 100
	freqs['b'] = 20
	freqs['c'] = 5
	freqs['d'] = 1

	codes := buildCodes(buildTree(&freqs))
	if codes['a'].length > codes['d'].length {
		t.Errorf("most frequent symbol has a longer code (%d) than least frequent (%d)",
			codes['a'].length, codes['d'].length)
	}
}

func TestBuildTreeDeterministicShape(t *testing.T) {
	var freqs [alphabetSize]uint32
	// all ties: shape must still be reproducible
	for _, sym := range []byte("zyxwvut") {
		freqs[sym] = 7
	}

	reference := buildCodes(buildTree(&freqs))
	for i := 0; i < 5; i++ {
		again := buildCodes(buildTree(&freqs))
		if *again != *reference {
			t.Fatalf("run %d produced a different code table", i)
		}
	}
}
