package huffzip

// code is one prefix-free code word. Only the low-order length bits of bits
// are meaningful; the most significant of those is emitted first.
type code struct {
	bits   uint64
	length uint8
}

// codeTable maps each symbol to its code word. Symbols absent from the
// frequency table keep the zero code (length 0), which is never written.
type codeTable [alphabetSize]code

// buildCodes derives the code table by depth-first traversal: descending
// left appends 0, descending right appends 1. A lone root leaf gets the
// single-bit code "0"; empty code words are never produced. Code length is
// bounded well below 64 bits because total frequency fits in 32 bits.
func buildCodes(root *node) *codeTable {
	table := new(codeTable)
	if root == nil {
		return table
	}
	assignCodes(table, root, 0, 0)
	return table
}

func assignCodes(table *codeTable, n *node, bits uint64, length uint8) {
	if n.leaf() {
		if n.freq == 0 {
			// the degenerate-case placeholder gets no code
			return
		}
		if length == 0 {
			length = 1
		}
		table[n.symbol] = code{bits: bits, length: length}
		return
	}
	assignCodes(table, n.left, bits<<1, length+1)
	assignCodes(table, n.right, bits<<1|1, length+1)
}
