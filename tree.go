package huffzip

import "container/heap"

// node is a node of the code tree. A node is either a leaf carrying one
// symbol, or an internal node owning exactly two children whose frequency
// is the sum of theirs.
type node struct {
	symbol byte
	freq   uint32
	seq    uint16
	left   *node
	right  *node
}

func (n *node) leaf() bool {
	return n.left == nil && n.right == nil
}

// nodeHeap is a min-heap ordered by (frequency, seq). seq is the byte value
// for leaves and 256+i for the i-th merged node, which makes tree shape a
// pure function of the frequency table. Identical tables therefore always
// rebuild identical trees, on the compress and the decompress side alike.
type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	last := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return last
}

// buildTree constructs the optimal prefix-free code tree for the given
// frequency table. It returns nil when every count is zero. A table with
// exactly one distinct symbol yields that leaf paired with a zero-frequency
// placeholder, so code generation still emits the one-bit code "0" for the
// real symbol; the placeholder never occurs in any input and is therefore
// never decoded from a well-formed payload.
func buildTree(freqs *[alphabetSize]uint32) *node {
	nodes := make(nodeHeap, 0, alphabetSize)
	for i, f := range freqs {
		if f > 0 {
			nodes = append(nodes, &node{symbol: byte(i), freq: f, seq: uint16(i)})
		}
	}

	switch len(nodes) {
	case 0:
		return nil
	case 1:
		only := nodes[0]
		return &node{
			freq:  only.freq,
			seq:   alphabetSize,
			left:  only,
			right: &node{},
		}
	}

	heap.Init(&nodes)
	seq := uint16(alphabetSize)
	for nodes.Len() > 1 {
		left := heap.Pop(&nodes).(*node)
		right := heap.Pop(&nodes).(*node)
		heap.Push(&nodes, &node{
			freq:  left.freq + right.freq,
			seq:   seq,
			left:  left,
			right: right,
		})
		seq++
	}
	return nodes[0]
}
