package huffzip

// bitWriter packs bits most-significant-bit-first into a byte buffer.
type bitWriter struct {
	buf   []byte
	cur   uint8
	nbits uint8
}

func (w *bitWriter) writeBit(bit uint8) {
	w.cur = w.cur<<1 | bit
	w.nbits++
	if w.nbits == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbits = 0
	}
}

func (w *bitWriter) writeCode(c code) {
	for i := c.length; i > 0; i-- {
		w.writeBit(uint8(c.bits>>(i-1)) & 1)
	}
}

// flush emits a partial trailing byte, zero-padded in the low-order bits.
func (w *bitWriter) flush() {
	if w.nbits > 0 {
		w.buf = append(w.buf, w.cur<<(8-w.nbits))
		w.cur = 0
		w.nbits = 0
	}
}

// bitReader yields bits most-significant-bit-first from a byte slice.
type bitReader struct {
	data  []byte
	pos   int
	cur   uint8
	nbits uint8
}

// readBit returns the next bit, or ok == false once the underlying bytes
// are exhausted.
func (r *bitReader) readBit() (bit uint8, ok bool) {
	if r.nbits == 0 {
		if r.pos == len(r.data) {
			return 0, false
		}
		r.cur = r.data[r.pos]
		r.pos++
		r.nbits = 8
	}
	r.nbits--
	return (r.cur >> r.nbits) & 1, true
}
