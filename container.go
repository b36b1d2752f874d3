package huffzip

import (
	"encoding/binary"
	"fmt"
)

// Wire format (version 1, all integers big-endian):
//
//	magic[4]  = "HUFF"
//	version   = uint32
//	origSize  = uint32, uncompressed length in bytes
//	symCount  = uint16, number of (symbol, frequency) pairs
//	repeat symCount times, ascending by symbol value:
//	  symbol    = uint8
//	  frequency = uint32
//	payload   = bit-packed code words, MSB-first, final byte zero-padded
//
// origSize == 0 is the canonical empty container: symCount is 0 and no
// payload follows.
const (
	containerMagic   = "HUFF"
	containerVersion = uint32(1)

	headerLen    = 4 + 4 + 4 + 2
	freqEntryLen = 1 + 4
)

// Compress encodes data into a self-describing container. It fails only
// when the input exceeds MaxInputLen; any other byte sequence, including
// the empty one, has a well-defined container. Incompressible input may
// grow by the header and symbol table overhead.
func Compress(data []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	rep := reporter{fn: cfg.Progress}

	if uint64(len(data)) > MaxInputLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrTooLarge, len(data))
	}
	if len(data) == 0 {
		rep.report(PhaseFinalizing, 95)
		return appendHeader(nil, 0, nil, 0), nil
	}

	rep.report(PhaseFrequencyTable, 5)
	freqs := countFrequencies(data)

	rep.report(PhaseBuildingTree, 15)
	root := buildTree(&freqs)

	rep.report(PhaseGenerating, 25)
	codes := buildCodes(root)

	rep.report(PhaseEncoding, 35)
	distinct := distinctSymbols(&freqs)
	blob := make([]byte, 0, headerLen+distinct*freqEntryLen+len(data))
	blob = appendHeader(blob, uint32(len(data)), &freqs, distinct)

	w := bitWriter{buf: blob}
	interval := len(data) / 100
	if interval < 1 {
		interval = 1
	}
	for i, b := range data {
		w.writeCode(codes[b])
		if (i+1)%interval == 0 {
			rep.report(PhaseEncoding, 35+int(uint64(i+1)*60/uint64(len(data))))
		}
	}
	w.flush()

	rep.report(PhaseFinalizing, 95)
	return w.buf, nil
}

func appendHeader(dst []byte, originalSize uint32, freqs *[alphabetSize]uint32, distinct int) []byte {
	dst = append(dst, containerMagic...)
	dst = binary.BigEndian.AppendUint32(dst, containerVersion)
	dst = binary.BigEndian.AppendUint32(dst, originalSize)
	dst = binary.BigEndian.AppendUint16(dst, uint16(distinct))
	if freqs != nil {
		for i, f := range freqs {
			if f > 0 {
				dst = append(dst, byte(i))
				dst = binary.BigEndian.AppendUint32(dst, f)
			}
		}
	}
	return dst
}

// Decompress reconstructs the original bytes from a container produced by
// Compress. Validation happens strictly in order: length, magic, version,
// then the symbol table. Each violation is reported as a distinct error
// recognizable with errors.Is.
func Decompress(blob []byte, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)
	rep := reporter{fn: cfg.Progress}

	if len(blob) < headerLen {
		return nil, fmt.Errorf("%w: %d bytes, need at least %d", ErrTruncated, len(blob), headerLen)
	}

	rep.report(PhaseReadingHeader, 5)
	if string(blob[:4]) != containerMagic {
		return nil, fmt.Errorf("%w: magic %q", ErrBadMagic, string(blob[:4]))
	}
	if version := binary.BigEndian.Uint32(blob[4:8]); version != containerVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}

	originalSize := binary.BigEndian.Uint32(blob[8:12])
	if originalSize == 0 {
		rep.report(PhaseFinalizing, 95)
		return []byte{}, nil
	}

	symCount := int(binary.BigEndian.Uint16(blob[12:14]))
	tableEnd := headerLen + symCount*freqEntryLen
	if len(blob) < tableEnd {
		return nil, fmt.Errorf("%w: symbol table needs %d bytes, have %d",
			ErrTruncated, tableEnd, len(blob))
	}

	var freqs [alphabetSize]uint32
	for i := 0; i < symCount; i++ {
		entry := blob[headerLen+i*freqEntryLen:]
		freqs[entry[0]] = binary.BigEndian.Uint32(entry[1:5])
	}

	rep.report(PhaseRebuildingTree, 25)
	root := buildTree(&freqs)
	if root == nil {
		return nil, fmt.Errorf("%w: %d table entries, all frequencies zero", ErrInvalidTree, symCount)
	}

	rep.report(PhaseDecoding, 35)
	out := make([]byte, 0, originalSize)
	r := bitReader{data: blob[tableEnd:]}
	interval := originalSize / 100
	if interval < 1 {
		interval = 1
	}

	cur := root
	for uint32(len(out)) < originalSize {
		bit, ok := r.readBit()
		if !ok {
			return nil, fmt.Errorf("%w: decoded %d of %d bytes", ErrCorrupt, len(out), originalSize)
		}
		if bit == 0 {
			cur = cur.left
		} else {
			cur = cur.right
		}
		if cur.leaf() {
			out = append(out, cur.symbol)
			cur = root
			if uint32(len(out))%interval == 0 {
				rep.report(PhaseDecoding, 35+int(uint64(len(out))*60/uint64(originalSize)))
			}
		}
	}

	rep.report(PhaseFinalizing, 95)
	return out, nil
}

// Valid reports whether blob starts with the container magic. It is a
// cheap sniff, not a full validation: Decompress may still fail on a blob
// Valid accepted.
func Valid(blob []byte) bool {
	return len(blob) >= 4 && string(blob[:4]) == containerMagic
}
