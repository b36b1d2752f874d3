// Package huffzip implements a symmetric binary codec based on canonical
// Huffman coding. Compress turns an arbitrary byte sequence into a compact,
// self-describing container; Decompress reconstructs the original bytes
// exactly from that container. The container carries everything needed for
// reconstruction (magic, version, original size and the frequency table),
// so no external state is involved.
package huffzip

import (
	"errors"
	"math"
)

const (
	// alphabetSize is the number of distinct symbols. The codec operates on
	// whole bytes only.
	alphabetSize = 256

	// MaxInputLen is the largest input Compress accepts. The container
	// stores the original length as an unsigned 32-bit integer.
	MaxInputLen = math.MaxUint32
)

var (
	// ErrTooLarge indicates the input exceeds MaxInputLen.
	ErrTooLarge = errors.New("huffzip: input too large")
	// ErrTruncated indicates the blob is shorter than the minimal container
	// header, or the symbol table declared in the header is cut off.
	ErrTruncated = errors.New("huffzip: compressed data too short")
	// ErrBadMagic indicates the blob does not start with the container magic.
	ErrBadMagic = errors.New("huffzip: not a huffzip container")
	// ErrUnsupportedVersion indicates a container produced by an unknown
	// format revision.
	ErrUnsupportedVersion = errors.New("huffzip: unsupported container version")
	// ErrCorrupt indicates the bit-packed payload ran out before the
	// declared number of bytes was decoded.
	ErrCorrupt = errors.New("huffzip: unexpected end of payload")
	// ErrInvalidTree indicates a symbol table from which no code tree can
	// be rebuilt.
	ErrInvalidTree = errors.New("huffzip: cannot rebuild code tree")
)

// Config holds per-call configuration for Compress and Decompress.
type Config struct {
	Progress ProgressFunc
}

// Option is a functional option for a single Compress or Decompress call.
type Option func(*Config)

// WithProgress registers an observer for phase/percent updates during the
// operation. Delivery is best-effort: the observer never influences the
// produced bytes, and a panicking observer does not fail the operation.
func WithProgress(fn ProgressFunc) Option {
	return func(c *Config) {
		c.Progress = fn
	}
}

func newConfig(opts []Option) Config {
	var cfg Config
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
