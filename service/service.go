// Package service orchestrates codec operations: it assigns operation
// identifiers, tracks phase/percent progress in a bounded registry, applies
// the output naming convention and derives result statistics. The codec
// itself stays stateless; all bookkeeping lives here.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/dchest/uniuri"

	"github.com/rickm/huffzip"
)

// CompressedSuffix is appended to compressed output names and stripped from
// decompressed ones.
const CompressedSuffix = ".huff"

// DefaultRegistryCapacity bounds the number of retained operation records
// unless overridden with WithRegistryCapacity.
const DefaultRegistryCapacity = 1024

// ErrInvalidFormat is returned for decompression input that does not carry
// the container magic.
var ErrInvalidFormat = errors.New("service: not a huffzip compressed file")

// Kind distinguishes the two operation directions.
type Kind string

const (
	KindCompress   Kind = "compress"
	KindDecompress Kind = "decompress"
)

// Result is the terminal record of one operation.
type Result struct {
	OperationID   string
	FileName      string
	Kind          Kind
	OriginalSize  int
	ProcessedSize int
	// Ratio is 1 - processed/original for compression and
	// processed/original - 1 for decompression.
	Ratio   float64
	Elapsed time.Duration
	Data    []byte
	Err     error
}

// OK reports whether the operation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// Option configures a Service.
type Option func(*Service)

// WithRegistryCapacity bounds the operation registry. Values below 1 fall
// back to DefaultRegistryCapacity.
func WithRegistryCapacity(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.capacity = n
		}
	}
}

// Service runs compress/decompress/analyze operations and owns the
// operation registry. Safe for concurrent use.
type Service struct {
	capacity int
	reg      *registry
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{capacity: DefaultRegistryCapacity}
	for _, opt := range opts {
		opt(s)
	}
	s.reg = newRegistry(s.capacity)
	return s
}

// Compress compresses data uploaded under fileName and records the
// operation. It never fails for inputs within the codec's size bound.
func (s *Service) Compress(data []byte, fileName string) Result {
	id := uniuri.New()
	op := s.reg.create(id, fileName, len(data))
	started := time.Now()

	blob, err := huffzip.Compress(data, huffzip.WithProgress(op.observe))
	if err != nil {
		return s.fail(op, Result{
			OperationID:  id,
			FileName:     fileName,
			Kind:         KindCompress,
			OriginalSize: len(data),
			Elapsed:      time.Since(started),
			Err:          err,
		})
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = 1 - float64(len(blob))/float64(len(data))
	}
	return s.complete(op, Result{
		OperationID:   id,
		FileName:      fileName + CompressedSuffix,
		Kind:          KindCompress,
		OriginalSize:  len(data),
		ProcessedSize: len(blob),
		Ratio:         ratio,
		Elapsed:       time.Since(started),
		Data:          blob,
	})
}

// Decompress restores the original bytes from a compressed upload. Input
// without the container magic fails fast with ErrInvalidFormat before any
// progress is registered; errors detected during decoding are recorded on
// the operation.
func (s *Service) Decompress(data []byte, fileName string) Result {
	id := uniuri.New()
	if !huffzip.Valid(data) {
		return Result{
			OperationID:  id,
			FileName:     fileName,
			Kind:         KindDecompress,
			OriginalSize: len(data),
			Err:          ErrInvalidFormat,
		}
	}

	op := s.reg.create(id, fileName, len(data))
	started := time.Now()

	restored, err := huffzip.Decompress(data, huffzip.WithProgress(op.observe))
	if err != nil {
		return s.fail(op, Result{
			OperationID:  id,
			FileName:     fileName,
			Kind:         KindDecompress,
			OriginalSize: len(data),
			Elapsed:      time.Since(started),
			Err:          err,
		})
	}

	ratio := 0.0
	if len(data) > 0 {
		ratio = float64(len(restored))/float64(len(data)) - 1
	}
	return s.complete(op, Result{
		OperationID:   id,
		FileName:      RestoredName(fileName),
		Kind:          KindDecompress,
		OriginalSize:  len(data),
		ProcessedSize: len(restored),
		Ratio:         ratio,
		Elapsed:       time.Since(started),
		Data:          restored,
	})
}

// Analyze reports codec statistics for data without compressing it.
func (s *Service) Analyze(data []byte) huffzip.Stats {
	return huffzip.Analyze(data)
}

// CanDecompress reports whether data looks like a compressed container.
func (s *Service) CanDecompress(data []byte) bool {
	return huffzip.Valid(data)
}

// Progress returns the current progress record for an operation.
func (s *Service) Progress(id string) (Progress, bool) {
	return s.reg.progress(id)
}

// Result returns the terminal record of a finished operation.
func (s *Service) Result(id string) (Result, bool) {
	return s.reg.result(id)
}

// Cleanup removes an operation's progress and result records. Records have
// no automatic expiry beyond the registry capacity bound, so callers are
// expected to clean up once they have collected the result.
func (s *Service) Cleanup(id string) {
	s.reg.remove(id)
}

func (s *Service) complete(op *operation, res Result) Result {
	op.complete(res)
	return res
}

func (s *Service) fail(op *operation, res Result) Result {
	op.fail(res)
	return res
}

// IsFormatError reports whether err indicates malformed client input
// rather than an internal failure.
func IsFormatError(err error) bool {
	return errors.Is(err, ErrInvalidFormat) ||
		errors.Is(err, huffzip.ErrTruncated) ||
		errors.Is(err, huffzip.ErrBadMagic) ||
		errors.Is(err, huffzip.ErrUnsupportedVersion) ||
		errors.Is(err, huffzip.ErrCorrupt) ||
		errors.Is(err, huffzip.ErrInvalidTree)
}

// CompressedName applies the output naming convention for compression.
func CompressedName(fileName string) string {
	return fileName + CompressedSuffix
}

// RestoredName strips the compressed suffix, or marks the name as
// decompressed when the suffix is absent.
func RestoredName(fileName string) string {
	if strings.HasSuffix(strings.ToLower(fileName), CompressedSuffix) {
		return fileName[:len(fileName)-len(CompressedSuffix)]
	}
	return "decompressed_" + fileName
}
