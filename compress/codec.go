package compress

import (
	"fmt"

	"github.com/arloliu/scaleoffset/errs"
)

// Algorithm identifies a second-stage byte compressor applied to an
// already scale-offset-packed chunk. Scale-offset removes numeric
// redundancy (range, repeated values); these algorithms mop up whatever
// byte-level redundancy remains in the packed bitstream, the same way a
// container might zstd a file after its own columnar encoding.
type Algorithm uint8

const (
	AlgorithmNone Algorithm = 0x1
	AlgorithmZstd Algorithm = 0x2
	AlgorithmS2   Algorithm = 0x3
	AlgorithmLZ4  Algorithm = 0x4
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmNone:
		return "None"
	case AlgorithmZstd:
		return "Zstd"
	case AlgorithmS2:
		return "S2"
	case AlgorithmLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a byte payload.
//
// Memory management:
//   - Returned slice is newly allocated and owned by the caller
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor decompresses a byte payload produced by the matching
// Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of compressing one chunk's packed
// payload with a second-stage Algorithm.
type CompressionStats struct {
	Algorithm      Algorithm
	OriginalSize   int64
	CompressedSize int64
}

// CompressionRatio returns the compressed-size-to-original-size ratio.
// Values below 1.0 indicate the second stage shrank the payload further.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the percentage of space saved by compression.
// Negative values indicate the compressed payload grew.
func (s CompressionStats) SpaceSavings() float64 {
	if s.OriginalSize == 0 {
		if s.CompressedSize == 0 {
			return 0.0
		}

		return 100.0
	}

	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[Algorithm]Codec{
	AlgorithmNone: NewNoOpCompressor(),
	AlgorithmZstd: NewZstdCompressor(),
	AlgorithmS2:   NewS2Compressor(),
	AlgorithmLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the given second-stage
// algorithm.
func GetCodec(algorithm Algorithm) (Codec, error) {
	if codec, ok := builtinCodecs[algorithm]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnknownCompression, algorithm)
}
