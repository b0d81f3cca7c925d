// Package compress provides optional second-stage byte compressors for
// already scale-offset packed chunk payloads.
//
// # Overview
//
// The codec applies a two-stage strategy: scale-offset first removes
// numeric redundancy (range compaction, bit packing), then this package
// optionally shrinks the packed bitstream further with a general-purpose
// byte compressor:
//   - None: no compression (fastest, largest)
//   - Zstd: best compression ratio, moderate speed
//   - S2: balanced compression and speed
//   - LZ4: fast decompression, moderate compression ratio
//
// # Architecture
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// GetCodec resolves one of the four built-in algorithms by Algorithm value.
//
// # Algorithm Selection Guide
//
// | Workload             | Recommended | Reason                         |
// |-----------------------|-------------|---------------------------------|
// | Storage-constrained   | Zstd        | Best compression ratio          |
// | Ingestion pipelines   | S2          | Balanced speed and compression  |
// | Read-heavy workloads  | LZ4         | Fastest decompression           |
// | CPU-constrained       | None        | No compression overhead         |
//
// Bit-packed scale-offset output is already fairly dense, so second-stage
// ratios are typically modest; LZ4 or S2 are reasonable defaults unless
// storage cost dominates.
//
// # Thread Safety
//
// All codec implementations are safe for concurrent use.
package compress
