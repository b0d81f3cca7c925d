package pipeline

import (
	"encoding/binary"
	"math/bits"

	"github.com/arloliu/scaleoffset/endian"
)

// readRaw reads the size-byte element at buf[idx:idx+size] as a
// zero-extended uint64, using engine for multi-byte widths.
func readRaw(buf []byte, idx, size int, engine endian.EndianEngine) uint64 {
	switch size {
	case 1:
		return uint64(buf[idx])
	case 2:
		return uint64(engine.Uint16(buf[idx : idx+2]))
	case 4:
		return uint64(engine.Uint32(buf[idx : idx+4]))
	case 8:
		return engine.Uint64(buf[idx : idx+8])
	default:
		panic("pipeline: unsupported element size")
	}
}

// writeRaw writes the low size bytes of v into buf[idx:idx+size], using
// engine for multi-byte widths.
func writeRaw(buf []byte, idx, size int, engine endian.EndianEngine, v uint64) {
	switch size {
	case 1:
		buf[idx] = byte(v)
	case 2:
		engine.PutUint16(buf[idx:idx+2], uint16(v))
	case 4:
		engine.PutUint32(buf[idx:idx+4], uint32(v))
	case 8:
		engine.PutUint64(buf[idx:idx+8], v)
	default:
		panic("pipeline: unsupported element size")
	}
}

// decodeFillRaw decodes the low size bytes of a parameter block's
// little-endian fill region into a zero-extended uint64. The fill region
// is always little-endian regardless of the dataset's stored order or the
// host's native order.
func decodeFillRaw(fillBytes []byte, size int) uint64 {
	var buf [8]byte
	copy(buf[:size], fillBytes[:size])

	return binary.LittleEndian.Uint64(buf[:])
}

// bitMask returns 2^bits - 1, handling bits == 64 without overflow.
func bitMask(bits int) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}

	return uint64(1)<<uint(bits) - 1
}

// log2 returns the smallest v such that 2^v >= n. Defined only for n >= 1.
func log2(n uint64) int {
	if n <= 1 {
		return 0
	}

	return bits.Len64(n - 1)
}
