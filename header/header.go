// Package header encodes and decodes the 21-byte per-chunk header that
// precedes every scale-offset payload.
//
// Layout (little-endian, bit-exact):
//
//	offset 0   size 4   minbits       unsigned 32-bit, bits per packed code
//	offset 4   size 1   minval_size   width of the serialized minval, as written
//	offset 5   size 16  minval_bytes  low minval_size bytes hold minval LE; rest reserved
package header

import (
	"encoding/binary"

	"github.com/arloliu/scaleoffset/errs"
)

// Size is the fixed byte length of a chunk header.
const Size = 21

// minValRegionSize is the width of the minval_bytes region (offsets 5..20).
const minValRegionSize = 16

// Header carries the per-chunk parameters a decompressor needs: the bit
// width used to pack every code in the chunk, and the minimum value that
// was subtracted out during preprocessing.
type Header struct {
	// MinBits is the number of bits per packed code, 0 <= MinBits <= 64.
	MinBits uint32

	// MinVal is the signed-or-unsigned chunk minimum (or, for floats, the
	// raw bit pattern of the minimum float value before rescaling), reinterpreted into 64
	// bits. MinValSize records how many of its low bytes were actually
	// serialized.
	MinVal uint64

	// MinValSize is the number of low bytes of MinVal that are
	// meaningful, as recorded in the header. A decoder must honor this
	// value rather than assume sizeof(uint64).
	MinValSize uint8
}

// New builds a Header for a freshly computed (minbits, minval) pair,
// serializing MinVal at full 8-byte width, matching what this
// implementation always produces on compress.
func New(minBits uint32, minVal uint64) Header {
	return Header{MinBits: minBits, MinVal: minVal, MinValSize: 8}
}

// Bytes serializes the header into a new Size-byte slice.
func (h Header) Bytes() []byte {
	buf := make([]byte, Size)
	binary.LittleEndian.PutUint32(buf[0:4], h.MinBits)
	buf[4] = h.MinValSize

	n := int(h.MinValSize)
	if n > minValRegionSize {
		n = minValRegionSize
	}

	var minValBytes [8]byte
	binary.LittleEndian.PutUint64(minValBytes[:], h.MinVal)

	copyN := n
	if copyN > 8 {
		copyN = 8
	}
	copy(buf[5:5+copyN], minValBytes[:copyN])

	return buf
}

// Parse decodes a header from the first Size bytes of data.
//
// It reads min(8, MinValSize) bytes of the minval region regardless of how
// wide the header declares minval to be, so that
// headers written by a host with a wider "unsigned long long" than this
// implementation's uint64 still decode correctly.
func Parse(data []byte) (Header, error) {
	if len(data) < Size {
		return Header{}, errs.ErrInvalidHeaderSize
	}

	h := Header{
		MinBits:    binary.LittleEndian.Uint32(data[0:4]),
		MinValSize: data[4],
	}

	n := int(h.MinValSize)
	if n > 8 {
		n = 8
	}

	var minValBytes [8]byte
	copy(minValBytes[:n], data[5:5+n])
	h.MinVal = binary.LittleEndian.Uint64(minValBytes[:])

	return h, nil
}
