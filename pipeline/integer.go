package pipeline

import (
	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/endian"
)

// IntegerResult is the outcome of IntegerPreprocess: the minbits and minval
// a chunk header must carry, and whether full precision (minbits ==
// kind.Bits()) was selected, in which case the buffer was left untouched
// and the filter must fall back to copying raw bytes.
type IntegerResult struct {
	MinBits     int
	MinVal      uint64
	FullPrecision bool
}

// IntegerPreprocess computes the minimum bit width and minimum value for a
// chunk of integer elements, then rewrites buf in place as minval-offset
// codes.
//
// buf holds nelmts native-order elements of kind.Size() bytes each; it is
// rewritten in place with transformed codes unless the result is
// FullPrecision. fixedMinBits, when non-zero, selects a fixed-minbits mode
// where minbits is already decided by the caller: the scan tracks only the
// non-fill minimum (the max-based bit-width calculation is skipped
// entirely), and the supplied width is used verbatim (the caller is
// responsible for clamping it to [1, kind.Bits()]).
func IntegerPreprocess(
	kind elemkind.Kind,
	buf []byte,
	nelmts int,
	engine endian.EndianEngine,
	fillDefined bool,
	fillBytes []byte,
	fixedMinBits int,
) IntegerResult {
	size := kind.Size()
	bits := kind.Bits()
	signBit := uint64(0)
	if kind.IsSigned() {
		signBit = uint64(1) << uint(bits-1)
	}
	mask := bitMask(bits)

	var fillRaw uint64
	if fillDefined {
		fillRaw = decodeFillRaw(fillBytes, size) & mask
	}

	key := func(raw uint64) uint64 { return raw ^ signBit }

	// fixedMinBits != 0 means the caller already decided the bit width:
	// only the minimum needs scanning to compute minval. Otherwise minbits
	// itself depends on the span, so both min and max are tracked.
	scanMax := fixedMinBits == 0

	haveAny := false
	var minRaw, minKey, maxKey uint64

	for i := 0; i < nelmts; i++ {
		raw := readRaw(buf, i*size, size, engine) & mask
		if fillDefined && raw == fillRaw {
			continue
		}

		k := key(raw)
		if !haveAny {
			haveAny = true
			minRaw, minKey, maxKey = raw, k, k

			continue
		}

		if k < minKey {
			minKey = k
			minRaw = raw
		}
		if scanMax && k > maxKey {
			maxKey = k
		}
	}

	if !haveAny {
		// Every element is the fill value (or nelmts == 0); nothing to
		// scale against. Degenerate but representable: treat as a
		// single-valued chunk.
		minRaw, minKey, maxKey = 0, 0, 0
	}

	var minBits int

	if fixedMinBits == 0 {
		spanKey := maxKey - minKey // maxKey >= minKey by construction, no wraparound
		if spanKey > mask-2 {
			return IntegerResult{MinBits: bits, MinVal: 0, FullPrecision: true}
		}

		if fillDefined {
			minBits = log2(spanKey + 1 + 1)
		} else {
			minBits = log2(spanKey + 1)
		}
	} else {
		minBits = fixedMinBits
	}

	minVal := minRaw

	if minBits == bits {
		return IntegerResult{MinBits: minBits, MinVal: minVal, FullPrecision: true}
	}

	sentinel := bitMask(minBits)
	for i := 0; i < nelmts; i++ {
		idx := i * size
		raw := readRaw(buf, idx, size, engine) & mask

		var code uint64
		if fillDefined && raw == fillRaw {
			code = sentinel
		} else {
			code = (raw - minRaw) & mask
		}

		writeRaw(buf, idx, size, engine, code)
	}

	return IntegerResult{MinBits: minBits, MinVal: minVal}
}

// IntegerPostprocess is IntegerPreprocess's inverse: it restores original
// values from minbits-wide codes already unpacked into buf, given the
// chunk's recorded minval.
//
// It is the caller's responsibility to skip calling this when minbits ==
// kind.Bits() (full precision — the payload was copied verbatim). When
// minbits == 0 the buffer holds zero codes and every element is restored
// to minval.
func IntegerPostprocess(
	kind elemkind.Kind,
	buf []byte,
	nelmts int,
	engine endian.EndianEngine,
	fillDefined bool,
	fillBytes []byte,
	minBits int,
	minVal uint64,
) {
	size := kind.Size()
	bits := kind.Bits()
	mask := bitMask(bits)

	var fillRaw uint64
	if fillDefined {
		fillRaw = decodeFillRaw(fillBytes, size) & mask
	}

	sentinel := bitMask(minBits)

	for i := 0; i < nelmts; i++ {
		idx := i * size
		code := readRaw(buf, idx, size, engine)

		var raw uint64
		if fillDefined && code == sentinel {
			raw = fillRaw
		} else {
			raw = (code + minVal) & mask
		}

		writeRaw(buf, idx, size, engine, raw)
	}
}
