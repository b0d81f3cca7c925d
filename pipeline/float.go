package pipeline

import (
	"math"

	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/endian"
)

// FloatResult is the outcome of FloatPreprocess: the minbits and minval (the
// raw bit pattern of the chunk's minimum, reinterpreted as an integer of the
// same width) a chunk header must carry, and whether full precision was
// selected.
type FloatResult struct {
	MinBits       int
	MinVal        uint64
	FullPrecision bool
}

// roundHalfAwayFromZero implements H5Z_scaleoffset_rnd: ties round away from
// zero rather than to even, so -0.5 rounds to -1 and 0.5 rounds to 1.
func roundHalfAwayFromZero(val float64) float64 {
	if val >= 0 {
		return math.Floor(val + 0.5)
	}

	return math.Ceil(val - 0.5)
}

func bitsToFloat(size int, bits uint64) float64 {
	if size == 4 {
		return float64(math.Float32frombits(uint32(bits)))
	}

	return math.Float64frombits(bits)
}

func floatToBits(size int, v float64) uint64 {
	if size == 4 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(v)
}

// FloatPreprocess applies the D-scale rescale-then-round transform for float
// element kinds (KindF32, KindF64). buf holds nelmts native-order elements;
// it is rewritten in place with rescaled integer codes unless the result is
// FullPrecision.
//
// The fill-value match test follows the original algorithm's tolerance
// comparison (|x - fill| < 10^-D) rather than exact equality, since the
// rescale step is itself a lossy operation and a fill value need not survive
// a round trip bit-exact.
func FloatPreprocess(
	kind elemkind.Kind,
	buf []byte,
	nelmts int,
	engine endian.EndianEngine,
	fillDefined bool,
	fillBytes []byte,
	scaleFactor int32,
) FloatResult {
	size := kind.Size()
	bits := kind.Bits()
	pow := math.Pow(10, float64(scaleFactor))
	tol := math.Pow(10, -float64(scaleFactor))

	var fillVal float64
	if fillDefined {
		fillVal = bitsToFloat(size, decodeFillRaw(fillBytes, size))
	}

	isFill := func(v float64) bool {
		return fillDefined && math.Abs(v-fillVal) < tol
	}

	haveAny := false
	var minVal, maxVal float64

	for i := 0; i < nelmts; i++ {
		v := bitsToFloat(size, readRaw(buf, i*size, size, engine))
		if isFill(v) {
			continue
		}

		if !haveAny {
			haveAny = true
			minVal, maxVal = v, v

			continue
		}

		if v > maxVal {
			maxVal = v
		}
		if v < minVal {
			minVal = v
		}
	}

	if !haveAny {
		minVal, maxVal = 0, 0
	}

	diff := roundHalfAwayFromZero(maxVal*pow - minVal*pow)
	if diff > math.Pow(2, float64(bits-1)) {
		return FloatResult{MinBits: bits, MinVal: 0, FullPrecision: true}
	}

	span := uint64(diff) + 1

	var minBits int
	if fillDefined {
		minBits = log2(span + 1)
	} else {
		minBits = log2(span)
	}

	minValBits := floatToBits(size, minVal)

	if minBits == bits {
		return FloatResult{MinBits: minBits, MinVal: minValBits, FullPrecision: true}
	}

	sentinel := bitMask(minBits)

	for i := 0; i < nelmts; i++ {
		idx := i * size
		v := bitsToFloat(size, readRaw(buf, idx, size, engine))

		var code uint64
		if isFill(v) {
			code = sentinel
		} else {
			code = uint64(roundHalfAwayFromZero(v*pow - minVal*pow))
		}

		writeRaw(buf, idx, size, engine, code)
	}

	return FloatResult{MinBits: minBits, MinVal: minValBits}
}

// FloatPostprocess is FloatPreprocess's inverse: it restores original
// (rescaled, lossy) float values from minbits-wide codes already unpacked
// into buf, given the chunk's recorded minval.
//
// It is the caller's responsibility to skip calling this when minbits ==
// kind.Bits() (full precision — the payload was copied verbatim). When
// minbits == 0 the buffer holds zero codes and every element is restored
// to the chunk minimum.
func FloatPostprocess(
	kind elemkind.Kind,
	buf []byte,
	nelmts int,
	engine endian.EndianEngine,
	fillDefined bool,
	fillBytes []byte,
	minBits int,
	minVal uint64,
	scaleFactor int32,
) {
	size := kind.Size()
	pow := math.Pow(10, float64(scaleFactor))
	min := bitsToFloat(size, minVal)

	var fillRaw uint64
	if fillDefined {
		fillRaw = decodeFillRaw(fillBytes, size)
	}

	sentinel := bitMask(minBits)

	for i := 0; i < nelmts; i++ {
		idx := i * size
		code := readRaw(buf, idx, size, engine)

		var raw uint64
		if fillDefined && code == sentinel {
			raw = fillRaw
		} else {
			v := float64(code)/pow + min
			raw = floatToBits(size, v)
		}

		writeRaw(buf, idx, size, engine, raw)
	}
}
