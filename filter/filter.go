// Package filter implements the scale-offset codec's top-level apply entry
// point: parameter validation, no-op short-circuiting, endian conversion,
// pipeline dispatch, header framing, and bit-packing, wired together the way
// blob's NumericEncoder/NumericDecoder wire their own columnar encoders
// around a single allocated output buffer. Compress's internal scratch
// buffer is drawn from internal/pool instead of a fresh make() per call,
// since it is read element-by-element and discarded, never returned to the
// caller.
package filter

import (
	"github.com/arloliu/scaleoffset/bitpack"
	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/endian"
	"github.com/arloliu/scaleoffset/errs"
	"github.com/arloliu/scaleoffset/header"
	"github.com/arloliu/scaleoffset/internal/pool"
	"github.com/arloliu/scaleoffset/params"
	"github.com/arloliu/scaleoffset/pipeline"
)

// Direction selects which half of the filter pipeline Apply runs.
type Direction uint8

const (
	Compress Direction = iota
	Decompress
)

// Apply runs the scale-offset filter in the given direction against buf,
// using the frozen 20-word parameter block words. It returns a
// freshly allocated buffer holding the result; the caller's buf is never
// mutated in place and is safe to discard on either success or failure.
func Apply(dir Direction, words []uint32, buf []byte) ([]byte, error) {
	p, err := params.FromWords(words)
	if err != nil {
		return nil, err
	}

	if p.Order != elemkind.OrderLE && p.Order != elemkind.OrderBE {
		return nil, errs.ErrBadEndianness
	}

	switch p.Class {
	case elemkind.ClassInteger:
		// Per the parameter block's scale_type domain, any value other
		// than the two float tags counts as IntMinBits.
		if p.ScaleType == params.ScaleFloatDScale || p.ScaleType == params.ScaleFloatEScale {
			return nil, errs.ErrBadValue
		}
		if p.ScaleFactor < 0 {
			p.ScaleFactor = 0
		}
	case elemkind.ClassFloat:
		if p.ScaleType != params.ScaleFloatDScale {
			return nil, errs.ErrBadValue
		}
	default:
		return nil, errs.ErrBadType
	}

	kind, err := elemkind.Derive(p.Descriptor())
	if err != nil {
		return nil, err
	}

	fixedMinBits := 0

	if p.Class == elemkind.ClassInteger {
		if p.ScaleFactor > int32(kind.Bits()) {
			return nil, errs.ErrBadValue
		}
		// A nonzero scale_factor in fixed-minbits mode fixes the bit
		// width up front: only the chunk minimum is scanned, and the
		// max-based bit-width calculation is skipped entirely.
		if p.ScaleFactor > 0 && p.ScaleFactor < int32(kind.Bits()) {
			fixedMinBits = int(p.ScaleFactor)
		}
	}

	// A scale_factor equal to the element's full bit width is a legal
	// no-op: nothing worth compressing, pass the buffer through.
	if p.ScaleFactor == int32(kind.Bits()) {
		out := make([]byte, len(buf))
		copy(out, buf)

		return out, nil
	}

	nativeOrder := elemkind.OrderLE
	if endian.IsNativeBigEndian() {
		nativeOrder = elemkind.OrderBE
	}
	needConvert := nativeOrder != p.Order
	nativeEngine := nativeOrder.Engine()

	nelmts := int(p.DNelmts)

	switch dir {
	case Compress:
		return compress(p, kind, nelmts, nativeEngine, needConvert, fixedMinBits, buf)
	case Decompress:
		return decompress(p, kind, nelmts, nativeEngine, needConvert, buf)
	default:
		return nil, errs.ErrBadValue
	}
}

func compress(
	p params.Params,
	kind elemkind.Kind,
	nelmts int,
	nativeEngine endian.EndianEngine,
	needConvert bool,
	fixedMinBits int,
	buf []byte,
) ([]byte, error) {
	size := kind.Size()
	bits := kind.Bits()

	rawLen := nelmts * size
	if len(buf) < rawLen {
		return nil, errs.ErrShortBuffer
	}

	// work is pure scratch: transformed in place and read element-by-element
	// into out below, never handed back to the caller, so it comes from the
	// pool instead of a fresh make() per call.
	wb := pool.GetChunkBuffer()
	defer pool.PutChunkBuffer(wb)
	wb.Grow(rawLen)
	wb.SetLength(rawLen)
	work := wb.B
	copy(work, buf[:rawLen])

	if needConvert {
		endian.SwapInPlace(work, size)
	}

	var minBits int
	var minVal uint64

	if kind.IsFloat() {
		res := pipeline.FloatPreprocess(kind, work, nelmts, nativeEngine, p.HasFill(), p.FillBytes[:], p.ScaleFactor)
		minBits, minVal = res.MinBits, res.MinVal
	} else {
		res := pipeline.IntegerPreprocess(kind, work, nelmts, nativeEngine, p.HasFill(), p.FillBytes[:], fixedMinBits)
		minBits, minVal = res.MinBits, res.MinVal
	}

	var payloadLen int
	switch {
	case minBits == bits:
		payloadLen = rawLen
	case minBits == 0:
		payloadLen = 0
	default:
		payloadLen = bitpack.PackedSize(nelmts, minBits)
	}

	out := make([]byte, header.Size+payloadLen)
	copy(out[:header.Size], header.New(uint32(minBits), minVal).Bytes())

	switch {
	case minBits == bits:
		copy(out[header.Size:], work)
	case minBits == 0:
		// No payload: every element equals minval, no fill.
	default:
		w := bitpack.NewWriter(out[header.Size:])
		for i := 0; i < nelmts; i++ {
			w.Write(readElement(work, i*size, size, nativeEngine), minBits)
		}
	}

	return out, nil
}

func decompress(
	p params.Params,
	kind elemkind.Kind,
	nelmts int,
	nativeEngine endian.EndianEngine,
	needConvert bool,
	buf []byte,
) ([]byte, error) {
	if len(buf) < header.Size {
		return nil, errs.ErrShortBuffer
	}

	h, err := header.Parse(buf[:header.Size])
	if err != nil {
		return nil, err
	}

	size := kind.Size()
	bits := kind.Bits()
	minBits := int(h.MinBits)

	rawLen := nelmts * size
	work := make([]byte, rawLen)
	payload := buf[header.Size:]

	switch {
	case minBits == bits:
		if len(payload) < rawLen {
			return nil, errs.ErrShortBuffer
		}
		copy(work, payload[:rawLen])
	case minBits == 0:
		// Every element equals minval; work is already zeroed.
	default:
		needed := bitpack.PackedSize(nelmts, minBits)
		if len(payload) < needed {
			return nil, errs.ErrShortBuffer
		}

		r := bitpack.NewReader(payload)
		for i := 0; i < nelmts; i++ {
			writeElement(work, i*size, size, nativeEngine, r.Read(minBits))
		}
	}

	// Full precision means the payload was already the raw native-order
	// values; there is nothing for the pipeline to invert.
	if minBits != bits {
		if kind.IsFloat() {
			pipeline.FloatPostprocess(kind, work, nelmts, nativeEngine, p.HasFill(), p.FillBytes[:], minBits, h.MinVal, p.ScaleFactor)
		} else {
			pipeline.IntegerPostprocess(kind, work, nelmts, nativeEngine, p.HasFill(), p.FillBytes[:], minBits, h.MinVal)
		}
	}

	if needConvert {
		endian.SwapInPlace(work, size)
	}

	return work, nil
}

// readElement and writeElement mirror pipeline's own raw element accessors;
// the filter package only ever deals in whole elements already reduced to
// codes that fit within minbits, so it does not need pipeline's masking or
// sign-aware machinery.
func readElement(buf []byte, idx, size int, engine endian.EndianEngine) uint64 {
	switch size {
	case 1:
		return uint64(buf[idx])
	case 2:
		return uint64(engine.Uint16(buf[idx : idx+2]))
	case 4:
		return uint64(engine.Uint32(buf[idx : idx+4]))
	default:
		return engine.Uint64(buf[idx : idx+8])
	}
}

func writeElement(buf []byte, idx, size int, engine endian.EndianEngine, v uint64) {
	switch size {
	case 1:
		buf[idx] = byte(v)
	case 2:
		engine.PutUint16(buf[idx:idx+2], uint16(v))
	case 4:
		engine.PutUint32(buf[idx:idx+4], uint32(v))
	default:
		engine.PutUint64(buf[idx:idx+8], v)
	}
}
