package pipeline

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/endian"
)

func encodeU32(vals []uint32) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		engine.PutUint32(buf[i*4:i*4+4], v)
	}

	return buf
}

func decodeU32(buf []byte, n int) []uint32 {
	engine := endian.GetLittleEndianEngine()
	out := make([]uint32, n)
	for i := range out {
		out[i] = engine.Uint32(buf[i*4 : i*4+4])
	}

	return out
}

func TestIntegerPreprocess_NoFill_MinBitsAndCodes(t *testing.T) {
	vals := []uint32{1013, 1015, 1014, 1020, 1013}
	buf := encodeU32(vals)
	engine := endian.GetLittleEndianEngine()

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, false, nil, 0)
	require.False(t, res.FullPrecision)
	require.Equal(t, uint64(1013), res.MinVal)
	// span is 7 (1020-1013), so minbits must cover codes 0..7.
	require.Equal(t, 3, res.MinBits)

	codes := decodeU32(buf, len(vals))
	require.Equal(t, []uint32{0, 2, 1, 7, 0}, codes)
}

func TestIntegerRoundTrip_NoFill(t *testing.T) {
	vals := []uint32{1013, 1015, 1014, 1020, 1013}
	buf := encodeU32(vals)
	engine := endian.GetLittleEndianEngine()

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, false, nil, 0)
	IntegerPostprocess(elemkind.KindU32, buf, len(vals), engine, false, nil, res.MinBits, res.MinVal)

	require.Equal(t, vals, decodeU32(buf, len(vals)))
}

func TestIntegerPreprocess_WithFill_SentinelCode(t *testing.T) {
	vals := []uint32{10, 999, 12, 999, 11}
	buf := encodeU32(vals)
	engine := endian.GetLittleEndianEngine()

	fillBytes := make([]byte, 4)
	endian.GetLittleEndianEngine().PutUint32(fillBytes, 999)

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, true, fillBytes, 0)
	require.False(t, res.FullPrecision)
	require.Equal(t, uint64(10), res.MinVal)

	sentinel := uint32(1)<<uint(res.MinBits) - 1
	codes := decodeU32(buf, len(vals))
	require.Equal(t, sentinel, codes[1])
	require.Equal(t, sentinel, codes[3])
	require.Equal(t, uint32(0), codes[0])
	require.Equal(t, uint32(2), codes[2])
	require.Equal(t, uint32(1), codes[4])
}

func TestIntegerRoundTrip_WithFill(t *testing.T) {
	vals := []uint32{10, 999, 12, 999, 11}
	buf := encodeU32(vals)
	engine := endian.GetLittleEndianEngine()

	fillBytes := make([]byte, 4)
	endian.GetLittleEndianEngine().PutUint32(fillBytes, 999)

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, true, fillBytes, 0)
	IntegerPostprocess(elemkind.KindU32, buf, len(vals), engine, true, fillBytes, res.MinBits, res.MinVal)

	require.Equal(t, vals, decodeU32(buf, len(vals)))
}

func TestIntegerPreprocess_AllFill_Degenerate(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	vals := []uint32{7, 7, 7}
	buf := encodeU32(vals)

	fillBytes := make([]byte, 4)
	endian.GetLittleEndianEngine().PutUint32(fillBytes, 7)

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, true, fillBytes, 0)
	require.False(t, res.FullPrecision)
	require.Equal(t, uint64(0), res.MinVal)
}

func TestIntegerPreprocess_Signed_UsesSignBitFlipKey(t *testing.T) {
	// int32 values spanning zero: the signed min/max scan must treat -5 as
	// smaller than 10, not as a huge unsigned code.
	vals := []int32{-5, 0, 10, -3}
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		engine.PutUint32(buf[i*4:i*4+4], uint32(v))
	}

	res := IntegerPreprocess(elemkind.KindI32, buf, len(vals), engine, false, nil, 0)
	require.False(t, res.FullPrecision)
	require.Equal(t, uint64(uint32(int32(-5))), res.MinVal)

	codes := decodeU32(buf, len(vals))
	// span is 15 (10 - (-5)), needs 4 bits.
	require.Equal(t, 4, res.MinBits)
	require.Equal(t, []uint32{0, 5, 15, 2}, codes)
}

func TestIntegerPreprocess_Overflow_FullPrecision(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	vals := []uint64{0, ^uint64(0)}
	buf := make([]byte, 16)
	engine.PutUint64(buf[0:8], vals[0])
	engine.PutUint64(buf[8:16], vals[1])

	res := IntegerPreprocess(elemkind.KindU64, buf, 2, engine, false, nil, 0)
	require.True(t, res.FullPrecision)
	require.Equal(t, 64, res.MinBits)
}

func TestIntegerPreprocess_FixedMinBits(t *testing.T) {
	vals := []uint32{100, 101, 102}
	buf := encodeU32(vals)
	engine := endian.GetLittleEndianEngine()

	res := IntegerPreprocess(elemkind.KindU32, buf, len(vals), engine, false, nil, 5)
	require.Equal(t, 5, res.MinBits)
	require.Equal(t, uint64(100), res.MinVal)
}
