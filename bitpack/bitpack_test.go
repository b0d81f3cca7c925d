package bitpack

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackedSize(t *testing.T) {
	require.Equal(t, 2, PackedSize(5, 2))  // ceil(10/8)=2
	require.Equal(t, 0, PackedSize(5, 0))
	require.Equal(t, 8, PackedSize(1, 64))
}

func TestWriteRead_S1FromSpec(t *testing.T) {
	// Golden bit pattern: codes [0,1,0,2,1], minbits=2.
	// Concatenated MSB-first: 00 01 00 10 01 -> 0001001001 -> 0x12, 0x40 (6 trailing zero bits).
	codes := []uint64{0, 1, 0, 2, 1}
	dst := make([]byte, PackedSize(len(codes), 2))
	w := NewWriter(dst)
	for _, c := range codes {
		w.Write(c, 2)
	}
	require.Equal(t, []byte{0x12, 0x40}, dst)

	r := NewReader(dst)
	for _, want := range codes {
		require.Equal(t, want, r.Read(2))
	}
}

func TestWriteRead_RoundTripVariousWidths(t *testing.T) {
	for _, minbits := range []int{1, 2, 3, 5, 7, 8, 9, 13, 16, 31, 32, 63, 64} {
		codes := make([]uint64, 37)
		max := uint64(1)<<uint(minbits) - 1
		if minbits == 64 {
			max = ^uint64(0)
		}
		for i := range codes {
			codes[i] = (uint64(i) * 2654435761) % (max + 1)
		}

		dst := make([]byte, PackedSize(len(codes), minbits))
		w := NewWriter(dst)
		for _, c := range codes {
			w.Write(c, minbits)
		}

		r := NewReader(dst)
		for i, want := range codes {
			require.Equalf(t, want, r.Read(minbits), "minbits=%d index=%d", minbits, i)
		}
	}
}

func TestWrite_TrailingBitsAreZero(t *testing.T) {
	dst := make([]byte, PackedSize(3, 3)) // 9 bits -> 2 bytes, 7 trailing zero bits
	w := NewWriter(dst)
	w.Write(0b111, 3)
	w.Write(0b111, 3)
	w.Write(0b111, 3)
	// bits: 11111111 1 0000000 -> 0xFF, 0x80
	require.Equal(t, []byte{0xFF, 0x80}, dst)
}

func TestReadWrite_ZeroWidthIsNoOp(t *testing.T) {
	dst := make([]byte, 0)
	w := NewWriter(dst)
	w.Write(123, 0) // must not panic or touch dst

	r := NewReader(nil)
	require.EqualValues(t, 0, r.Read(0))
}
