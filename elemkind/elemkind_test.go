package elemkind

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDerive_Integer(t *testing.T) {
	cases := []struct {
		size int
		sign Sign
		want Kind
	}{
		{1, SignUnsigned, KindU8},
		{1, SignTwosComplement, KindI8},
		{2, SignUnsigned, KindU16},
		{2, SignTwosComplement, KindI16},
		{4, SignUnsigned, KindU32},
		{4, SignTwosComplement, KindI32},
		{8, SignUnsigned, KindU64},
		{8, SignTwosComplement, KindI64},
	}

	for _, c := range cases {
		got, err := Derive(Descriptor{Class: ClassInteger, Size: c.size, Sign: c.sign})
		require.NoError(t, err)
		require.Equal(t, c.want, got)
	}
}

func TestDerive_Float(t *testing.T) {
	got, err := Derive(Descriptor{Class: ClassFloat, Size: 4})
	require.NoError(t, err)
	require.Equal(t, KindF32, got)

	got, err = Derive(Descriptor{Class: ClassFloat, Size: 8})
	require.NoError(t, err)
	require.Equal(t, KindF64, got)
}

func TestDerive_RejectsUnsupportedIntegerSize(t *testing.T) {
	_, err := Derive(Descriptor{Class: ClassInteger, Size: 3})
	require.Error(t, err)
}

func TestDerive_RejectsUnsupportedFloatSize(t *testing.T) {
	_, err := Derive(Descriptor{Class: ClassFloat, Size: 2})
	require.Error(t, err)
}

func TestDerive_RejectsUnknownClass(t *testing.T) {
	_, err := Derive(Descriptor{Class: Class(9), Size: 4})
	require.Error(t, err)
}

func TestKind_SizeAndBits(t *testing.T) {
	require.Equal(t, 1, KindU8.Size())
	require.Equal(t, 8, KindU8.Bits())
	require.Equal(t, 4, KindF32.Size())
	require.Equal(t, 32, KindF32.Bits())
	require.Equal(t, 8, KindF64.Size())
	require.Equal(t, 64, KindF64.Bits())
	require.Equal(t, 0, KindInvalid.Size())
}

func TestKind_IsFloatIsIntegerIsSigned(t *testing.T) {
	require.True(t, KindF32.IsFloat())
	require.True(t, KindF64.IsFloat())
	require.False(t, KindU32.IsFloat())

	require.True(t, KindU32.IsInteger())
	require.True(t, KindI32.IsInteger())
	require.False(t, KindF32.IsInteger())
	require.False(t, KindInvalid.IsInteger())

	require.True(t, KindI32.IsSigned())
	require.False(t, KindU32.IsSigned())
	require.False(t, KindF32.IsSigned())
}

func TestCanApply(t *testing.T) {
	require.NoError(t, CanApply(Descriptor{Class: ClassInteger, Size: 4, Order: OrderLE}))
	require.NoError(t, CanApply(Descriptor{Class: ClassFloat, Size: 8, Order: OrderBE}))

	require.Error(t, CanApply(Descriptor{Class: Class(9), Size: 4, Order: OrderLE}))
	require.Error(t, CanApply(Descriptor{Class: ClassInteger, Size: 0, Order: OrderLE}))
	require.Error(t, CanApply(Descriptor{Class: ClassInteger, Size: 4, Order: Order(9)}))
}

func TestOrder_EngineAndString(t *testing.T) {
	require.Equal(t, "little-endian", OrderLE.String())
	require.Equal(t, "big-endian", OrderBE.String())
	require.NotNil(t, OrderLE.Engine())
	require.NotNil(t, OrderBE.Engine())
}

func TestClass_String(t *testing.T) {
	require.Equal(t, "integer", ClassInteger.String())
	require.Equal(t, "float", ClassFloat.String())
}

func TestKind_String(t *testing.T) {
	require.Equal(t, "u8", KindU8.String())
	require.Equal(t, "i64", KindI64.String())
	require.Equal(t, "f32", KindF32.String())
	require.Equal(t, "invalid", KindInvalid.String())
}
