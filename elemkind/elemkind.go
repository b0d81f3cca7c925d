// Package elemkind derives the codec's internal element kind from the
// external element type descriptor (class, size, sign, byte order) that the
// surrounding container supplies.
//
// The derivation is a closed-set match, never reflection: a descriptor maps
// to exactly one of the ten supported element kinds, or derivation fails.
package elemkind

import (
	"fmt"

	"github.com/arloliu/scaleoffset/endian"
	"github.com/arloliu/scaleoffset/errs"
)

// Class identifies whether a descriptor names an integer or floating-point
// element type.
type Class uint8

const (
	ClassInteger Class = 0
	ClassFloat   Class = 1
)

func (c Class) String() string {
	if c == ClassFloat {
		return "float"
	}

	return "integer"
}

// Sign identifies two's-complement vs. unsigned representation. Meaningful
// only for ClassInteger.
type Sign uint8

const (
	SignUnsigned      Sign = 0
	SignTwosComplement Sign = 1
)

// Order identifies the byte order a descriptor's bytes are stored in.
type Order uint8

const (
	OrderLE Order = 0
	OrderBE Order = 1
)

// Engine returns the endian.EndianEngine matching this Order.
func (o Order) Engine() endian.EndianEngine {
	if o == OrderBE {
		return endian.GetBigEndianEngine()
	}

	return endian.GetLittleEndianEngine()
}

func (o Order) String() string {
	if o == OrderBE {
		return "big-endian"
	}

	return "little-endian"
}

// Descriptor is the external element type description the codec consumes:
// class, byte size, sign, and stored byte order.
type Descriptor struct {
	Class Class
	Size  int // byte size: 1, 2, 4, or 8
	Sign  Sign
	Order Order
}

// Kind is the internal, closed-set element kind the codec actually
// operates on. It is derived from a Descriptor's (Class, Size, Sign).
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindU16
	KindU32
	KindU64
	KindI8
	KindI16
	KindI32
	KindI64
	KindF32
	KindF64
)

func (k Kind) String() string {
	switch k {
	case KindU8:
		return "u8"
	case KindU16:
		return "u16"
	case KindU32:
		return "u32"
	case KindU64:
		return "u64"
	case KindI8:
		return "i8"
	case KindI16:
		return "i16"
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	default:
		return "invalid"
	}
}

// Size returns the byte width of the kind.
func (k Kind) Size() int {
	switch k {
	case KindU8, KindI8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32, KindF32:
		return 4
	case KindU64, KindI64, KindF64:
		return 8
	default:
		return 0
	}
}

// Bits returns 8*Size(), i.e. the full-precision bit width of the kind.
func (k Kind) Bits() int {
	return k.Size() * 8
}

// IsFloat reports whether the kind is a floating-point kind.
func (k Kind) IsFloat() bool {
	return k == KindF32 || k == KindF64
}

// IsInteger reports whether the kind is an integer kind.
func (k Kind) IsInteger() bool {
	return k != KindInvalid && !k.IsFloat()
}

// IsSigned reports whether the kind is a two's-complement signed integer
// kind. Meaningless for float kinds.
func (k Kind) IsSigned() bool {
	switch k {
	case KindI8, KindI16, KindI32, KindI64:
		return true
	default:
		return false
	}
}

// Derive maps a Descriptor to its internal Kind.
//
// can-apply-style validation (class and order membership) is the caller's
// responsibility; Derive itself only fails when the (class, size, sign)
// triple has no matching kind in the supported closed set.
func Derive(d Descriptor) (Kind, error) {
	switch d.Class {
	case ClassInteger:
		switch d.Size {
		case 1:
			if d.Sign == SignTwosComplement {
				return KindI8, nil
			}

			return KindU8, nil
		case 2:
			if d.Sign == SignTwosComplement {
				return KindI16, nil
			}

			return KindU16, nil
		case 4:
			if d.Sign == SignTwosComplement {
				return KindI32, nil
			}

			return KindU32, nil
		case 8:
			if d.Sign == SignTwosComplement {
				return KindI64, nil
			}

			return KindU64, nil
		default:
			return KindInvalid, fmt.Errorf("%w: integer size %d not in {1,2,4,8}", errs.ErrBadType, d.Size)
		}
	case ClassFloat:
		switch d.Size {
		case 4:
			return KindF32, nil
		case 8:
			return KindF64, nil
		default:
			return KindInvalid, fmt.Errorf("%w: float size %d not in {4,8}", errs.ErrBadType, d.Size)
		}
	default:
		return KindInvalid, fmt.Errorf("%w: class %d not in {Integer,Float}", errs.ErrBadType, d.Class)
	}
}

// CanApply reports whether the descriptor is one the filter can negotiate
// over: class must be Integer or Float, size must be positive, and order
// must be LE or BE. This mirrors the HDF5 filter pipeline's "can_apply"
// callback contract: it is a shallow membership check, not a full Derive.
func CanApply(d Descriptor) error {
	if d.Class != ClassInteger && d.Class != ClassFloat {
		return fmt.Errorf("%w: class %d", errs.ErrBadType, d.Class)
	}

	if d.Size <= 0 {
		return fmt.Errorf("%w: non-positive size %d", errs.ErrBadType, d.Size)
	}

	if d.Order != OrderLE && d.Order != OrderBE {
		return fmt.Errorf("%w: order %d", errs.ErrBadType, d.Order)
	}

	return nil
}
