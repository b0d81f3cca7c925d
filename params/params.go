// Package params models the scale-offset filter's negotiated parameter
// block: the 20-word structure a container freezes once per dataset and
// replays on every chunk.
package params

import (
	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/errs"
)

// ScaleType selects how a chunk's bit width is determined.
type ScaleType uint32

const (
	// ScaleFloatDScale rescales floats by 10^D before bit-packing.
	ScaleFloatDScale ScaleType = 0
	// ScaleFloatEScale is a reserved tag for a fixed-minimum-bits float
	// mode that this codec never implements.
	ScaleFloatEScale ScaleType = 1
	// ScaleIntMinBits computes (or accepts a fixed) minbits for integers.
	// Any value other than 0 or 1 selects this for the Integer class.
	ScaleIntMinBits ScaleType = 2
)

// FillState records whether the dataset has a fill value.
type FillState uint32

const (
	FillUndefined FillState = 0
	FillDefined   FillState = 1
)

// WordCount is the fixed size of the parameter block, in 32-bit words:
// 8 user/local words (indices 0..7) plus 12 words (indices 8..19), each
// holding one byte of the 12-byte fill region.
const WordCount = 20

// fillBytesLen is the number of little-endian bytes reserved for the fill
// value, sufficient for every supported width up to 64-bit.
const fillBytesLen = 12

// Params is the frozen, per-dataset parameter block.
type Params struct {
	ScaleType   ScaleType
	ScaleFactor int32

	DNelmts uint32

	Class elemkind.Class
	Size  int
	Sign  elemkind.Sign
	Order elemkind.Order // stored_order

	FillState FillState
	FillBytes [fillBytesLen]byte
}

// Descriptor extracts the elemkind.Descriptor this block describes.
func (p Params) Descriptor() elemkind.Descriptor {
	return elemkind.Descriptor{Class: p.Class, Size: p.Size, Sign: p.Sign, Order: p.Order}
}

// ToWords serializes Params into the 20-word parameter block.
func (p Params) ToWords() [WordCount]uint32 {
	var w [WordCount]uint32

	w[0] = uint32(p.ScaleType)
	w[1] = uint32(p.ScaleFactor)
	w[2] = p.DNelmts
	w[3] = uint32(p.Class)
	w[4] = uint32(p.Size)
	w[5] = uint32(p.Sign)
	w[6] = uint32(p.Order)
	w[7] = uint32(p.FillState)

	for i := 0; i < fillBytesLen; i++ {
		w[8+i] = uint32(p.FillBytes[i])
	}

	return w
}

// FromWords parses a 20-word parameter block into Params.
//
// Returns errs.ErrBadParameterCount if words does not contain exactly
// WordCount entries.
func FromWords(words []uint32) (Params, error) {
	if len(words) != WordCount {
		return Params{}, errs.ErrBadParameterCount
	}

	p := Params{
		ScaleType:   ScaleType(words[0]),
		ScaleFactor: int32(words[1]), //nolint:gosec // stored as unsigned bits in the word block
		DNelmts:     words[2],
		Class:       elemkind.Class(words[3]),
		Size:        int(words[4]),
		Sign:        elemkind.Sign(words[5]),
		Order:       elemkind.Order(words[6]),
		FillState:   FillState(words[7]),
	}

	for i := 0; i < fillBytesLen; i++ {
		p.FillBytes[i] = byte(words[8+i])
	}

	return p, nil
}

// HasFill reports whether the dataset has a defined fill value.
func (p Params) HasFill() bool {
	return p.FillState == FillDefined
}
