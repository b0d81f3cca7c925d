// Package negotiate implements the scale-offset filter's container-facing
// negotiation step: can-apply, which checks a type descriptor fits the
// codec at all, and set-local, which freezes a per-dataset params.Params
// block from the type, dataspace, and fill-value information the container
// supplies.
package negotiate

import (
	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/endian"
	"github.com/arloliu/scaleoffset/errs"
	"github.com/arloliu/scaleoffset/params"
)

// TypeDescriptor is the subset of a container's type information the
// negotiator needs.
type TypeDescriptor struct {
	Class elemkind.Class
	Size  int
	Sign  elemkind.Sign
	Order elemkind.Order
}

// SpaceDescriptor is the subset of a container's dataspace information the
// negotiator needs: only the chunk's element count matters here.
type SpaceDescriptor struct {
	Nelmts uint32
}

// FillSource supplies the container's fill-value state for a dataset.
// GetFillValue returns (bytes, true, nil) when a fill value is defined;
// (nil, false, nil) when the dataset has none; and a non-nil error only
// when the container itself failed to answer the question.
type FillSource interface {
	GetFillValue() (bytes []byte, defined bool, err error)
}

// UserParams carries the caller-supplied knobs that set-local copies
// verbatim into the frozen block: the scale type/factor pair. For integers
// a scale factor strictly between 0 and the element's bit width is the fixed
// minbits; a scale factor of 0 leaves minbits to be derived per chunk.
type UserParams struct {
	ScaleType   params.ScaleType
	ScaleFactor int32
}

// CanApply reports whether d names a type the codec supports at all: class
// must be Integer or Float, size must be positive, and order must be LE or
// BE, otherwise it returns errs.ErrBadType. It does not check that the
// (class, size, sign, order) combination maps to one of the ten concrete
// element kinds — that is set-local's job.
func CanApply(d TypeDescriptor) error {
	switch d.Class {
	case elemkind.ClassInteger, elemkind.ClassFloat:
	default:
		return errs.ErrBadType
	}

	if d.Size <= 0 {
		return errs.ErrBadType
	}

	switch d.Order {
	case elemkind.OrderLE, elemkind.OrderBE:
	default:
		return errs.ErrBadType
	}

	return nil
}

// SetLocal freezes a params.Params block for one dataset: it copies the
// type and scale knobs, reads the chunk element count from space, and
// queries fill for the dataset's fill value.
//
// FillSource is expected to return fill bytes in the dataset's stored byte
// order (t.Order); SetLocal decodes them through that order and re-encodes
// the resulting magnitude canonically little-endian, since the fill region
// is always little-endian regardless of the dataset's stored order and the
// pipeline's fill comparisons only ever decode it that way. This sidesteps
// the reference implementation's byte-swap-then-shift trick (which
// piggybacks on the host's native shift semantics) with a byte-order decode
// that is correct independent of host endianness.
func SetLocal(t TypeDescriptor, space SpaceDescriptor, user UserParams, fill FillSource) (params.Params, error) {
	if err := CanApply(t); err != nil {
		return params.Params{}, err
	}

	desc := elemkind.Descriptor{Class: t.Class, Size: t.Size, Sign: t.Sign, Order: t.Order}
	if _, err := elemkind.Derive(desc); err != nil {
		return params.Params{}, err
	}

	p := params.Params{
		ScaleType:   user.ScaleType,
		ScaleFactor: user.ScaleFactor,
		DNelmts:     space.Nelmts,
		Class:       t.Class,
		Size:        t.Size,
		Sign:        t.Sign,
		Order:       t.Order,
	}

	fillBytes, defined, err := fill.GetFillValue()
	if err != nil {
		return params.Params{}, errs.ErrFillGetFailed
	}

	if defined {
		p.FillState = params.FillDefined

		magnitude := decodeByOrder(fillBytes, t.Size, t.Order.Engine())
		endian.GetLittleEndianEngine().PutUint64(p.FillBytes[:8], magnitude)
	}

	return p, nil
}

// decodeByOrder reads the low size bytes of data as a zero-extended
// uint64, using engine for multi-byte widths.
func decodeByOrder(data []byte, size int, engine endian.EndianEngine) uint64 {
	switch size {
	case 1:
		return uint64(data[0])
	case 2:
		return uint64(engine.Uint16(data[:2]))
	case 4:
		return uint64(engine.Uint32(data[:4]))
	default:
		return engine.Uint64(data[:8])
	}
}
