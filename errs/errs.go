// Package errs defines the sentinel error values returned by the scaleoffset
// codec and its supporting packages.
//
// Callers should compare against these with errors.Is, since call sites
// frequently wrap them with additional context via fmt.Errorf("...: %w", ...).
package errs

import "errors"

var (
	// ErrBadParameterCount is returned when the parameter block does not
	// contain exactly 20 words.
	ErrBadParameterCount = errors.New("scaleoffset: parameter block must contain 20 words")

	// ErrBadType is returned when the element class/size/sign/order
	// combination has no matching element kind, or the type class/order
	// is outside the supported set.
	ErrBadType = errors.New("scaleoffset: unsupported element type")

	// ErrBadValue is returned when scale_factor exceeds 8*size in
	// fixed-minbits mode, or scale_type selects the reserved E-scale tag.
	ErrBadValue = errors.New("scaleoffset: invalid scale_factor or scale_type")

	// ErrBadEndianness is returned when the parameter block's stored byte
	// order is neither little-endian nor big-endian.
	ErrBadEndianness = errors.New("scaleoffset: unrecognized native byte order")

	// ErrOutOfMemory is returned when output buffer allocation fails.
	ErrOutOfMemory = errors.New("scaleoffset: output buffer allocation failed")

	// ErrFillGetFailed is returned when the container could not supply
	// the dataset fill value at set-local time.
	ErrFillGetFailed = errors.New("scaleoffset: failed to fetch fill value from container")

	// ErrInvalidHeaderSize is returned when a chunk header is shorter than
	// header.Size bytes.
	ErrInvalidHeaderSize = errors.New("scaleoffset: invalid chunk header size")

	// ErrShortBuffer is returned when a compressed buffer is too short to
	// contain the declared header or payload.
	ErrShortBuffer = errors.New("scaleoffset: buffer too short")

	// ErrUnknownCompression is returned by the second-stage compressor
	// registry for an unrecognized compression type.
	ErrUnknownCompression = errors.New("scaleoffset: unknown compression type")

	// ErrUnknownDataset is returned by the registry when a dataset has no
	// frozen parameters cached.
	ErrUnknownDataset = errors.New("scaleoffset: no parameters registered for dataset")
)
