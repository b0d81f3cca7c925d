// Package scaleoffset provides a space-efficient, scale-offset compression
// filter for chunks of numeric array data, modeled on HDF5's H5Z_FILTER_SCALEOFFSET.
//
// Scale-offset compression removes redundancy a chunk's numeric range
// carries: integers are stored as an offset from their minimum value using
// only as many bits as the range requires, and floats are additionally
// rescaled by a fixed power of ten before the same bit-packing is applied
// (a lossy transform, bounded by the requested number of decimal digits).
//
// # Core Features
//
//   - Lossless integer packing: minimum-bits-per-element, offset from the
//     chunk's minimum value
//   - Lossy float packing: fixed decimal-digit precision via a D-scale
//     factor
//   - Fill-value awareness: a reserved sentinel code represents fill/missing
//     elements without needing a full-precision escape
//   - A 21-byte per-chunk header carrying the negotiated bit width and
//     minimum value, decoupled from the frozen per-dataset parameter block
//   - Optional second-stage byte compression (compress package) layered on
//     top of the packed payload
//
// # Basic Usage
//
// Negotiating parameters once per dataset and applying the filter per chunk:
//
//	import "github.com/arloliu/scaleoffset"
//
//	p, err := scaleoffset.Negotiate(scaleoffset.TypeDescriptor{
//	    Class: elemkind.ClassFloat, Size: 8, Order: elemkind.OrderLE,
//	}, scaleoffset.SpaceDescriptor{Nelmts: 1000}, scaleoffset.UserParams{
//	    ScaleType: params.ScaleFloatDScale, ScaleFactor: 2,
//	}, fillSource)
//
//	packed, err := scaleoffset.Compress(p, rawChunkBytes)
//	original, err := scaleoffset.Decompress(p, packed)
//
// # Package Structure
//
// This package wraps negotiate, filter, params, and registry for the common
// case of one dataset negotiated once and applied many times. For advanced
// usage (custom registries, direct parameter block construction), use those
// packages directly.
package scaleoffset

import (
	"github.com/arloliu/scaleoffset/elemkind"
	"github.com/arloliu/scaleoffset/filter"
	"github.com/arloliu/scaleoffset/negotiate"
	"github.com/arloliu/scaleoffset/params"
	"github.com/arloliu/scaleoffset/registry"
)

// Re-exported types so callers need only import this package for the
// common negotiate-then-apply workflow.
type (
	TypeDescriptor  = negotiate.TypeDescriptor
	SpaceDescriptor = negotiate.SpaceDescriptor
	UserParams      = negotiate.UserParams
	FillSource      = negotiate.FillSource
	Params          = params.Params
)

// Negotiate runs can-apply and set-local against a dataset's type, space,
// and fill information, returning the frozen parameter block to cache and
// replay on every chunk belonging to that dataset.
func Negotiate(typ TypeDescriptor, space SpaceDescriptor, user UserParams, fill FillSource) (Params, error) {
	return negotiate.SetLocal(typ, space, user, fill)
}

// Compress packs a chunk's raw element bytes using p's frozen parameters.
func Compress(p Params, raw []byte) ([]byte, error) {
	words := p.ToWords()

	return filter.Apply(filter.Compress, words[:], raw)
}

// Decompress restores a chunk's raw element bytes from a packed buffer
// produced by Compress using the same frozen parameters.
func Decompress(p Params, packed []byte) ([]byte, error) {
	words := p.ToWords()

	return filter.Apply(filter.Decompress, words[:], packed)
}

// NewRegistry returns an empty dataset parameter registry (see the
// registry package for freezing and looking up parameters by dataset name).
func NewRegistry() *registry.Registry {
	return registry.New()
}

// FilterID is the container-facing filter identity this codec registers
// under.
const FilterID = registry.FilterID

// ClassInteger and ClassFloat are re-exported for convenience when building
// a TypeDescriptor without importing the elemkind package directly.
const (
	ClassInteger = elemkind.ClassInteger
	ClassFloat   = elemkind.ClassFloat
)

// OrderLE and OrderBE are re-exported for convenience when building a
// TypeDescriptor without importing the elemkind package directly.
const (
	OrderLE = elemkind.OrderLE
	OrderBE = elemkind.OrderBE
)
