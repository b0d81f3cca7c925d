// Package pipeline implements the scale-offset filter's per-chunk
// preprocess/postprocess step for every supported element kind.
//
// Rather than instantiating ten near-identical preprocess/postprocess
// pairs (one per elemkind.Kind, the way the original C source does via
// text-substitution macros), the integer side is implemented once, generic
// over bit width and signedness: every element is read as a zero-extended
// "raw" uint64 via the chunk's native-order endian.EndianEngine, and
// signed-vs-unsigned comparison is reduced to unsigned comparison of a
// sign-bit-flipped key. Two's-complement wraparound subtraction — which
// the original macros get for free from C's defined unsigned-overflow
// behavior — falls out of masking to the element's bit width, since Go's
// arithmetic on fixed-width unsigned types wraps the same way.
//
// The float side (D-scale only; fixed-minbits E-scale is rejected) has its
// own min/max scan and rescale-then-round step, and applies the same
// bit-width formula once the rescaled values are rounded (half away from
// zero) to integers.
package pipeline
