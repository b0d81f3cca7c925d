// Package bitpack is a serial, MSB-first bit-level writer/reader over a
// byte stream.
//
// It packs a sequence of fixed-width codes — each 0 <= code < 2^minbits —
// into the minimum number of bytes, and unpacks them again. This is the
// scale-offset filter's final (resp. first) step on compression (resp.
// decompression): by the time a code reaches Writer.Write, the pipeline has
// already translated it into the minbits-wide range the header declares.
//
// Writer and Reader both work directly against a caller-owned slice; they
// perform no allocation of their own, matching the filter's single
// allocation per direction.
package bitpack
