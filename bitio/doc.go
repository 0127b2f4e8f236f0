// Package bitio provides the sub-byte-granularity bit workspace shared by the
// Gorilla and Entropy codecs.
//
// A workspace wraps a single io.Writer or io.Reader and maintains an unsigned
// accumulator twice the width of the values the owning codec operates on (64
// bits for 32-bit values, 128 bits for 64-bit values). Bits are packed
// LSB-first within each byte; multi-byte groups are flushed and loaded in
// native little-endian order. A workspace is owned by exactly one encoder or
// decoder for the lifetime of a single stream.
//
// Writer32/Reader32 and Writer64/Reader64 are two hand-written variants
// rather than a single generic type: the 64-bit value width needs a genuine
// 128-bit accumulator (uint128, see uint128.go), which Go cannot express as
// a built-in integer sharing shift/mask code with the 32-bit path's plain
// uint64 accumulator.
package bitio
