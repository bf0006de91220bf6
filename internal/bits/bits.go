// Package bits implements the bit-level primitives used by the chunk codec
// and the container image: mask generation, bit-field extraction, 24-bit
// integer conversion and left justification.
package bits

import mathbits "math/bits"

// Uint constrains the integer widths the primitives operate on.
type Uint interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Mask returns a value with the low length bits set to 1. If inverted is
// true, the complement is returned instead (every bit set except the low
// length bits). length must not exceed the width of T.
func Mask[T Uint](length uint, inverted bool) T {
	normal := T(1)<<length - 1
	if inverted {
		return ^normal
	}
	return normal
}

// GetBits extracts length bits from source starting at bit position, where
// position 0 is the most significant bit, and returns them right-justified.
// position+length must not exceed the width of T.
func GetBits[T Uint](source T, position, length uint) T {
	shift := width[T]() - position - length
	return (source >> shift) & Mask[T](length, false)
}

func width[T Uint]() uint {
	return uint(mathbits.Len64(uint64(^T(0))))
}

// BytesToUint24 composes 3 bytes into a 24-bit integer, big-endian: b[0]
// becomes the most significant byte. The top byte of the result is always
// zero.
func BytesToUint24(b [3]byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

// Uint24ToBytes is the inverse of BytesToUint24. Bits above bit 23 are
// silently discarded.
func Uint24ToBytes(v uint32) [3]byte {
	return [3]byte{byte(v >> 16), byte(v >> 8), byte(v)}
}

// LeftJustify shifts the dataLength meaningful low bits of data up to the
// top of a 24-bit field and serializes it to 3 bytes. dataLength must be at
// most 24.
func LeftJustify(data uint32, dataLength uint8) [3]byte {
	return Uint24ToBytes(data << (24 - uint(dataLength)))
}
