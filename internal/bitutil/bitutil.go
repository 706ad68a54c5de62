// Package bitutil computes field masks over little-endian byte buffers:
// byte 0 of a buffer holds bits 0-7, the least significant bits.
package bitutil

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// FillOnes sets every byte of buf to 0xff.
func FillOnes(buf []byte) {
	for i := range buf {
		buf[i] = 0xff
	}
}

// ShiftLeft shifts buf, treated as a single little-endian unsigned integer,
// left by n bits. Bits shifted beyond the top byte are lost, vacated low
// bits become zero. Panics if n is negative.
func ShiftLeft(buf []byte, n int) {
	if n < 0 {
		panic("bitutil: negative shift count")
	}
	if n == 0 || len(buf) == 0 {
		return
	}
	if byteShift := n / 8; byteShift > 0 {
		if byteShift >= len(buf) {
			clear(buf)
			return
		}
		copy(buf[byteShift:], buf[:len(buf)-byteShift])
		clear(buf[:byteShift])
		n %= 8
	}
	if n == 0 {
		return
	}
	var carry byte
	for i, b := range buf {
		buf[i] = b<<n | carry
		carry = b >> (8 - n)
	}
}

// OnesMask sets buf to the little-endian representation of (1<<n)-1,
// the low n bits set, the rest clear. n greater than the buffer width
// fills the whole buffer. Panics if n is negative.
func OnesMask(buf []byte, n int) {
	if n < 0 {
		panic("bitutil: negative bit count")
	}
	if n > len(buf)*8 {
		n = len(buf) * 8
	}
	full := n / 8
	for i := range buf {
		if i < full {
			buf[i] = 0xff
		} else {
			buf[i] = 0
		}
	}
	if rem := n % 8; rem != 0 {
		buf[full] = 1<<rem - 1
	}
}

// Mask fills buf with the mask of a field 'length' bits wide starting at bit
// 'offset'. The result does not depend on the previous contents of buf.
// Inputs outside the buffer are tolerated: length is clamped to the buffer
// width, and a negative offset drops the bits of the field that would fall
// below bit 0, leaving the buffer all-zero if nothing remains.
// Buffers of machine-word sizes are computed in a single integer.
func Mask(buf []byte, offset, length int) {
	switch len(buf) {
	case 1:
		buf[0] = scalarMask[uint8](offset, length, 8)
	case 2:
		binary.LittleEndian.PutUint16(buf, scalarMask[uint16](offset, length, 16))
	case 4:
		binary.LittleEndian.PutUint32(buf, scalarMask[uint32](offset, length, 32))
	case 8:
		binary.LittleEndian.PutUint64(buf, scalarMask[uint64](offset, length, 64))
	default:
		maskBytes(buf, offset, length)
	}
}

// maskBytes is the byte-loop path for buffer sizes without a machine type.
func maskBytes(buf []byte, offset, length int) {
	total := len(buf) * 8
	if length > total {
		length = total
	}
	if offset < 0 {
		if length += offset; length <= 0 {
			clear(buf)
			return
		}
		OnesMask(buf, length)
		return
	}
	if length == total {
		FillOnes(buf)
	} else {
		OnesMask(buf, length)
	}
	ShiftLeft(buf, offset)
}

func scalarMask[T constraints.Unsigned](offset, length, width int) T {
	if length > width {
		length = width
	}
	if offset < 0 {
		length += offset
		offset = 0
	}
	if length <= 0 {
		return 0
	}
	ones := ^T(0)
	if length < width {
		ones = T(1)<<length - 1
	}
	return ones << offset
}
