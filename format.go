// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package floatfmt describes the binary storage layout of IEEE-754-style
// floating-point encodings. A Format records where the sign, exponent, and
// mantissa fields live inside a fixed-width buffer, and derives the byte
// masks that isolate each field, so that parsers, codecs, and debuggers can
// pick raw bit patterns apart without hard-coding a width.
// Bits are counted from bit 0, the least significant bit of the storage,
// and mask buffers are little-endian: byte 0 holds bits 0-7.
package floatfmt

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/avdva/floatfmt/internal/bitutil"
)

// Radix is the numeral base an encoding represents.
type Radix uint8

const (
	// Binary is a base-2 encoding.
	Binary Radix = 2
	// Decimal is a base-10 encoding.
	Decimal Radix = 10
)

// String returns a human-readable radix name.
func (r Radix) String() string {
	switch r {
	case Binary:
		return "binary"
	case Decimal:
		return "decimal"
	}
	return fmt.Sprintf("radix(%d)", uint8(r))
}

var (
	// ErrOffsetRange is returned when a field's bit offset is negative.
	ErrOffsetRange = errors.New("offset out of range")
	// ErrLengthRange is returned when a field's bit length is negative.
	ErrLengthRange = errors.New("length out of range")
	// ErrIndexRange is returned when a field runs past the end of the format.
	ErrIndexRange = errors.New("index out of range")
)

type fieldError struct {
	field string
	err   error
}

func newFieldError(field string, err error) *fieldError {
	return &fieldError{field: field, err: err}
}

func (fe *fieldError) Error() string {
	return fe.field + " field: " + fe.err.Error()
}

func (fe *fieldError) Unwrap() error {
	return fe.err
}

// Field is a contiguous run of bits within a format.
// Offset counts from bit 0 upward.
type Field struct {
	Offset int
	Length int
}

func (f Field) validate(name string, bitSize int) error {
	if f.Offset < 0 {
		return newFieldError(name, ErrOffsetRange)
	}
	if f.Length < 0 {
		return newFieldError(name, ErrLengthRange)
	}
	if f.Offset+f.Length > bitSize {
		return newFieldError(name, ErrIndexRange)
	}
	return nil
}

// Format is an immutable description of one floating-point encoding's layout.
// A Format is created once by New and never changes afterwards, so the
// package-level presets may be read concurrently without synchronization.
type Format struct {
	radix Radix
	size  int
	name  string

	sign     Field
	exponent Field
	mantissa Field

	signMask     []byte
	exponentMask []byte
	mantissaMask []byte
}

// New returns a format for given radix, storage size in bytes, and sign,
// exponent, and mantissa fields. All three fields are validated against the
// total bit width before any mask is computed: a negative offset fails with
// ErrOffsetRange, a negative length with ErrLengthRange, and a field running
// past the end of the storage with ErrIndexRange. Construction is
// all-or-nothing; on error the zero Format is returned.
// Fields are not checked against each other, overlapping fields are accepted.
func New(radix Radix, byteSize int, sign, exponent, mantissa Field, name string) (Format, error) {
	bitSize := byteSize * 8
	for _, f := range []struct {
		name  string
		field Field
	}{
		{"sign", sign},
		{"exponent", exponent},
		{"mantissa", mantissa},
	} {
		if err := f.field.validate(f.name, bitSize); err != nil {
			return Format{}, err
		}
	}
	result := Format{
		radix:        radix,
		size:         byteSize,
		name:         name,
		sign:         sign,
		exponent:     exponent,
		mantissa:     mantissa,
		signMask:     make([]byte, byteSize),
		exponentMask: make([]byte, byteSize),
		mantissaMask: make([]byte, byteSize),
	}
	bitutil.Mask(result.signMask, sign.Offset, sign.Length)
	bitutil.Mask(result.exponentMask, exponent.Offset, exponent.Length)
	bitutil.Mask(result.mantissaMask, mantissa.Offset, mantissa.Length)
	return result, nil
}

// Radix returns the encoding's numeral base.
func (f Format) Radix() Radix {
	return f.radix
}

// ByteSize returns the storage width in bytes.
func (f Format) ByteSize() int {
	return f.size
}

// BitSize returns the storage width in bits.
func (f Format) BitSize() int {
	return f.size * 8
}

// Name returns the format's label.
func (f Format) Name() string {
	return f.name
}

// Sign returns the sign field spec.
func (f Format) Sign() Field {
	return f.sign
}

// Exponent returns the exponent field spec.
func (f Format) Exponent() Field {
	return f.exponent
}

// Mantissa returns the mantissa field spec.
func (f Format) Mantissa() Field {
	return f.mantissa
}

// SignMask returns a copy of the sign field's mask,
// ByteSize() bytes, little-endian.
func (f Format) SignMask() []byte {
	return bytes.Clone(f.signMask)
}

// ExponentMask returns a copy of the exponent field's mask.
func (f Format) ExponentMask() []byte {
	return bytes.Clone(f.exponentMask)
}

// MantissaMask returns a copy of the mantissa field's mask.
func (f Format) MantissaMask() []byte {
	return bytes.Clone(f.mantissaMask)
}

// Mask returns the bitwise OR of the three field masks: every bit position
// occupied by some field. Bits clear in the result are padding.
func (f Format) Mask() []byte {
	res := make([]byte, f.size)
	for i := range res {
		res[i] = f.signMask[i] | f.exponentMask[i] | f.mantissaMask[i]
	}
	return res
}

// String returns the format's name.
func (f Format) String() string {
	return f.name
}

// GoString returns debug string representation.
func (f Format) GoString() string {
	return f.name + fmt.Sprintf(" {%v, %d bits, sign %d/%d, exp %d/%d, mant %d/%d}",
		f.radix, f.size*8,
		f.sign.Offset, f.sign.Length,
		f.exponent.Offset, f.exponent.Length,
		f.mantissa.Offset, f.mantissa.Length)
}

type fieldJSON struct {
	O int `json:"o"`
	L int `json:"l"`
}

type formatJSON struct {
	Name  string    `json:"name"`
	Radix Radix     `json:"radix"`
	Size  int       `json:"size"`
	Sign  fieldJSON `json:"sign"`
	Exp   fieldJSON `json:"exp"`
	Mant  fieldJSON `json:"mant"`
}

// MarshalJSON marshals the layout as an object with per-field offset and
// length, like `{"name":"Half","radix":2,"size":2,"sign":{"o":15,"l":1},...}`.
// Masks are not serialized, they are derived on unmarshaling.
func (f Format) MarshalJSON() ([]byte, error) {
	return json.Marshal(formatJSON{
		Name:  f.name,
		Radix: f.radix,
		Size:  f.size,
		Sign:  fieldJSON{O: f.sign.Offset, L: f.sign.Length},
		Exp:   fieldJSON{O: f.exponent.Offset, L: f.exponent.Length},
		Mant:  fieldJSON{O: f.mantissa.Offset, L: f.mantissa.Length},
	})
}

// UnmarshalJSON unmarshals a layout object and rebuilds the format through
// New, so the layout is revalidated and the masks recomputed.
func (f *Format) UnmarshalJSON(data []byte) error {
	var d formatJSON
	if err := json.Unmarshal(data, &d); err != nil {
		return err
	}
	parsed, err := New(d.Radix, d.Size,
		Field{Offset: d.Sign.O, Length: d.Sign.L},
		Field{Offset: d.Exp.O, Length: d.Exp.L},
		Field{Offset: d.Mant.O, Length: d.Mant.L},
		d.Name)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
