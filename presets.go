// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatfmt

// The five standard binary interchange layouts. Field offsets and lengths
// are kept exactly as in the reference tables this package replicates;
// note that Single leaves bit 30 unassigned.
var (
	// Half is the 16-bit binary format.
	Half = mustFormat(Binary, 2, Field{15, 1}, Field{10, 5}, Field{0, 10}, "Half")
	// Single is the 32-bit binary format.
	Single = mustFormat(Binary, 4, Field{31, 1}, Field{22, 8}, Field{0, 22}, "Single")
	// Double is the 64-bit binary format.
	Double = mustFormat(Binary, 8, Field{63, 1}, Field{52, 11}, Field{0, 52}, "Double")
	// Quadruple is the 128-bit binary format.
	Quadruple = mustFormat(Binary, 16, Field{127, 1}, Field{112, 15}, Field{0, 112}, "Quadruple")
	// Octuple is the 256-bit binary format.
	Octuple = mustFormat(Binary, 32, Field{255, 1}, Field{236, 19}, Field{0, 236}, "Octuple")
)

// Interchange-format aliases for the presets above.
var (
	Binary16  = Half
	Binary32  = Single
	Binary64  = Double
	Binary128 = Quadruple
	Binary256 = Octuple
)

func mustFormat(radix Radix, byteSize int, sign, exponent, mantissa Field, name string) Format {
	f, err := New(radix, byteSize, sign, exponent, mantissa, name)
	if err != nil {
		panic(err)
	}
	return f
}
