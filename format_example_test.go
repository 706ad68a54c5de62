// Copyright 2020 Aleksandr Demakin. All rights reserved.

package floatfmt

import (
	"encoding/json"
	"fmt"
)

func ExampleNew() {
	bf16, err := New(Binary, 2, Field{15, 1}, Field{7, 8}, Field{0, 7}, "bfloat16")
	if err != nil {
		panic(err)
	}
	fmt.Printf("%s: sign % x, exponent % x, mantissa % x\n",
		bf16, bf16.SignMask(), bf16.ExponentMask(), bf16.MantissaMask())

	_, err = New(Binary, 2, Field{-1, 1}, Field{7, 8}, Field{0, 7}, "bad")
	fmt.Println(err)

	// Output:
	// bfloat16: sign 00 80, exponent 80 7f, mantissa 7f 00
	// sign field: offset out of range
}

func ExampleFormat() {
	fmt.Printf("%v, %d bits\n", Half, Half.BitSize())
	fmt.Printf("sign:     % x\n", Half.SignMask())
	fmt.Printf("exponent: % x\n", Half.ExponentMask())
	fmt.Printf("mantissa: % x\n", Half.MantissaMask())

	data, err := json.Marshal(Double)
	if err != nil {
		panic(err)
	}
	fmt.Printf("json: %s\n", data)

	// Output:
	// Half, 16 bits
	// sign:     00 80
	// exponent: 00 7c
	// mantissa: ff 03
	// json: {"name":"Double","radix":2,"size":8,"sign":{"o":63,"l":1},"exp":{"o":52,"l":11},"mant":{"o":0,"l":52}}
}
