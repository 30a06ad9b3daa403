// Copyright 2020 Aleksandr Demakin. All rights reserved.

package softfloat

import (
	"fmt"
	"math"
)

func ExampleScalbnf() {
	fmt.Println(Scalbnf(1, 1), Scalbnf(1, -1), Scalbnf(1.5, 10))
	fmt.Println(Scalbnf(1, 1000), Scalbnf(-1, 1000), Scalbnf(1, -1000))

	sub := float32(math.SmallestNonzeroFloat32)
	fmt.Printf("0x%08x 0x%08x\n", math.Float32bits(Scalbnf(sub, 1)), math.Float32bits(Scalbnf(sub, 23)))

	// Output:
	// 2 0.5 1536
	// +Inf -Inf 0
	// 0x00000002 0x00800000
}
