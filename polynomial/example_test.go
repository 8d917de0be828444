// SPDX-License-Identifier: MIT

package polynomial_test

import (
	"fmt"

	"github.com/katalvlaran/costnet/polynomial"
)

// ExampleParse shows how terms are folded into one dense slice.
func ExampleParse() {
	c, err := polynomial.Parse("36x - 12 + 22 - 34x^3")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(c)
	fmt.Println(polynomial.Format(c))
	// Output:
	// [10 36 0 -34]
	// 10 + 36x - 34x^3
}
