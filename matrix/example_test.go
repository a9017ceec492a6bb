package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/fanmul/matrix"
)

func ExampleDot() {
	a := matrix.NewVec3(1.4, 1.2, 4.3)
	b := matrix.NewVec3(0.5, 0.3, 2.7)
	fmt.Printf("%.2f\n", matrix.Dot(a, b))
	// Output:
	// 12.67
}

func ExampleMul() {
	m2 := matrix.Mat3{
		{2.3, 1.0, 4.2},
		{1.7, 4.6, 0.4},
		{6.2, 0.5, 1.0},
	}
	fmt.Print(matrix.Mul(matrix.Identity(), m2))
	// Output:
	// [2.3, 1, 4.2]
	// [1.7, 4.6, 0.4]
	// [6.2, 0.5, 1]
}

func ExampleMulVec() {
	model := matrix.Scale(2, 1, 3)
	fmt.Println(matrix.MulVec(model, matrix.NewVec3(1, 1, 1)))
	// Output:
	// (2, 1, 3)
}
