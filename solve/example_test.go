package solve_test

import (
	"fmt"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/solve"
)

// ExampleSolve3 solves a pivot-hostile permutation system: the leading zero
// forces a row exchange that plain elimination would choke on.
func ExampleSolve3() {
	a := core.NewMat3(
		0, 1, 0,
		1, 0, 0,
		0, 0, 1,
	)
	x, err := solve.Solve3(a, core.NewVec3(1, 2, 3))
	if err != nil {
		fmt.Println("solve failed:", err)
		return
	}
	fmt.Println(x)
	// Output: (2, 1, 3)
}

// ExampleFactorize shows the factor-once / solve-many shape used by
// iterative constraint solvers: the system matrix is factored one time and
// reused against a fresh right-hand side every sub-step.
func ExampleFactorize() {
	k := core.NewMat3(
		4, 2, 0,
		2, 3, 0,
		0, 0, 2,
	)
	f, err := solve.Factorize(k)
	if err != nil {
		fmt.Println("factorization failed:", err)
		return
	}

	// Two sub-steps, two right-hand sides, one factorization.
	x1 := f.Solve(core.NewVec3(6, 5, 2))
	x2 := f.Solve(core.NewVec3(12, 10, 4))
	fmt.Println(x1)
	fmt.Println(x2)
	// Output:
	// (1, 1, 1)
	// (2, 2, 2)
}

// ExampleSolve2Safe demonstrates the never-failing policy hot loops rely
// on: a degenerate system yields the zero vector instead of an error.
func ExampleSolve2Safe() {
	singular := core.NewMat2(1, 2, 2, 4)
	fmt.Println(solve.Solve2Safe(singular, core.NewVec2(1, 1)))
	// Output: (0, 0)
}
