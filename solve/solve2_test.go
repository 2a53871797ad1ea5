// Package solve_test contains unit tests for the closed-form 2×2 solvers.
package solve_test

import (
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/solve"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

// requireResidual2 asserts A·x ≈ b.
func requireResidual2(t *testing.T, a core.Mat2, x, b core.Vec2) {
	t.Helper()
	require.True(t, a.MulVec(x).ApproxEqual(b, eps), "A·x = %v, want %v", a.MulVec(x), b)
}

func TestSolve2_Residual(t *testing.T) {
	t.Parallel()

	for name, tc := range map[string]struct {
		a core.Mat2
		b core.Vec2
	}{
		"identity": {core.Identity2(), core.NewVec2(1, 2)},
		"diagonal": {core.NewMat2(2, 0, 0, 4), core.NewVec2(6, 8)},
		"general":  {core.NewMat2(4, 7, 2, 6), core.NewVec2(1, -3)},
		"antisym":  {core.NewMat2(0, -1, 1, 0), core.NewVec2(5, 5)},
		"stiff":    {core.NewMat2(1000, 1, 1, 2), core.NewVec2(3, 2)},
	} {
		t.Run(name, func(t *testing.T) {
			x, err := solve.Solve2(tc.a, tc.b)
			require.NoError(t, err)
			requireResidual2(t, tc.a, x, tc.b)
		})
	}
}

func TestSolve2_KnownSolution(t *testing.T) {
	t.Parallel()

	// [2 1; 1 3]·x = (5, 10) → x = (1, 3).
	a := core.NewMat2(2, 1, 1, 3)
	x, err := solve.Solve2(a, core.NewVec2(5, 10))
	require.NoError(t, err)
	require.True(t, x.ApproxEqual(core.NewVec2(1, 3), eps))
}

func TestSolve2_Singular(t *testing.T) {
	t.Parallel()

	singular := core.NewMat2(1, 2, 2, 4)
	_, err := solve.Solve2(singular, core.NewVec2(1, 1))
	require.ErrorIs(t, err, solve.ErrSingular)
}

func TestSolve2Safe_NeverErrors(t *testing.T) {
	t.Parallel()

	// Singular and zero inputs degrade to the zero vector.
	require.Equal(t, core.Vec2{}, solve.Solve2Safe(core.Mat2{}, core.NewVec2(1, 1)))
	require.Equal(t, core.Vec2{}, solve.Solve2Safe(core.NewMat2(1, 2, 2, 4), core.NewVec2(1, 1)))

	// Regular input still solves.
	x := solve.Solve2Safe(core.Identity2(), core.NewVec2(7, 8))
	require.Equal(t, core.NewVec2(7, 8), x)
}

func TestSolve2Tol(t *testing.T) {
	t.Parallel()

	// Negative tolerance must be rejected, not silently accepted.
	_, err := solve.Solve2Tol(core.Identity2(), core.Vec2{}, -1e-9)
	require.ErrorIs(t, err, solve.ErrNegativeTolerance)

	// det = 1e-8 ≤ eps → near-singular.
	tiny := core.NewMat2(1e-4, 0, 0, 1e-4)
	_, err = solve.Solve2Tol(tiny, core.NewVec2(1, 1), 1e-6)
	require.ErrorIs(t, err, solve.ErrNearSingular)

	// The same system passes under a stricter threshold.
	x, err := solve.Solve2Tol(tiny, core.NewVec2(1e-4, 2e-4), solve.Epsilon)
	require.NoError(t, err)
	require.True(t, x.ApproxEqual(core.NewVec2(1, 2), eps))

	// Zero tolerance reproduces the exact-test variant.
	_, err = solve.Solve2Tol(core.NewMat2(1, 2, 2, 4), core.NewVec2(1, 1), 0)
	require.ErrorIs(t, err, solve.ErrNearSingular)
}
