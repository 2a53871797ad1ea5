// Package solve_test contains unit tests for Schur-complement reduction.
package solve_test

import (
	"testing"

	"github.com/katalvlaran/planar/core"
	"github.com/katalvlaran/planar/solve"
	"github.com/stretchr/testify/require"
)

func TestSchurReduce_KnownComplement(t *testing.T) {
	t.Parallel()

	// S = M − (1/s)·v·vᵀ computed by hand for s = 2, v = (1, 1).
	a := core.NewMat3(
		4, 1, 1,
		1, 3, 1,
		1, 1, 2,
	)
	s, err := solve.SchurReduce(a, solve.Epsilon)
	require.NoError(t, err)
	require.True(t, s.ApproxEqual(core.NewMat2(3.5, 0.5, 0.5, 2.5), eps))
}

func TestSchurReduce_Equivalence(t *testing.T) {
	t.Parallel()

	// Solving the reduced 2×2 system then back-substituting must agree with
	// the full 3×3 solve.
	for name, tc := range map[string]struct {
		a core.Mat3
		b core.Vec3
	}{
		"spd":        {spdK, core.NewVec3(1, -2, 3)},
		"asymmetric": {core.NewMat3(3, -1, 2, 1, 4, 1, -2, 5, 6), core.NewVec3(7, 0, -3)},
	} {
		t.Run(name, func(t *testing.T) {
			full, err := solve.Solve3(tc.a, tc.b)
			require.NoError(t, err)

			s, rhs, err := solve.SchurReduceRHS(tc.a, tc.b, solve.Epsilon)
			require.NoError(t, err)
			xy, err := solve.Solve2(s, rhs)
			require.NoError(t, err)
			x2, err := solve.SchurBackSubstitute(tc.a, tc.b, xy)
			require.NoError(t, err)

			require.True(t, full.ApproxEqual(core.NewVec3(xy.X, xy.Y, x2), eps))
		})
	}
}

func TestSchurReduce_NearSingularScalar(t *testing.T) {
	t.Parallel()

	// |s| at or below the tolerance is rejected before the division.
	flat := core.NewMat3(1, 0, 0, 0, 1, 0, 0, 0, 1e-9)
	_, err := solve.SchurReduce(flat, 1e-6)
	require.ErrorIs(t, err, solve.ErrNearSingular)

	_, _, err = solve.SchurReduceRHS(flat, core.NewVec3(1, 1, 1), 1e-6)
	require.ErrorIs(t, err, solve.ErrNearSingular)
}

func TestSchurReduce_NegativeTolerance(t *testing.T) {
	t.Parallel()

	_, err := solve.SchurReduce(core.Identity3(), -1)
	require.ErrorIs(t, err, solve.ErrNegativeTolerance)
}

func TestSchurBackSubstitute_ZeroScalar(t *testing.T) {
	t.Parallel()

	degenerate := core.NewMat3(1, 0, 0, 0, 1, 0, 0, 0, 0)
	_, err := solve.SchurBackSubstitute(degenerate, core.NewVec3(1, 1, 1), core.Vec2{})
	require.ErrorIs(t, err, solve.ErrSingular)
}
