// SPDX-License-Identifier: MIT
// Package solve: Schur-complement reduction of 3×3 block systems.
//
// A 3×3 matrix partitioned as
//
//	| M   v |
//	| vᵀ  s |
//
// can have its third variable eliminated analytically when the scalar s is
// well-conditioned, leaving the equivalent 2×2 system S = M − (1/s)·v·vᵀ.
// Constraint solvers use this to cut a per-constraint 3×3 solve down to a
// 2×2 one when one degree of freedom is known to be benign.
//
// The partition is read asymmetry-tolerant: v is the column (M02, M12) and
// the row (M20, M21) is taken as given, so S = M − (1/s)·col·row.

package solve

import (
	"math"

	"github.com/katalvlaran/planar/core"
)

// SchurReduce eliminates the third variable of a 3×3 block system and
// returns the reduced 2×2 matrix S = M − (1/s)·v·vᵀ, where s = a.M22.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular when |s| ≤ eps (the scalar is too small to divide by).
//
// Complexity: O(1), allocation-free.
func SchurReduce(a core.Mat3, eps float64) (core.Mat2, error) {
	if err := ValidateTolerance(eps); err != nil {
		return core.Mat2{}, solveErrorf(opSchur, err)
	}
	s := a.M22
	if math.Abs(s) <= eps {
		return core.Mat2{}, solveErrorf(opSchur, ErrNearSingular)
	}
	inv := 1 / s

	return core.Mat2{
		M00: a.M00 - inv*a.M02*a.M20,
		M01: a.M01 - inv*a.M02*a.M21,
		M10: a.M10 - inv*a.M12*a.M20,
		M11: a.M11 - inv*a.M12*a.M21,
	}, nil
}

// SchurReduceRHS reduces both the matrix and the right-hand side: solving
// S·(x0,x1) = b' with the returned pair yields the first two unknowns of
// the full system, where b' = (b0, b1) − (b2/s)·v.
//
// Errors: as SchurReduce.
func SchurReduceRHS(a core.Mat3, b core.Vec3, eps float64) (core.Mat2, core.Vec2, error) {
	s, err := SchurReduce(a, eps)
	if err != nil {
		return core.Mat2{}, core.Vec2{}, err
	}
	f := b.Z / a.M22

	return s, core.Vec2{X: b.X - f*a.M02, Y: b.Y - f*a.M12}, nil
}

// SchurBackSubstitute recovers the eliminated third unknown from the 2×2
// solution: x2 = (b2 − a20·x0 − a21·x1) / s.
//
// Errors:
//   - ErrSingular when s == 0 exactly. The tolerance decision was made at
//     reduction time; back-substitution only guards the raw division.
func SchurBackSubstitute(a core.Mat3, b core.Vec3, xy core.Vec2) (float64, error) {
	if a.M22 == ZeroPivot {
		return 0, solveErrorf(opSchur, ErrSingular)
	}

	return (b.Z - a.M20*xy.X - a.M21*xy.Y) / a.M22, nil
}
