// SPDX-License-Identifier: MIT
// Package solve: closed-form 2×2 solving.
//
// Purpose:
//   - Solve A·x = b for 2×2 A via Cramer's rule: x = adj(A)·b / det(A).
//
// Determinism & Performance:
//   - Pure scalar arithmetic in fixed order; no allocation; O(1).
//   - adj(A)·b is formed before the division so the single det reciprocal is
//     applied once to each component.

package solve

import (
	"math"

	"github.com/katalvlaran/planar/core"
)

// solve2 is the single canonical 2×2 kernel. exact selects the singularity
// test: det == 0 (plain variant) versus |det| ≤ eps (tolerant variant).
// Tolerance validation is the facade's responsibility.
func solve2(a core.Mat2, b core.Vec2, eps float64, exact bool) (core.Vec2, error) {
	det := a.Determinant()
	if exact {
		if det == ZeroPivot {
			return core.Vec2{}, ErrSingular
		}
	} else if math.Abs(det) <= eps {
		return core.Vec2{}, ErrNearSingular
	}

	return a.Adjugate().MulVec(b).Scale(1 / det), nil
}

// Solve2 solves A·x = b for a 2×2 system using the closed form
// x = adj(A)·b / det(A).
//
// Inputs:
//   - a: 2×2 system matrix (read-only).
//   - b: right-hand side.
//
// Returns:
//   - core.Vec2: the solution x.
//
// Errors:
//   - ErrSingular when det(a) == 0 exactly.
//
// Complexity: O(1), allocation-free.
func Solve2(a core.Mat2, b core.Vec2) (core.Vec2, error) {
	x, err := solve2(a, b, 0, true)
	if err != nil {
		return core.Vec2{}, solveErrorf(opSolve2, err)
	}

	return x, nil
}

// Solve2Safe solves A·x = b, returning the zero vector when the system is
// singular. Never errors — the policy hot constraint loops expect: a
// degenerate constraint row contributes no impulse instead of unwinding.
func Solve2Safe(a core.Mat2, b core.Vec2) core.Vec2 {
	x, err := solve2(a, b, 0, true)
	if err != nil {
		return core.Vec2{}
	}

	return x
}

// Solve2Tol solves A·x = b, treating the system as near-singular when
// |det(a)| ≤ eps.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular when |det(a)| ≤ eps.
//
// The conventional tolerance is the package-wide Epsilon constant.
func Solve2Tol(a core.Mat2, b core.Vec2, eps float64) (core.Vec2, error) {
	if err := ValidateTolerance(eps); err != nil {
		return core.Vec2{}, solveErrorf(opSolve2Tol, err)
	}
	x, err := solve2(a, b, eps, false)
	if err != nil {
		return core.Vec2{}, solveErrorf(opSolve2Tol, err)
	}

	return x, nil
}
