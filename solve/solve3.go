// SPDX-License-Identifier: MIT
// Package solve: 3×3 Gaussian elimination with partial pivoting (GEPP).
//
// Purpose:
//   - Solve general (possibly unsymmetric, indefinite) 3×3 systems with the
//     row-swapping stability GEPP provides.
//
// Implementation:
//   - Stage 1: build three augmented rows [a_i0 a_i1 a_i2 | b_i].
//   - Stage 2: pivot column 0 over rows {0,1,2}, eliminate below.
//   - Stage 3: pivot column 1 over rows {1,2}, eliminate below.
//   - Stage 4: guard the trailing pivot, back-substitute bottom-up.
//
// Determinism:
//   - The pivot scan prefers the earliest row on magnitude ties (strict >
//     comparison), so row order is a pure function of the input values.

package solve

import (
	"math"

	"github.com/katalvlaran/planar/core"
)

// augmented row: [a0 a1 a2 | b].
type row3 [4]float64

// solve3 is the single canonical GEPP kernel. exact selects the pivot test:
// pivot == 0 (plain variant) versus |pivot| ≤ eps (tolerant variant).
// Tolerance validation is the facade's responsibility.
func solve3(a core.Mat3, b core.Vec3, eps float64, exact bool) (core.Vec3, error) {
	rows := [3]row3{
		{a.M00, a.M01, a.M02, b.X},
		{a.M10, a.M11, a.M12, b.Y},
		{a.M20, a.M21, a.M22, b.Z},
	}

	dead := func(pivot float64) bool {
		if exact {
			return pivot == ZeroPivot
		}

		return math.Abs(pivot) <= eps
	}

	// Column-0 pivot: largest |a_i0| among rows 0..2 into row 0.
	best := 0
	if math.Abs(rows[1][0]) > math.Abs(rows[best][0]) {
		best = 1
	}
	if math.Abs(rows[2][0]) > math.Abs(rows[best][0]) {
		best = 2
	}
	if best != 0 {
		rows[0], rows[best] = rows[best], rows[0]
	}
	if dead(rows[0][0]) {
		return core.Vec3{}, pivotError(0, exact)
	}

	// Eliminate column 0 from rows 1 and 2.
	for i := 1; i <= 2; i++ {
		f := rows[i][0] / rows[0][0]
		rows[i][1] -= f * rows[0][1]
		rows[i][2] -= f * rows[0][2]
		rows[i][3] -= f * rows[0][3]
		rows[i][0] = 0
	}

	// Column-1 pivot: larger of rows 1 and 2 into row 1.
	if math.Abs(rows[2][1]) > math.Abs(rows[1][1]) {
		rows[1], rows[2] = rows[2], rows[1]
	}
	if dead(rows[1][1]) {
		return core.Vec3{}, pivotError(1, exact)
	}

	// Eliminate column 1 from row 2.
	f := rows[2][1] / rows[1][1]
	rows[2][2] -= f * rows[1][2]
	rows[2][3] -= f * rows[1][3]
	rows[2][1] = 0

	if dead(rows[2][2]) {
		return core.Vec3{}, pivotError(2, exact)
	}

	// Back-substitution, bottom-up.
	x2 := rows[2][3] / rows[2][2]
	x1 := (rows[1][3] - rows[1][2]*x2) / rows[1][1]
	x0 := (rows[0][3] - rows[0][1]*x1 - rows[0][2]*x2) / rows[0][0]

	return core.Vec3{X: x0, Y: x1, Z: x2}, nil
}

// pivotError maps a dead pivot at elimination stage k to the sentinel the
// active policy prescribes.
func pivotError(k int, exact bool) error {
	if exact {
		return pivotErrorf(opSolve3, k, ErrSingular)
	}

	return pivotErrorf(opSolve3Tol, k, ErrNearSingular)
}

// Solve3 solves A·x = b for a general 3×3 system by Gaussian elimination
// with partial pivoting.
//
// Inputs:
//   - a: 3×3 system matrix (read-only).
//   - b: right-hand side.
//
// Returns:
//   - core.Vec3: the solution x.
//
// Errors:
//   - ErrSingular when an exactly zero pivot survives row exchange at any of
//     the three elimination stages (the message names the stage).
//
// Complexity: O(1), allocation-free.
func Solve3(a core.Mat3, b core.Vec3) (core.Vec3, error) {
	return solve3(a, b, 0, true)
}

// Solve3Safe solves A·x = b, converting any singularity into the zero
// vector. Never errors.
func Solve3Safe(a core.Mat3, b core.Vec3) core.Vec3 {
	x, err := solve3(a, b, 0, true)
	if err != nil {
		return core.Vec3{}
	}

	return x
}

// Solve3Tol solves A·x = b with the same pivoting and elimination structure
// as Solve3, but every pivot test uses |pivot| ≤ eps instead of exact
// equality.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular when a pivot magnitude is at or below eps.
func Solve3Tol(a core.Mat3, b core.Vec3, eps float64) (core.Vec3, error) {
	if err := ValidateTolerance(eps); err != nil {
		return core.Vec3{}, solveErrorf(opSolve3Tol, err)
	}

	return solve3(a, b, eps, false)
}
