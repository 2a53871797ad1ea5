// SPDX-License-Identifier: MIT
// Package solve: Cholesky solving for symmetric positive-definite systems.
//
// Purpose:
//   - Factor A = L·Lᵀ via the forward recurrence and solve by one forward
//     and one backward triangular substitution.
//
// Contract:
//   - A must be symmetric positive-definite. Only the lower triangle
//     (M00, M10, M11, M20, M21, M22) is read; the upper triangle is assumed
//     to mirror it, so mildly asymmetric inputs are silently symmetrized by
//     omission.
//
// Determinism & Performance:
//   - Fixed recurrence order, no allocation, O(1).

package solve

import (
	"math"

	"github.com/katalvlaran/planar/core"
)

// Solve3SPD solves A·x = b assuming A is symmetric positive-definite, via
// the Cholesky factorization A = L·Lᵀ.
//
// Inputs:
//   - a: SPD 3×3 matrix; only its lower triangle is read.
//   - b: right-hand side.
//
// Returns:
//   - core.Vec3: the solution x.
//
// Errors:
//   - ErrNotPositiveDefinite the moment any diagonal term to be
//     square-rooted is ≤ 0 (the message names the failing pivot).
//
// Complexity: O(1), allocation-free. For reuse across right-hand sides
// prefer Factorize + (LDLT).Solve, which also avoids the square roots.
func Solve3SPD(a core.Mat3, b core.Vec3) (core.Vec3, error) {
	// Forward Cholesky recurrence, lower triangle only.
	d0 := a.M00
	if d0 <= 0 {
		return core.Vec3{}, pivotErrorf(opSolve3SPD, 0, ErrNotPositiveDefinite)
	}
	l00 := math.Sqrt(d0)
	l10 := a.M10 / l00
	l20 := a.M20 / l00

	d1 := a.M11 - l10*l10
	if d1 <= 0 {
		return core.Vec3{}, pivotErrorf(opSolve3SPD, 1, ErrNotPositiveDefinite)
	}
	l11 := math.Sqrt(d1)
	l21 := (a.M21 - l20*l10) / l11

	d2 := a.M22 - l20*l20 - l21*l21
	if d2 <= 0 {
		return core.Vec3{}, pivotErrorf(opSolve3SPD, 2, ErrNotPositiveDefinite)
	}
	l22 := math.Sqrt(d2)

	// Forward solve L·y = b.
	y0 := b.X / l00
	y1 := (b.Y - l10*y0) / l11
	y2 := (b.Z - l20*y0 - l21*y1) / l22

	// Back solve Lᵀ·x = y.
	x2 := y2 / l22
	x1 := (y1 - l21*x2) / l11
	x0 := (y0 - l10*x1 - l20*x2) / l00

	return core.Vec3{X: x0, Y: x1, Z: x2}, nil
}

// Solve3SPDSafe solves an SPD system, returning the zero vector when the
// input turns out not to be positive-definite. Never errors.
func Solve3SPDSafe(a core.Mat3, b core.Vec3) core.Vec3 {
	x, err := Solve3SPD(a, b)
	if err != nil {
		return core.Vec3{}
	}

	return x
}
