// SPDX-License-Identifier: MIT
// Package solve: LDLᵀ factorization suite.
//
// Purpose:
//   - Factor a symmetric 3×3 matrix as A = L·D·Lᵀ (unit lower-triangular L,
//     diagonal D) without square roots, tolerating mildly indefinite input
//     that Cholesky rejects.
//   - Split the work into a reusable factor object and a solve-from-factor
//     primitive: the performance-critical shape for iterative constraint
//     solvers that reuse one system matrix across many right-hand sides.
//
// Contract:
//   - No pivoting is performed. The factorization can fail on matrices GEPP
//     would solve; that is intentional — this path is reserved for matrices
//     expected to be SPD or mildly indefinite. Use Solve3 for general input.
//   - Only the lower triangle of A is read.
//
// Tolerance defaults (deliberately asymmetric, see DESIGN.md):
//   - Factorize gates pivots at a strict zero, while SolveLDLTSafe and the
//     first attempt of SolveLDLTDamped gate at the shared Epsilon constant.
//     Strict factorization plus tolerant composite solving mirrors the
//     original design and is preserved rather than unified.

package solve

import (
	"errors"
	"math"

	"github.com/katalvlaran/planar/core"
)

// LDLT is the factor record of A = L·D·Lᵀ for a symmetric 3×3 A:
// an implicit-unit-diagonal lower-triangular L and a diagonal D.
// It is created by Factorize/FactorizeTol, read-only afterwards, and valid
// for any number of Solve calls against the same matrix.
type LDLT struct {
	L10, L20, L21 float64 // strict lower triangle of L (diagonal is 1)
	D0, D1, D2    float64 // diagonal of D
}

// factorize is the single canonical LDLᵀ kernel. exact selects the pivot
// test: |d_k| ≤ 0 (plain variant) versus |d_k| ≤ eps (tolerant variant).
// The first dead pivot aborts before it is ever used as a divisor.
func factorize(a core.Mat3, eps float64, exact bool) (LDLT, error) {
	dead := func(d float64, k int) error {
		if math.Abs(d) <= eps {
			if exact {
				return pivotErrorf(opFactorize, k, ErrSingular)
			}

			return pivotErrorf(opFactorize, k, ErrNearSingular)
		}

		return nil
	}

	d0 := a.M00
	if err := dead(d0, 0); err != nil {
		return LDLT{}, err
	}
	l10 := a.M10 / d0
	l20 := a.M20 / d0

	d1 := a.M11 - l10*a.M10
	if err := dead(d1, 1); err != nil {
		return LDLT{}, err
	}
	s21 := a.M21 - l20*a.M10 // Schur-updated subdiagonal, reused for d2
	l21 := s21 / d1

	d2 := a.M22 - l20*a.M20 - l21*s21
	if err := dead(d2, 2); err != nil {
		return LDLT{}, err
	}

	return LDLT{L10: l10, L20: l20, L21: l21, D0: d0, D1: d1, D2: d2}, nil
}

// Factorize computes the LDLᵀ factorization of a symmetric 3×3 matrix with
// a strict zero pivot gate: only an exactly zero d_k fails.
//
// Errors:
//   - ErrSingular at the first d_k == 0 (the message names the pivot).
//
// Complexity: O(1), allocation-free.
func Factorize(a core.Mat3) (LDLT, error) {
	return factorize(a, 0, true)
}

// FactorizeTol computes the LDLᵀ factorization, rejecting the matrix at the
// first pivot with |d_k| ≤ eps.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular at the first |d_k| ≤ eps.
func FactorizeTol(a core.Mat3, eps float64) (LDLT, error) {
	if err := ValidateTolerance(eps); err != nil {
		return LDLT{}, solveErrorf(opFactorize, err)
	}

	return factorize(a, eps, false)
}

// Solve solves A·x = b against the factor's matrix by three-stage
// substitution: forward L·y = b, diagonal D·z = y, backward Lᵀ·x = z.
//
// Solve is a pure function of the factor and b and never errors: a factor
// only exists if every d_k passed its pivot gate, so the diagonal divisions
// are defined. O(1), allocation-free — the hot path.
func (f LDLT) Solve(b core.Vec3) core.Vec3 {
	// Forward: L·y = b (unit diagonal).
	y0 := b.X
	y1 := b.Y - f.L10*y0
	y2 := b.Z - f.L20*y0 - f.L21*y1

	// Diagonal: D·z = y.
	z0 := y0 / f.D0
	z1 := y1 / f.D1
	z2 := y2 / f.D2

	// Backward: Lᵀ·x = z.
	x2 := z2
	x1 := z1 - f.L21*x2
	x0 := z0 - f.L10*x1 - f.L20*x2

	return core.Vec3{X: x0, Y: x1, Z: x2}
}

// SolveLDLT solves A·x = b by a fused strict factorization and solve.
//
// Errors:
//   - ErrSingular on an exactly zero pivot.
func SolveLDLT(a core.Mat3, b core.Vec3) (core.Vec3, error) {
	f, err := Factorize(a)
	if err != nil {
		return core.Vec3{}, solveErrorf(opLDLT, err)
	}

	return f.Solve(b), nil
}

// SolveLDLTTol solves A·x = b by a tolerant factorization and solve; the
// error surface mirrors FactorizeTol.
func SolveLDLTTol(a core.Mat3, b core.Vec3, eps float64) (core.Vec3, error) {
	f, err := FactorizeTol(a, eps)
	if err != nil {
		return core.Vec3{}, solveErrorf(opLDLTTol, err)
	}

	return f.Solve(b), nil
}

// SolveLDLTSafe solves A·x = b with the fixed Epsilon tolerance, returning
// the zero vector on any factorization failure. Never errors.
func SolveLDLTSafe(a core.Mat3, b core.Vec3) core.Vec3 {
	f, err := FactorizeTol(a, Epsilon)
	if err != nil {
		return core.Vec3{}
	}

	return f.Solve(b)
}

// SolveLDLTDamped solves A·x = b with a regularized fallback: it first
// attempts a factorization gated at the shared Epsilon tolerance, and on a
// pivot failure rebuilds B = A + lambda·I (Levenberg–Marquardt-style
// diagonal damping) and retries with a strict zero tolerance. A failure of
// the damped attempt propagates — the caller's lambda was too small for the
// system's indefiniteness.
//
// The retry triggers only on the pivot sentinels (ErrSingular,
// ErrNearSingular), inspected explicitly with errors.Is; any other error
// propagates untouched. This is the one place in the package where an error
// is caught and reinterpreted as a recovery trigger.
//
// Inputs:
//   - a: symmetric 3×3 matrix, expected SPD or mildly indefinite.
//   - b: right-hand side.
//   - lambda: caller-chosen damping magnitude; as lambda → 0 the damped
//     solution approaches the undamped one for well-conditioned systems.
func SolveLDLTDamped(a core.Mat3, b core.Vec3, lambda float64) (core.Vec3, error) {
	f, err := factorize(a, Epsilon, false)
	if err == nil {
		return f.Solve(b), nil
	}
	if !errors.Is(err, ErrNearSingular) && !errors.Is(err, ErrSingular) {
		return core.Vec3{}, solveErrorf(opLDLTDamped, err)
	}

	// Damped retry: regularize the diagonal, gate strictly at zero.
	f, err = factorize(a.AddDiagonal(lambda), 0, true)
	if err != nil {
		return core.Vec3{}, solveErrorf(opLDLTDamped, err)
	}

	return f.Solve(b), nil
}
