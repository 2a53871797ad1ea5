// SPDX-License-Identifier: MIT
// Package solve: inverse-based reference solvers.
//
// These wrappers compute a full matrix inverse through the core value types
// and multiply it by b. A full inverse costs more and is less numerically
// stable than the direct solvers, so this path is intended for tests,
// debugging and cross-checking — not hot loops.

package solve

import "github.com/katalvlaran/planar/core"

// AffineInverter is the compile-time capability surface for matrices that
// know whether they are affine and can invert themselves cheaply in that
// case. core.Mat3 implements it; the capability is resolved statically at
// the call site, never probed at runtime by reflection.
type AffineInverter interface {
	// IsAffine reports whether the specialized affine inverse applies.
	IsAffine() bool
	// InverseAffine returns the affine-specialized inverse.
	InverseAffine() (core.Mat3, error)
	// Inverse returns the general inverse, the fallback for non-affine input.
	Inverse() (core.Mat3, error)
}

// Mat3 satisfies the capability interface by construction.
var _ AffineInverter = core.Mat3{}

// Solve2ViaInverse solves A·x = b as x = A⁻¹·b.
//
// Errors:
//   - core.ErrSingular when det(a) == 0.
func Solve2ViaInverse(a core.Mat2, b core.Vec2) (core.Vec2, error) {
	inv, err := a.Inverse()
	if err != nil {
		return core.Vec2{}, solveErrorf(opInverse, err)
	}

	return inv.MulVec(b), nil
}

// Solve3ViaInverse solves A·x = b as x = A⁻¹·b.
//
// Errors:
//   - core.ErrSingular when det(a) == 0.
func Solve3ViaInverse(a core.Mat3, b core.Vec3) (core.Vec3, error) {
	inv, err := a.Inverse()
	if err != nil {
		return core.Vec3{}, solveErrorf(opInverse, err)
	}

	return inv.MulVec(b), nil
}

// Solve3ViaInverseTol solves A·x = b through the tolerant inverse.
//
// Errors:
//   - core.ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - core.ErrNearSingular when |det(a)| ≤ eps.
func Solve3ViaInverseTol(a core.Mat3, b core.Vec3, eps float64) (core.Vec3, error) {
	inv, err := a.InverseTol(eps)
	if err != nil {
		return core.Vec3{}, solveErrorf(opInverse, err)
	}

	return inv.MulVec(b), nil
}

// Solve3ViaInverseAffine solves A·x = b preferring the affine-specialized
// inverse when the matrix reports IsAffine, falling back to the general
// inverse otherwise. The selection is a pure function of the matrix values,
// not of execution order.
func Solve3ViaInverseAffine(a AffineInverter, b core.Vec3) (core.Vec3, error) {
	var (
		inv core.Mat3
		err error
	)
	if a.IsAffine() {
		inv, err = a.InverseAffine()
	} else {
		inv, err = a.Inverse()
	}
	if err != nil {
		return core.Vec3{}, solveErrorf(opInverse, err)
	}

	return inv.MulVec(b), nil
}
