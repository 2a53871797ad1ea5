// SPDX-License-Identifier: MIT
// Package: solve
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation and
//     error-wrapping helpers shared by every solver kernel.
//   - Keep kernels minimal by delegating tolerance checks here.
//   - Return plain sentinel errors so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing on success.

package solve

import (
	"fmt"
	"math"
)

// Epsilon is the library-wide linear tolerance. It is the conventional
// argument to the Tol variants and the fixed tolerance of the Safe LDLᵀ
// solver. Callers with better knowledge of their system's scale should pass
// their own threshold.
const Epsilon = 1e-12

// ZeroPivot is the sentinel value for detecting an exact zero pivot.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opSolve2     = "Solve2"
	opSolve2Tol  = "Solve2Tol"
	opSolve3     = "Solve3"
	opSolve3Tol  = "Solve3Tol"
	opSolve3SPD  = "Solve3SPD"
	opFactorize  = "Factorize"
	opLDLT       = "SolveLDLT"
	opLDLTTol    = "SolveLDLTTol"
	opLDLTDamped = "SolveLDLTDamped"
	opInverse    = "SolveViaInverse"
	opSchur      = "SchurReduce"
)

// solveErrorf wraps err with an operation tag, preserving the original error
// via %w so errors.Is keeps matching the sentinel. Call only with a non-nil
// err; wrapping nil would fabricate a non-nil error around a nil cause.
func solveErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// pivotErrorf wraps err with an operation tag and the index of the pivot
// that failed, e.g. "Solve3: pivot 1: solve: singular system".
func pivotErrorf(tag string, pivot int, err error) error {
	return fmt.Errorf("%s: pivot %d: %w", tag, pivot, err)
}

// ValidateTolerance ensures eps is a usable magnitude threshold: finite-or-
// infinite non-negative, not NaN. Zero is allowed (exact tests).
//
// Errors: ErrNegativeTolerance.
// Complexity: O(1).
func ValidateTolerance(eps float64) error {
	if eps < 0 || math.IsNaN(eps) {
		return ErrNegativeTolerance
	}

	return nil
}
