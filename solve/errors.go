// SPDX-License-Identifier: MIT
// Package solve: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the solve
// package. All solvers MUST return these sentinels and tests MUST check them
// via errors.Is. No solver panics on user-triggered error conditions.

package solve

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "solve: ..." for consistency and to allow
// easy grepping across logs. Facades wrap these sentinels with an operation
// tag via solveErrorf; callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// negative tolerance -> exact singularity / not-SPD -> near-singularity.

var (
	// ErrSingular is returned when an exact zero pivot or zero determinant
	// makes the system unsolvable.
	ErrSingular = errors.New("solve: singular system")

	// ErrNearSingular is returned by the Tol variants when a pivot or
	// determinant magnitude is at or below the supplied tolerance.
	ErrNearSingular = errors.New("solve: near-singular system")

	// ErrNotPositiveDefinite is returned by the Cholesky path when a
	// diagonal term to be square-rooted is not strictly positive.
	ErrNotPositiveDefinite = errors.New("solve: matrix is not positive-definite")

	// ErrNegativeTolerance indicates a negative (or NaN) tolerance argument.
	ErrNegativeTolerance = errors.New("solve: negative tolerance")
)
