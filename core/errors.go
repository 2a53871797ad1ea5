// Package core: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the core
// package. All methods MUST return these sentinels and tests MUST check them
// via errors.Is. No method panics on user-triggered error conditions.

package core

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "core: ..." for consistency and to allow
// easy grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap at the outer boundary — callers
// will still use errors.Is to match.

var (
	// ErrSingular is returned when an inverse is requested of a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("core: singular matrix")

	// ErrNearSingular is returned by the tolerant inverse family when the
	// determinant magnitude is at or below the supplied tolerance.
	ErrNearSingular = errors.New("core: near-singular matrix")

	// ErrNegativeTolerance indicates a negative (or NaN) tolerance argument.
	// Tolerances are magnitudes; a negative threshold is a programmer error
	// surfaced as a regular error per the package policy.
	ErrNegativeTolerance = errors.New("core: negative tolerance")

	// ErrNotAffine indicates InverseAffine was called on a Mat3 whose last
	// row is not exactly (0, 0, 1).
	ErrNotAffine = errors.New("core: matrix is not affine")

	// ErrParse indicates malformed textual input to ParseVec2/ParseVec3.
	ErrParse = errors.New("core: malformed vector literal")
)
