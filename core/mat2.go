// Package core: the 2×2 row-major matrix value type.
//
// Purpose:
//   - Declare Mat2 with arithmetic, determinant, adjugate and the inverse
//     family consumed by the solve package (closed-form Cramer solving).
//
// Determinism & Performance:
//   - All methods are pure O(1) scalar arithmetic; no allocation, no loops.
//   - Inverse/InverseTol follow the package error policy: sentinels, no panics.

package core

import "math"

// Mat2 is a 2×2 matrix stored row-major:
//
//	| M00 M01 |
//	| M10 M11 |
type Mat2 struct {
	M00, M01 float64
	M10, M11 float64
}

// NewMat2 builds a Mat2 from row-major components.
func NewMat2(m00, m01, m10, m11 float64) Mat2 {
	return Mat2{M00: m00, M01: m01, M10: m10, M11: m11}
}

// Mat2FromCols builds a Mat2 whose columns are ex and ey.
func Mat2FromCols(ex, ey Vec2) Mat2 {
	return Mat2{M00: ex.X, M01: ey.X, M10: ex.Y, M11: ey.Y}
}

// Identity2 returns the 2×2 identity matrix.
func Identity2() Mat2 { return Mat2{M00: 1, M11: 1} }

// Add returns m + n component-wise.
func (m Mat2) Add(n Mat2) Mat2 {
	return Mat2{m.M00 + n.M00, m.M01 + n.M01, m.M10 + n.M10, m.M11 + n.M11}
}

// Sub returns m - n component-wise.
func (m Mat2) Sub(n Mat2) Mat2 {
	return Mat2{m.M00 - n.M00, m.M01 - n.M01, m.M10 - n.M10, m.M11 - n.M11}
}

// Mul returns the matrix product m·n.
func (m Mat2) Mul(n Mat2) Mat2 {
	return Mat2{
		M00: m.M00*n.M00 + m.M01*n.M10,
		M01: m.M00*n.M01 + m.M01*n.M11,
		M10: m.M10*n.M00 + m.M11*n.M10,
		M11: m.M10*n.M01 + m.M11*n.M11,
	}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat2) MulVec(v Vec2) Vec2 {
	return Vec2{m.M00*v.X + m.M01*v.Y, m.M10*v.X + m.M11*v.Y}
}

// Scale returns s·m component-wise.
func (m Mat2) Scale(s float64) Mat2 {
	return Mat2{s * m.M00, s * m.M01, s * m.M10, s * m.M11}
}

// Transpose returns mᵀ.
func (m Mat2) Transpose() Mat2 {
	return Mat2{M00: m.M00, M01: m.M10, M10: m.M01, M11: m.M11}
}

// Determinant returns det(m) = M00·M11 − M01·M10.
func (m Mat2) Determinant() float64 {
	return m.M00*m.M11 - m.M01*m.M10
}

// Adjugate returns adj(m), the transpose of the cofactor matrix.
// For any m: m · adj(m) = det(m) · I, which is the identity the closed-form
// 2×2 solvers rely on.
func (m Mat2) Adjugate() Mat2 {
	return Mat2{M00: m.M11, M01: -m.M01, M10: -m.M10, M11: m.M00}
}

// Inverse returns m⁻¹.
//
// Errors:
//   - ErrSingular when det(m) == 0 exactly.
func (m Mat2) Inverse() (Mat2, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat2{}, ErrSingular
	}

	return m.Adjugate().Scale(1 / det), nil
}

// InverseSafe returns m⁻¹, or the zero matrix when m is singular.
// Never errors; intended for hot loops where a degenerate system must
// degrade to a no-op rather than unwind.
func (m Mat2) InverseSafe() Mat2 {
	inv, err := m.Inverse()
	if err != nil {
		return Mat2{}
	}

	return inv
}

// InverseTol returns m⁻¹, treating the matrix as near-singular when
// |det(m)| ≤ eps.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular when |det(m)| ≤ eps.
func (m Mat2) InverseTol(eps float64) (Mat2, error) {
	if eps < 0 || math.IsNaN(eps) {
		return Mat2{}, ErrNegativeTolerance
	}
	det := m.Determinant()
	if math.Abs(det) <= eps {
		return Mat2{}, ErrNearSingular
	}

	return m.Adjugate().Scale(1 / det), nil
}

// ApproxEqual reports whether every component of m is within eps of n.
func (m Mat2) ApproxEqual(n Mat2, eps float64) bool {
	return math.Abs(m.M00-n.M00) <= eps && math.Abs(m.M01-n.M01) <= eps &&
		math.Abs(m.M10-n.M10) <= eps && math.Abs(m.M11-n.M11) <= eps
}
