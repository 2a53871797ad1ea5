// Package core: the 3×3 row-major matrix value type.
//
// Purpose:
//   - Declare Mat3 with arithmetic, cofactor determinant, full adjugate and
//     the inverse family, plus the affine capability surface (IsAffine,
//     InverseAffine) used by the reference inverse-based solvers.
//
// Determinism & Performance:
//   - All methods are pure O(1) scalar arithmetic with fixed evaluation
//     order; identical inputs produce bit-identical outputs.

package core

import "math"

// Mat3 is a 3×3 matrix stored row-major:
//
//	| M00 M01 M02 |
//	| M10 M11 M12 |
//	| M20 M21 M22 |
type Mat3 struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

// NewMat3 builds a Mat3 from row-major components.
func NewMat3(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Mat3 {
	return Mat3{m00, m01, m02, m10, m11, m12, m20, m21, m22}
}

// Identity3 returns the 3×3 identity matrix.
func Identity3() Mat3 { return Mat3{M00: 1, M11: 1, M22: 1} }

// Mat3FromRows builds a Mat3 whose rows are r0, r1, r2.
func Mat3FromRows(r0, r1, r2 Vec3) Mat3 {
	return Mat3{r0.X, r0.Y, r0.Z, r1.X, r1.Y, r1.Z, r2.X, r2.Y, r2.Z}
}

// Row returns row i of m as a Vec3. i outside [0,2] returns the zero vector;
// fixed-size indices are expected to be literals at call sites.
func (m Mat3) Row(i int) Vec3 {
	switch i {
	case 0:
		return Vec3{m.M00, m.M01, m.M02}
	case 1:
		return Vec3{m.M10, m.M11, m.M12}
	case 2:
		return Vec3{m.M20, m.M21, m.M22}
	}

	return Vec3{}
}

// Add returns m + n component-wise.
func (m Mat3) Add(n Mat3) Mat3 {
	return Mat3{
		m.M00 + n.M00, m.M01 + n.M01, m.M02 + n.M02,
		m.M10 + n.M10, m.M11 + n.M11, m.M12 + n.M12,
		m.M20 + n.M20, m.M21 + n.M21, m.M22 + n.M22,
	}
}

// Sub returns m - n component-wise.
func (m Mat3) Sub(n Mat3) Mat3 {
	return Mat3{
		m.M00 - n.M00, m.M01 - n.M01, m.M02 - n.M02,
		m.M10 - n.M10, m.M11 - n.M11, m.M12 - n.M12,
		m.M20 - n.M20, m.M21 - n.M21, m.M22 - n.M22,
	}
}

// Mul returns the matrix product m·n.
func (m Mat3) Mul(n Mat3) Mat3 {
	return Mat3{
		M00: m.M00*n.M00 + m.M01*n.M10 + m.M02*n.M20,
		M01: m.M00*n.M01 + m.M01*n.M11 + m.M02*n.M21,
		M02: m.M00*n.M02 + m.M01*n.M12 + m.M02*n.M22,
		M10: m.M10*n.M00 + m.M11*n.M10 + m.M12*n.M20,
		M11: m.M10*n.M01 + m.M11*n.M11 + m.M12*n.M21,
		M12: m.M10*n.M02 + m.M11*n.M12 + m.M12*n.M22,
		M20: m.M20*n.M00 + m.M21*n.M10 + m.M22*n.M20,
		M21: m.M20*n.M01 + m.M21*n.M11 + m.M22*n.M21,
		M22: m.M20*n.M02 + m.M21*n.M12 + m.M22*n.M22,
	}
}

// MulVec returns the matrix-vector product m·v.
func (m Mat3) MulVec(v Vec3) Vec3 {
	return Vec3{
		m.M00*v.X + m.M01*v.Y + m.M02*v.Z,
		m.M10*v.X + m.M11*v.Y + m.M12*v.Z,
		m.M20*v.X + m.M21*v.Y + m.M22*v.Z,
	}
}

// Scale returns s·m component-wise.
func (m Mat3) Scale(s float64) Mat3 {
	return Mat3{
		s * m.M00, s * m.M01, s * m.M02,
		s * m.M10, s * m.M11, s * m.M12,
		s * m.M20, s * m.M21, s * m.M22,
	}
}

// AddDiagonal returns m + s·I. Used for Levenberg–Marquardt-style damping
// of nearly singular systems before refactorization.
func (m Mat3) AddDiagonal(s float64) Mat3 {
	out := m
	out.M00 += s
	out.M11 += s
	out.M22 += s

	return out
}

// Transpose returns mᵀ.
func (m Mat3) Transpose() Mat3 {
	return Mat3{
		m.M00, m.M10, m.M20,
		m.M01, m.M11, m.M21,
		m.M02, m.M12, m.M22,
	}
}

// Determinant returns det(m) via cofactor expansion along the first row.
func (m Mat3) Determinant() float64 {
	return m.M00*(m.M11*m.M22-m.M12*m.M21) -
		m.M01*(m.M10*m.M22-m.M12*m.M20) +
		m.M02*(m.M10*m.M21-m.M11*m.M20)
}

// Adjugate returns adj(m), the transpose of the cofactor matrix, so that
// m · adj(m) = det(m) · I.
func (m Mat3) Adjugate() Mat3 {
	return Mat3{
		M00: m.M11*m.M22 - m.M12*m.M21,
		M01: m.M02*m.M21 - m.M01*m.M22,
		M02: m.M01*m.M12 - m.M02*m.M11,
		M10: m.M12*m.M20 - m.M10*m.M22,
		M11: m.M00*m.M22 - m.M02*m.M20,
		M12: m.M02*m.M10 - m.M00*m.M12,
		M20: m.M10*m.M21 - m.M11*m.M20,
		M21: m.M01*m.M20 - m.M00*m.M21,
		M22: m.M00*m.M11 - m.M01*m.M10,
	}
}

// Inverse returns m⁻¹ = adj(m)/det(m).
//
// Errors:
//   - ErrSingular when det(m) == 0 exactly.
func (m Mat3) Inverse() (Mat3, error) {
	det := m.Determinant()
	if det == 0 {
		return Mat3{}, ErrSingular
	}

	return m.Adjugate().Scale(1 / det), nil
}

// InverseSafe returns m⁻¹, or the zero matrix when m is singular.
func (m Mat3) InverseSafe() Mat3 {
	inv, err := m.Inverse()
	if err != nil {
		return Mat3{}
	}

	return inv
}

// InverseTol returns m⁻¹, treating the matrix as near-singular when
// |det(m)| ≤ eps.
//
// Errors:
//   - ErrNegativeTolerance when eps < 0 or eps is NaN.
//   - ErrNearSingular when |det(m)| ≤ eps.
func (m Mat3) InverseTol(eps float64) (Mat3, error) {
	if eps < 0 || math.IsNaN(eps) {
		return Mat3{}, ErrNegativeTolerance
	}
	det := m.Determinant()
	if math.Abs(det) <= eps {
		return Mat3{}, ErrNearSingular
	}

	return m.Adjugate().Scale(1 / det), nil
}

// IsAffine reports whether the last row of m is exactly (0, 0, 1), i.e.
// whether m represents a 2-D affine transform in homogeneous form.
// The test is exact: affine matrices are built, not computed, so their last
// row carries exact constants.
func (m Mat3) IsAffine() bool {
	return m.M20 == 0 && m.M21 == 0 && m.M22 == 1
}

// InverseAffine returns m⁻¹ for an affine m using the 2×2 linear block and
// translation column directly — cheaper and better conditioned than the
// general adjugate path when applicable.
//
// Errors:
//   - ErrNotAffine when the last row is not exactly (0, 0, 1).
//   - ErrSingular when the linear block is singular.
func (m Mat3) InverseAffine() (Mat3, error) {
	if !m.IsAffine() {
		return Mat3{}, ErrNotAffine
	}
	linear := Mat2{M00: m.M00, M01: m.M01, M10: m.M10, M11: m.M11}
	inv, err := linear.Inverse()
	if err != nil {
		return Mat3{}, err
	}
	// Inverse translation: -L⁻¹·t.
	t := inv.MulVec(Vec2{m.M02, m.M12}).Neg()

	return Mat3{
		M00: inv.M00, M01: inv.M01, M02: t.X,
		M10: inv.M10, M11: inv.M11, M12: t.Y,
		M20: 0, M21: 0, M22: 1,
	}, nil
}

// ApproxEqual reports whether every component of m is within eps of n.
func (m Mat3) ApproxEqual(n Mat3, eps float64) bool {
	return math.Abs(m.M00-n.M00) <= eps && math.Abs(m.M01-n.M01) <= eps && math.Abs(m.M02-n.M02) <= eps &&
		math.Abs(m.M10-n.M10) <= eps && math.Abs(m.M11-n.M11) <= eps && math.Abs(m.M12-n.M12) <= eps &&
		math.Abs(m.M20-n.M20) <= eps && math.Abs(m.M21-n.M21) <= eps && math.Abs(m.M22-n.M22) <= eps
}
