// Package core: rotations and rigid transforms.
//
// Rot2 stores the (sin, cos) pair of an angle, the representation used by
// 2-D physics engines so that composing and applying rotations never calls
// trigonometry. Transform pairs a rotation with a translation into a rigid
// 2-D frame.

package core

import "math"

// Rot2 is a 2-D rotation stored as the sine/cosine of its angle.
// The zero value is NOT a valid rotation (sin=0, cos=0); use IdentityRot
// or NewRot2.
type Rot2 struct {
	Sin, Cos float64
}

// NewRot2 returns the rotation by angle radians.
func NewRot2(angle float64) Rot2 {
	return Rot2{Sin: math.Sin(angle), Cos: math.Cos(angle)}
}

// IdentityRot returns the zero-angle rotation.
func IdentityRot() Rot2 { return Rot2{Sin: 0, Cos: 1} }

// Angle returns the rotation angle in radians, in (-π, π].
func (q Rot2) Angle() float64 { return math.Atan2(q.Sin, q.Cos) }

// Apply rotates v by q.
func (q Rot2) Apply(v Vec2) Vec2 {
	return Vec2{q.Cos*v.X - q.Sin*v.Y, q.Sin*v.X + q.Cos*v.Y}
}

// ApplyInverse rotates v by -q.
func (q Rot2) ApplyInverse(v Vec2) Vec2 {
	return Vec2{q.Cos*v.X + q.Sin*v.Y, -q.Sin*v.X + q.Cos*v.Y}
}

// Mul composes rotations: the result rotates by q then by r (angle sum).
func (q Rot2) Mul(r Rot2) Rot2 {
	// Angle-sum identities; no trig calls.
	return Rot2{
		Sin: q.Sin*r.Cos + q.Cos*r.Sin,
		Cos: q.Cos*r.Cos - q.Sin*r.Sin,
	}
}

// Inverse returns the rotation by the negated angle.
func (q Rot2) Inverse() Rot2 { return Rot2{Sin: -q.Sin, Cos: q.Cos} }

// XAxis returns the rotated unit x-axis (cos, sin).
func (q Rot2) XAxis() Vec2 { return Vec2{q.Cos, q.Sin} }

// YAxis returns the rotated unit y-axis (-sin, cos).
func (q Rot2) YAxis() Vec2 { return Vec2{-q.Sin, q.Cos} }

// ToMat2 returns the rotation matrix of q.
func (q Rot2) ToMat2() Mat2 {
	return Mat2{M00: q.Cos, M01: -q.Sin, M10: q.Sin, M11: q.Cos}
}

// ApproxEqual reports whether the sin/cos pairs agree within eps.
func (q Rot2) ApproxEqual(r Rot2, eps float64) bool {
	return math.Abs(q.Sin-r.Sin) <= eps && math.Abs(q.Cos-r.Cos) <= eps
}

// Transform is a rigid 2-D frame: rotate by Q, then translate by P.
type Transform struct {
	P Vec2 // translation
	Q Rot2 // rotation
}

// NewTransform returns the transform with translation p and rotation q.
func NewTransform(p Vec2, q Rot2) Transform { return Transform{P: p, Q: q} }

// IdentityTransform returns the identity frame.
func IdentityTransform() Transform { return Transform{Q: IdentityRot()} }

// Apply maps a local point into the parent frame: Q·v + P.
func (t Transform) Apply(v Vec2) Vec2 { return t.Q.Apply(v).Add(t.P) }

// ApplyInverse maps a parent-frame point into the local frame: Qᵀ·(v - P).
func (t Transform) ApplyInverse(v Vec2) Vec2 { return t.Q.ApplyInverse(v.Sub(t.P)) }

// Mul composes frames: (t·u)(v) == t(u(v)).
func (t Transform) Mul(u Transform) Transform {
	return Transform{P: t.Q.Apply(u.P).Add(t.P), Q: t.Q.Mul(u.Q)}
}

// Inverse returns the frame mapping parent coordinates back to local ones.
func (t Transform) Inverse() Transform {
	qInv := t.Q.Inverse()

	return Transform{P: qInv.Apply(t.P).Neg(), Q: qInv}
}

// ToMat3 returns the homogeneous 3×3 form of t. The result satisfies
// IsAffine and round-trips through Mat3.InverseAffine.
func (t Transform) ToMat3() Mat3 {
	return Mat3{
		M00: t.Q.Cos, M01: -t.Q.Sin, M02: t.P.X,
		M10: t.Q.Sin, M11: t.Q.Cos, M12: t.P.Y,
		M20: 0, M21: 0, M22: 1,
	}
}
