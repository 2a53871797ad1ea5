// Package core: planar vector value types and their component arithmetic.
//
// Purpose:
//   - Declare Vec2 and Vec3 with the full component-wise toolkit used by the
//     solver suite and by downstream engine layers.
//
// Determinism & Performance:
//   - Every operation is a pure O(1) function of its inputs; no allocation,
//     no hidden state, bit-identical results for identical inputs.

package core

import "math"

// Vec2 is a 2-D vector (or point) with float64 components.
type Vec2 struct {
	X, Y float64
}

// Vec3 is a 3-D vector with float64 components. In 2-D physics it usually
// carries two linear components plus one angular component.
type Vec3 struct {
	X, Y, Z float64
}

// NewVec2 returns the vector (x, y).
func NewVec2(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// NewVec3 returns the vector (x, y, z).
func NewVec3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

// ---------- Vec2 ----------

// Add returns v + w.
func (v Vec2) Add(w Vec2) Vec2 { return Vec2{v.X + w.X, v.Y + w.Y} }

// Sub returns v - w.
func (v Vec2) Sub(w Vec2) Vec2 { return Vec2{v.X - w.X, v.Y - w.Y} }

// Neg returns -v.
func (v Vec2) Neg() Vec2 { return Vec2{-v.X, -v.Y} }

// Scale returns s·v.
func (v Vec2) Scale(s float64) Vec2 { return Vec2{s * v.X, s * v.Y} }

// Dot returns the dot product v·w.
func (v Vec2) Dot(w Vec2) float64 { return v.X*w.X + v.Y*w.Y }

// Cross returns the scalar z-component of the 2-D cross product v × w.
// Positive when w lies counter-clockwise of v.
func (v Vec2) Cross(w Vec2) float64 { return v.X*w.Y - v.Y*w.X }

// Perp returns v rotated +90° counter-clockwise: (-y, x).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// LengthSquared returns |v|². Cheaper than Length; prefer it for comparisons.
func (v Vec2) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y }

// Length returns the Euclidean norm |v|.
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns |v - w|.
func (v Vec2) Distance(w Vec2) float64 { return v.Sub(w).Length() }

// Normalize returns v/|v|, or the zero vector when |v| == 0.
// The zero guard keeps physics loops total: normalizing a degenerate contact
// normal yields a harmless zero instead of NaN.
func (v Vec2) Normalize() Vec2 {
	length := v.Length()
	if length == 0 {
		return Vec2{}
	}

	return v.Scale(1 / length)
}

// Lerp returns the linear interpolation v + t·(w - v).
// t is not clamped; t outside [0,1] extrapolates.
func (v Vec2) Lerp(w Vec2, t float64) Vec2 {
	return Vec2{v.X + t*(w.X-v.X), v.Y + t*(w.Y-v.Y)}
}

// Abs returns the component-wise absolute value.
func (v Vec2) Abs() Vec2 { return Vec2{math.Abs(v.X), math.Abs(v.Y)} }

// Min returns the component-wise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 { return Vec2{math.Min(v.X, w.X), math.Min(v.Y, w.Y)} }

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 { return Vec2{math.Max(v.X, w.X), math.Max(v.Y, w.Y)} }

// ApproxEqual reports whether every component of v is within eps of the
// corresponding component of w. eps is an absolute threshold.
func (v Vec2) ApproxEqual(w Vec2, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps
}

// ---------- Vec3 ----------

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 { return Vec3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 { return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

// Neg returns -v.
func (v Vec3) Neg() Vec3 { return Vec3{-v.X, -v.Y, -v.Z} }

// Scale returns s·v.
func (v Vec3) Scale(s float64) Vec3 { return Vec3{s * v.X, s * v.Y, s * v.Z} }

// Dot returns the dot product v·w.
func (v Vec3) Dot(w Vec3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

// Cross returns the 3-D cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		v.Y*w.Z - v.Z*w.Y,
		v.Z*w.X - v.X*w.Z,
		v.X*w.Y - v.Y*w.X,
	}
}

// LengthSquared returns |v|².
func (v Vec3) LengthSquared() float64 { return v.X*v.X + v.Y*v.Y + v.Z*v.Z }

// Length returns the Euclidean norm |v|.
func (v Vec3) Length() float64 { return math.Sqrt(v.LengthSquared()) }

// Normalize returns v/|v|, or the zero vector when |v| == 0.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}

	return v.Scale(1 / length)
}

// Lerp returns the linear interpolation v + t·(w - v).
func (v Vec3) Lerp(w Vec3, t float64) Vec3 {
	return Vec3{v.X + t*(w.X-v.X), v.Y + t*(w.Y-v.Y), v.Z + t*(w.Z-v.Z)}
}

// Abs returns the component-wise absolute value.
func (v Vec3) Abs() Vec3 { return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)} }

// ApproxEqual reports whether every component of v is within eps of the
// corresponding component of w. eps is an absolute threshold.
func (v Vec3) ApproxEqual(w Vec3, eps float64) bool {
	return math.Abs(v.X-w.X) <= eps && math.Abs(v.Y-w.Y) <= eps && math.Abs(v.Z-w.Z) <= eps
}

// XY returns the first two components as a Vec2. Convenient when a Vec3
// carries a linear pair plus an angular term.
func (v Vec3) XY() Vec2 { return Vec2{v.X, v.Y} }
