// Package core defines the fundamental planar value types — Vec2, Vec3,
// Mat2, Mat3, Rot2 and Transform — together with their component-wise
// arithmetic, determinants, adjugates, inverses, rotation/transform
// composition, formatting, parsing and hashing.
//
// Every type is a plain value struct: methods take value receivers, never
// mutate their receiver, and return fresh values. There is no shared or
// global state anywhere in the package, so values can be used freely across
// goroutines.
//
// Matrices are row-major. Rot2 stores the sine/cosine pair of an angle so
// that applying a rotation costs four multiplies and no trigonometry.
//
// The numeric policy is IEEE-754 throughout: NaN and ±Inf propagate through
// arithmetic. Only the inverse family and parsing return errors, via the
// package sentinels (ErrSingular, ErrNearSingular, ErrNegativeTolerance,
// ErrNotAffine, ErrParse) matched with errors.Is.
//
// See the solve package for the linear-system solvers built on these types.
package core
