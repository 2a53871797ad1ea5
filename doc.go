// Package planar is the foundational 2-D math layer for a physics-engine
// family — vectors, rotations, small dense matrices and the linear-system
// solvers that rigid-body and constraint code lean on.
//
// 🚀 What is planar?
//
//	A deterministic, allocation-free library that brings together:
//		• Value types: Vec2/Vec3, Mat2/Mat3, Rot2 rotations, rigid Transforms
//		• Closed-form 2×2 solving (Cramer) with throwing/safe/tolerant variants
//		• 3×3 Gaussian elimination with partial pivoting (GEPP)
//		• Cholesky solving for symmetric positive-definite systems
//		• LDLᵀ factorization with a reusable factor object and a damped
//		  (Levenberg–Marquardt-style) recovery path
//		• Schur-complement reduction of 3×3 block systems down to 2×2
//
// ✨ Why choose planar?
//
//   - Physics-loop friendly – Safe variants never error; hot paths never allocate
//   - Deterministic – identical inputs give bit-identical outputs, always
//   - Pure Go – no cgo, no hidden deps
//   - Honest errors – sentinel errors for singular, near-singular and
//     not-positive-definite systems, matched with errors.Is
//
// Under the hood, everything is organized under two subpackages:
//
//	core/  — fundamental Vec2, Vec3, Mat2, Mat3, Rot2 and Transform value types
//	solve/ — the dense 2×2/3×3 linear-system solver suite
//
// Quick example — solving a constraint system once per sub-step:
//
//	f, err := solve.Factorize(k)      // factor the effective-mass matrix once
//	if err != nil { ... }
//	impulse := f.Solve(bias)          // then solve many right-hand sides
//
// Dive into README.md for full examples and the solver-selection guide.
//
//	go get github.com/katalvlaran/planar
package planar
