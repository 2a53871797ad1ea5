// Package solve implements the dense 2×2/3×3 linear-system solver suite:
// closed-form Cramer solving, Gaussian elimination with partial pivoting,
// Cholesky for symmetric positive-definite systems, LDLᵀ factorization with
// a reusable factor object and a damped recovery path, inverse-based
// reference solvers and Schur-complement block reduction.
//
// Every solver is a pure function: it reads its matrix and right-hand side,
// returns the solution by value, holds no cross-call state and never mutates
// its inputs. Results are deterministic — identical floating-point inputs
// give bit-identical outputs.
//
// Three flavors cover the error-policy spectrum of a physics loop:
//
//   - Plain variants (Solve2, Solve3, ...) fail on exact singularity with
//     ErrSingular or ErrNotPositiveDefinite.
//   - Tol variants take an explicit non-negative tolerance and fail with
//     ErrNearSingular when a pivot or determinant magnitude is at or below
//     it. A negative tolerance is rejected with ErrNegativeTolerance.
//   - Safe variants never fail: any singularity degrades to the zero vector,
//     the policy hot constraint loops expect.
//
// For iterative constraint solvers that reuse one system matrix across many
// right-hand sides, factor once with Factorize/FactorizeTol and call
// (LDLT).Solve per sub-step — the performance-critical shape.
//
// All sentinel errors are matched with errors.Is; facades wrap them with an
// operation tag for readable messages without breaking matching.
package solve
