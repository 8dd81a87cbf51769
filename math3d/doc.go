// Package math3d is the small linear-algebra kernel behind softwillow: 2, 3
// and 4 component vectors, column-major 3x3 and 4x4 matrices, and the
// transform and perspective projection builders the render pipeline needs.
//
// Every type is a plain value parameterized over a floating-point type. All
// functions are pure and total over finite inputs; NaN and Inf propagate per
// IEEE-754 and nothing is guarded (Normalize of a zero vector yields NaN).
//
// Matrices use the column-vector convention: M.MulVec(v) transforms v, and
// A.Mul(B) applies B first.
package math3d
