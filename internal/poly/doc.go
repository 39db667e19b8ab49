// Package poly implements univariate polynomials with float64 or complex128
// coefficients: construction and validation, Horner evaluation (real and
// complex arguments), derivative evaluation, and basic arithmetic.
//
// A polynomial of degree n is a coefficient slice of length n+1 in ascending
// order:
//
//	P(x) = c[0] + c[1]x + c[2]x² + ... + c[n]xⁿ
package poly
