// Package solve provides closed-form root solvers for linear, quadratic and
// cubic equations with real coefficients, returning real or complex roots.
//
// Real roots come back in ascending order with multiple roots repeated;
// complex roots are ordered by ascending real part, with a conjugate pair
// ordered negative-imaginary first.
package solve
