// Package batch loads YAML problem files and runs them through the
// polynomial, solver and interpolation routines, recording results in the
// workspace.
package batch
