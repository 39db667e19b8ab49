// Package commands defines the polyroots CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - eval     Evaluate a polynomial (optionally with derivatives, or at a
//     complex point)
//   - solve    Find real or complex roots of a polynomial up to degree three
//   - interp   Newton divided-difference interpolation through sample points
//   - save     Store a named polynomial in the workspace
//   - list     List stored polynomials
//   - show     Print one stored polynomial
//   - rm       Delete a stored polynomial
//   - batch    Run a YAML problem file
//   - history  Show recent run records
//
// # Implementation
//
// The root command builds the dependency graph (workspace store, batch
// runner, logger) before any subcommand runs, so handlers share one app
// context.
package commands
