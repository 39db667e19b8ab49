// Package store persists workspace state (named polynomials and run
// history) as JSON files under the workspace directory.
package store
