// Package app wires application dependencies for the CLI.
//
// It builds the workspace store, batch runner and logger from Config,
// exposing them via the Wire struct for commands to use.
package app
