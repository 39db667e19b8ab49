// Package domain defines the shared problem/result model and the store
// contracts used by the CLI and the batch runner. It contains plain types
// and interfaces only.
package domain
