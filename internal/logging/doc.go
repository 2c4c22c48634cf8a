// Package logging provides a unified logging interface for radiusfit.
// It abstracts the underlying logging implementation, allowing consistent logging
// across the fitting pipeline while supporting multiple backends.
package logging
