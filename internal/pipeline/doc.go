// Package pipeline runs the fitting stages in order: validate the request,
// generate the latitude samples, fit the polynomial and evaluate its error.
//
// The stages are strictly sequential and share no mutable state; each one
// consumes the immutable output of the previous stage. Logging, metrics and
// tracing are optional and injected through Options.
package pipeline
