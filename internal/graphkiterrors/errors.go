// Package graphkiterrors defines the error kinds surfaced at the Loader
// and kernel boundaries. Apart from BFS's source and thread-count checks
// (ErrArgument), kernels are infallible given a well-formed Graph; the
// Loader, BFS, CLI argument validation and the output writers produce
// these.
package graphkiterrors

import "errors"

// Sentinel kinds. Wrap with fmt.Errorf("...: %w", ErrX) to add context;
// callers check with errors.Is.
var (
	ErrInputParse = errors.New("input parse error")
	ErrInputIO    = errors.New("input I/O error")
	ErrArgument   = errors.New("argument error")
	ErrOutputIO   = errors.New("output I/O error")
)
