// Package solver defines the narrow surface the verification facade needs
// from a constraint-solving engine: parse the input with the engine's own
// front end, run a ternary safety check, and read back an answer.
// Implementations live in subpackages (z3, fixedpoint) and can be swapped
// without touching the facade.
package solver

import (
	"context"
	"errors"
	"time"
)

// Status is the three-valued outcome of a check.
type Status int

const (
	StatusUnknown Status = iota
	StatusSat
	StatusUnsat
)

// String returns the solver-style spelling of the status.
func (s Status) String() string {
	switch s {
	case StatusSat:
		return "sat"
	case StatusUnsat:
		return "unsat"
	default:
		return "unknown"
	}
}

// ErrParse marks a front-end parse failure. Callers downgrade it to an
// unknown verdict; any other error from Parse propagates.
var ErrParse = errors.New("parse failed")

// Engine creates solving sessions. An Engine is safe for reuse across
// calls; a Session is not.
type Engine interface {
	// Name identifies the backend, for logging and run records.
	Name() string

	// NewSession prepares a fresh solver state bounded by timeout.
	NewSession(timeout time.Duration) (Session, error)
}

// Session is one parse/check/answer cycle over a single input.
type Session interface {
	// Parse loads source text through the engine's native front end.
	// A front-end rejection wraps ErrParse.
	Parse(text string) error

	// Check decides satisfiability of the loaded clauses. Timeouts and
	// incompleteness surface as StatusUnknown, never as an error.
	Check(ctx context.Context) Status

	// Answer returns the engine's counter-example or derivation text
	// after a StatusSat check. Empty otherwise.
	Answer() string

	// Close releases solver resources.
	Close() error
}
