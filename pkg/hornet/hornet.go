// Package hornet classifies Constrained Horn Clause inputs as safe,
// unsafe or unknown. Input is either SMT-LIB2 text handed to a solver
// backend, or s-expression Datalog handled by a syntactic heuristic (or,
// when explicitly configured, a semantic fixed-point engine).
package hornet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hornlab/hornet/pkg/hornet/cache"
	"github.com/hornlab/hornet/pkg/hornet/datalog"
	"github.com/hornlab/hornet/pkg/hornet/internalerr"
	"github.com/hornlab/hornet/pkg/hornet/solver"
	"github.com/hornlab/hornet/pkg/hornet/source"
)

// Dialect selects the front end for a verification request.
type Dialect string

const (
	DialectSMTLIB2 Dialect = "smtlib2"
	DialectDatalog Dialect = "datalog"
)

// ParseDialect validates a dialect name from user input.
func ParseDialect(s string) (Dialect, error) {
	switch Dialect(s) {
	case DialectSMTLIB2, DialectDatalog:
		return Dialect(s), nil
	}
	return "", fmt.Errorf("dialect must be %q or %q, got %q: %w",
		DialectSMTLIB2, DialectDatalog, s, internalerr.ErrUnknownDialect)
}

// Status is the safety verdict.
type Status string

const (
	StatusSafe    Status = "safe"
	StatusUnsafe  Status = "unsafe"
	StatusUnknown Status = "unknown"
)

// DefaultTimeout is the solver budget in seconds applied by callers that
// do not specify one. Verify itself requires an explicit positive timeout.
const DefaultTimeout = 5

// Request describes one verification call. Source is either inline text
// or the path of an existing file. Timeout is in seconds and must be
// positive.
type Request struct {
	Source  string
	Dialect Dialect
	Timeout int
	Learn   bool
}

// Result is the uniform outcome record. Model is empty unless the status
// is unsafe. Learned holds cached answers and is empty unless learning
// was requested.
type Result struct {
	Status  Status
	Model   string
	Learned []string
}

// classifier is the per-dialect contract: decide a verdict for resolved
// source text, recording any learned answers into the per-call cache.
type classifier interface {
	classify(ctx context.Context, text string, timeout time.Duration, c *cache.Cache) (Result, error)
}

// Options configures a Verifier.
type Options struct {
	// Engine is the SMT-LIB2 backend. Leaving it nil makes smtlib2
	// requests fail with ErrEngineUnavailable.
	Engine solver.Engine

	// DatalogSemantics, when set, replaces the syntactic Datalog
	// heuristic with a semantic fixed-point backend. This is an explicit
	// opt-in: the heuristic stays the default on purpose.
	DatalogSemantics solver.Engine
}

// Verifier is the verification facade.
type Verifier struct {
	classifiers map[Dialect]classifier
}

// New creates a Verifier with the given backends.
func New(opts Options) *Verifier {
	v := &Verifier{classifiers: make(map[Dialect]classifier)}
	v.classifiers[DialectSMTLIB2] = &engineClassifier{engine: opts.Engine}
	if opts.DatalogSemantics != nil {
		v.classifiers[DialectDatalog] = &engineClassifier{engine: opts.DatalogSemantics}
	} else {
		v.classifiers[DialectDatalog] = heuristicClassifier{}
	}
	return v
}

// Verify decides CHC safety for the request. Argument misuse (bad timeout
// or dialect) is an error; malformed input and solver trouble degrade to
// StatusUnknown so batch pipelines never crash on a single case.
func (v *Verifier) Verify(ctx context.Context, req Request) (Result, error) {
	if req.Timeout <= 0 {
		return Result{}, fmt.Errorf("timeout must be positive, got %d: %w",
			req.Timeout, internalerr.ErrInvalidInput)
	}
	cl, ok := v.classifiers[req.Dialect]
	if !ok {
		return Result{}, fmt.Errorf("dialect must be %q or %q, got %q: %w",
			DialectSMTLIB2, DialectDatalog, req.Dialect, internalerr.ErrUnknownDialect)
	}

	text, err := source.Resolve(req.Source)
	if err != nil {
		return unknownResult(), nil
	}
	if strings.TrimSpace(text) == "" {
		return unknownResult(), nil
	}

	c := cache.New()
	res, err := cl.classify(ctx, text, time.Duration(req.Timeout)*time.Second, c)
	if err != nil {
		return Result{}, err
	}

	if req.Learn {
		res.Learned = c.Entries()
	} else {
		res.Learned = []string{}
	}
	return res, nil
}

func unknownResult() Result {
	return Result{Status: StatusUnknown, Learned: []string{}}
}

// heuristicClassifier wraps the syntactic Datalog analysis.
type heuristicClassifier struct{}

func (heuristicClassifier) classify(_ context.Context, text string, _ time.Duration, c *cache.Cache) (Result, error) {
	verdict, ok := datalog.Classify(text)
	if !ok {
		return unknownResult(), nil
	}
	if !verdict.Unsafe {
		return Result{Status: StatusSafe}, nil
	}
	c.Record(verdict.Model)
	return Result{Status: StatusUnsafe, Model: verdict.Model}, nil
}

// engineClassifier drives a solver backend through one
// parse/check/answer cycle.
type engineClassifier struct {
	engine solver.Engine
}

func (ec *engineClassifier) classify(ctx context.Context, text string, timeout time.Duration, c *cache.Cache) (Result, error) {
	if ec.engine == nil {
		return Result{}, fmt.Errorf("no solver engine configured: %w", internalerr.ErrEngineUnavailable)
	}

	sess, err := ec.engine.NewSession(timeout)
	if err != nil {
		return Result{}, err
	}
	defer sess.Close()

	if err := sess.Parse(text); err != nil {
		if errors.Is(err, solver.ErrParse) {
			return unknownResult(), nil
		}
		return Result{}, err
	}

	switch sess.Check(ctx) {
	case solver.StatusUnsat:
		return Result{Status: StatusSafe}, nil
	case solver.StatusSat:
		answer := sess.Answer()
		c.Record(answer)
		return Result{Status: StatusUnsafe, Model: answer}, nil
	default:
		return unknownResult(), nil
	}
}
