//go:build z3cgo

// Package z3 adapts the Z3 solver as a solver.Engine via cgo. Build with
// -tags z3cgo and libz3 installed; without the tag a stub constructor
// reports the engine as unavailable.
package z3

/*
#cgo LDFLAGS: -lz3
#include <stdlib.h>
#include <z3.h>
*/
import "C"

import (
	"context"
	"fmt"
	"time"
	"unsafe"

	"github.com/hornlab/hornet/pkg/hornet/solver"
)

// Engine creates Z3-backed sessions.
type Engine struct{}

// New returns a Z3 engine.
func New() (*Engine, error) {
	return &Engine{}, nil
}

// Name implements solver.Engine.
func (e *Engine) Name() string { return "z3" }

// NewSession creates a Z3 context and solver bounded by timeout.
func (e *Engine) NewSession(timeout time.Duration) (solver.Session, error) {
	cfg := C.Z3_mk_config()
	ctx := C.Z3_mk_context(cfg)
	C.Z3_del_config(cfg)

	// The default handler aborts the process; with a nil handler errors
	// are only recorded on the context and read back via the error code.
	C.Z3_set_error_handler(ctx, nil)

	slv := C.Z3_mk_solver(ctx)
	C.Z3_solver_inc_ref(ctx, slv)

	params := C.Z3_mk_params(ctx)
	C.Z3_params_inc_ref(ctx, params)
	name := C.CString("timeout")
	C.Z3_params_set_uint(ctx, params, C.Z3_mk_string_symbol(ctx, name), C.uint(timeout.Milliseconds()))
	C.free(unsafe.Pointer(name))
	C.Z3_solver_set_params(ctx, slv, params)
	C.Z3_params_dec_ref(ctx, params)

	return &session{ctx: ctx, solver: slv}, nil
}

type session struct {
	ctx    C.Z3_context
	solver C.Z3_solver
	sat    bool
}

// Parse loads SMT-LIB2 text through Z3's front end.
func (s *session) Parse(text string) error {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))

	C.Z3_solver_from_string(s.ctx, s.solver, cs)

	if code := C.Z3_get_error_code(s.ctx); code != C.Z3_OK {
		msg := C.GoString(C.Z3_get_error_msg(s.ctx, code))
		return fmt.Errorf("z3: %s: %w", msg, solver.ErrParse)
	}
	return nil
}

// Check runs the solver. Z3's own timeout bounds the call; there is no
// cancellation path once the check has started.
func (s *session) Check(ctx context.Context) solver.Status {
	if ctx.Err() != nil {
		return solver.StatusUnknown
	}

	switch C.Z3_solver_check(s.ctx, s.solver) {
	case C.Z3_L_TRUE:
		s.sat = true
		return solver.StatusSat
	case C.Z3_L_FALSE:
		return solver.StatusUnsat
	default:
		return solver.StatusUnknown
	}
}

// Answer renders the model found by a satisfiable check.
func (s *session) Answer() string {
	if !s.sat {
		return ""
	}

	model := C.Z3_solver_get_model(s.ctx, s.solver)
	if model == nil {
		return ""
	}
	C.Z3_model_inc_ref(s.ctx, model)
	text := C.GoString(C.Z3_model_to_string(s.ctx, model))
	C.Z3_model_dec_ref(s.ctx, model)
	return text
}

// Close releases the solver and context.
func (s *session) Close() error {
	C.Z3_solver_dec_ref(s.ctx, s.solver)
	C.Z3_del_context(s.ctx)
	return nil
}
