//go:build !z3cgo

package z3

import (
	"fmt"
	"time"

	"github.com/hornlab/hornet/pkg/hornet/internalerr"
	"github.com/hornlab/hornet/pkg/hornet/solver"
)

// Engine is the stub placeholder when Z3 support is compiled out. It keeps
// the full solver.Engine surface so callers build under either tag.
type Engine struct{}

// New reports that Z3 is not available in this build.
func New() (*Engine, error) {
	return nil, fmt.Errorf("z3 support disabled, rebuild with -tags z3cgo: %w", internalerr.ErrEngineUnavailable)
}

// Name implements solver.Engine.
func (e *Engine) Name() string { return "z3" }

// NewSession always fails in a stub build.
func (e *Engine) NewSession(timeout time.Duration) (solver.Session, error) {
	return nil, fmt.Errorf("z3 support disabled, rebuild with -tags z3cgo: %w", internalerr.ErrEngineUnavailable)
}
