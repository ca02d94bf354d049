// Package batch verifies directories of CHC fixture files and records
// the outcomes. A single malformed case never aborts a run; it simply
// lands in the unknown bucket.
package batch

import (
	"context"
	"crypto/rand"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/store"
)

// Options configures a Runner. Store and Logger are optional.
type Options struct {
	Verifier *hornet.Verifier
	Store    store.Store
	Logger   *zap.Logger
}

// Runner walks fixture directories and verifies each recognised file.
type Runner struct {
	verifier *hornet.Verifier
	store    store.Store
	log      *zap.Logger
	entropy  *ulid.MonotonicEntropy
}

// New creates a Runner.
func New(opts Options) *Runner {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{
		verifier: opts.Verifier,
		store:    opts.Store,
		log:      log,
		entropy:  ulid.Monotonic(rand.Reader, 0),
	}
}

// Summary aggregates the verdicts of one batch run.
type Summary struct {
	Total   int
	Safe    int
	Unsafe  int
	Unknown int
}

// Request describes a batch run. Dialect may be empty, in which case each
// file's dialect is inferred from its extension (.smt2 for SMT-LIB2,
// .dl/.datalog for Datalog) and files with other extensions are skipped.
type Request struct {
	Dir     string
	Dialect hornet.Dialect
	Timeout int
	Learn   bool
}

// Run verifies every recognised file under req.Dir.
func (r *Runner) Run(ctx context.Context, req Request) (Summary, error) {
	if req.Timeout <= 0 {
		req.Timeout = hornet.DefaultTimeout
	}

	var summary Summary
	err := filepath.WalkDir(req.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		dialect := req.Dialect
		if dialect == "" {
			var ok bool
			dialect, ok = DialectForPath(path)
			if !ok {
				return nil
			}
		} else if _, ok := DialectForPath(path); !ok {
			return nil
		}

		started := time.Now()
		res, verr := r.verifier.Verify(ctx, hornet.Request{
			Source:  path,
			Dialect: dialect,
			Timeout: req.Timeout,
			Learn:   req.Learn,
		})
		if verr != nil {
			// Argument misuse or a broken backend, not a property of
			// this input. Abort rather than misreport the corpus.
			return fmt.Errorf("verify %s: %w", path, verr)
		}
		elapsed := time.Since(started)

		summary.Total++
		switch res.Status {
		case hornet.StatusSafe:
			summary.Safe++
		case hornet.StatusUnsafe:
			summary.Unsafe++
		default:
			summary.Unknown++
		}

		r.log.Info("verified",
			zap.String("source", path),
			zap.String("dialect", string(dialect)),
			zap.String("status", string(res.Status)),
			zap.Duration("duration", elapsed),
		)

		if r.store != nil {
			run := store.Run{
				ID:        r.newRunID(),
				Source:    path,
				Dialect:   string(dialect),
				Status:    string(res.Status),
				Model:     res.Model,
				Learned:   res.Learned,
				Duration:  elapsed,
				CreatedAt: time.Now().UTC(),
			}
			if serr := r.store.RecordRun(ctx, run); serr != nil {
				return fmt.Errorf("record run for %s: %w", path, serr)
			}
		}
		return nil
	})
	if err != nil {
		return summary, err
	}
	return summary, nil
}

func (r *Runner) newRunID() string {
	return ulid.MustNew(ulid.Now(), r.entropy).String()
}

// DialectForPath infers the dialect from a file extension.
func DialectForPath(path string) (hornet.Dialect, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".smt2":
		return hornet.DialectSMTLIB2, true
	case ".dl", ".datalog":
		return hornet.DialectDatalog, true
	}
	return "", false
}
