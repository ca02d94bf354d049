// Package fixedpoint evaluates the s-expression Datalog dialect
// semantically by translating declare-rel/rule/query forms into a Mangle
// program and computing its least fixed point. A queried predicate that is
// derivable in the fixed point is a reachable error state (sat); one that
// is not derivable is safe (unsat).
//
// Translation is deliberately narrow: flat atoms with constant or variable
// arguments, facts, and (rule (=> body head)) clauses with conjunctive
// bodies. Anything else is a front-end rejection.
package fixedpoint

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	mengine "github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"

	"github.com/hornlab/hornet/pkg/hornet/solver"
)

// Engine creates Mangle-backed sessions.
type Engine struct{}

// New returns a fixed-point engine.
func New() *Engine {
	return &Engine{}
}

// Name implements solver.Engine.
func (e *Engine) Name() string { return "mangle" }

// NewSession implements solver.Engine.
func (e *Engine) NewSession(timeout time.Duration) (solver.Session, error) {
	return &session{timeout: timeout}, nil
}

type session struct {
	timeout   time.Duration
	info      *analysis.ProgramInfo
	queryPred string // sanitized Mangle predicate name
	queryOrig string // name as written in the input
	answer    string
}

// Parse translates the Datalog source into a Mangle program and analyzes
// it. Any structural problem wraps solver.ErrParse.
func (s *session) Parse(text string) error {
	prog, err := translate(text)
	if err != nil {
		return fmt.Errorf("fixedpoint: %v: %w", err, solver.ErrParse)
	}

	unit, err := parse.Unit(strings.NewReader(prog.mangleSrc))
	if err != nil {
		return fmt.Errorf("fixedpoint: mangle parse: %v: %w", err, solver.ErrParse)
	}
	info, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return fmt.Errorf("fixedpoint: mangle analysis: %v: %w", err, solver.ErrParse)
	}

	s.info = info
	s.queryPred = prog.queryPred
	s.queryOrig = prog.queryOrig
	return nil
}

// Check computes the fixed point and decides reachability of the queried
// predicate. Evaluation runs under the session timeout; expiry yields
// StatusUnknown.
func (s *session) Check(ctx context.Context) solver.Status {
	if s.info == nil {
		return solver.StatusUnknown
	}

	if _, ok := ctx.Deadline(); !ok && s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	store := factstore.NewSimpleInMemoryStore()
	done := make(chan error, 1)
	go func() {
		_, err := mengine.EvalProgramWithStats(s.info, store)
		done <- err
	}()

	select {
	case err := <-done:
		if err != nil {
			return solver.StatusUnknown
		}
	case <-ctx.Done():
		return solver.StatusUnknown
	}

	var derived []ast.Atom
	for _, sym := range store.ListPredicates() {
		if sym.Symbol != s.queryPred {
			continue
		}
		_ = store.GetFacts(ast.NewQuery(sym), func(a ast.Atom) error {
			derived = append(derived, a)
			return nil
		})
	}

	if len(derived) == 0 {
		return solver.StatusUnsat
	}
	s.answer = renderFacts(s.queryOrig, derived)
	return solver.StatusSat
}

// Answer returns the derived facts for the queried predicate after a
// StatusSat check, rendered in the input's s-expression style.
func (s *session) Answer() string {
	return s.answer
}

// Close implements solver.Session.
func (s *session) Close() error {
	s.info = nil
	return nil
}

type program struct {
	mangleSrc string
	queryPred string
	queryOrig string
}

// translate maps the s-expression surface onto Mangle source text.
func translate(text string) (*program, error) {
	nodes, err := readAll(text)
	if err != nil {
		return nil, err
	}

	declared := make(map[string]int) // original name -> arity
	var order []string
	var clauses []string
	var queryOrig string
	haveQuery := false

	for _, n := range nodes {
		if n.leaf {
			return nil, fmt.Errorf("unexpected top-level atom %q", n.atom)
		}
		switch n.head() {
		case "declare-rel":
			if len(n.list) < 2 || !n.list[1].leaf {
				return nil, fmt.Errorf("malformed declare-rel")
			}
			name := n.list[1].atom
			arity := 0
			if len(n.list) > 2 && !n.list[2].leaf {
				arity = len(n.list[2].list)
			}
			if _, seen := declared[name]; !seen {
				order = append(order, name)
			}
			declared[name] = arity
		case "rule":
			if len(n.list) != 2 {
				return nil, fmt.Errorf("malformed rule")
			}
			clause, err := translateRule(n.list[1])
			if err != nil {
				return nil, err
			}
			clauses = append(clauses, clause)
		case "query":
			if len(n.list) != 2 {
				return nil, fmt.Errorf("malformed query")
			}
			q := n.list[1]
			name := q.head()
			if name == "" {
				return nil, fmt.Errorf("malformed query")
			}
			if !haveQuery {
				queryOrig = name
				haveQuery = true
			}
		case "declare-var", "set-logic", "set-option":
			// Harmless front matter, no Mangle counterpart.
		default:
			return nil, fmt.Errorf("unsupported form %q", n.head())
		}
	}

	if len(declared) == 0 {
		return nil, fmt.Errorf("no declarations")
	}
	if !haveQuery {
		return nil, fmt.Errorf("no query")
	}
	if _, ok := declared[queryOrig]; !ok {
		return nil, fmt.Errorf("query references undeclared predicate %q", queryOrig)
	}

	var b strings.Builder
	for _, name := range order {
		b.WriteString(declDecl(name, declared[name]))
		b.WriteByte('\n')
	}
	for _, c := range clauses {
		b.WriteString(c)
		b.WriteByte('\n')
	}

	return &program{
		mangleSrc: b.String(),
		queryPred: sanitize(queryOrig),
		queryOrig: queryOrig,
	}, nil
}

// translateRule handles a bare fact, a parenthesized fact, or an
// implication (=> body head) with an optionally conjunctive body.
func translateRule(n node) (string, error) {
	if n.leaf || n.head() != "=>" {
		head, err := translateAtom(n)
		if err != nil {
			return "", err
		}
		return head + ".", nil
	}

	if len(n.list) != 3 {
		return "", fmt.Errorf("malformed implication")
	}
	body, head := n.list[1], n.list[2]

	headAtom, err := translateAtom(head)
	if err != nil {
		return "", err
	}

	var premises []node
	if !body.leaf && body.head() == "and" {
		premises = body.list[1:]
	} else {
		premises = []node{body}
	}

	parts := make([]string, 0, len(premises))
	for _, p := range premises {
		atom, err := translateAtom(p)
		if err != nil {
			return "", err
		}
		parts = append(parts, atom)
	}

	return fmt.Sprintf("%s :- %s.", headAtom, strings.Join(parts, ", ")), nil
}

// translateAtom maps (P t1 t2 ...) or a bare P onto Mangle atom syntax.
func translateAtom(n node) (string, error) {
	if n.leaf {
		return sanitize(n.atom) + "()", nil
	}
	if len(n.list) == 0 || !n.list[0].leaf {
		return "", fmt.Errorf("malformed atom")
	}

	args := make([]string, 0, len(n.list)-1)
	for _, t := range n.list[1:] {
		term, err := translateTerm(t)
		if err != nil {
			return "", err
		}
		args = append(args, term)
	}
	return fmt.Sprintf("%s(%s)", sanitize(n.list[0].atom), strings.Join(args, ", ")), nil
}

var numberRe = regexp.MustCompile(`^-?[0-9]+$`)

// translateTerm maps a leaf term: numbers pass through, capitalized
// symbols become Mangle variables, everything else a name constant.
func translateTerm(n node) (string, error) {
	if !n.leaf {
		return "", fmt.Errorf("nested terms are not supported")
	}
	a := n.atom
	if numberRe.MatchString(a) {
		return a, nil
	}
	if a[0] >= 'A' && a[0] <= 'Z' {
		return varName(a), nil
	}
	return "/" + sanitize(a), nil
}

func declDecl(name string, arity int) string {
	vars := make([]string, arity)
	for i := range vars {
		vars[i] = fmt.Sprintf("X%d", i)
	}
	return fmt.Sprintf("Decl %s(%s).", sanitize(name), strings.Join(vars, ", "))
}

// sanitize maps a Datalog predicate or constant name onto a valid Mangle
// identifier: [a-z][a-zA-Z0-9_]*.
func sanitize(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		default:
			b.WriteByte('_')
		}
	}
	s := b.String()
	if s == "" || !(s[0] >= 'a' && s[0] <= 'z') {
		s = "p_" + s
	}
	return s
}

// varName maps a Datalog variable onto a valid Mangle variable name.
func varName(name string) string {
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// renderFacts prints derived facts in the input's s-expression style,
// using the predicate name as written in the source.
func renderFacts(orig string, facts []ast.Atom) string {
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		if len(f.Args) == 0 {
			lines = append(lines, fmt.Sprintf("(%s)", orig))
			continue
		}
		args := make([]string, len(f.Args))
		for i, a := range f.Args {
			args[i] = strings.TrimPrefix(a.String(), "/")
		}
		lines = append(lines, fmt.Sprintf("(%s %s)", orig, strings.Join(args, " ")))
	}
	return strings.Join(lines, "\n")
}
