// Package datalog approximates CHC safety for s-expression Datalog input
// by syntactic pattern matching. It only distinguishes a queried predicate
// that has a directly satisfiable rule from one that does not; it performs
// no fixed-point computation. For semantic evaluation see
// pkg/hornet/solver/fixedpoint.
package datalog

import (
	"fmt"
	"regexp"
)

var (
	declRe  = regexp.MustCompile(`\(\s*declare-rel\s+([A-Za-z0-9_!?\-+*/<>=]+)`)
	ruleRe  = regexp.MustCompile(`\(\s*rule\s+\(?\s*([A-Za-z0-9_!?\-+*/<>=]+)`)
	queryRe = regexp.MustCompile(`\(\s*query\s+([A-Za-z0-9_!?\-+*/<>=]+)`)
)

// Program is the syntactic surface extracted from Datalog source text:
// declared predicate names, predicate names heading a rule, and queried
// predicate names in source order.
type Program struct {
	Declared  map[string]bool
	RuleHeads map[string]bool
	Queries   []string
}

// Extract scans text for declare-rel, rule and query forms.
func Extract(text string) Program {
	p := Program{
		Declared:  make(map[string]bool),
		RuleHeads: make(map[string]bool),
	}
	for _, m := range declRe.FindAllStringSubmatch(text, -1) {
		p.Declared[m[1]] = true
	}
	for _, m := range ruleRe.FindAllStringSubmatch(text, -1) {
		p.RuleHeads[m[1]] = true
	}
	for _, m := range queryRe.FindAllStringSubmatch(text, -1) {
		p.Queries = append(p.Queries, m[1])
	}
	return p
}

// Verdict is the outcome of classifying a well-formed program.
type Verdict struct {
	Unsafe bool
	Target string // the queried predicate the verdict is about
	Model  string // witness text, empty when safe
}

// Classify decides safety for the first queried predicate. The second
// return value is false when the input is malformed: no declarations, no
// query, or a query naming an undeclared predicate. Malformed input never
// produces an error; callers map it to an unknown status.
func Classify(text string) (Verdict, bool) {
	p := Extract(text)

	if len(p.Declared) == 0 || len(p.Queries) == 0 {
		return Verdict{}, false
	}

	target := p.Queries[0]
	if !p.Declared[target] {
		return Verdict{}, false
	}

	if p.RuleHeads[target] {
		return Verdict{
			Unsafe: true,
			Target: target,
			Model:  witness(target),
		}, true
	}
	return Verdict{Target: target}, true
}

// witness synthesizes a placeholder counter-example for an unconditionally
// derivable predicate.
func witness(pred string) string {
	return fmt.Sprintf("(define-fun %s () Bool true)\n(assert (%s))", pred, pred)
}
