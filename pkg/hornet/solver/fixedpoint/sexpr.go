package fixedpoint

import (
	"fmt"
	"strings"
)

// node is one s-expression: either a bare atom or a list of children.
type node struct {
	atom string
	list []node
	leaf bool
}

func atomNode(s string) node  { return node{atom: s, leaf: true} }
func listNode(ns []node) node { return node{list: ns} }

// head returns the leading atom of a list node, or the atom itself.
func (n node) head() string {
	if n.leaf {
		return n.atom
	}
	if len(n.list) > 0 && n.list[0].leaf {
		return n.list[0].atom
	}
	return ""
}

// readAll parses a sequence of s-expressions. Line comments start with
// ';'. Strings are not supported; the Datalog dialect has no use for them.
func readAll(text string) ([]node, error) {
	toks := tokenize(text)
	var out []node
	pos := 0
	for pos < len(toks) {
		n, next, err := readOne(toks, pos)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
		pos = next
	}
	return out, nil
}

func readOne(toks []string, pos int) (node, int, error) {
	if pos >= len(toks) {
		return node{}, pos, fmt.Errorf("unexpected end of input")
	}
	switch toks[pos] {
	case "(":
		var children []node
		pos++
		for {
			if pos >= len(toks) {
				return node{}, pos, fmt.Errorf("unbalanced parenthesis")
			}
			if toks[pos] == ")" {
				return listNode(children), pos + 1, nil
			}
			child, next, err := readOne(toks, pos)
			if err != nil {
				return node{}, pos, err
			}
			children = append(children, child)
			pos = next
		}
	case ")":
		return node{}, pos, fmt.Errorf("unexpected closing parenthesis")
	default:
		return atomNode(toks[pos]), pos + 1, nil
	}
}

func tokenize(text string) []string {
	var toks []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			toks = append(toks, cur.String())
			cur.Reset()
		}
	}

	inComment := false
	for _, r := range text {
		if inComment {
			if r == '\n' {
				inComment = false
			}
			continue
		}
		switch {
		case r == ';':
			flush()
			inComment = true
		case r == '(' || r == ')':
			flush()
			toks = append(toks, string(r))
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return toks
}
