package fixedpoint

import "testing"

func TestReadAll(t *testing.T) {
	nodes, err := readAll("(declare-rel p ()) (rule p) ; comment\n(query p)")
	if err != nil {
		t.Fatalf("readAll failed: %v", err)
	}
	if len(nodes) != 3 {
		t.Fatalf("Expected 3 forms, got %d", len(nodes))
	}
	if nodes[0].head() != "declare-rel" {
		t.Errorf("Unexpected head: %q", nodes[0].head())
	}
	if nodes[2].head() != "query" {
		t.Errorf("Unexpected head: %q", nodes[2].head())
	}
}

func TestReadAllNested(t *testing.T) {
	nodes, err := readAll("(rule (=> (and (a X) (b X)) (c X)))")
	if err != nil {
		t.Fatalf("readAll failed: %v", err)
	}
	impl := nodes[0].list[1]
	if impl.head() != "=>" {
		t.Fatalf("Expected implication, got %q", impl.head())
	}
	if impl.list[1].head() != "and" {
		t.Errorf("Expected conjunctive body, got %q", impl.list[1].head())
	}
}

func TestReadAllUnbalanced(t *testing.T) {
	if _, err := readAll("(rule (p"); err == nil {
		t.Error("Expected error for unbalanced input")
	}
	if _, err := readAll("rule)"); err == nil {
		t.Error("Expected error for stray closing parenthesis")
	}
}

func TestTokenizeCommentToEndOfLine(t *testing.T) {
	toks := tokenize("a ; b c\nd")
	if len(toks) != 2 || toks[0] != "a" || toks[1] != "d" {
		t.Errorf("Unexpected tokens: %v", toks)
	}
}
