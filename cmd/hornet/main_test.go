package main

import (
	"context"
	"testing"

	"github.com/hornlab/hornet/pkg/hornet"
)

func TestBuildVerifierDatalogPath(t *testing.T) {
	// The z3 backend may be absent in this build; the Datalog path must
	// work regardless.
	v := buildVerifier(false)

	res, err := v.Verify(context.Background(), hornet.Request{
		Source:  "(declare-rel bug ())\n(rule bug)\n(query bug)",
		Dialect: hornet.DialectDatalog,
		Timeout: 3,
	})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if res.Status != hornet.StatusUnsafe {
		t.Errorf("Expected unsafe, got %s", res.Status)
	}
}

func TestBuildVerifierSemantic(t *testing.T) {
	v := buildVerifier(true)

	res, err := v.Verify(context.Background(), hornet.Request{
		Source:  "(declare-rel ok ())\n(query ok)",
		Dialect: hornet.DialectDatalog,
		Timeout: 3,
	})
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if res.Status != hornet.StatusSafe {
		t.Errorf("Expected safe, got %s", res.Status)
	}
}

func TestIndent(t *testing.T) {
	got := indent("a\nb")
	if got != "  a\n  b" {
		t.Errorf("Unexpected indent result: %q", got)
	}
}
