package batch

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/hornlab/hornet/pkg/hornet"
	"github.com/hornlab/hornet/pkg/hornet/store/memstore"
)

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	fixtures := map[string]string{
		"safe.dl":      "(declare-rel ok ())\n(query ok)\n",
		"unsafe.dl":    "(declare-rel bug ())\n(rule bug)\n(query bug)\n",
		"malformed.dl": "(declare-rel p (Int))\n",
		"notes.txt":    "not a fixture\n",
	}
	for name, text := range fixtures {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(text), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestRunInfersDialectAndCounts(t *testing.T) {
	dir := writeFixtures(t)
	runner := New(Options{Verifier: hornet.New(hornet.Options{})})

	summary, err := runner.Run(context.Background(), Request{Dir: dir, Timeout: 3})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if summary.Total != 3 {
		t.Errorf("Expected 3 verified files (txt skipped), got %d", summary.Total)
	}
	if summary.Safe != 1 || summary.Unsafe != 1 || summary.Unknown != 1 {
		t.Errorf("Unexpected summary: %+v", summary)
	}
}

func TestRunRecordsToStore(t *testing.T) {
	dir := writeFixtures(t)
	s := memstore.New()
	runner := New(Options{Verifier: hornet.New(hornet.Options{}), Store: s})

	ctx := context.Background()
	if _, err := runner.Run(ctx, Request{Dir: dir, Dialect: hornet.DialectDatalog, Timeout: 3, Learn: true}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	runs, err := s.ListRuns(ctx, 0)
	if err != nil {
		t.Fatalf("ListRuns failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 recorded runs, got %d", len(runs))
	}

	seen := make(map[string]string)
	for _, r := range runs {
		if r.ID == "" {
			t.Error("Expected a run id")
		}
		seen[filepath.Base(r.Source)] = r.Status
	}
	if seen["unsafe.dl"] != "unsafe" || seen["safe.dl"] != "safe" || seen["malformed.dl"] != "unknown" {
		t.Errorf("Unexpected recorded statuses: %v", seen)
	}

	counts, err := s.CountByStatus(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if counts["safe"] != 1 || counts["unsafe"] != 1 || counts["unknown"] != 1 {
		t.Errorf("Unexpected counts: %v", counts)
	}
}

func TestDialectForPath(t *testing.T) {
	cases := []struct {
		path string
		want hornet.Dialect
		ok   bool
	}{
		{"a/b/case.smt2", hornet.DialectSMTLIB2, true},
		{"case.dl", hornet.DialectDatalog, true},
		{"case.DATALOG", hornet.DialectDatalog, true},
		{"case.txt", "", false},
		{"case", "", false},
	}
	for _, tc := range cases {
		got, ok := DialectForPath(tc.path)
		if got != tc.want || ok != tc.ok {
			t.Errorf("DialectForPath(%q) = %q, %v; want %q, %v", tc.path, got, ok, tc.want, tc.ok)
		}
	}
}
