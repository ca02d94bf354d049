package main

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestIsBenchmark(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/bench/case1.smt2", true},
		{"/bench/case2.dl", true},
		{"/bench/case3.DATALOG", true},
		{"/bench/readme.html", false},
		{"/bench/", false},
		{"case.smt2.bak", false},
	}

	for _, tt := range tests {
		if got := isBenchmark(tt.path); got != tt.want {
			t.Errorf("isBenchmark(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFetchLinksResolvesRelative(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
<a href="case1.smt2">case1</a>
<a href="/abs/case2.dl">case2</a>
<a href="https://elsewhere.example/case3.smt2">case3</a>
</body></html>`))
	}))
	defer srv.Close()

	base, err := url.Parse(srv.URL + "/bench/")
	if err != nil {
		t.Fatal(err)
	}

	links, err := fetchLinks(base)
	if err != nil {
		t.Fatalf("fetchLinks failed: %v", err)
	}
	if len(links) != 3 {
		t.Fatalf("Expected 3 links, got %d", len(links))
	}
	if links[0].String() != srv.URL+"/bench/case1.smt2" {
		t.Errorf("Relative link not resolved: %s", links[0])
	}
	if links[1].String() != srv.URL+"/abs/case2.dl" {
		t.Errorf("Absolute path not resolved: %s", links[1])
	}
	if links[2].Host != "elsewhere.example" {
		t.Errorf("External link mangled: %s", links[2])
	}
}

func TestFetchLinksNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	base, _ := url.Parse(srv.URL)
	if _, err := fetchLinks(base); err == nil {
		t.Error("Expected error for non-200 index")
	}
}
