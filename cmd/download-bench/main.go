// Command download-bench fetches CHC benchmark files linked from an HTML
// index page (the layout used by SMT-LIB and CHC-COMP benchmark
// mirrors) into a local fixture directory for `hornet batch`.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/net/html"
)

func main() {
	var (
		indexURL = flag.String("index", "", "URL of the benchmark index page (required)")
		outDir   = flag.String("out", "bench", "Output directory")
		limit    = flag.Int("limit", 50, "Maximum number of files to download")
	)
	flag.Parse()

	if *indexURL == "" {
		log.Fatal("--index required")
	}

	base, err := url.Parse(*indexURL)
	if err != nil {
		log.Fatal("Bad index URL:", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatal("Create output directory:", err)
	}

	log.Printf("Fetching index %s...", *indexURL)
	links, err := fetchLinks(base)
	if err != nil {
		log.Fatal("Fetch index:", err)
	}

	downloaded := 0
	for _, link := range links {
		if downloaded >= *limit {
			break
		}
		if !isBenchmark(link.Path) {
			continue
		}

		dest := filepath.Join(*outDir, path.Base(link.Path))
		if err := downloadFile(link, dest); err != nil {
			log.Printf("Skipping %s: %v", link, err)
			continue
		}
		downloaded++
		log.Printf("[%d/%d] %s", downloaded, *limit, dest)
	}

	log.Printf("Done: %d files in %s", downloaded, *outDir)
}

// fetchLinks returns all anchor targets on the page, resolved against the
// index URL.
func fetchLinks(base *url.URL) ([]*url.URL, error) {
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Get(base.String())
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("index returned %s", resp.Status)
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, err
	}

	var links []*url.URL
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			for _, attr := range n.Attr {
				if attr.Key != "href" {
					continue
				}
				ref, err := url.Parse(attr.Val)
				if err != nil {
					continue
				}
				links = append(links, base.ResolveReference(ref))
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return links, nil
}

// isBenchmark reports whether a link looks like a CHC fixture.
func isBenchmark(p string) bool {
	switch strings.ToLower(path.Ext(p)) {
	case ".smt2", ".dl", ".datalog":
		return true
	}
	return false
}

func downloadFile(src *url.URL, dest string) error {
	client := &http.Client{Timeout: 60 * time.Second}
	resp, err := client.Get(src.String())
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server returned %s", resp.Status)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		os.Remove(dest)
		return err
	}
	return nil
}
