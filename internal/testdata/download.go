//go:build ignore
// +build ignore

// Download fetches the UCD files needed by tests of this module:
//
//	go run download.go [-version 15.1.0]
//
// Files are stored in sub-folder "ucd", which is not under version control.
package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

var ucdFiles = []string{
	"auxiliary/GraphemeBreakTest.txt",
	"DerivedCoreProperties.txt",
	"EastAsianWidth.txt",
}

func main() {
	version := flag.String("version", "15.1.0", "Unicode version")
	flag.Parse()
	for _, file := range ucdFiles {
		url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/%s", *version, file)
		if err := downloadUCDFile(url, filepath.Join("ucd", file)); err != nil {
			fmt.Fprintf(os.Stderr, "failed to download: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("downloaded %s\n", file)
	}
}

func downloadUCDFile(url, path string) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("GET failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return writeFile(path, resp.Body)
}

func writeFile(path string, rc io.ReadCloser) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)
	defer func() { _ = rc.Close() }()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %v: %w", path, err)
	}

	_, err = io.Copy(f, rc)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to copy %v: %w", path, err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("failed to write %v: %w", path, err)
	}

	return nil
}
