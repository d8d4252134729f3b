/*
Package for a generator for Indic_Conjunct_Break character classes.

Content

Generator for the Unicode InCB code-point classes Consonant, Linker and Extend. For
more information see https://www.unicode.org/reports/tr44/#Indic_Conjunct_Break.

Classes are generated from the UCD file "DerivedCoreProperties.txt". The file
is either read from disk or downloaded from unicode.org.

Usage

	generator [-v] [-ucd DerivedCoreProperties.txt] [-version 15.1.0]

This creates a file "tables.go" in the current directory. It is designed
to be called from the "incb" directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"
	"github.com/npillmayer/uaxnav/internal/ucdparse"
)

var logger = log.New(os.Stderr, "InCB generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

var incbClassnames = []string{
	"Consonant",
	"Linker",
	"Extend",
}

func openUCDFile(path, version string) (io.ReadCloser, error) {
	if path != "" {
		return os.Open(path)
	}
	url := fmt.Sprintf("https://www.unicode.org/Public/%s/ucd/DerivedCoreProperties.txt", version)
	if verbose {
		logger.Printf("downloading %s", url)
	}
	resp, err := http.Get(url)
	if err != nil {
		return nil, fmt.Errorf("GET failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	return resp.Body, nil
}

// Load the InCB lines of DerivedCoreProperties.txt, one rune list per class.
func loadInCBClasses(r io.Reader) (map[string]*arraylist.List, error) {
	defer timeTrack(time.Now(), "loading DerivedCoreProperties.txt")
	lists := make(map[string]*arraylist.List, len(incbClassnames))
	for _, name := range incbClassnames {
		lists[name] = arraylist.New()
	}
	err := ucdparse.Parse(r, func(token *ucdparse.Token) {
		if token.Field(1) != "InCB" {
			return
		}
		list, ok := lists[strings.TrimSpace(token.Field(2))]
		if !ok {
			return
		}
		from, to := token.Range()
		for c := from; c <= to; c++ {
			list.Add(c)
		}
	})
	return lists, err
}

func runeComparator(a, b interface{}) int {
	return int(a.(rune) - b.(rune))
}

// --- Templates --------------------------------------------------------

var header = `package incb

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: DerivedCoreProperties.txt, Unicode %s

import "unicode"

`

// --- Main -------------------------------------------------------------

func generateRanges(w *bufio.Writer, lists map[string]*arraylist.List) {
	defer timeTrack(time.Now(), "generate range tables")
	for _, name := range incbClassnames {
		list := lists[name]
		list.Sort(runeComparator)
		collector := ucdparse.NewRangeTableCollector(name)
		list.Each(func(_ int, value interface{}) {
			r := value.(rune)
			collector.Append(r, r)
		})
		if verbose {
			logger.Printf("class %s: %d code-points in %d ranges", name, list.Size(), collector.Len())
		}
		buf := &bytes.Buffer{}
		collector.Output(buf)
		_, err := w.Write(buf.Bytes())
		checkFatal(err)
	}
}

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	ucdPath := flag.String("ucd", "", "path to DerivedCoreProperties.txt (download if empty)")
	version := flag.String("version", "15.1.0", "Unicode version to download")
	flag.Parse()
	verbose = *doVerbose
	in, err := openUCDFile(*ucdPath, *version)
	checkFatal(err)
	defer in.Close()
	lists, err := loadInCBClasses(in)
	checkFatal(err)
	f, ioerr := os.Create("tables.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	_, err = fmt.Fprintf(w, header, *version)
	checkFatal(err)
	generateRanges(w, lists)
	checkFatal(w.Flush())
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
