/*
Package testdata locates Unicode Character Database files for tests.

UCD files are not part of this module. Run

	go run download.go

in this folder to fetch them. Tests depending on UCD files should skip if
they are missing.
*/
package testdata

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
)

// GraphemeBreakTest is the UCD file with the conformance tests for UAX#29
// grapheme cluster boundaries.
const GraphemeBreakTest = "auxiliary/GraphemeBreakTest.txt"

// UCDReader opens the given UCD file for testing. Clients must close it.
// If the file has not been downloaded, the error matches os.ErrNotExist.
func UCDReader(file string) (io.ReadCloser, error) {
	return os.Open(UCDPath(file))
}

// UCDPath returns the path for the given UCD file.
func UCDPath(file string) string {
	_, pkgdir, _, ok := runtime.Caller(0)
	if !ok {
		panic("no debug info")
	}
	return filepath.Join(filepath.Dir(pkgdir), "ucd", filepath.FromSlash(file))
}
