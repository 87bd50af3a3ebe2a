// Package testutil provides shared test helpers for the stats packages:
// float comparisons and access to the fixture datasets under testdata/.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == got {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}

// AssertFloat64Near compares two float64 values with absolute tolerance. Use it
// for values that are legitimately near zero, such as probabilities.
func AssertFloat64Near(t *testing.T, name string, want, got, absTol float64) {
	t.Helper()
	if math.Abs(want-got) > absTol {
		t.Errorf("%s: got %v, want %v (tol=%v)", name, got, want, absTol)
	}
}

// FixturePath resolves a file in the repository's testdata directory.
// The path is resolved relative to this source file: stats/internal/testutil/ -> testdata/.
func FixturePath(t *testing.T, name string) string {
	t.Helper()
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	return filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", name)
}

// OpenFixture opens a testdata file and closes it when the test ends.
func OpenFixture(t *testing.T, name string) *os.File {
	t.Helper()
	f, err := os.Open(FixturePath(t, name))
	if err != nil {
		t.Fatalf("Failed to open fixture %s: %v", name, err)
	}
	t.Cleanup(func() { _ = f.Close() })
	return f
}
