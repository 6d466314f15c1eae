// Package testutil provides shared fixture helpers for tests that need
// corpus or config files on disk.
//
// Typical usage:
//
//	func TestMyCommand(t *testing.T) {
//	    corpus := testutil.WriteCorpusFile(t, "corpus.txt", []string{"the quick brown fox"})
//	    ...
//	}
package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteCorpusFile writes lines to a file named name inside a fresh temp
// directory and returns the full path. The file is cleaned up with the test.
func WriteCorpusFile(tb testing.TB, name string, lines []string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)

	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600)
	if err != nil {
		tb.Fatalf("write corpus file %q: %v", path, err)
	}

	return path
}

// WriteConfigFile writes raw config file contents (yaml/toml/json by
// extension) into a fresh temp directory and returns the full path.
func WriteConfigFile(tb testing.TB, name, contents string) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)

	err := os.WriteFile(path, []byte(contents), 0o600)
	if err != nil {
		tb.Fatalf("write config file %q: %v", path, err)
	}

	return path
}
