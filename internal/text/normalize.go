// Package text provides corpus preparation helpers for the wordtok CLI.
// The tokenizer itself is byte-exact and case-sensitive; this package only
// deals with line endings and blank-line filtering when loading corpora
// from files.
package text

import (
	"errors"
	"strings"
)

// ErrEmptyText is returned when the input text is empty or whitespace-only.
var ErrEmptyText = errors.New("text is empty")

// Normalize prepares raw input text for fitting or encoding.
// It normalizes line endings to \n, trims surrounding whitespace, and
// rejects empty or whitespace-only input. Word content is never altered.
func Normalize(s string) (string, error) {
	// CRLF → LF, then bare CR → LF.
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	s = strings.TrimSpace(s)

	if s == "" {
		return "", ErrEmptyText
	}

	return s, nil
}

// SplitLines splits normalized text into its non-blank lines, trimming
// surrounding whitespace from each. Each line becomes one corpus text.
func SplitLines(s string) []string {
	var lines []string

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		lines = append(lines, line)
	}

	return lines
}
