package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/example/wordtok/internal/tokenizer"
)

func TestWriteStats_ListsWordsByIndexOrder(t *testing.T) {
	tok, err := tokenizer.NewWhitespaceTokenizer(tokenizer.DefaultMaxVocabSize)
	if err != nil {
		t.Fatalf("NewWhitespaceTokenizer: %v", err)
	}

	tok.Fit([]string{"the the the quick quick brown"})

	var buf bytes.Buffer

	err = writeStats(tok, 10, &buf)
	if err != nil {
		t.Fatalf("writeStats: %v", err)
	}

	out := buf.String()

	if !strings.HasPrefix(out, "vocabulary: 7/10000 entries\n") {
		t.Errorf("stats output missing summary line: %q", out)
	}

	// Index order after the reserved tokens is frequency order.
	theIdx := strings.Index(out, "the")
	quickIdx := strings.Index(out, "quick")
	brownIdx := strings.Index(out, "brown")

	if theIdx < 0 || quickIdx < 0 || brownIdx < 0 {
		t.Fatalf("stats output missing learned words: %q", out)
	}

	if !(theIdx < quickIdx && quickIdx < brownIdx) {
		t.Errorf("stats output not in frequency order: %q", out)
	}
}

func TestWriteStats_TopLimitsOutput(t *testing.T) {
	tok, err := tokenizer.NewWhitespaceTokenizer(tokenizer.DefaultMaxVocabSize)
	if err != nil {
		t.Fatalf("NewWhitespaceTokenizer: %v", err)
	}

	tok.Fit([]string{"a b c d e"})

	var buf bytes.Buffer

	err = writeStats(tok, 2, &buf)
	if err != nil {
		t.Fatalf("writeStats: %v", err)
	}

	// Summary line plus exactly two word lines.
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("stats output has %d lines, want 3: %q", len(lines), buf.String())
	}
}

func TestNewStatsCmd_HasCorpusFlag(t *testing.T) {
	cmd := newStatsCmd()
	if cmd.Flags().Lookup("corpus") == nil {
		t.Error("expected --corpus flag to be registered")
	}

	if cmd.Flags().Lookup("top") == nil {
		t.Error("expected --top flag to be registered")
	}
}
