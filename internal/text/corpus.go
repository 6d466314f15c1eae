package text

import (
	"bufio"
	"fmt"
	"os"
)

// ReadCorpusFile reads one corpus file and returns its non-blank lines,
// one text per line, with line endings normalized away by the scanner.
func ReadCorpusFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %q: %w", path, err)
	}
	defer f.Close()

	var texts []string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line, err := Normalize(scanner.Text())
		if err != nil {
			continue // blank line
		}

		texts = append(texts, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read corpus %q: %w", path, err)
	}

	return texts, nil
}

// ReadCorpusFiles reads every named file and concatenates their texts in
// argument order. Any unreadable file fails the whole load.
func ReadCorpusFiles(paths []string) ([]string, error) {
	var corpus []string

	for _, path := range paths {
		texts, err := ReadCorpusFile(path)
		if err != nil {
			return nil, err
		}

		corpus = append(corpus, texts...)
	}

	return corpus, nil
}
