package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	textpkg "github.com/example/wordtok/internal/text"
	"github.com/example/wordtok/internal/tokenizer"
)

func newEncodeCmd() *cobra.Command {
	var corpusFiles []string
	var texts []string
	var out string

	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Fit a vocabulary from corpus files and encode texts to integer sequences",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			tok, err := tokenizer.NewWhitespaceTokenizer(cfg.Vocab.MaxVocabSize)
			if err != nil {
				return err
			}

			corpus, err := textpkg.ReadCorpusFiles(corpusFiles)
			if err != nil {
				return err
			}

			tok.Fit(corpus)
			slog.Info("vocabulary fitted",
				"corpus_texts", len(corpus),
				"vocab_size", tok.Size(),
				"capacity", tok.Capacity(),
			)

			inputs, err := readEncodeTexts(texts, os.Stdin)
			if err != nil {
				return err
			}

			sequences := tok.Encode(inputs, cfg.Encode.WrapBoundaries)

			return writeEncodeOutput(out, sequences, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVar(&corpusFiles, "corpus", nil, "Corpus file(s) to fit the vocabulary on, one text per line")
	cmd.Flags().StringArrayVar(&texts, "text", nil, "Text to encode (repeatable; if empty, read lines from stdin)")
	cmd.Flags().StringVar(&out, "out", "-", "Output path for the JSON sequences ('-' for stdout)")

	return cmd
}

// readEncodeTexts returns the --text values, or falls back to reading one
// text per line from in when none were given.
func readEncodeTexts(texts []string, in io.Reader) ([]string, error) {
	if len(texts) > 0 {
		return texts, nil
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("read texts from stdin: %w", err)
	}

	normalized, err := textpkg.Normalize(string(data))
	if err != nil {
		return nil, fmt.Errorf("no texts to encode: %w", err)
	}

	return textpkg.SplitLines(normalized), nil
}

// writeEncodeOutput marshals sequences as JSON to the named file, or to
// stdout when out is "-".
func writeEncodeOutput(out string, sequences [][]int, stdout io.Writer) error {
	data, err := json.Marshal(sequences)
	if err != nil {
		return fmt.Errorf("marshal sequences: %w", err)
	}
	data = append(data, '\n')

	if out == "-" {
		_, err = stdout.Write(data)
		if err != nil {
			return fmt.Errorf("write sequences to stdout: %w", err)
		}
		return nil
	}

	err = os.WriteFile(out, data, 0o644)
	if err != nil {
		return fmt.Errorf("write sequences to %q: %w", out, err)
	}

	return nil
}
