package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	textpkg "github.com/example/wordtok/internal/text"
	"github.com/example/wordtok/internal/tokenizer"
)

func newStatsCmd() *cobra.Command {
	var corpusFiles []string
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fit a vocabulary from corpus files and report its contents",
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

			return writeStats(tok, top, os.Stdout)
		},
	}

	cmd.Flags().StringSliceVar(&corpusFiles, "corpus", nil, "Corpus file(s) to fit the vocabulary on, one text per line")
	cmd.Flags().IntVar(&top, "top", 20, "Number of highest-frequency words to list")

	return cmd
}

// writeStats reports vocabulary size and the top learned words. Indices
// after the reserved tokens are assigned in descending frequency order, so
// walking them in order yields the most frequent words first.
func writeStats(tok *tokenizer.WhitespaceTokenizer, top int, w io.Writer) error {
	_, err := fmt.Fprintf(w, "vocabulary: %d/%d entries\n", tok.Size(), tok.Capacity())
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for id := tokenizer.EndID + 1; id < tokenizer.EndID+1+top; id++ {
		word, ok := tok.Word(id)
		if !ok {
			break
		}

		_, err = fmt.Fprintf(tw, "%d\t%s\n", id, word)
		if err != nil {
			return fmt.Errorf("write stats: %w", err)
		}
	}

	err = tw.Flush()
	if err != nil {
		return fmt.Errorf("write stats: %w", err)
	}

	return nil
}
