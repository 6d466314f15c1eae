// Package tokenizer provides whitespace word tokenization with a bounded
// vocabulary. The primary implementation learns a fixed-size word vocabulary
// from a corpus by frequency and encodes new texts against it, mapping
// unseen words to a reserved unknown token.
package tokenizer

// Tokenizer converts raw texts into integer token sequences.
type Tokenizer interface {
	// Encode splits each text on whitespace and returns one integer
	// sequence per input, in input order. When wrapBoundaries is true,
	// each sequence is wrapped in start/end boundary tokens.
	Encode(texts []string, wrapBoundaries bool) [][]int
}
