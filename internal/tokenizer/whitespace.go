package tokenizer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Reserved token literals. They occupy the first four vocabulary indices
// in this order and are never evicted or reassigned.
const (
	PadToken     = "<PAD>"
	UnknownToken = "<UNK>"
	StartToken   = "<SOS>"
	EndToken     = "<EOS>"
)

// Fixed indices of the reserved tokens.
const (
	PadID     = 0
	UnknownID = 1
	StartID   = 2
	EndID     = 3
)

// DefaultMaxVocabSize is the vocabulary capacity used when no explicit
// size is configured.
const DefaultMaxVocabSize = 10000

// minVocabSize is the smallest usable capacity: the four reserved tokens
// must always fit.
const minVocabSize = 4

// ErrInvalidVocabSize is returned when NewWhitespaceTokenizer is called
// with a capacity too small to hold the reserved tokens.
var ErrInvalidVocabSize = errors.New("max vocab size must allow the reserved tokens")

// WhitespaceTokenizer implements Tokenizer over a frequency-built word
// vocabulary. Words are whitespace-delimited and matched byte-exact; no
// case folding or punctuation stripping is performed.
//
// Fit takes the write lock and Encode the read lock, so a fitted tokenizer
// may serve concurrent Encode calls.
type WhitespaceTokenizer struct {
	mu           sync.RWMutex
	wordToID     map[string]int
	idToWord     map[int]string
	maxVocabSize int
}

// NewWhitespaceTokenizer creates a tokenizer whose vocabulary holds at most
// maxVocabSize distinct words, including the four reserved tokens.
func NewWhitespaceTokenizer(maxVocabSize int) (*WhitespaceTokenizer, error) {
	if maxVocabSize < minVocabSize {
		return nil, fmt.Errorf("%w: got %d, need at least %d", ErrInvalidVocabSize, maxVocabSize, minVocabSize)
	}

	t := &WhitespaceTokenizer{
		wordToID:     make(map[string]int, minVocabSize),
		idToWord:     make(map[int]string, minVocabSize),
		maxVocabSize: maxVocabSize,
	}

	// The unknown token must be registered before any non-reserved word,
	// otherwise the capacity fallback in register has nothing to resolve to.
	for _, w := range []string{PadToken, UnknownToken, StartToken, EndToken} {
		t.register(w)
	}

	return t, nil
}

// register assigns the next sequential index to word, or returns the
// existing index if word is already known. Once the vocabulary is full,
// unseen words resolve to the unknown index without mutating state.
// Callers other than the constructor must hold the write lock.
func (t *WhitespaceTokenizer) register(word string) int {
	if id, ok := t.wordToID[word]; ok {
		return id
	}

	if len(t.wordToID) >= t.maxVocabSize {
		return t.wordToID[UnknownToken]
	}

	id := len(t.wordToID)
	t.wordToID[word] = id
	t.idToWord[id] = word

	return id
}

// Fit counts word frequencies across the corpus and registers the distinct
// words in descending-frequency order, so the most frequent words win the
// remaining vocabulary slots. Ties keep their first-encountered order.
//
// Fit may be called multiple times; words already holding an index keep it,
// and frequency counts do not carry over between calls.
func (t *WhitespaceTokenizer) Fit(corpus []string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[string]int)

	var order []string

	for _, text := range corpus {
		for _, w := range strings.Fields(text) {
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	// Stable sort preserves first-seen order among equal frequencies.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	for _, w := range order {
		t.register(w)
	}
}

// Encode splits each text on whitespace runs and maps every word to its
// vocabulary index, falling back to the unknown index for unseen words.
// When wrapBoundaries is true, each sequence is prefixed with the start
// token and suffixed with the end token. Encode never mutates the
// vocabulary; sequences are returned in input order and may differ in
// length.
func (t *WhitespaceTokenizer) Encode(texts []string, wrapBoundaries bool) [][]int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([][]int, len(texts))

	for i, text := range texts {
		words := strings.Fields(text)

		seq := make([]int, 0, len(words)+2)
		if wrapBoundaries {
			seq = append(seq, StartID)
		}

		for _, w := range words {
			id, ok := t.wordToID[w]
			if !ok {
				id = UnknownID
			}
			seq = append(seq, id)
		}

		if wrapBoundaries {
			seq = append(seq, EndID)
		}

		out[i] = seq
	}

	return out
}

// Size returns the number of distinct words currently in the vocabulary,
// including the reserved tokens.
func (t *WhitespaceTokenizer) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.wordToID)
}

// Capacity returns the configured maximum vocabulary size.
func (t *WhitespaceTokenizer) Capacity() int {
	return t.maxVocabSize
}

// ID returns the index assigned to word, or false if word is not in the
// vocabulary. Unlike Encode, a miss is reported rather than mapped to the
// unknown index.
func (t *WhitespaceTokenizer) ID(word string) (int, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	id, ok := t.wordToID[word]

	return id, ok
}

// Word returns the word holding the given index, or false if the index is
// unassigned.
func (t *WhitespaceTokenizer) Word(id int) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	w, ok := t.idToWord[id]

	return w, ok
}
