package wordle

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// WordLen is the puzzle word length.
const WordLen = 5

// WordIndex is an index into the corpus word list. All engine code passes
// words around as indexes; strings only appear at the boundaries.
type WordIndex uint16

//go:embed default_words.txt
var defaultWords string

// Corpus is the immutable, ordered, deduplicated word list. It is loaded
// once, shared read-only by every game, and never mutated afterwards.
type Corpus struct {
	words []string
	index map[string]WordIndex
}

// NewCorpus normalizes, validates, and deduplicates words, preserving first
// occurrence order.
func NewCorpus(words []string) (*Corpus, error) {
	c := &Corpus{index: make(map[string]WordIndex, len(words))}
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, raw := range words {
		word := strings.ToLower(strings.TrimSpace(raw))
		if len(word) != WordLen {
			return nil, fmt.Errorf("%w: %q is not %d letters", ErrCorpusLoad, word, WordLen)
		}
		if !isLowerAlpha(word) {
			return nil, fmt.Errorf("%w: %q contains non-letters", ErrCorpusLoad, word)
		}
		if !seen.Add(word) {
			continue
		}
		c.index[word] = WordIndex(len(c.words))
		c.words = append(c.words, word)
	}
	if len(c.words) == 0 {
		return nil, fmt.Errorf("%w: empty word list", ErrCorpusLoad)
	}
	return c, nil
}

// LoadCorpus reads one word per line, skipping blank lines and # comments.
func LoadCorpus(r io.Reader) (*Corpus, error) {
	var words []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusLoad, err)
	}
	return NewCorpus(words)
}

// LoadCorpusFile loads a corpus from a word-per-line file.
func LoadCorpusFile(path string) (*Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorpusLoad, err)
	}
	defer f.Close()
	return LoadCorpus(f)
}

// DefaultCorpus builds the corpus from the embedded word list.
func DefaultCorpus() *Corpus {
	c, err := LoadCorpus(strings.NewReader(defaultWords))
	if err != nil {
		panic("embedded word list invalid: " + err.Error())
	}
	return c
}

func (c *Corpus) Len() int {
	return len(c.words)
}

// Word looks up the index of a word string.
func (c *Corpus) Word(s string) (WordIndex, bool) {
	w, ok := c.index[strings.ToLower(strings.TrimSpace(s))]
	return w, ok
}

// String returns the word at the given index.
func (c *Corpus) String(w WordIndex) string {
	return c.words[w]
}

// Strings maps a slice of indexes back to word strings.
func (c *Corpus) Strings(words []WordIndex) []string {
	ret := make([]string, len(words))
	for i, w := range words {
		ret[i] = c.words[w]
	}
	return ret
}

func isLowerAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}
