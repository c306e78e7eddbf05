package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

// WordList is a set of corpus words, one bit per WordIndex. Candidate sets
// only ever shrink within a game; each game owns its own list.
type WordList struct {
	bits *bitset.BitSet
}

func newWordList(n uint) *WordList {
	return &WordList{bits: bitset.New(n)}
}

// All returns a list containing every corpus word.
func (c *Corpus) All() *WordList {
	wl := newWordList(uint(c.Len()))
	wl.bits.FlipRange(0, uint(c.Len()))
	return wl
}

// EmptyList returns an empty list sized for the corpus.
func (c *Corpus) EmptyList() *WordList {
	return newWordList(uint(c.Len()))
}

// ListOf builds a list from word strings, failing on unknown words.
func (c *Corpus) ListOf(words ...string) (*WordList, error) {
	wl := c.EmptyList()
	for _, s := range words {
		w, ok := c.Word(s)
		if !ok {
			return nil, errNotInCorpus(s)
		}
		wl.Insert(w)
	}
	return wl, nil
}

func (wl *WordList) Insert(w WordIndex) {
	wl.bits.Set(uint(w))
}

func (wl *WordList) Contains(w WordIndex) bool {
	return wl.bits.Test(uint(w))
}

func (wl *WordList) Len() int {
	return int(wl.bits.Count())
}

// First returns the lowest-indexed word. Panics on an empty list; callers
// check Len first.
func (wl *WordList) First() WordIndex {
	w, ok := wl.bits.NextSet(0)
	if !ok {
		panic("First on empty word list")
	}
	return WordIndex(w)
}

// Range iterates the list in corpus order, usable with range-over-func.
func (wl *WordList) Range(yield func(i int, w WordIndex) bool) {
	i := 0
	for w, ok := wl.bits.NextSet(0); ok; w, ok = wl.bits.NextSet(w + 1) {
		if !yield(i, WordIndex(w)) {
			return
		}
		i++
	}
}

// Words materializes the list as a slice of indexes in corpus order.
func (wl *WordList) Words() []WordIndex {
	ret := make([]WordIndex, 0, wl.Len())
	for _, w := range wl.Range {
		ret = append(ret, w)
	}
	return ret
}

func (wl *WordList) Clone() *WordList {
	return &WordList{bits: wl.bits.Clone()}
}

// Equal reports whether two lists hold the same words.
func (wl *WordList) Equal(other *WordList) bool {
	return wl.bits.Equal(other.bits)
}

func (wl *WordList) intersectInPlace(other *bitset.BitSet) {
	wl.bits.InPlaceIntersection(other)
}

func (wl *WordList) differenceInPlace(other *bitset.BitSet) {
	wl.bits.InPlaceDifference(other)
}

// WordlistStrings maps a list to its word strings, for logs and output.
func (c *Corpus) WordlistStrings(wl *WordList) []string {
	return c.Strings(wl.Words())
}
