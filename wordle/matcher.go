package wordle

import (
	"github.com/bits-and-blooms/bitset"
)

// Matcher indexes a corpus for fast candidate narrowing.
//
// letters[i][l] is the set of words whose letter at position i is 'a'+l.
// count[l][k] is the set of words containing at least k+1 of letter 'a'+l.
type Matcher struct {
	corpus  *Corpus
	letters [WordLen][26]*bitset.BitSet
	count   [26][]*bitset.BitSet
}

// NewMatcher builds the positional and count indexes for a corpus. Build it
// once; it is read-only afterwards and safe to share across games.
func NewMatcher(c *Corpus) *Matcher {
	m := &Matcher{corpus: c}
	n := uint(c.Len())
	for w, word := range c.words {
		var letterCount [26]int
		for i := 0; i < WordLen; i++ {
			l := word[i] - 'a'
			if m.letters[i][l] == nil {
				m.letters[i][l] = bitset.New(n)
			}
			m.letters[i][l].Set(uint(w))
			letterCount[l]++
		}
		for l, cnt := range letterCount {
			for k := 0; k < cnt; k++ {
				if len(m.count[l]) <= k {
					m.count[l] = append(m.count[l], bitset.New(n))
				}
				m.count[l][k].Set(uint(w))
			}
		}
	}
	return m
}

// Narrow returns the subset of candidates whose derived feedback for guess
// equals fb, i.e. exactly the words the definitional filter (NarrowBrute)
// keeps. The bitset passes are a prefilter; the final re-score keeps the
// result definitional even for patterns no real secret can produce.
func (m *Matcher) Narrow(candidates *WordList, guess WordIndex, fb Feedback) *WordList {
	word := m.corpus.words[guess]
	ret := candidates.Clone()

	// Marks credited per letter, and whether the letter had any present or
	// absent marks. yg bounds the letter count a matching word may hold.
	var yg [26]int
	var hasPresent, hasAbsent [26]bool
	for i := 0; i < WordLen; i++ {
		l := word[i] - 'a'
		switch fb.Mark(i) {
		case Exact:
			yg[l]++
		case Present:
			yg[l]++
			hasPresent[l] = true
		default:
			hasAbsent[l] = true
		}
	}

	// Positional constraints: exact positions must match, and a non-exact
	// position cannot hold the guessed letter (it would have been exact).
	for i := 0; i < WordLen; i++ {
		l := word[i] - 'a'
		set := m.letters[i][l]
		if fb.Mark(i) == Exact {
			if set == nil {
				return m.corpus.EmptyList()
			}
			ret.intersectInPlace(set)
		} else if set != nil {
			ret.differenceInPlace(set)
		}
	}

	// Count constraints: a present mark means at least yg occurrences, an
	// absent mark caps the word at exactly yg.
	for l := 0; l < 26; l++ {
		if hasPresent[l] {
			if len(m.count[l]) < yg[l] {
				return m.corpus.EmptyList()
			}
			ret.intersectInPlace(m.count[l][yg[l]-1])
		}
		if hasAbsent[l] && len(m.count[l]) > yg[l] {
			ret.differenceInPlace(m.count[l][yg[l]])
		}
	}

	verified := m.corpus.EmptyList()
	for _, w := range ret.Range {
		if m.corpus.ScoreWords(w, guess) == fb {
			verified.Insert(w)
		}
	}
	return verified
}

// NarrowBrute is the authoritative filter definition: re-derive the feedback
// for each candidate as if it were the secret and keep pattern-equal words.
func (c *Corpus) NarrowBrute(candidates *WordList, guess WordIndex, fb Feedback) *WordList {
	ret := c.EmptyList()
	for _, w := range candidates.Range {
		if c.ScoreWords(w, guess) == fb {
			ret.Insert(w)
		}
	}
	return ret
}
