package wordle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func narrowStrings(t *testing.T, words []string, guess, pattern string) []string {
	t.Helper()
	c := mustCorpus(t, words...)
	m := NewMatcher(c)
	g, ok := c.Word(guess)
	if !ok {
		t.Fatalf("guess %q not in corpus", guess)
	}
	fb, err := ParseFeedback(pattern)
	if err != nil {
		t.Fatal(err)
	}
	return c.WordlistStrings(m.Narrow(c.All(), g, fb))
}

func TestNarrowFixtures(t *testing.T) {
	assert.Equal(t,
		[]string{"abbbb"},
		narrowStrings(t, []string{"aaazz", "abbbb", "bcazz", "bxxac"}, "bxxac", "yrryr"))

	assert.Equal(t,
		[]string{"abczz", "abazz", "bbazz"},
		narrowStrings(t, []string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "xabxx"},
			"xabxx", "ryyrr"))
}

func TestNarrowGreenAndYellowSameLetter(t *testing.T) {
	// a exact at position 0 plus a present at position 4: word needs two a's,
	// the second not at position 4.
	assert.Equal(t,
		[]string{"aaazz", "abazz"},
		narrowStrings(t, []string{"aaazz", "abbzz", "abczz", "abazz", "bbazz", "azzza", "azzzz", "axxxa"},
			"axxxa", "grrry"))
}

func TestNarrowSelfConsistency(t *testing.T) {
	c := DefaultCorpus()
	m := NewMatcher(c)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 100; i++ {
		secret := WordIndex(rng.Intn(c.Len()))
		guess := WordIndex(rng.Intn(c.Len()))
		fb := c.ScoreWords(secret, guess)
		single := c.EmptyList()
		single.Insert(secret)
		assert.True(t, m.Narrow(single, guess, fb).Contains(secret),
			"secret=%s guess=%s", c.String(secret), c.String(guess))
	}
}

// Narrow must return exactly what the definitional brute-force filter
// returns, for randomized candidate sets and genuine feedback patterns.
func TestNarrowEquivalentToBruteForce(t *testing.T) {
	c := DefaultCorpus()
	m := NewMatcher(c)
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		candidates := c.EmptyList()
		for w := 0; w < c.Len(); w++ {
			if rng.Intn(2) == 0 {
				candidates.Insert(WordIndex(w))
			}
		}
		secret := WordIndex(rng.Intn(c.Len()))
		guess := WordIndex(rng.Intn(c.Len()))
		candidates.Insert(secret)
		fb := c.ScoreWords(secret, guess)

		fast := m.Narrow(candidates, guess, fb)
		brute := c.NarrowBrute(candidates, guess, fb)
		assert.True(t, fast.Equal(brute),
			"secret=%s guess=%s fb=%s", c.String(secret), c.String(guess), fb)
	}
}

func TestNarrowMonotonic(t *testing.T) {
	c := DefaultCorpus()
	m := NewMatcher(c)
	rng := rand.New(rand.NewSource(9))
	secret := WordIndex(rng.Intn(c.Len()))
	remaining := c.All()
	for i := 0; i < 6; i++ {
		before := remaining.Len()
		guess := WordIndex(rng.Intn(c.Len()))
		remaining = m.Narrow(remaining, guess, c.ScoreWords(secret, guess))
		assert.LessOrEqual(t, remaining.Len(), before)
		assert.True(t, remaining.Contains(secret))
	}
}

func TestNarrowContradictionGivesEmptySet(t *testing.T) {
	c := mustCorpus(t, "crate", "trace")
	m := NewMatcher(c)
	g, _ := c.Word("crate")
	fb, _ := ParseFeedback("ggggg")
	narrowed := m.Narrow(c.All(), g, fb)
	// all-exact keeps only the guess itself
	assert.Equal(t, []string{"crate"}, c.WordlistStrings(narrowed))

	wl, _ := c.ListOf("trace")
	assert.Equal(t, 0, m.Narrow(wl, g, fb).Len())
}
