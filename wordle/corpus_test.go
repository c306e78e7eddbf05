package wordle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func mustCorpus(t *testing.T, words ...string) *Corpus {
	t.Helper()
	c, err := NewCorpus(words)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestNewCorpusNormalizesAndDedups(t *testing.T) {
	c := mustCorpus(t, "Crate", "trace", "crate", " TRACE ")
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, "crate", c.String(0))
	assert.Equal(t, "trace", c.String(1))

	w, ok := c.Word("CRATE")
	assert.True(t, ok)
	assert.Equal(t, WordIndex(0), w)
	_, ok = c.Word("react")
	assert.False(t, ok)
}

func TestNewCorpusRejectsBadWords(t *testing.T) {
	_, err := NewCorpus([]string{"crate", "toolong"})
	assert.True(t, errors.Is(err, ErrCorpusLoad))
	_, err = NewCorpus([]string{"cr4te"})
	assert.True(t, errors.Is(err, ErrCorpusLoad))
	_, err = NewCorpus(nil)
	assert.True(t, errors.Is(err, ErrCorpusLoad))
}

func TestLoadCorpusSkipsBlanksAndComments(t *testing.T) {
	c, err := LoadCorpus(strings.NewReader("# header\ncrate\n\n  trace\n# tail\n"))
	assert.NoError(t, err)
	assert.Equal(t, []string{"crate", "trace"}, []string{c.String(0), c.String(1)})
}

func TestLoadCorpusFileMissing(t *testing.T) {
	_, err := LoadCorpusFile("does/not/exist.txt")
	assert.True(t, errors.Is(err, ErrCorpusLoad))
}

func TestDefaultCorpus(t *testing.T) {
	c := DefaultCorpus()
	assert.Greater(t, c.Len(), 100)
	_, ok := c.Word("raise")
	assert.True(t, ok)
}

func TestWordlistBasics(t *testing.T) {
	c := mustCorpus(t, "crate", "trace", "react")
	all := c.All()
	assert.Equal(t, 3, all.Len())
	assert.Equal(t, WordIndex(0), all.First())
	assert.Equal(t, []string{"crate", "trace", "react"}, c.WordlistStrings(all))

	wl, err := c.ListOf("react", "crate")
	assert.NoError(t, err)
	assert.Equal(t, 2, wl.Len())
	assert.True(t, wl.Contains(0))
	assert.False(t, wl.Contains(1))

	_, err = c.ListOf("bogus")
	assert.True(t, errors.Is(err, ErrInvalidInput))

	clone := wl.Clone()
	clone.Insert(1)
	assert.Equal(t, 2, wl.Len(), "clone must not alias the original")
	assert.True(t, wl.Equal(wl.Clone()))
	assert.False(t, wl.Equal(clone))
}
