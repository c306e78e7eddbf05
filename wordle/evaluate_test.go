package wordle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestEvaluator(t *testing.T, c *Corpus, seed int64) *Evaluator {
	t.Helper()
	return NewEvaluator(c, NewMatcher(c), seed)
}

func TestEvaluateRejectsBadInput(t *testing.T) {
	c := mustCorpus(t, "crate", "trace")
	e := newTestEvaluator(t, c, 1)

	_, err := e.Evaluate(0, c.All(), 0, 6)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = e.Evaluate(0, c.All(), -5, 6)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = e.Evaluate(0, c.EmptyList(), 10, 6)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	_, err = e.Evaluate(0, c.All(), 10, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestEvaluateSingleCandidate(t *testing.T) {
	c := mustCorpus(t, "crate", "trace")
	e := newTestEvaluator(t, c, 1)
	only, _ := c.ListOf("trace")
	trace, _ := c.Word("trace")
	crate, _ := c.Word("crate")

	score, err := e.Evaluate(trace, only, 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.WinProb)
	assert.Equal(t, 1.0, score.AvgTurns)

	// Wrong guess with one turn left cannot win; with two it always does.
	score, err = e.Evaluate(crate, only, 10, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0.0, score.WinProb)

	score, err = e.Evaluate(crate, only, 10, 2)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.WinProb)
	assert.Equal(t, 2.0, score.AvgTurns)
}

func TestEvaluateTwoCandidatesExhaustive(t *testing.T) {
	c := mustCorpus(t, "crate", "trace")
	e := newTestEvaluator(t, c, 1)
	crate, _ := c.Word("crate")

	// Both possible secrets are enumerated: crate wins on turn 1, trace is
	// pinned down by the feedback and wins on turn 2.
	score, err := e.Evaluate(crate, c.All(), 1, 6)
	assert.NoError(t, err)
	assert.Equal(t, 1.0, score.WinProb)
	assert.Equal(t, 1.5, score.AvgTurns)
	assert.Equal(t, 1.0, score.Bits)
}

func TestEvaluateDeterministicForSeed(t *testing.T) {
	c := DefaultCorpus()
	crate, _ := c.Word("crate")

	a, err := newTestEvaluator(t, c, 99).Evaluate(crate, c.All(), 40, 6)
	assert.NoError(t, err)
	b, err := newTestEvaluator(t, c, 99).Evaluate(crate, c.All(), 40, 6)
	assert.NoError(t, err)
	assert.Equal(t, a, b)

	// Different streams generally sample different secrets; only check that
	// the call succeeds and stays in range.
	d, err := newTestEvaluator(t, c, 100).Evaluate(crate, c.All(), 40, 6)
	assert.NoError(t, err)
	assert.GreaterOrEqual(t, d.WinProb, 0.0)
	assert.LessOrEqual(t, d.WinProb, 1.0)
}

func TestRankOrdersByWinProbability(t *testing.T) {
	c := mustCorpus(t, "crate", "trace", "react", "teach", "cheat", "reach")
	e := newTestEvaluator(t, c, 3)

	scores, err := e.Rank(c.All(), 20, 6, 0)
	assert.NoError(t, err)
	assert.NotEmpty(t, scores)
	for i := 1; i < len(scores); i++ {
		assert.GreaterOrEqual(t, scores[i-1].WinProb, scores[i].WinProb)
	}

	top3, err := e.Rank(c.All(), 20, 6, 3)
	assert.NoError(t, err)
	assert.Len(t, top3, 3)

	_, err = e.Rank(c.EmptyList(), 20, 6, 0)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestRankDeterministicForSeed(t *testing.T) {
	c := DefaultCorpus()
	a, err := newTestEvaluator(t, c, 5).Rank(c.All(), 10, 6, 5)
	assert.NoError(t, err)
	b, err := newTestEvaluator(t, c, 5).Rank(c.All(), 10, 6, 5)
	assert.NoError(t, err)
	assert.Equal(t, a, b)
}

func BenchmarkEvaluateOpening(b *testing.B) {
	c := DefaultCorpus()
	e := NewEvaluator(c, NewMatcher(c), 1)
	raise, _ := c.Word("raise")
	for i := 0; i < b.N; i++ {
		if _, err := e.Evaluate(raise, c.All(), 20, 6); err != nil {
			b.Fatal(err)
		}
	}
}
