package wordle

import (
	"container/heap"
	"fmt"
	"math"
	"math/rand"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

const (
	// Candidate sets this small are enumerated exhaustively, one trial per
	// possible secret, instead of sampled.
	exhaustiveBelow = 64

	// Bounds on the pruned guess pool considered by Rank.
	maxConsideredGuesses = 50
	minConsideredGuesses = 5

	// A letter known to be in the word but not yet placed still tells us a
	// little; a letter already placed tells us nothing.
	knownLetterPenalty = 0.01
)

// GuessScore is the estimated quality of one guess against a candidate set.
// Scores are recomputed every turn; the candidate set changes under them.
type GuessScore struct {
	Guess    WordIndex
	WinProb  float64 // fraction of trials solved within the turn budget
	AvgTurns float64 // mean turns to solve, winning trials only
	Bits     float64 // expected information gained by the first narrowing
}

// Evaluator estimates guess quality by Monte Carlo rollouts of a fixed
// greedy follow-up policy: after the evaluated guess, every later turn plays
// the remaining candidate whose distinct letters are most frequent across
// the remaining set. Not safe for concurrent use; give each game its own
// evaluator. The corpus and matcher are read-only and shared.
type Evaluator struct {
	corpus  *Corpus
	matcher *Matcher
	rng     *rand.Rand
}

// NewEvaluator creates an evaluator with its own deterministic random
// stream. Equal seeds give equal results.
func NewEvaluator(c *Corpus, m *Matcher, seed int64) *Evaluator {
	return &Evaluator{corpus: c, matcher: m, rng: rand.New(rand.NewSource(seed))}
}

// Evaluate estimates what happens if guess is played next against the
// candidate set with turnsLeft guesses remaining. Secrets are drawn
// uniformly from the candidates, trials times; sets smaller than
// exhaustiveBelow are enumerated once each instead.
func (e *Evaluator) Evaluate(guess WordIndex, candidates *WordList, trials, turnsLeft int) (GuessScore, error) {
	if trials <= 0 {
		return GuessScore{}, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidInput, trials)
	}
	if turnsLeft <= 0 {
		return GuessScore{}, fmt.Errorf("%w: no turns left to evaluate", ErrInvalidInput)
	}
	n := candidates.Len()
	if n == 0 {
		return GuessScore{}, fmt.Errorf("%w: empty candidate set", ErrInvalidInput)
	}
	if n == 1 {
		only := candidates.First()
		switch {
		case guess == only:
			return GuessScore{Guess: guess, WinProb: 1, AvgTurns: 1}, nil
		case turnsLeft >= 2:
			return GuessScore{Guess: guess, WinProb: 1, AvgTurns: 2}, nil
		default:
			return GuessScore{Guess: guess}, nil
		}
	}

	words := candidates.Words()
	var secrets []WordIndex
	if n <= exhaustiveBelow {
		secrets = words
	} else {
		secrets = make([]WordIndex, trials)
		for i := range secrets {
			secrets[i] = words[e.rng.Intn(n)]
		}
	}

	wins, turnsSum := 0, 0
	bitsSum := 0.0
	for _, secret := range secrets {
		won, turns, firstLen := e.rollout(guess, secret, candidates, turnsLeft)
		if won {
			wins++
			turnsSum += turns
		}
		bitsSum += math.Log2(float64(firstLen))
	}
	total := float64(len(secrets))
	score := GuessScore{
		Guess:   guess,
		WinProb: float64(wins) / total,
		Bits:    math.Log2(float64(n)) - bitsSum/total,
	}
	if wins > 0 {
		score.AvgTurns = float64(turnsSum) / float64(wins)
	}
	return score, nil
}

// rollout plays one simulated game: the fixed first guess, then greedy
// follow-ups, until the secret is hit or the budget runs out. Returns the
// outcome, turns used, and the candidate count after the first narrowing.
func (e *Evaluator) rollout(first, secret WordIndex, candidates *WordList, turnsLeft int) (won bool, turns, firstLen int) {
	remaining := candidates
	guess := first
	firstLen = 1
	for turn := 1; turn <= turnsLeft; turn++ {
		if guess == secret {
			return true, turn, firstLen
		}
		fb := e.corpus.ScoreWords(secret, guess)
		remaining = e.matcher.Narrow(remaining, guess, fb)
		if turn == 1 {
			firstLen = remaining.Len()
		}
		if remaining.Len() == 0 {
			// secret was not in the candidate set to begin with
			return false, turn, firstLen
		}
		guess = e.greedyGuess(remaining)
	}
	return false, turnsLeft, firstLen
}

// Rank evaluates a pruned pool of guesses against the candidate set and
// returns the top n by estimated win probability. Ties go to the lower mean
// turn count, then to the lexicographically smaller word.
func (e *Evaluator) Rank(candidates *WordList, trials, turnsLeft, topN int) ([]GuessScore, error) {
	if candidates.Len() == 0 {
		return nil, fmt.Errorf("%w: empty candidate set", ErrInvalidInput)
	}
	pool := e.guessPool(candidates, turnsLeft)
	scores := make([]GuessScore, 0, len(pool))
	for _, g := range pool {
		s, err := e.Evaluate(g, candidates, trials, turnsLeft)
		if err != nil {
			return nil, err
		}
		scores = append(scores, s)
	}
	sort.Slice(scores, func(i, j int) bool {
		a, b := scores[i], scores[j]
		if a.WinProb != b.WinProb {
			return a.WinProb > b.WinProb
		}
		if a.AvgTurns != b.AvgTurns {
			return a.AvgTurns < b.AvgTurns
		}
		return e.corpus.String(a.Guess) < e.corpus.String(b.Guess)
	})
	if topN > 0 && len(scores) > topN {
		scores = scores[:topN]
	}
	return scores, nil
}

// greedyGuess is the rollout policy: with two or fewer candidates just take
// the first, otherwise the candidate with the best letter score.
func (e *Evaluator) greedyGuess(remaining *WordList) WordIndex {
	words := remaining.Words()
	if len(words) <= 2 {
		return words[0]
	}
	letters := e.letterScores(words)
	best := words[0]
	bestScore := -1.0
	for _, w := range words {
		s := e.wordScore(w, &letters)
		if s > bestScore || (s == bestScore && e.corpus.String(w) < e.corpus.String(best)) {
			best, bestScore = w, s
		}
	}
	return best
}

// guessPool selects the guesses worth the cost of a full evaluation: the top
// heuristic scorers from the whole corpus while there are turns to spare,
// plus every remaining candidate once few are left.
func (e *Evaluator) guessPool(candidates *WordList, turnsLeft int) []WordIndex {
	words := candidates.Words()
	n := len(words)
	if n <= 2 {
		return words
	}
	letters := e.letterScores(words)

	source := words
	if turnsLeft > 1 {
		source = make([]WordIndex, e.corpus.Len())
		for i := range source {
			source[i] = WordIndex(i)
		}
	}

	limit := (n + 4) / 5
	if limit > maxConsideredGuesses {
		limit = maxConsideredGuesses
	}
	if limit < minConsideredGuesses {
		limit = minConsideredGuesses
	}

	type scored struct {
		word  WordIndex
		score float64
	}
	h := &MinHeap[scored]{less: func(a, b scored) bool { return a.score < b.score }}
	heap.Init(h)
	for _, w := range source {
		s := scored{word: w, score: e.wordScore(w, &letters)}
		if h.Len() < limit {
			heap.Push(h, s)
		} else if s.score > h.data[0].score {
			h.data[0] = s
			heap.Fix(h, 0)
		}
	}

	pool := mapset.NewThreadUnsafeSet[WordIndex]()
	for _, s := range h.data {
		pool.Add(s.word)
	}
	if n <= minConsideredGuesses {
		for _, w := range words {
			pool.Add(w)
		}
	}
	ret := pool.ToSlice()
	sort.Slice(ret, func(i, j int) bool { return ret[i] < ret[j] })
	return ret
}

// letterScores weights each letter by how often it occurs across the
// remaining candidates. A letter every candidate agrees on at a fixed
// position scores zero; a letter every candidate contains somewhere is
// damped, since its presence is no longer news.
func (e *Evaluator) letterScores(remaining []WordIndex) [26]float64 {
	var scores [26]float64
	var containCount [26]int
	var posLetter [WordLen]int
	for i := range posLetter {
		posLetter[i] = int(e.corpus.words[remaining[0]][i])
	}
	for _, w := range remaining {
		word := e.corpus.words[w]
		var seen [26]bool
		for i := 0; i < WordLen; i++ {
			l := word[i] - 'a'
			scores[l]++
			seen[l] = true
			if posLetter[i] != int(word[i]) {
				posLetter[i] = -1
			}
		}
		for l := 0; l < 26; l++ {
			if seen[l] {
				containCount[l]++
			}
		}
	}
	for _, l := range posLetter {
		if l >= 0 {
			scores[l-'a'] = 0
		}
	}
	for l := 0; l < 26; l++ {
		if containCount[l] == len(remaining) && scores[l] > 0 {
			scores[l] *= knownLetterPenalty
		}
	}
	return scores
}

// wordScore sums the letter scores of a word's distinct letters.
func (e *Evaluator) wordScore(w WordIndex, letters *[26]float64) float64 {
	word := e.corpus.words[w]
	var seen [26]bool
	score := 0.0
	for i := 0; i < WordLen; i++ {
		l := word[i] - 'a'
		if !seen[l] {
			seen[l] = true
			score += letters[l]
		}
	}
	return score
}

// MinHeap is a generic min-heap ordered by a caller-supplied less function.
type MinHeap[T any] struct {
	data []T
	less func(a, b T) bool
}

func (h *MinHeap[T]) Len() int           { return len(h.data) }
func (h *MinHeap[T]) Less(i, j int) bool { return h.less(h.data[i], h.data[j]) }
func (h *MinHeap[T]) Swap(i, j int)      { h.data[i], h.data[j] = h.data[j], h.data[i] }

func (h *MinHeap[T]) Push(x any) {
	h.data = append(h.data, x.(T))
}

func (h *MinHeap[T]) Pop() any {
	n := len(h.data)
	item := h.data[n-1]
	h.data = h.data[0 : n-1]
	return item
}
