package wordle

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
)

// Phase is the solver's position in the guess/feedback cycle.
type Phase int

const (
	AwaitingGuess Phase = iota
	AwaitingFeedback
	Finished
)

// Outcome is a game's terminal result. LostInconsistent is not a puzzle
// loss: the observed feedback contradicted every candidate, which means bad
// input somewhere.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	LostOutOfTurns
	LostInconsistent
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case LostOutOfTurns:
		return "lost (out of turns)"
	case LostInconsistent:
		return "lost (contradictory feedback)"
	default:
		return "in progress"
	}
}

// Step is one completed guess/feedback exchange.
type Step struct {
	Guess    WordIndex
	Feedback Feedback
}

// Game tracks one puzzle: the candidate set still consistent with every
// observation, the turn count, and the history. Feedback may come from the
// oracle (self-play) or from outside (the interactive advisor).
type Game struct {
	solver     *Solver
	eval       *Evaluator
	candidates *WordList
	phase      Phase
	outcome    Outcome
	turn       int
	pending    WordIndex
	history    []Step
}

func (g *Game) Phase() Phase          { return g.phase }
func (g *Game) Outcome() Outcome      { return g.outcome }
func (g *Game) Turn() int             { return g.turn }
func (g *Game) History() []Step       { return g.history }
func (g *Game) Candidates() *WordList { return g.candidates }

// Solver shares one corpus, matcher, and configuration across games, and
// caches the opening ranking: the candidate set is the full corpus at the
// start of every game, so the first-turn scores never change.
type Solver struct {
	Corpus   *Corpus
	Matcher  *Matcher
	MaxTurns int
	Trials   int
	Seed     int64

	openingOnce sync.Once
	opening     []GuessScore
	openingErr  error
}

// NewSolver builds a solver with its matcher indexes. maxTurns and trials
// must be positive.
func NewSolver(c *Corpus, maxTurns, trials int, seed int64) (*Solver, error) {
	if maxTurns <= 0 {
		return nil, fmt.Errorf("%w: max turns must be positive, got %d", ErrInvalidInput, maxTurns)
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%w: trials must be positive, got %d", ErrInvalidInput, trials)
	}
	return &Solver{
		Corpus:   c,
		Matcher:  NewMatcher(c),
		MaxTurns: maxTurns,
		Trials:   trials,
		Seed:     seed,
	}, nil
}

// Opening ranks the opening guesses once and reuses the result for every
// game. Safe to call from concurrent games.
func (s *Solver) Opening() ([]GuessScore, error) {
	s.openingOnce.Do(func() {
		eval := NewEvaluator(s.Corpus, s.Matcher, s.Seed)
		s.opening, s.openingErr = eval.Rank(s.Corpus.All(), s.Trials, s.MaxTurns, 0)
	})
	return s.opening, s.openingErr
}

// NewGame starts a game with the full corpus as candidates. The seed fixes
// the game's private random stream.
func (s *Solver) NewGame(seed int64) *Game {
	return &Game{
		solver:     s,
		eval:       NewEvaluator(s.Corpus, s.Matcher, seed),
		candidates: s.Corpus.All(),
		phase:      AwaitingGuess,
	}
}

// Suggest ranks the current guesses without committing to one. On the first
// turn the solver's cached opening ranking is returned.
func (g *Game) Suggest(topN int) ([]GuessScore, error) {
	if g.phase != AwaitingGuess {
		return nil, fmt.Errorf("%w: game is not awaiting a guess", ErrInvalidInput)
	}
	if g.turn == 0 {
		scores, err := g.solver.Opening()
		if err != nil {
			return nil, err
		}
		if topN > 0 && len(scores) > topN {
			scores = scores[:topN]
		}
		return scores, nil
	}
	return g.eval.Rank(g.candidates, g.solver.Trials, g.solver.MaxTurns-g.turn, topN)
}

// EvaluateGuess scores a single guess against the current candidates, e.g.
// one the user prefers over the ranked suggestions.
func (g *Game) EvaluateGuess(guess WordIndex) (GuessScore, error) {
	if g.phase != AwaitingGuess {
		return GuessScore{}, fmt.Errorf("%w: game is not awaiting a guess", ErrInvalidInput)
	}
	return g.eval.Evaluate(guess, g.candidates, g.solver.Trials, g.solver.MaxTurns-g.turn)
}

// NextGuess picks the top-ranked guess and commits to it.
func (g *Game) NextGuess() (WordIndex, error) {
	scores, err := g.Suggest(1)
	if err != nil {
		return 0, err
	}
	guess := scores[0].Guess
	return guess, g.CommitGuess(guess)
}

// CommitGuess records the guess that will actually be played, which need
// not be the solver's top choice.
func (g *Game) CommitGuess(guess WordIndex) error {
	if g.phase != AwaitingGuess {
		return fmt.Errorf("%w: game is not awaiting a guess", ErrInvalidInput)
	}
	g.pending = guess
	g.phase = AwaitingFeedback
	return nil
}

// ApplyFeedback narrows the candidates with the observed pattern for the
// committed guess and advances the state machine. A pattern that eliminates
// every candidate returns ErrInconsistent and ends the game as
// LostInconsistent.
func (g *Game) ApplyFeedback(fb Feedback) error {
	if g.phase != AwaitingFeedback {
		return fmt.Errorf("%w: no guess pending feedback", ErrInvalidInput)
	}
	g.history = append(g.history, Step{Guess: g.pending, Feedback: fb})
	g.turn++

	if fb.AllExact() {
		g.phase, g.outcome = Finished, Won
		return nil
	}
	g.candidates = g.solver.Matcher.Narrow(g.candidates, g.pending, fb)
	switch {
	case g.candidates.Len() == 0:
		g.phase, g.outcome = Finished, LostInconsistent
		return fmt.Errorf("%w: guess %q with pattern %s", ErrInconsistent,
			g.solver.Corpus.String(g.pending), fb)
	case g.turn >= g.solver.MaxTurns:
		g.phase, g.outcome = Finished, LostOutOfTurns
	default:
		g.phase = AwaitingGuess
	}
	return nil
}

// PlaySelf plays a whole game against a known secret, feedback supplied by
// the oracle. firstGuess optionally forces the opening word; pass nil to
// use the solver's choice.
func (g *Game) PlaySelf(secret WordIndex, firstGuess *WordIndex) (Outcome, error) {
	for g.phase != Finished {
		var guess WordIndex
		if g.turn == 0 && firstGuess != nil {
			guess = *firstGuess
			if err := g.CommitGuess(guess); err != nil {
				return g.outcome, err
			}
		} else {
			var err error
			if guess, err = g.NextGuess(); err != nil {
				return g.outcome, err
			}
		}
		fb := g.solver.Corpus.ScoreWords(secret, guess)
		if err := g.ApplyFeedback(fb); err != nil {
			// Oracle feedback can only contradict when the secret is
			// outside the corpus, which the caller rules out.
			return g.outcome, err
		}
		log.Debug().
			Str("secret", g.solver.Corpus.String(secret)).
			Str("guess", g.solver.Corpus.String(guess)).
			Str("pattern", fb.String()).
			Int("turn", g.turn).
			Int("candidates", g.candidates.Len()).
			Msg("self-play turn")
	}
	return g.outcome, nil
}
