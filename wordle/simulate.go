package wordle

import (
	"context"
	"fmt"
	"math/rand"
	"runtime"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"
)

// SimConfig configures a simulation run. The zero value is not valid; use
// the flags in cmd or fill every field.
type SimConfig struct {
	Games      int    // number of sampled games; 0 plays every corpus word once
	Trials     int    // Monte Carlo trials per guess evaluation
	MaxTurns   int    // guess budget per game
	Seed       int64  // fixes secrets, evaluators, and the opening ranking
	Workers    int    // concurrent games; 0 means GOMAXPROCS
	FirstGuess string // optional fixed opening word
	Progress   bool   // render a progress bar
}

// GameResult records one finished game.
type GameResult struct {
	Secret  WordIndex
	Outcome Outcome
	Turns   int
}

// Report aggregates a simulation run.
type Report struct {
	Games        int
	Wins         int
	Losses       int
	Inconsistent int
	TurnCounts   map[int]int // winning turn count -> games
	Misses       []string    // secrets not solved, corpus order
}

// WinRate is the fraction of games won.
func (r *Report) WinRate() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.Wins) / float64(r.Games)
}

// AvgTurns is the mean turns to solve among winning games.
func (r *Report) AvgTurns() float64 {
	if r.Wins == 0 {
		return 0
	}
	sum := 0
	for turns, games := range r.TurnCounts {
		sum += turns * games
	}
	return float64(sum) / float64(r.Wins)
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "games:    %d\n", r.Games)
	fmt.Fprintf(&b, "won:      %d (%.2f%%)\n", r.Wins, 100*r.WinRate())
	fmt.Fprintf(&b, "lost:     %d\n", r.Losses)
	if r.Inconsistent > 0 {
		fmt.Fprintf(&b, "aborted:  %d (inconsistent feedback)\n", r.Inconsistent)
	}
	fmt.Fprintf(&b, "avg turns: %.2f\n", r.AvgTurns())
	turns := make([]int, 0, len(r.TurnCounts))
	for t := range r.TurnCounts {
		turns = append(turns, t)
	}
	sort.Ints(turns)
	for _, t := range turns {
		fmt.Fprintf(&b, "  %d turns: %d\n", t, r.TurnCounts[t])
	}
	if len(r.Misses) > 0 {
		fmt.Fprintf(&b, "missed: %s\n", strings.Join(r.Misses, " "))
	}
	return b.String()
}

// Simulate plays the solver against many secrets and tallies the outcomes.
// Games run concurrently, one candidate set and random stream each, with
// per-game seeds derived from cfg.Seed by game index; the report is
// identical for any worker count.
func Simulate(ctx context.Context, c *Corpus, cfg SimConfig) (*Report, error) {
	if cfg.Trials <= 0 || cfg.MaxTurns <= 0 {
		return nil, fmt.Errorf("%w: trials and max turns must be positive", ErrInvalidInput)
	}
	if cfg.Games < 0 {
		return nil, fmt.Errorf("%w: games must not be negative", ErrInvalidInput)
	}

	solver, err := NewSolver(c, cfg.MaxTurns, cfg.Trials, cfg.Seed)
	if err != nil {
		return nil, err
	}

	var firstGuess *WordIndex
	if cfg.FirstGuess != "" {
		w, ok := c.Word(cfg.FirstGuess)
		if !ok {
			return nil, errNotInCorpus(cfg.FirstGuess)
		}
		firstGuess = &w
	} else {
		// Rank the opening once, before the workers fan out.
		if _, err := solver.Opening(); err != nil {
			return nil, err
		}
	}

	secrets := pickSecrets(c, cfg)
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress {
		bar = progressbar.Default(int64(len(secrets)))
	} else {
		bar = progressbar.DefaultSilent(int64(len(secrets)))
	}

	results := make([]GameResult, len(secrets))
	grp, ctx := errgroup.WithContext(ctx)
	grp.SetLimit(workers)
	for i, secret := range secrets {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			game := solver.NewGame(gameSeed(cfg.Seed, i))
			outcome, err := game.PlaySelf(secret, firstGuess)
			if err != nil && outcome != LostInconsistent {
				return err
			}
			results[i] = GameResult{Secret: secret, Outcome: outcome, Turns: game.Turn()}
			_ = bar.Add(1)
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	report := &Report{Games: len(results), TurnCounts: make(map[int]int)}
	for _, res := range results {
		switch res.Outcome {
		case Won:
			report.Wins++
			report.TurnCounts[res.Turns]++
		case LostInconsistent:
			report.Inconsistent++
		default:
			report.Losses++
			report.Misses = append(report.Misses, c.String(res.Secret))
		}
	}
	log.Info().
		Int("games", report.Games).
		Int("wins", report.Wins).
		Float64("win_rate", report.WinRate()).
		Float64("avg_turns", report.AvgTurns()).
		Msg("simulation finished")
	return report, nil
}

// pickSecrets draws the per-game secrets: every corpus word once when
// cfg.Games is zero, otherwise a seeded uniform sample.
func pickSecrets(c *Corpus, cfg SimConfig) []WordIndex {
	if cfg.Games == 0 {
		secrets := make([]WordIndex, c.Len())
		for i := range secrets {
			secrets[i] = WordIndex(i)
		}
		return secrets
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	secrets := make([]WordIndex, cfg.Games)
	for i := range secrets {
		secrets[i] = WordIndex(rng.Intn(c.Len()))
	}
	return secrets
}

// gameSeed derives a per-game seed from the run seed. SplitMix64-style
// mixing keeps neighboring indexes uncorrelated.
func gameSeed(seed int64, index int) int64 {
	z := uint64(seed) + uint64(index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return int64(z ^ (z >> 31))
}
