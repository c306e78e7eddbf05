package main

import (
	"context"
	"fmt"
	"os"
	"runtime/pprof"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/wordlemc/wordlemc/wordle"
)

func loadCorpus(path string) (*wordle.Corpus, error) {
	if path == "" {
		return wordle.DefaultCorpus(), nil
	}
	return wordle.LoadCorpusFile(path)
}

func cpuProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}

func main() {
	_ = godotenv.Load()

	var (
		corpusPath string
		logLevel   string
		profile    string
		trials     int
		maxTurns   int
		seed       int
		games      int
		workers    int
		firstWord  string
		topN       int
		progress   bool
	)

	cmd := &cli.Command{
		Name:  "wordlemc",
		Usage: "Monte Carlo Wordle solver: simulate the strategy or get live suggestions",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "corpus",
				Usage:       "word list file, one 5-letter word per line (default: embedded list)",
				Destination: &corpusPath,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Value:       "info",
				Usage:       "zerolog level: debug, info, warn, error",
				Destination: &logLevel,
			},
			&cli.StringFlag{
				Name:        "profile",
				Usage:       "write a CPU profile to this file",
				Destination: &profile,
			},
			&cli.IntFlag{
				Name:        "trials",
				Aliases:     []string{"t"},
				Value:       200,
				Usage:       "Monte Carlo trials per guess evaluation",
				Destination: &trials,
			},
			&cli.IntFlag{
				Name:        "max-turns",
				Value:       6,
				Usage:       "guess budget per game",
				Destination: &maxTurns,
			},
			&cli.IntFlag{
				Name:        "seed",
				Value:       1174321,
				Usage:       "random seed, fixed for reproducible runs",
				Destination: &seed,
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return ctx, fmt.Errorf("bad log level %q: %w", logLevel, err)
			}
			zerolog.SetGlobalLevel(lvl)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
			return ctx, nil
		},
		Commands: []*cli.Command{
			{
				Name: "sim",
				Usage: `simulate many games and report the win rate
				Secrets are drawn from the corpus: every word once by default,
				or --games random draws. Fixed --seed gives identical reports.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "games",
						Aliases:     []string{"g"},
						Usage:       "number of sampled games, 0 plays every corpus word",
						Destination: &games,
					},
					&cli.IntFlag{
						Name:        "workers",
						Usage:       "concurrent games, 0 uses all CPUs",
						Destination: &workers,
					},
					&cli.StringFlag{
						Name:        "first",
						Aliases:     []string{"f"},
						Usage:       "fixed opening word instead of the ranked choice",
						Destination: &firstWord,
					},
					&cli.BoolFlag{
						Name:        "progress",
						Aliases:     []string{"p"},
						Value:       true,
						Usage:       "show a progress bar",
						Destination: &progress,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile != "" {
						stop, err := cpuProfile(profile)
						if err != nil {
							return err
						}
						defer stop()
					}
					corpus, err := loadCorpus(corpusPath)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					report, err := wordle.Simulate(ctx, corpus, wordle.SimConfig{
						Games:      games,
						Trials:     trials,
						MaxTurns:   maxTurns,
						Seed:       int64(seed),
						Workers:    workers,
						FirstGuess: firstWord,
						Progress:   progress,
					})
					if err != nil {
						return err
					}
					fmt.Print(report)
					return nil
				},
			},
			{
				Name: "advise",
				Usage: `interactively solve an unknown puzzle
				Each turn prints ranked suggestions with estimated win
				probabilities, then reads your guess and the puzzle's feedback.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       5,
						Usage:       "suggestions to show per turn",
						Destination: &topN,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					corpus, err := loadCorpus(corpusPath)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					return advise(corpus, adviseConfig{
						trials:   trials,
						maxTurns: maxTurns,
						seed:     int64(seed),
						topN:     topN,
					})
				},
			},
			{
				Name: "rank",
				Usage: `rank opening guesses for the corpus
				Prints the top openers with their estimated win probabilities.`,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:        "top",
						Value:       20,
						Usage:       "openers to print",
						Destination: &topN,
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if profile != "" {
						stop, err := cpuProfile(profile)
						if err != nil {
							return err
						}
						defer stop()
					}
					corpus, err := loadCorpus(corpusPath)
					if err != nil {
						return cli.Exit(err.Error(), 1)
					}
					solver, err := wordle.NewSolver(corpus, maxTurns, trials, int64(seed))
					if err != nil {
						return err
					}
					scores, err := solver.Opening()
					if err != nil {
						return err
					}
					if topN > 0 && len(scores) > topN {
						scores = scores[:topN]
					}
					for _, s := range scores {
						fmt.Printf("%s  win %.1f%%  avg turns %.2f  %.2f bits\n",
							corpus.String(s.Guess), 100*s.WinProb, s.AvgTurns, s.Bits)
					}
					return nil
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal().Err(err).Msg("wordlemc failed")
	}
}
