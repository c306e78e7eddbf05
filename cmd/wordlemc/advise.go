package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/wordlemc/wordlemc/wordle"
)

type adviseConfig struct {
	trials   int
	maxTurns int
	seed     int64
	topN     int
}

// advise runs the interactive loop for an unknown puzzle: suggest, read the
// guess actually played, read the feedback, narrow, repeat.
func advise(corpus *wordle.Corpus, cfg adviseConfig) error {
	solver, err := wordle.NewSolver(corpus, cfg.maxTurns, cfg.trials, cfg.seed)
	if err != nil {
		return err
	}
	game := solver.NewGame(cfg.seed)
	in := bufio.NewScanner(os.Stdin)

	fmt.Println("Feedback is five marks, r=absent y=present g=exact, e.g. rygrr.")
	fmt.Println("If you know the secret, enter the word itself as feedback.")

	for game.Phase() != wordle.Finished {
		fmt.Printf("\nTurn %d, %d candidates.\n", game.Turn()+1, game.Candidates().Len())
		suggestions, err := game.Suggest(cfg.topN)
		if err != nil {
			return err
		}
		suggested := mapset.NewThreadUnsafeSet[string]()
		fmt.Println("Suggested guesses:")
		for _, s := range suggestions {
			word := corpus.String(s.Guess)
			suggested.Add(word)
			fmt.Printf("  %s  win %.1f%%  avg turns %.2f\n", word, 100*s.WinProb, s.AvgTurns)
		}

		guess, ok := promptGuess(in, corpus, game, suggested, suggestions[0].Guess)
		if !ok {
			return nil
		}
		if err := game.CommitGuess(guess); err != nil {
			return err
		}

		fb, ok := promptFeedback(in, corpus, guess)
		if !ok {
			return nil
		}
		if err := game.ApplyFeedback(fb); err != nil {
			if errors.Is(err, wordle.ErrInconsistent) {
				fmt.Println("That feedback contradicts every remaining word; check the earlier entries.")
				break
			}
			return err
		}
	}

	if game.Outcome() == wordle.Won {
		fmt.Printf("Won in %d turns.\n", game.Turn())
	} else {
		fmt.Printf("Game over after %d turns: %s.\n", game.Turn(), game.Outcome())
	}
	return nil
}

// promptGuess reads the word the user will play. Empty input accepts the
// top suggestion; an off-list corpus word is allowed, with its projected win
// probability shown. Returns ok=false on EOF.
func promptGuess(in *bufio.Scanner, corpus *wordle.Corpus, game *wordle.Game,
	suggested mapset.Set[string], top wordle.WordIndex) (wordle.WordIndex, bool) {
	for {
		fmt.Print("Your guess (empty accepts the top suggestion): ")
		if !in.Scan() {
			return 0, false
		}
		text := strings.ToLower(strings.TrimSpace(in.Text()))
		if text == "" {
			return top, true
		}
		guess, ok := corpus.Word(text)
		if !ok {
			fmt.Printf("%q is not in the corpus.\n", text)
			continue
		}
		if !suggested.Contains(text) {
			if score, err := game.EvaluateGuess(guess); err == nil {
				fmt.Printf("Playing %s projects a %.1f%% win chance.\n", text, 100*score.WinProb)
			}
		}
		return guess, true
	}
}

// promptFeedback reads the puzzle's response: an r/y/g pattern, or the
// secret word itself to have the pattern derived. Returns ok=false on EOF.
func promptFeedback(in *bufio.Scanner, corpus *wordle.Corpus, guess wordle.WordIndex) (wordle.Feedback, bool) {
	for {
		fmt.Printf("Feedback for %s: ", corpus.String(guess))
		if !in.Scan() {
			return 0, false
		}
		text := strings.ToLower(strings.TrimSpace(in.Text()))
		if fb, err := wordle.ParseFeedback(text); err == nil {
			return fb, true
		}
		fb, err := wordle.Score(text, corpus.String(guess))
		if err == nil {
			return fb, true
		}
		fmt.Println("Enter five of r/y/g, or the 5-letter secret word.")
	}
}
