package wordle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput covers malformed word lengths, non-positive trial
	// counts, and unparseable feedback. Boundary code may reprompt.
	ErrInvalidInput = errors.New("invalid input")

	// ErrCorpusLoad means the word list is missing, unreadable, or
	// malformed. There is no sensible default, so it is fatal at startup.
	ErrCorpusLoad = errors.New("corpus load failed")

	// ErrInconsistent means an observed feedback pattern eliminated every
	// remaining candidate. It signals contradictory input, not a puzzle loss.
	ErrInconsistent = errors.New("feedback is inconsistent with every candidate")
)

func errNotInCorpus(s string) error {
	return fmt.Errorf("%w: word %q not in corpus", ErrInvalidInput, s)
}
