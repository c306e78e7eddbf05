package wordle

import (
	"fmt"
	"strings"
)

// Mark is the per-position result of comparing a guess letter to the secret.
type Mark uint16

const (
	Absent Mark = iota
	Present
	Exact
)

// Feedback packs one 2-bit mark per position into a uint16, leftmost letter
// in the high bits so the numeric order matches the r/y/g string form.
type Feedback uint16

// AllExactFeedback is the winning pattern, every position Exact.
const AllExactFeedback Feedback = (Feedback(Exact)<<8 | Feedback(Exact)<<6 |
	Feedback(Exact)<<4 | Feedback(Exact)<<2 | Feedback(Exact))

// Mark returns the mark at position i, 0 being the first letter.
func (f Feedback) Mark(i int) Mark {
	return Mark(f>>uint(2*(WordLen-1-i))) & 3
}

func (f Feedback) withMark(i int, m Mark) Feedback {
	shift := uint(2 * (WordLen - 1 - i))
	return f&^(3<<shift) | Feedback(m)<<shift
}

// AllExact reports whether every position is an exact match.
func (f Feedback) AllExact() bool {
	return f == AllExactFeedback
}

// String renders the pattern in the usual r/y/g form, e.g. "ygyrr".
func (f Feedback) String() string {
	var b strings.Builder
	for i := 0; i < WordLen; i++ {
		switch f.Mark(i) {
		case Exact:
			b.WriteByte('g')
		case Present:
			b.WriteByte('y')
		default:
			b.WriteByte('r')
		}
	}
	return b.String()
}

// ParseFeedback parses an r/y/g pattern string such as "rrygg".
func ParseFeedback(s string) (Feedback, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != WordLen {
		return 0, fmt.Errorf("%w: feedback %q is not %d marks", ErrInvalidInput, s, WordLen)
	}
	var f Feedback
	for i := 0; i < WordLen; i++ {
		switch s[i] {
		case 'g':
			f = f.withMark(i, Exact)
		case 'y':
			f = f.withMark(i, Present)
		case 'r', 'b':
			f = f.withMark(i, Absent)
		default:
			return 0, fmt.Errorf("%w: feedback mark %q, want r, y, or g", ErrInvalidInput, s[i])
		}
	}
	return f, nil
}

// Score compares guess against secret with the official two-pass rule:
// exact matches first, consuming the secret's letter counts, then present
// marks left to right from whatever counts remain. The order is what makes
// repeated letters come out right.
func Score(secret, guess string) (Feedback, error) {
	if len(secret) != WordLen || len(guess) != WordLen {
		return 0, fmt.Errorf("%w: secret %q and guess %q must both be %d letters",
			ErrInvalidInput, secret, guess, WordLen)
	}
	if !isLowerAlpha(secret) || !isLowerAlpha(guess) {
		return 0, fmt.Errorf("%w: secret %q and guess %q must be lowercase a-z",
			ErrInvalidInput, secret, guess)
	}
	var remaining [26]int
	var f Feedback
	for i := 0; i < WordLen; i++ {
		if guess[i] == secret[i] {
			f = f.withMark(i, Exact)
		} else {
			remaining[secret[i]-'a']++
		}
	}
	for i := 0; i < WordLen; i++ {
		if f.Mark(i) == Exact {
			continue
		}
		if remaining[guess[i]-'a'] > 0 {
			f = f.withMark(i, Present)
			remaining[guess[i]-'a']--
		}
	}
	return f, nil
}

// ScoreWords is Score over corpus indexes.
func (c *Corpus) ScoreWords(secret, guess WordIndex) Feedback {
	f, err := Score(c.words[secret], c.words[guess])
	if err != nil {
		panic(err) // corpus words are validated at load
	}
	return f
}
