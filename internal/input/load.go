// internal/input/load.go
//
// Reads the whole input stream, parses every line into a Guess, and validates
// the collection as a unit. Parsing is all-or-nothing: the first bad line
// fails the entire load, and no partial results are returned.

package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/lettergame/matchfilter/internal/guess"
)

// ErrNoGuesses reports an input stream that produced no guesses at all.
var ErrNoGuesses = errors.New("no guesses found in input")

// UnequalLengthsError reports a word whose length differs from the first
// word's. The first guess in input order defines the expected length.
type UnequalLengthsError struct {
	Word string
	Len  int
	Want int
}

func (e *UnequalLengthsError) Error() string {
	return fmt.Sprintf("word %q is %d letters, expected %d like the first word", e.Word, e.Len, e.Want)
}

// Load consumes r to completion and returns every guess in input order, clues
// and candidates intermixed.
//
// Failure modes, all fatal to the load:
//   - the read itself fails (wrapped I/O error),
//   - any line fails to parse (guess.ParseError; blank lines are not skipped),
//   - zero guesses were parsed (ErrNoGuesses),
//   - any word's length differs from the first word's (UnequalLengthsError).
func Load(r io.Reader) ([]guess.Guess, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var guesses []guess.Guess
	for _, line := range splitLines(string(buf)) {
		g, err := guess.Parse(line)
		if err != nil {
			return nil, err
		}
		guesses = append(guesses, g)
	}

	if len(guesses) == 0 {
		return nil, ErrNoGuesses
	}
	want := len(guesses[0].Word)
	for _, g := range guesses[1:] {
		if len(g.Word) != want {
			return nil, &UnequalLengthsError{Word: g.Word, Len: len(g.Word), Want: want}
		}
	}
	return guesses, nil
}

// splitLines splits on newlines, strips \r line endings, and drops the phantom
// empty line a trailing final newline would otherwise create. Interior blank
// lines survive so they surface as parse errors.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}
