// internal/guess/guess.go
//
// The Guess entity and its line parser.
// A guess line has the shape "word [whitespace] [count]":
//   - "apple"    → a candidate word still in play.
//   - "angle 2"  → a clue: "angle" matches the hidden word at exactly 2 positions.

package guess

import (
	"fmt"
	"regexp"
	"strconv"
)

// guessPattern captures a maximal run of letters, then an optional run of
// digits. Deliberately unanchored: trailing content after a valid word/count
// pair is ignored, and the whitespace between word and count is optional
// ("cat3" parses the same as "cat 3").
var guessPattern = regexp.MustCompile(`(?P<word>[A-Za-z]+)\s*(?P<count>[0-9]*)`)

// Guess is one parsed input line.
type Guess struct {
	Word  string // Alphabetic, case-sensitive.
	Count int    // Declared positional-match count; meaningful only when Clue is set.
	Clue  bool   // True when the line carried a count annotation.
}

// ParseError reports a line that does not fit the guess grammar.
type ParseError struct {
	Line   string
	Detail string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse line %q into guess: %s", e.Line, e.Detail)
}

// Parse converts one raw input line into a Guess.
// A count, when present, must not exceed the word's length.
func Parse(line string) (Guess, error) {
	m := guessPattern.FindStringSubmatch(line)
	if m == nil {
		return Guess{}, &ParseError{Line: line, Detail: "wrong guess format"}
	}
	word, countStr := m[1], m[2]

	if countStr == "" {
		return Guess{Word: word}, nil
	}
	count, err := strconv.Atoi(countStr)
	if err != nil || count > len(word) {
		return Guess{}, &ParseError{Line: line, Detail: "count is longer than the word"}
	}
	return Guess{Word: word, Count: count, Clue: true}, nil
}
