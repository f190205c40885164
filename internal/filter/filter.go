// internal/filter/filter.go
//
// Consistency filter over a validated guess collection.
// Responsibilities:
//   - Count positional matches between two equal-length words.
//   - Partition guesses into clues (annotated) and candidates (plain words).
//   - Keep only the candidates whose positional-match count against every clue
//     equals that clue's declared count.
//
// Notes:
//   - Input is assumed validated: all words share one length, so index-wise
//     comparison is always well-defined.
//   - Pure functions throughout; order of survivors follows input order.

package filter

import "github.com/lettergame/matchfilter/internal/guess"

// Matches returns the number of positions at which a and b hold the same
// character. Symmetric in its arguments. Both words must have equal length.
func Matches(a, b string) int {
	ar := []rune(a)
	br := []rune(b)
	n := 0
	for i := range ar {
		if ar[i] == br[i] {
			n++
		}
	}
	return n
}

// Consistent returns the candidate words consistent with every clue,
// preserving their input order. With zero clues every candidate survives.
func Consistent(guesses []guess.Guess) []string {
	var clues []guess.Guess
	var candidates []string
	for _, g := range guesses {
		if g.Clue {
			clues = append(clues, g)
		} else {
			candidates = append(candidates, g.Word)
		}
	}

	kept := make([]string, 0, len(candidates))
	for _, word := range candidates {
		if consistent(word, clues) {
			kept = append(kept, word)
		}
	}
	return kept
}

// consistent reports whether word's actual match count equals every clue's
// declared count.
func consistent(word string, clues []guess.Guess) bool {
	for _, c := range clues {
		if Matches(c.Word, word) != c.Count {
			return false
		}
	}
	return true
}
