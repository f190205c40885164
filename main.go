package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lettergame/matchfilter/internal/filter"
	"github.com/lettergame/matchfilter/internal/input"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := run(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("matchfilter failed")
	}
}

// run drives the pipeline: load and validate every guess, filter candidates
// against the clues, then print the survivors one per line. Nothing reaches
// out until the whole input has validated.
func run(in io.Reader, out io.Writer) error {
	guesses, err := input.Load(in)
	if err != nil {
		return err
	}

	kept := filter.Consistent(guesses)
	clues := 0
	for _, g := range guesses {
		if g.Clue {
			clues++
		}
	}
	log.Debug().
		Int("guesses", len(guesses)).
		Int("clues", clues).
		Int("candidates", len(guesses)-clues).
		Int("kept", len(kept)).
		Msg("filtered candidates")

	w := bufio.NewWriter(out)
	for _, word := range kept {
		fmt.Fprintln(w, word)
	}
	return w.Flush()
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
