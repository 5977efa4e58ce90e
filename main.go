// main.go
//
// Terminal front end for the guessing engine. Thin glue only: all rules live
// in internal/game; this file reads lines, feeds the session, and prints
// colored feedback.
//
// Environment variables:
//   LOG_LEVEL      zerolog level (default "info")
//   GAME_LANG      starting dictionary language (default "fr")
//   WORDS_FILE_*   per-language word list overrides (see internal/words)

package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aperrin/motus/internal/game"
	"github.com/aperrin/motus/internal/words"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	lang := words.Lang(getEnv("GAME_LANG", string(words.French)))

	sess := game.NewSession(words.NewProvider(), words.FrandIndex, lang)
	if err := sess.StartNewGame(); err != nil {
		log.Fatal().Err(err).Msg("failed to start game")
	}
	log.Debug().Str("lang", string(sess.Lang())).Msg("game started")

	fmt.Printf("Guess the %d-letter word in %d attempts. Commands: /new, /lang <tag>, /quit\n",
		words.WordLength, game.MaxAttempts)

	sc := bufio.NewScanner(os.Stdin)
	prompt(sess)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case line == "":
		case line == "/quit":
			return
		case line == "/new":
			reset(sess, sess.StartNewGame)
		case strings.HasPrefix(line, "/lang "):
			tag := words.Lang(strings.TrimSpace(strings.TrimPrefix(line, "/lang ")))
			reset(sess, func() error { return sess.SwitchLanguage(tag) })
		default:
			play(sess, line)
		}
		prompt(sess)
	}
}

// reset runs a restart transition and reports the outcome.
func reset(sess *game.Session, start func() error) {
	if err := start(); err != nil {
		fmt.Printf("could not start a game: %v\n", err)
		return
	}
	fmt.Printf("new game (%s), %d attempts\n", sess.Lang(), game.MaxAttempts)
}

// play submits one guess and prints the result.
func play(sess *game.Session, guess string) {
	if err := sess.EditInput(guess); err != nil {
		fmt.Println("game over — /new to play again")
		return
	}
	att, err := sess.SubmitAttempt()
	if err != nil {
		var verr *game.ValidationError
		if errors.As(err, &verr) {
			fmt.Println(verr.Error())
			return
		}
		log.Fatal().Err(err).Msg("game session failed")
	}
	printAttempt(att)
	switch sess.Phase() {
	case game.Won:
		fmt.Printf("won in %d attempt(s)! /new to play again\n", len(sess.Attempts()))
	case game.Lost:
		fmt.Printf("lost — the word was %q. /new to play again\n", sess.Target())
	}
}

// printAttempt renders an attempt as colored tiles: green for correct,
// yellow for misplaced, dim for unused and handled letters.
func printAttempt(att game.Attempt) {
	for _, l := range att {
		switch l.Class {
		case game.Correct:
			fmt.Printf("\033[1;32m%c\033[0m", l.Char)
		case game.Misplaced:
			fmt.Printf("\033[1;33m%c\033[0m", l.Char)
		default:
			fmt.Printf("\033[1;90m%c\033[0m", l.Char)
		}
	}
	fmt.Println()
}

// prompt shows the remaining budget while a game is ongoing.
func prompt(sess *game.Session) {
	if sess.Phase() == game.Ongoing {
		fmt.Printf("[%d left] > ", sess.AttemptsLeft())
	} else {
		fmt.Print("> ")
	}
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
