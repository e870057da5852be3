package main

import (
	"errors"
	"os"

	"github.com/rs/zerolog/log"
)

// Exit codes.
const (
	exitOK         = 0
	exitViolations = 1
	exitError      = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	err := Execute()
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errViolationsFound):
		return exitViolations
	default:
		log.Error().Err(err).Msg("keycheck failed")
		return exitError
	}
}
