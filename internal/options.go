package internal

import (
	"errors"
)

var (
	ErrInsufficientArguments = errors.New("not enough parameters")
	ErrMissingFilePath       = errors.New("no file path provided")
	ErrMissingPattern        = errors.New("no search pattern provided")
)

// minArgs is program name + pattern + file path.
const minArgs = 3

// Config - options of a single run, built from the command line.
type Config struct {
	FilePath   string
	Pattern    string
	IgnoreCase bool // -i
	Reversed   bool // -v
	LineNumber bool // -n
	Count      bool // -c
}

// BuildConfig parses the raw argument list (args[0] is the program name).
//
// Positional values are taken from the end: the last token is the file path,
// the one before it is the pattern. Every other token is a flag candidate;
// unknown ones are ignored.
func BuildConfig(args []string) (Config, error) {
	if len(args) < minArgs {
		return Config{}, ErrInsufficientArguments
	}
	rest := args[1:]

	n := len(rest)
	if n == 0 {
		return Config{}, ErrMissingFilePath
	}
	filePath := rest[n-1]
	if n == 1 {
		return Config{}, ErrMissingPattern
	}
	pattern := rest[n-2]

	flags := toSet(rest[:n-2])
	return Config{
		FilePath:   filePath,
		Pattern:    pattern,
		IgnoreCase: flags.has("-i"),
		Reversed:   flags.has("-v"),
		LineNumber: flags.has("-n"),
		Count:      flags.has("-c"),
	}, nil
}

type tokenSet map[string]struct{}

func toSet(s []string) tokenSet {
	if len(s) == 0 {
		return nil
	}
	m := make(tokenSet, len(s))
	for _, x := range s {
		m[x] = struct{}{}
	}
	return m
}

func (s tokenSet) has(tok string) bool {
	_, ok := s[tok]
	return ok
}
