package hangman

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
)

var (
	// ErrExit is returned for an empty guess: the player wants to leave.
	ErrExit = errors.New("user has exited")

	// ErrSessionOver is returned when guessing on a finished session.
	ErrSessionOver = errors.New("session is over")

	ErrNotLetter       = errors.New("not a letter")
	ErrMultipleLetters = errors.New("more than one letter")
	ErrAlreadyGuessed  = errors.New("letter already guessed")
)

// InvalidGuessError describes a rejected guess. The player is asked again.
type InvalidGuessError struct {
	Input string
	Err   error
}

func (e *InvalidGuessError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotLetter):
		return "Input error: Please enter a letter only."
	case errors.Is(e.Err, ErrMultipleLetters):
		return "Input error: Please enter only one letter."
	case errors.Is(e.Err, ErrAlreadyGuessed):
		return fmt.Sprintf("Input error: You have already guessed %s, please choose a different letter.", e.Input)
	default:
		return fmt.Sprintf("Input error: %v", e.Err)
	}
}

func (e *InvalidGuessError) Unwrap() error {
	return e.Err
}

// Validate checks a raw guess against the session without changing it.
// It returns the lowercased letter, ErrExit for an empty string, or an
// *InvalidGuessError.
func (s *Session) Validate(candidate string) (rune, error) {
	if candidate == "" {
		return 0, ErrExit
	}

	for _, r := range candidate {
		if !isGuessable(r) {
			return 0, &InvalidGuessError{Input: candidate, Err: ErrNotLetter}
		}
	}

	if utf8.RuneCountInString(candidate) > 1 {
		return 0, &InvalidGuessError{Input: candidate, Err: ErrMultipleLetters}
	}

	letter := toLower(rune(candidate[0]))
	if s.Guessed(letter) {
		return 0, &InvalidGuessError{Input: candidate, Err: ErrAlreadyGuessed}
	}

	return letter, nil
}

// Guessed reports whether letter is in either guess set.
func (s *Session) Guessed(letter rune) bool {
	letter = toLower(letter)
	return lo.Contains(s.correct, letter) || lo.Contains(s.incorrect, letter)
}

// Guess validates and applies one raw guess. hit reports whether the
// letter occurs in the phrase.
func (s *Session) Guess(input string) (hit bool, err error) {
	if s.State().Finished() {
		return false, ErrSessionOver
	}

	letter, err := s.Validate(input)
	if err != nil {
		return false, err
	}

	return s.Apply(letter), nil
}

// isGuessable reports whether r can be typed as a guess: ASCII letters only.
func isGuessable(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}
