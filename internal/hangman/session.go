package hangman

import (
	"slices"
	"strings"

	"github.com/samber/lo"
	"lukechampine.com/frand"
)

// Session holds the state of one hangman game: the secret phrase, its
// revealed projection and the two guess sets. A Session is owned by a
// single game loop and is not safe for concurrent use.
type Session struct {
	phrase    []rune
	revealed  []rune
	correct   []rune
	incorrect []rune
	lives     int
	exited    bool
}

// NewSession starts a game for phrase. Underscores in the phrase are
// replaced with dashes so they cannot be confused with the placeholder,
// and every character that is not a guessable letter is revealed.
func NewSession(phrase string) *Session {
	p := []rune(strings.ReplaceAll(phrase, string(Placeholder), "-"))

	revealed := make([]rune, len(p))
	for i := range revealed {
		revealed[i] = Placeholder
	}

	s := &Session{
		phrase:   p,
		revealed: revealed,
		lives:    Lives,
	}
	s.RevealNonLetters()
	return s
}

// PickPhrase returns a random entry of phrases. intn may be nil, in which
// case frand is used.
func PickPhrase(phrases []string, intn func(n int) int) string {
	if len(phrases) == 0 {
		return ""
	}
	if intn == nil {
		intn = frand.Intn
	}
	return phrases[intn(len(phrases))]
}

// RevealNonLetters copies every character that cannot be guessed (spaces,
// punctuation, digits) into the revealed projection.
func (s *Session) RevealNonLetters() {
	for i, r := range s.phrase {
		if !isGuessable(r) {
			s.revealed[i] = r
		}
	}
}

// Apply records letter as a correct or incorrect guess and reveals every
// matching position, keeping the phrase's own case. It returns true when
// the letter occurs in the phrase. A letter that was already guessed is
// ignored, and nothing changes once the session is finished.
func (s *Session) Apply(letter rune) bool {
	letter = toLower(letter)
	if s.State().Finished() {
		return false
	}
	if lo.Contains(s.correct, letter) {
		return true
	}
	if lo.Contains(s.incorrect, letter) {
		return false
	}

	if !slices.ContainsFunc(s.phrase, func(r rune) bool { return toLower(r) == letter }) {
		s.incorrect = append(s.incorrect, letter)
		return false
	}

	s.correct = append(s.correct, letter)
	for i, r := range s.phrase {
		if toLower(r) == letter {
			s.revealed[i] = r
		}
	}
	return true
}

// Won reports whether no placeholder remains.
func (s *Session) Won() bool {
	return !slices.Contains(s.revealed, Placeholder)
}

// Lost reports whether the incorrect guesses used up the lives budget.
func (s *Session) Lost() bool {
	return len(s.incorrect) == s.lives
}

// Exit marks the session as left by the player.
func (s *Session) Exit() {
	s.exited = true
}

// State reports where the session is in the game state machine.
func (s *Session) State() State {
	switch {
	case s.Won():
		return StateWon
	case s.Lost():
		return StateLost
	case s.exited:
		return StateUserExited
	default:
		return StateAwaitingInput
	}
}

// Phrase returns the secret phrase after underscore substitution.
func (s *Session) Phrase() string {
	return string(s.phrase)
}

// Revealed returns a copy of the revealed projection.
func (s *Session) Revealed() []rune {
	return slices.Clone(s.revealed)
}

// RevealedString returns the projection with a space between positions.
func (s *Session) RevealedString() string {
	return strings.Join(lo.Map(s.revealed, func(r rune, _ int) string {
		return string(r)
	}), " ")
}

// Correct returns the correct guesses in the order they were made.
func (s *Session) Correct() []rune {
	return slices.Clone(s.correct)
}

// Incorrect returns the incorrect guesses in the order they were made.
func (s *Session) Incorrect() []rune {
	return slices.Clone(s.incorrect)
}

// Lives returns the lives budget.
func (s *Session) Lives() int {
	return s.lives
}

// Remaining returns how many more incorrect guesses are tolerated.
func (s *Session) Remaining() int {
	return s.lives - len(s.incorrect)
}
