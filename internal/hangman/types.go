// Package hangman provides the guess session, figure and rendering for the
// hangman word-guessing game.
package hangman

// Placeholder marks a letter position that has not been revealed yet.
const Placeholder = '_'

// State is the position of a session in the game state machine.
type State int

const (
	StateAwaitingInput State = iota // Waiting for the next guess
	StateWon                        // Every letter revealed
	StateLost                       // Lives budget exhausted
	StateUserExited                 // Player left with an empty guess
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "awaiting_input"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateUserExited:
		return "user_exited"
	default:
		return "unknown"
	}
}

// Finished reports whether the state is terminal.
func (s State) Finished() bool {
	return s != StateAwaitingInput
}

// BodyPart is one drawable segment of the gallows figure.
type BodyPart struct {
	Slot  int    // Position in the figure template
	Glyph string // Character drawn once the part is lost
	Name  string // e.g. "head", "left arm"
}
