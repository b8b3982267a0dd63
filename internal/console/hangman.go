package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/f3rmion/parlor/internal/hangman"
)

// GuessPrompt is shown before every hangman guess.
const GuessPrompt = "Please enter a letter, or leave empty to exit program:  "

// Hangman plays one hangman session on a prompt.
type Hangman struct {
	In          Prompter
	Out         io.Writer
	Session     *hangman.Session
	Topic       string
	ClearScreen bool
	Log         zerolog.Logger
}

// Run loops read → validate → apply → render until the session is won,
// lost or the player exits. The returned state is always terminal unless
// err is non-nil.
func (g *Hangman) Run() (hangman.State, error) {
	if err := g.draw(); err != nil {
		return g.Session.State(), err
	}
	if state := g.Session.State(); state.Finished() {
		return state, g.finish(state)
	}

	for {
		letter, err := g.readGuess()
		if errors.Is(err, errExit) || errors.Is(err, hangman.ErrExit) {
			g.Session.Exit()
			g.Log.Debug().Str("phrase", g.Session.Phrase()).Msg("player exited")
			fmt.Fprintln(g.Out, exitMessage)
			return hangman.StateUserExited, nil
		}
		if err != nil {
			return g.Session.State(), err
		}

		hit := g.Session.Apply(letter)
		g.Log.Debug().
			Str("letter", string(letter)).
			Bool("hit", hit).
			Int("remaining", g.Session.Remaining()).
			Msg("guess applied")

		if err := g.draw(); err != nil {
			return g.Session.State(), err
		}

		if state := g.Session.State(); state.Finished() {
			return state, g.finish(state)
		}
	}
}

// finish prints the banner for a won or lost session.
func (g *Hangman) finish(state hangman.State) error {
	var banner string
	switch state {
	case hangman.StateWon:
		banner = hangman.WinBanner()
	case hangman.StateLost:
		banner = hangman.LoseBanner(g.Session.Phrase())
	default:
		fmt.Fprintln(g.Out, exitMessage)
		return nil
	}
	_, err := fmt.Fprintf(g.Out, "\n\n%s\n", banner)
	return err
}

// readGuess prompts until a valid letter is entered. Invalid guesses are
// reported and asked again.
func (g *Hangman) readGuess() (rune, error) {
	for {
		fmt.Fprintln(g.Out)
		line, err := readLine(g.In, GuessPrompt)
		if err != nil {
			return 0, err
		}

		letter, err := g.Session.Validate(line)
		var invalid *hangman.InvalidGuessError
		if errors.As(err, &invalid) {
			g.Log.Debug().Str("input", line).Err(invalid.Err).Msg("invalid guess")
			fmt.Fprintln(g.Out, invalid.Error())
			continue
		}
		return letter, err
	}
}

func (g *Hangman) draw() error {
	if g.ClearScreen {
		if _, err := io.WriteString(g.Out, clearScreen); err != nil {
			return err
		}
	}
	return hangman.Render(g.Out, g.Session, g.Topic)
}
