package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/f3rmion/parlor/internal/rps"
)

// ChoicePrompt is shown when asking for a rock-paper-scissors hand.
const ChoicePrompt = "Enter your number to play:  "

// RPS plays one round of rock-paper-scissors on a prompt.
type RPS struct {
	In  Prompter
	Out io.Writer
	Log zerolog.Logger

	// Computer picks the computer's hand; rps.RandomChoice when nil.
	Computer func() rps.Choice
}

// Run shows the menu, reads the player's hand and prints the result.
// played is false when the player left without choosing.
func (g *RPS) Run() (outcome rps.Outcome, played bool, err error) {
	pick := g.Computer
	if pick == nil {
		pick = rps.RandomChoice
	}
	computer := pick()

	fmt.Fprint(g.Out, "\nWelcome to Rock, Paper, Scissors!\n\n")
	fmt.Fprintln(g.Out, menu())

	player, err := g.readChoice()
	if errors.Is(err, errExit) {
		fmt.Fprintln(g.Out, exitMessage)
		return rps.Tie, false, nil
	}
	if err != nil {
		return rps.Tie, false, err
	}

	outcome = rps.Play(player, computer)
	g.Log.Debug().
		Stringer("player", player).
		Stringer("computer", computer).
		Stringer("outcome", outcome).
		Msg("round played")

	fmt.Fprintf(g.Out, "\nYou chose: %s\n", player)
	fmt.Fprintf(g.Out, "Computer chose: %s\n\n", computer)
	fmt.Fprintln(g.Out, outcome)

	return outcome, true, nil
}

func (g *RPS) readChoice() (rps.Choice, error) {
	for {
		line, err := readLine(g.In, ChoicePrompt)
		if err != nil {
			return 0, err
		}
		if line == "" {
			return 0, errExit
		}

		c, err := rps.ParseChoice(line)
		if errors.Is(err, rps.ErrInvalidChoice) {
			fmt.Fprintln(g.Out, "You did not enter a valid number")
			continue
		}
		return c, err
	}
}

func menu() string {
	var b strings.Builder
	b.WriteString("Enter:")
	for _, c := range rps.Choices {
		fmt.Fprintf(&b, "\n%d for %s", int(c), c)
	}
	return b.String()
}
