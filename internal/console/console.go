// Package console runs the games as line-oriented prompt loops.
package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/chzyer/readline"
)

// clearScreen moves the cursor home and erases the display.
const clearScreen = "\033[H\033[2J"

// errExit is returned by readLine when the player leaves the prompt.
var errExit = errors.New("user has exited")

const exitMessage = "User has exited"

// Prompter reads one line of input after showing a prompt.
// *readline.Instance satisfies it.
type Prompter interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// NewReadline returns a Prompter on the process terminal. Ctrl-Z is
// filtered out and nothing is persisted between runs.
func NewReadline() (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		EOFPrompt:              "exit",
		InterruptPrompt:        "^C",
		DisableAutoSaveHistory: true,
		FuncFilterInputRune:    filterInput,
	})
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// readLine shows prompt and returns the next submitted line. An empty
// interrupt (Ctrl-C) or EOF means the player left; an interrupt while
// something was typed discards the line and asks again.
func readLine(in Prompter, prompt string) (string, error) {
	for {
		in.SetPrompt(prompt)
		line, err := in.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if line == "" {
				return "", errExit
			}
			continue
		case errors.Is(err, io.EOF):
			return "", errExit
		case err != nil:
			return "", fmt.Errorf("reading input: %w", err)
		}
		return line, nil
	}
}
