// Package rps implements a single round of rock-paper-scissors against the
// computer.
package rps

import (
	"errors"
	"strconv"
	"strings"

	"lukechampine.com/frand"
)

// ErrInvalidChoice is returned by ParseChoice for anything that is not a
// menu number or choice name.
var ErrInvalidChoice = errors.New("invalid choice")

// Choice is a hand shape. The values are the menu numbers.
type Choice int

const (
	Rock     Choice = 1
	Paper    Choice = 2
	Scissors Choice = 3
)

// Choices lists the hand shapes in menu order.
var Choices = []Choice{Rock, Paper, Scissors}

// beats maps each choice to the one it defeats. The relation is a cycle:
// rock → scissors → paper → rock.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

var names = map[Choice]string{
	Rock:     "Rock",
	Paper:    "Paper",
	Scissors: "Scissors",
}

func (c Choice) String() string {
	if n, ok := names[c]; ok {
		return n
	}
	return "Choice(" + strconv.Itoa(int(c)) + ")"
}

// Valid reports whether c is one of Choices.
func (c Choice) Valid() bool {
	_, ok := beats[c]
	return ok
}

// Beats reports whether c defeats other.
func (c Choice) Beats(other Choice) bool {
	v, ok := beats[c]
	return ok && v == other
}

// ParseChoice accepts a menu number ("1"-"3") or a choice name in any case.
func ParseChoice(s string) (Choice, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		c := Choice(n)
		if c.Valid() {
			return c, nil
		}
		return 0, ErrInvalidChoice
	}
	for _, c := range Choices {
		if strings.EqualFold(s, names[c]) {
			return c, nil
		}
	}
	return 0, ErrInvalidChoice
}

// RandomChoice picks the computer's hand.
func RandomChoice() Choice {
	return Choices[frand.Intn(len(Choices))]
}

// Outcome is the result of a round from the player's side.
type Outcome int

const (
	Tie Outcome = iota
	PlayerWins
	ComputerWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "We have a tie!"
	case PlayerWins:
		return "User wins!!!"
	case ComputerWins:
		return "Sorry, computer wins :("
	default:
		return "unknown outcome"
	}
}

// Play decides a round.
func Play(player, computer Choice) Outcome {
	switch {
	case player == computer:
		return Tie
	case player.Beats(computer):
		return PlayerWins
	default:
		return ComputerWins
	}
}
