package views

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/f3rmion/parlor/internal/rps"
)

var choiceStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("#ffe66d")).
	Background(lipgloss.Color("#2d3436")).
	Padding(0, 2)

// RPSModel is the rock-paper-scissors view model.
type RPSModel struct {
	computerPick func() rps.Choice
	log          zerolog.Logger

	player   rps.Choice
	computer rps.Choice
	outcome  rps.Outcome
	played   bool

	width  int
	height int
}

// NewRPSModel creates a rock-paper-scissors view. pick chooses the
// computer's hand; nil uses rps.RandomChoice.
func NewRPSModel(pick func() rps.Choice, log zerolog.Logger) RPSModel {
	if pick == nil {
		pick = rps.RandomChoice
	}
	return RPSModel{computerPick: pick, log: log}
}

// SetSize updates the view dimensions.
func (m *RPSModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Played reports whether the current round has a result.
func (m RPSModel) Played() bool {
	return m.played
}

// Outcome returns the result of the current round.
func (m RPSModel) Outcome() rps.Outcome {
	return m.outcome
}

var choiceKeys = map[string]rps.Choice{
	"1": rps.Rock, "r": rps.Rock,
	"2": rps.Paper, "p": rps.Paper,
	"3": rps.Scissors, "s": rps.Scissors,
}

// Update handles messages.
func (m RPSModel) Update(msg tea.Msg) (RPSModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.played {
		switch key.String() {
		case "enter", "n":
			m.played = false
		}
		return m, nil
	}

	if c, ok := choiceKeys[key.String()]; ok {
		m.player = c
		m.computer = m.computerPick()
		m.outcome = rps.Play(m.player, m.computer)
		m.played = true
		m.log.Debug().
			Stringer("player", m.player).
			Stringer("computer", m.computer).
			Stringer("outcome", m.outcome).
			Msg("round played")
	}
	return m, nil
}

// View renders the rock-paper-scissors view.
func (m RPSModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Rock, Paper, Scissors"))
	b.WriteString("\n\n")

	if !m.played {
		b.WriteString(subtitleStyle.Render("Enter:"))
		b.WriteString("\n")
		for _, c := range rps.Choices {
			fmt.Fprintf(&b, "  %d for %s\n", int(c), c)
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("1/r Rock • 2/p Paper • 3/s Scissors"))
		return b.String()
	}

	b.WriteString(labelStyle.Render("You chose:"))
	b.WriteString(choiceStyle.Render(m.player.String()))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("Computer chose:"))
	b.WriteString(choiceStyle.Render(m.computer.String()))
	b.WriteString("\n\n")

	switch m.outcome {
	case rps.PlayerWins:
		b.WriteString(successStyle.Render(m.outcome.String()))
	case rps.ComputerWins:
		b.WriteString(errorStyle.Render(m.outcome.String()))
	default:
		b.WriteString(valueStyle.Render(m.outcome.String()))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("Enter: play again"))

	return b.String()
}
