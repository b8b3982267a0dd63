// Package views provides the individual game views for the TUI.
package views

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/f3rmion/parlor/internal/config"
	"github.com/f3rmion/parlor/internal/hangman"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			Background(lipgloss.Color("#1a1a2e")).
			Padding(0, 1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ecdc4"))

	figureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#3d5a80")).
			Padding(0, 2)

	phraseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffe66d")).
			Margin(1, 0)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8dadc")).
			Bold(true).
			Width(16)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff6b6b")).
			Bold(true)

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a8e6cf")).
			Bold(true)
)

// HangmanModel is the hangman game view model.
type HangmanModel struct {
	input   textinput.Model
	phrases []string
	topic   string
	intn    func(n int) int
	log     zerolog.Logger

	session *hangman.Session
	message string
	isError bool

	width  int
	height int
}

// NewHangmanModel creates a hangman view and starts the first round.
// intn picks the phrase index; nil uses frand.
func NewHangmanModel(cfg *config.Config, intn func(n int) int, log zerolog.Logger) HangmanModel {
	ti := textinput.New()
	ti.Placeholder = "a letter, or empty to quit"
	ti.Focus()
	ti.CharLimit = 8
	ti.Width = 30
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4"))
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffe66d"))

	m := HangmanModel{
		input:   ti,
		phrases: cfg.Phrases,
		topic:   cfg.Topic,
		intn:    intn,
		log:     log,
	}
	m.NewRound()
	return m
}

// NewRound picks a fresh phrase and clears the guesses.
func (m *HangmanModel) NewRound() {
	m.session = hangman.NewSession(hangman.PickPhrase(m.phrases, m.intn))
	m.message = ""
	m.isError = false
	m.input.Reset()
	m.log.Debug().Str("phrase", m.session.Phrase()).Msg("new hangman round")
}

// Session returns the current session.
func (m HangmanModel) Session() *hangman.Session {
	return m.session
}

// SetSize updates the view dimensions.
func (m *HangmanModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles messages.
func (m HangmanModel) Update(msg tea.Msg) (HangmanModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEnter {
		return m.submit()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m HangmanModel) submit() (HangmanModel, tea.Cmd) {
	if m.session.State().Finished() {
		m.NewRound()
		return m, nil
	}

	value := m.input.Value()
	m.input.Reset()

	letter, err := m.session.Validate(value)
	if errors.Is(err, hangman.ErrExit) {
		m.session.Exit()
		return m, tea.Quit
	}
	var invalid *hangman.InvalidGuessError
	if errors.As(err, &invalid) {
		m.message = invalid.Error()
		m.isError = true
		return m, nil
	}

	hit := m.session.Apply(letter)
	m.log.Debug().Str("letter", string(letter)).Bool("hit", hit).Msg("guess applied")

	m.isError = false
	switch {
	case m.session.Won():
		m.message = "You win!"
	case m.session.Lost():
		m.message = "You lose, the answer was: " + m.session.Phrase()
		m.isError = true
	case hit:
		m.message = fmt.Sprintf("Yes, %q is in the phrase.", letter)
	default:
		m.message = fmt.Sprintf("No %q. %d lives left.", letter, m.session.Remaining())
	}
	return m, nil
}

// View renders the hangman view.
func (m HangmanModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Hangman"))
	if m.topic != "" {
		b.WriteString("  ")
		b.WriteString(subtitleStyle.Render("Topic: " + m.topic))
	}
	b.WriteString("\n\n")

	b.WriteString(figureStyle.Render(hangman.Figure(len(m.session.Incorrect()))))
	b.WriteString("\n")
	b.WriteString(phraseStyle.Render(m.session.RevealedString()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("right letters:"))
	b.WriteString(valueStyle.Render(hangman.JoinLetters(m.session.Correct())))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("wrong letters:"))
	b.WriteString(valueStyle.Render(hangman.JoinLetters(m.session.Incorrect())))
	b.WriteString("\n\n")

	if m.message != "" {
		if m.isError {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(successStyle.Render(m.message))
		}
		b.WriteString("\n\n")
	}

	if m.session.State().Finished() {
		b.WriteString(helpStyle.Render("Enter: new round"))
	} else {
		b.WriteString(m.input.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Type a letter and press Enter • empty Enter quits"))
	}

	return b.String()
}
