package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/f3rmion/parlor/internal/config"
	"github.com/f3rmion/parlor/internal/tui/views"
)

// ViewType represents the current active view
type ViewType int

const (
	ViewHangman ViewType = iota
	ViewRPS
)

// MenuItem represents a sidebar menu entry
type MenuItem struct {
	Label    string
	View     ViewType
	Shortcut string
}

// ViewSwitchMsg requests a view change
type ViewSwitchMsg struct {
	View ViewType
}

// AppModel is the main TUI model
type AppModel struct {
	// Layout state
	width        int
	height       int
	sidebarWidth int
	ready        bool

	// Navigation
	currentView   ViewType
	menuItems     []MenuItem
	selectedMenu  int
	sidebarActive bool

	// Sub-models (views)
	hangmanView views.HangmanModel
	rpsView     views.RPSModel

	// Help overlay
	showHelp bool
}

// NewApp creates a new TUI application starting on the hangman view.
func NewApp(cfg *config.Config, log zerolog.Logger) AppModel {
	menuItems := []MenuItem{
		{Label: "Hangman", View: ViewHangman, Shortcut: "1"},
		{Label: "Rock Paper Scissors", View: ViewRPS, Shortcut: "2"},
	}

	return AppModel{
		sidebarWidth: 26,
		currentView:  ViewHangman,
		menuItems:    menuItems,

		hangmanView: views.NewHangmanModel(cfg, nil, log),
		rpsView:     views.NewRPSModel(nil, log),
	}
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Help overlay - any key closes it
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}

		// Global keys. Letters and digits belong to the games unless the
		// sidebar has focus.
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case "esc":
			// Esc goes back to sidebar or quits
			if m.sidebarActive {
				return m, tea.Quit
			}
			m.sidebarActive = true
			return m, nil
		case "tab":
			m.sidebarActive = !m.sidebarActive
			return m, nil
		}

		// Sidebar navigation when active
		if m.sidebarActive {
			switch msg.String() {
			case "q":
				return m, tea.Quit
			case "1":
				return m.switchTo(ViewHangman), nil
			case "2":
				return m.switchTo(ViewRPS), nil
			case "j", "down":
				if m.selectedMenu < len(m.menuItems)-1 {
					m.selectedMenu++
				}
				return m, nil
			case "k", "up":
				if m.selectedMenu > 0 {
					m.selectedMenu--
				}
				return m, nil
			case "enter", "l", "right":
				return m.switchTo(m.menuItems[m.selectedMenu].View), nil
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		contentWidth := m.width - m.sidebarWidth - 4
		contentHeight := m.height - 2

		m.hangmanView.SetSize(contentWidth, contentHeight)
		m.rpsView.SetSize(contentWidth, contentHeight)

		return m, nil

	case ViewSwitchMsg:
		return m.switchTo(msg.View), nil
	}

	var cmd tea.Cmd
	switch m.currentView {
	case ViewHangman:
		m.hangmanView, cmd = m.hangmanView.Update(msg)
	case ViewRPS:
		m.rpsView, cmd = m.rpsView.Update(msg)
	}

	return m, cmd
}

func (m AppModel) switchTo(v ViewType) AppModel {
	m.currentView = v
	for i, item := range m.menuItems {
		if item.View == v {
			m.selectedMenu = i
			break
		}
	}
	m.sidebarActive = false
	return m
}

// CurrentView returns the view that receives key input.
func (m AppModel) CurrentView() ViewType {
	return m.currentView
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	sidebar := m.renderSidebar()

	var content string
	switch m.currentView {
	case ViewHangman:
		content = m.hangmanView.View()
	case ViewRPS:
		content = m.rpsView.View()
	}

	contentWidth := m.width - m.sidebarWidth - 4
	mainContent := ContentStyle.
		Width(contentWidth).
		Height(m.height - 2).
		Render(content)

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, mainContent)
}

// renderSidebar renders the sidebar navigation
func (m AppModel) renderSidebar() string {
	var items []string

	items = append(items, SidebarTitleStyle.Render("  parlor  "))
	items = append(items, "")

	for i, item := range m.menuItems {
		label := item.Shortcut + ". " + item.Label

		var style lipgloss.Style
		if i == m.selectedMenu {
			if m.sidebarActive {
				style = SidebarItemActiveStyle
			} else {
				// Indicate current view but not focused
				style = SidebarItemStyle.Bold(true).Foreground(ColorSecondary)
			}
		} else {
			style = SidebarItemStyle
		}

		items = append(items, style.Render(label))
	}

	usedHeight := len(items) + 4
	if m.height > usedHeight {
		for i := 0; i < m.height-usedHeight-2; i++ {
			items = append(items, "")
		}
	}

	items = append(items, SidebarHelpStyle.Render("? Help  tab Menu"))

	content := lipgloss.JoinVertical(lipgloss.Left, items...)

	return SidebarStyle.
		Width(m.sidebarWidth).
		Height(m.height - 2).
		Render(content)
}

// renderHelp renders the help overlay
func (m AppModel) renderHelp() string {
	helpText := helpTitleStyle.Render("parlor - terminal games") + "\n\n"

	helpText += helpSectionStyle.Render("Global Keys") + "\n"
	helpText += helpKeyStyle.Render("tab / esc") + helpDescStyle.Render("Focus the menu") + "\n"
	helpText += helpKeyStyle.Render("?") + helpDescStyle.Render("Show this help") + "\n"
	helpText += helpKeyStyle.Render("ctrl+c") + helpDescStyle.Render("Quit") + "\n"

	helpText += helpSectionStyle.Render("Menu") + "\n"
	helpText += helpKeyStyle.Render("j/k") + helpDescStyle.Render("Move selection") + "\n"
	helpText += helpKeyStyle.Render("1-2") + helpDescStyle.Render("Switch games") + "\n"
	helpText += helpKeyStyle.Render("q") + helpDescStyle.Render("Quit") + "\n"

	helpText += helpSectionStyle.Render("Hangman") + "\n"
	helpText += helpKeyStyle.Render("a-z enter") + helpDescStyle.Render("Guess a letter") + "\n"
	helpText += helpKeyStyle.Render("enter") + helpDescStyle.Render("Empty: quit, finished: new round") + "\n"

	helpText += helpSectionStyle.Render("Rock Paper Scissors") + "\n"
	helpText += helpKeyStyle.Render("1/r 2/p 3/s") + helpDescStyle.Render("Play a hand") + "\n"
	helpText += helpKeyStyle.Render("enter") + helpDescStyle.Render("Play again") + "\n"

	helpText += "\n" + helpFooterStyle.Render("Press any key to close")

	helpBox := helpBoxStyle.Render(helpText)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpBox)
}
