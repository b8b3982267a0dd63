package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/parlor/internal/config"
	"github.com/f3rmion/parlor/internal/logging"
	"github.com/f3rmion/parlor/internal/tui"
)

// debugLogFile receives log output while the TUI owns the terminal.
const debugLogFile = "debug.log"

var interactiveCmd = &cobra.Command{
	Use:     "interactive",
	Aliases: []string{"i", "ui"},
	Short:   "Launch interactive TUI",
	Long: `Launch a full-screen terminal UI with both games.

Controls:
  tab     Focus the game menu
  Enter   Submit a guess (empty Enter quits)
  ?       Help
  ctrl+c  Quit

With --verbose, logs are written to debug.log in the config directory.`,
	Args: cobra.NoArgs,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(cmd *cobra.Command, args []string) error {
	log := zerolog.Nop()
	if viper.GetBool("verbose") {
		f, err := openDebugLog(getConfigDir())
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer f.Close()
		log = logging.New(f, true)
	}

	cfg, err := loadPhrases(log)
	if err != nil {
		return fmt.Errorf("loading phrases: %w", err)
	}

	p := tea.NewProgram(
		tui.NewApp(cfg, log),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}

	return nil
}

func openDebugLog(dir string) (*os.File, error) {
	if err := config.EnsureConfigDir(dir); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, debugLogFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
}
