package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/f3rmion/parlor/internal/console"
)

var rpsCmd = &cobra.Command{
	Use:     "rps",
	Aliases: []string{"rock-paper-scissors"},
	Short:   "Play one round of rock-paper-scissors",
	Long: `Play a single round of rock-paper-scissors against the computer.

Enter 1 for Rock, 2 for Paper or 3 for Scissors (the names work too).
Rock beats Scissors, Scissors beats Paper and Paper beats Rock.`,
	Args: cobra.NoArgs,
	RunE: runRPS,
}

func init() {
	rootCmd.AddCommand(rpsCmd)
}

func runRPS(cmd *cobra.Command, args []string) error {
	log := newLogger(os.Stderr)

	rl, err := console.NewReadline()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer rl.Close()

	game := &console.RPS{
		In:  rl,
		Out: rl.Stdout(),
		Log: log,
	}

	if _, _, err := game.Run(); err != nil {
		return fmt.Errorf("playing rock-paper-scissors: %w", err)
	}

	return nil
}
