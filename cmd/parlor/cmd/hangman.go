package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/parlor/internal/console"
	"github.com/f3rmion/parlor/internal/hangman"
)

var hangmanCmd = &cobra.Command{
	Use:   "hangman",
	Short: "Guess the hidden phrase one letter at a time",
	Long: `Play hangman on the command line.

A phrase is picked at random and shown as blanks; spaces and punctuation
are revealed from the start. Enter one letter per turn. Every wrong letter
adds a part to the figure, and the seventh wrong letter loses the game.

Leave the prompt empty and press Enter to exit.`,
	Args: cobra.NoArgs,
	RunE: runHangman,
}

func init() {
	rootCmd.AddCommand(hangmanCmd)
}

func runHangman(cmd *cobra.Command, args []string) error {
	log := newLogger(os.Stderr)

	cfg, err := loadPhrases(log)
	if err != nil {
		return fmt.Errorf("loading phrases: %w", err)
	}

	rl, err := console.NewReadline()
	if err != nil {
		return fmt.Errorf("opening terminal: %w", err)
	}
	defer rl.Close()

	session := hangman.NewSession(hangman.PickPhrase(cfg.Phrases, nil))
	log.Debug().Str("phrase", session.Phrase()).Msg("phrase chosen")

	game := &console.Hangman{
		In:          rl,
		Out:         rl.Stdout(),
		Session:     session,
		Topic:       cfg.Topic,
		ClearScreen: !viper.GetBool("no_clear"),
		Log:         log,
	}

	state, err := game.Run()
	if err != nil {
		return fmt.Errorf("playing hangman: %w", err)
	}
	log.Debug().Stringer("state", state).Msg("game over")

	return nil
}
