// Package cmd contains all CLI commands for parlor.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/f3rmion/parlor/internal/config"
	"github.com/f3rmion/parlor/internal/logging"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "parlor",
	Short: "Terminal parlor games: hangman and rock-paper-scissors",
	Long: `parlor is a pair of small terminal games.

  hangman      Guess the hidden phrase one letter at a time before the
               figure on the gallows is complete (7 wrong guesses).
  rps          Play one round of rock-paper-scissors against the computer.
  interactive  Both games in a full-screen terminal UI.

Running 'parlor' without arguments starts hangman. Leave the prompt empty
and press Enter to exit at any time.`,
	RunE:         runHangman,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config directory (default is $HOME/.config/parlor)")
	rootCmd.PersistentFlags().Bool("verbose", false, "verbose output")
	rootCmd.PersistentFlags().String("phrases", "", "hangman phrase list (YAML, default is <config>/phrases.yaml or the built-in list)")
	rootCmd.PersistentFlags().Bool("no-clear", false, "don't clear the screen between hangman turns")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("phrases", rootCmd.PersistentFlags().Lookup("phrases"))
	viper.BindPFlag("no_clear", rootCmd.PersistentFlags().Lookup("no-clear"))
}

// initConfig reads in ENV variables and resolves the config directory.
func initConfig() {
	if cfgFile != "" {
		viper.Set("config_dir", cfgFile)
	} else {
		dir, err := config.GetConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}
		viper.Set("config_dir", dir)
	}

	viper.SetEnvPrefix("PARLOR")
	viper.AutomaticEnv()
}

// getConfigDir returns the configuration directory path.
func getConfigDir() string {
	return viper.GetString("config_dir")
}

// newLogger returns the console logger for line-mode commands.
func newLogger(w io.Writer) zerolog.Logger {
	return logging.New(w, viper.GetBool("verbose"))
}

// loadPhrases resolves the phrase list: an explicit --phrases file, then
// phrases.yaml in the config directory, then the built-in list. Only an
// explicit file is required to load.
func loadPhrases(log zerolog.Logger) (*config.Config, error) {
	if path := viper.GetString("phrases"); path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("path", path).Int("count", len(cfg.Phrases)).Msg("loaded phrases")
		return cfg, nil
	}

	dir := getConfigDir()
	if dir != "" {
		cfg, err := config.LoadDir(dir)
		if err == nil {
			log.Debug().Str("path", filepath.Join(dir, config.PhrasesFile)).Int("count", len(cfg.Phrases)).Msg("loaded phrases")
			return cfg, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Msg("ignoring phrase list in config directory")
		}
	}

	return config.Default(), nil
}
