package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/f3rmion/parlor/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize parlor configuration",
	Long: `Write a phrases.yaml template into your config directory.

The template holds the built-in hangman phrase list. Edit it to play with
your own phrases; parlor picks it up automatically on the next run.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "overwrite existing configuration")
}

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	configDir := getConfigDir()
	dest := filepath.Join(configDir, config.PhrasesFile)

	// Check if config already exists
	if _, err := os.Stat(dest); err == nil && !force {
		return fmt.Errorf("phrase list already exists: %s\nUse --force to overwrite", dest)
	}

	if err := config.EnsureConfigDir(configDir); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := config.WriteTemplate(dest); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initializing parlor configuration in %s\n\n", configDir)
	fmt.Fprintf(out, "  Created %s\n\n", config.PhrasesFile)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintf(out, "  1. Edit %s to add your own phrases\n", dest)
	fmt.Fprintln(out, "  2. Run 'parlor' to play hangman with them")

	return nil
}
