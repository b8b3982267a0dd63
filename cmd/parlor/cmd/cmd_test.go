package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/f3rmion/parlor/internal/config"
)

func withViper(t *testing.T, kv map[string]any) {
	t.Helper()
	for k, v := range kv {
		viper.Set(k, v)
	}
	t.Cleanup(func() {
		for k := range kv {
			viper.Set(k, nil)
		}
	})
}

func writePhrases(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	data, err := yaml.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0644))
}

func TestLoadPhrasesDefault(t *testing.T) {
	withViper(t, map[string]any{"config_dir": t.TempDir(), "phrases": ""})

	cfg, err := loadPhrases(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadPhrasesConfigDir(t *testing.T) {
	dir := t.TempDir()
	want := &config.Config{Topic: "birds", Phrases: []string{"Blue Jay"}}
	writePhrases(t, filepath.Join(dir, config.PhrasesFile), want)
	withViper(t, map[string]any{"config_dir": dir, "phrases": ""})

	cfg, err := loadPhrases(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, want, cfg)
}

func TestLoadPhrasesBrokenConfigDirFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.PhrasesFile), []byte("phrases: []\n"), 0644))
	withViper(t, map[string]any{"config_dir": dir, "phrases": ""})

	cfg, err := loadPhrases(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoadPhrasesExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mine.yaml")
	writePhrases(t, path, &config.Config{Phrases: []string{"Hi-Lo"}})
	withViper(t, map[string]any{"config_dir": t.TempDir(), "phrases": path})

	cfg, err := loadPhrases(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, []string{"Hi-Lo"}, cfg.Phrases)

	withViper(t, map[string]any{"phrases": filepath.Join(t.TempDir(), "missing.yaml")})
	_, err = loadPhrases(zerolog.Nop())
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRunInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "parlor")
	withViper(t, map[string]any{"config_dir": dir})

	var out bytes.Buffer
	initCmd.SetOut(&out)
	t.Cleanup(func() { initCmd.SetOut(nil) })

	require.NoError(t, runInit(initCmd, nil))
	assert.Contains(t, out.String(), "Created phrases.yaml")

	cfg, err := config.LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	data, err := os.ReadFile(filepath.Join(dir, config.PhrasesFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Phrases for the hangman game.", "template comments are kept")

	err = runInit(initCmd, nil)
	assert.ErrorContains(t, err, "already exists")

	require.NoError(t, initCmd.Flags().Set("force", "true"))
	t.Cleanup(func() { initCmd.Flags().Set("force", "false") })
	assert.NoError(t, runInit(initCmd, nil))
}

func TestOpenDebugLog(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	f, err := openDebugLog(dir)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	assert.FileExists(t, filepath.Join(dir, debugLogFile))
}
