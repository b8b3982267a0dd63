package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "family movies", cfg.Topic)
	assert.Len(t, cfg.Phrases, 32)
	assert.Contains(t, cfg.Phrases, "Spider-Man: Into the Spider-Verse")
	assert.Contains(t, cfg.Phrases, "Mr. Holland's Opus")
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte("topic: ' birds '\nphrases:\n  - ' Owl '\n  - ''\n  - Blue Jay\n"))
	require.NoError(t, err)
	assert.Equal(t, "birds", cfg.Topic)
	assert.Equal(t, []string{"Owl", "Blue Jay"}, cfg.Phrases)
}

func TestParseDropsLetterlessPhrases(t *testing.T) {
	cfg, err := Parse([]byte("phrases:\n  - '2001'\n  - '...'\n  - Up\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Up"}, cfg.Phrases)

	_, err = Parse([]byte("phrases:\n  - '1984'\n"))
	assert.ErrorIs(t, err, ErrNoPhrases)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("phrases: []\n"))
	assert.ErrorIs(t, err, ErrNoPhrases)

	_, err = Parse([]byte("phrases:\n  - '   '\n"))
	assert.ErrorIs(t, err, ErrNoPhrases)

	_, err = Parse([]byte("phrases: [unclosed\n"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoPhrases)
}

func TestWriteTemplateAndLoadDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteTemplate(filepath.Join(dir, PhrasesFile)))

	data, err := os.ReadFile(filepath.Join(dir, PhrasesFile))
	require.NoError(t, err)
	assert.Contains(t, string(data), "# Phrases for the hangman game.")

	got, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}

func TestWriteTemplateBadPath(t *testing.T) {
	err := WriteTemplate(filepath.Join(t.TempDir(), "missing", PhrasesFile))
	assert.ErrorContains(t, err, "writing phrases file")
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEnsureConfigDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	require.NoError(t, EnsureConfigDir(dir))
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
