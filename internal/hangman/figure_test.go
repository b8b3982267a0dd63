package hangman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func figureLines(wrong int) []string {
	return strings.Split(Figure(wrong), "\n")
}

func TestLivesMatchesBodyParts(t *testing.T) {
	assert.Equal(t, 7, Lives)
	assert.Equal(t, Lives, NewSession("CAT").Lives())
	for i, part := range bodyParts {
		assert.Equal(t, i, part.Slot, part.Name)
	}
}

func TestFigureEmpty(t *testing.T) {
	lines := figureLines(0)
	require.Len(t, lines, 9)
	assert.Equal(t, "         + - - - - +", lines[0])
	assert.Equal(t, "                   |", lines[2])
	assert.Equal(t, "                   |", lines[3])
	assert.NotContains(t, Figure(0), "O")
}

func TestFigureComplete(t *testing.T) {
	lines := figureLines(7)
	assert.Equal(t, "         O         |", lines[2])
	assert.Equal(t, `        /|\        |`, lines[3])
	assert.Equal(t, "         |         |", lines[4])
	assert.Equal(t, `        / \        |`, lines[5])
}

func TestFigureProgression(t *testing.T) {
	assert.Equal(t, `        /          |`, figureLines(2)[3])
	assert.Equal(t, `        /|         |`, figureLines(3)[3])
	assert.Equal(t, `        /          |`, figureLines(6)[5])

	// every stage keeps the template width
	for n := 0; n <= Lives; n++ {
		for i, line := range figureLines(n) {
			assert.Equal(t, len(figureLines(0)[i]), len(line), "stage %d line %d", n, i)
		}
	}
}

func TestFigureClamps(t *testing.T) {
	assert.Equal(t, Figure(0), Figure(-3))
	assert.Equal(t, Figure(Lives), Figure(Lives+4))
}

func TestRender(t *testing.T) {
	s := NewSession("Cobra Kai")
	s.Apply('a')
	s.Apply('x')
	s.Apply('k')

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, s, "family movies"))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "#######################\n####### Hangman #######"))
	assert.Contains(t, out, "Topic: Family Movies\n")
	assert.Contains(t, out, "\n_ _ _ _ a   K a _\n")
	assert.Contains(t, out, "right letters:  a, k\n")
	assert.Contains(t, out, "wrong letters:  x\n")
	assert.Contains(t, out, "         O         |")
}

func TestRenderWithoutTopic(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, NewSession("Onward"), ""))
	assert.NotContains(t, buf.String(), "Topic:")
	assert.Contains(t, buf.String(), "right letters:  \n")
}

func TestBanners(t *testing.T) {
	assert.Contains(t, WinBanner(), "###### You win! #######")

	lose := strings.Split(LoseBanner("Onward"), "\n")
	require.Len(t, lose, 3)
	assert.Equal(t, "You lose, the answer was: Onward", lose[1])
	assert.Equal(t, strings.Repeat("#", len(lose[1])), lose[0])
	assert.Equal(t, lose[0], lose[2])
}
