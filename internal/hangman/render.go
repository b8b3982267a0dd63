package hangman

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const header = `#######################
####### Hangman #######
#######################`

const winBanner = `#######################
###### You win! #######
#######################`

var titleCaser = cases.Title(language.English)

// Render writes the game screen for s: header, topic, figure, the revealed
// phrase and both guess lists. It does not clear the terminal.
func Render(w io.Writer, s *Session, topic string) error {
	var b strings.Builder

	b.WriteString(header)
	b.WriteString("\n\n")
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n\n", titleCaser.String(topic))
	}

	b.WriteString(Figure(len(s.incorrect)))
	b.WriteString("\n")

	fmt.Fprintf(&b, "\n%s\n\n", s.RevealedString())
	fmt.Fprintf(&b, "right letters:  %s\n", JoinLetters(s.correct))
	fmt.Fprintf(&b, "wrong letters:  %s\n", JoinLetters(s.incorrect))

	_, err := io.WriteString(w, b.String())
	return err
}

// JoinLetters joins guesses with ", ".
func JoinLetters(letters []rune) string {
	return strings.Join(lo.Map(letters, func(r rune, _ int) string {
		return string(r)
	}), ", ")
}

// WinBanner is printed when the phrase is fully revealed.
func WinBanner() string {
	return winBanner
}

// LoseBanner frames the losing message with a rule as wide as the message.
func LoseBanner(phrase string) string {
	msg := fmt.Sprintf("You lose, the answer was: %s", phrase)
	rule := strings.Repeat("#", runewidth.StringWidth(msg))
	return rule + "\n" + msg + "\n" + rule
}
