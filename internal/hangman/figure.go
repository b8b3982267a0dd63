package hangman

import "fmt"

// bodyParts lists the figure segments in drawing order. Its length is the
// lives budget of every session.
var bodyParts = [...]BodyPart{
	{Slot: 0, Glyph: "O", Name: "head"},
	{Slot: 1, Glyph: "/", Name: "left arm"},
	{Slot: 2, Glyph: "|", Name: "spine"},
	{Slot: 3, Glyph: `\`, Name: "right arm"},
	{Slot: 4, Glyph: "|", Name: "torso"},
	{Slot: 5, Glyph: "/", Name: "left leg"},
	{Slot: 6, Glyph: `\`, Name: "right leg"},
}

// Lives is the number of incorrect guesses tolerated before a loss.
const Lives = len(bodyParts)

// blankGlyph fills slots whose part has not been drawn.
const blankGlyph = " "

const figureTemplate = `         + - - - - +
         |         |
         %s         |
        %s%s%s        |
         %s         |
        %s %s        |
                   |
     ______________|__
     ` + "``````````````````"

// Figure draws the gallows with the first wrong parts filled in. Values
// outside [0, Lives] are clamped.
func Figure(wrong int) string {
	if wrong < 0 {
		wrong = 0
	}
	if wrong > Lives {
		wrong = Lives
	}

	slots := make([]any, Lives)
	for i := range slots {
		slots[i] = blankGlyph
	}
	for _, part := range bodyParts[:wrong] {
		slots[part.Slot] = part.Glyph
	}

	return fmt.Sprintf(figureTemplate, slots...)
}
