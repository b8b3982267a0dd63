package hangman

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	s := NewSession("CAT")
	s.Apply('a')
	s.Apply('z')

	cases := []struct {
		input   string
		want    rune
		wantErr error
	}{
		{"c", 'c', nil},
		{"T", 't', nil},
		{"", 0, ErrExit},
		{"1", 0, ErrNotLetter},
		{"a1", 0, ErrNotLetter},
		{" ", 0, ErrNotLetter},
		{" c", 0, ErrNotLetter},
		{"é", 0, ErrNotLetter},
		{"ct", 0, ErrMultipleLetters},
		{"a", 0, ErrAlreadyGuessed},
		{"A", 0, ErrAlreadyGuessed},
		{"z", 0, ErrAlreadyGuessed},
	}
	for _, tc := range cases {
		got, err := s.Validate(tc.input)
		if tc.wantErr != nil {
			assert.ErrorIs(t, err, tc.wantErr, "input %q", tc.input)
			continue
		}
		require.NoError(t, err, "input %q", tc.input)
		assert.Equal(t, tc.want, got, "input %q", tc.input)
	}

	// Validate never mutates the guess sets.
	assert.Equal(t, []rune{'a'}, s.Correct())
	assert.Equal(t, []rune{'z'}, s.Incorrect())
}

func TestInvalidGuessMessages(t *testing.T) {
	s := NewSession("CAT")
	s.Apply('a')

	cases := map[string]string{
		"7":  "Input error: Please enter a letter only.",
		"ab": "Input error: Please enter only one letter.",
		"A":  "Input error: You have already guessed A, please choose a different letter.",
	}
	for input, msg := range cases {
		_, err := s.Validate(input)
		var ige *InvalidGuessError
		require.True(t, errors.As(err, &ige), "input %q", input)
		assert.Equal(t, input, ige.Input)
		assert.Equal(t, msg, err.Error())
	}
}

func TestExitIsNotInvalidGuess(t *testing.T) {
	s := NewSession("CAT")
	_, err := s.Guess("")
	var ige *InvalidGuessError
	assert.False(t, errors.As(err, &ige))
	assert.ErrorIs(t, err, ErrExit)
	assert.Empty(t, s.Correct())
	assert.Empty(t, s.Incorrect())
}

func TestDuplicateGuessRejected(t *testing.T) {
	s := NewSession("CAT")
	_, err := s.Guess("a")
	require.NoError(t, err)
	before := s.Revealed()

	_, err = s.Guess("a")
	assert.ErrorIs(t, err, ErrAlreadyGuessed)
	assert.Equal(t, []rune{'a'}, s.Correct())
	assert.Empty(t, s.Incorrect())
	assert.Equal(t, before, s.Revealed())
}

func TestGuessed(t *testing.T) {
	s := NewSession("CAT")
	s.Apply('c')
	s.Apply('q')
	assert.True(t, s.Guessed('C'))
	assert.True(t, s.Guessed('q'))
	assert.False(t, s.Guessed('t'))
}
