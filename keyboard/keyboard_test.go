package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQWERTYNeighbours(t *testing.T) {
	l := QWERTY()

	assert.Equal(t, []rune("qwsz"), l.Neighbours('a'))
	assert.Equal(t, []rune("ol"), l.Neighbours('p'))
	assert.Nil(t, l.Neighbours('1'))
	assert.Len(t, l.Alphabet(), 26)
}

func TestQWERTYCoversAlphabet(t *testing.T) {
	l := QWERTY()

	for _, r := range l.Alphabet() {
		n := l.Neighbours(r)
		assert.NotEmpty(t, n, string(r))
		assert.NotContains(t, n, r, string(r))
	}
	assert.Equal(t, []rune("rfgy"), l.Neighbours('t'))
}

func TestWithOverrides(t *testing.T) {
	base := QWERTY()
	l := base.WithOverrides(map[string]string{
		"a":  "s",
		"p":  "",
		"xy": "ignored",
		"ä":  "ao",
	})

	assert.Equal(t, []rune("s"), l.Neighbours('a'))
	assert.Nil(t, l.Neighbours('p'))
	assert.Equal(t, []rune("ao"), l.Neighbours('ä'))

	// base is untouched
	assert.Equal(t, []rune("qwsz"), base.Neighbours('a'))
	assert.Equal(t, []rune("ol"), base.Neighbours('p'))
}
