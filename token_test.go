package riff_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/fwojciec/riff"
	"github.com/stretchr/testify/assert"
)

func TestTokenizeEmpty(t *testing.T) {
	assert.Nil(t, riff.Tokenize(""))
}

func TestTokenizeWords(t *testing.T) {
	assert.Equal(t, []string{"word"}, riff.Tokenize("word"))
	assert.Equal(t, []string{"Adam", " ", "Bea"}, riff.Tokenize("Adam Bea"))
}

func TestTokenizeNumbers(t *testing.T) {
	assert.Equal(t, []string{"123"}, riff.Tokenize("123"))
	assert.Equal(t, []string{"123", " ", "456"}, riff.Tokenize("123 456"))
}

func TestTokenizeAlphanumericRun(t *testing.T) {
	assert.Equal(t, []string{"0xC0deCafe"}, riff.Tokenize("0xC0deCafe"))
}

func TestTokenizeOthers(t *testing.T) {
	assert.Equal(t, []string{"+", "!", ","}, riff.Tokenize("+!,"))
}

func TestTokenizeNonBreakingSpace(t *testing.T) {
	assert.Equal(t, []string{" "}, riff.Tokenize(" "))
	assert.Equal(t, []string{" ", "s"}, riff.Tokenize(" s"))
}

func TestTokenizeNewlineIsOwnToken(t *testing.T) {
	assert.Equal(t, []string{"a", "\n", "b"}, riff.Tokenize("a\nb"))
}

func TestTokenizeRoundTrip(t *testing.T) {
	for _, s := range []string{
		"", "hello world", "a+b=c;\n", "0xC0deCafe\t\n", "<quotes>\n[quotes]\n",
	} {
		assert.Equal(t, s, strings.Join(riff.Tokenize(s), ""))
	}
}

func TestTokenizeAdjacentTokensNeverBothAlphanumeric(t *testing.T) {
	tokens := riff.Tokenize("abc123 def!@# ghi")
	for i := 0; i+1 < len(tokens); i++ {
		a := isAlphanumericToken(tokens[i])
		b := isAlphanumericToken(tokens[i+1])
		assert.False(t, a && b, "adjacent tokens %q, %q both alphanumeric", tokens[i], tokens[i+1])
	}
}

func isAlphanumericToken(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}
