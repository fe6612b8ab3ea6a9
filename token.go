// Package riff implements a streaming unified-diff colorizer: it reads a
// diff on stdin and writes an ANSI-colored, intra-line-refined rendering to
// stdout, for use as a pager target behind `git show`, `git diff`, and
// friends.
package riff

import "regexp"

// tokenPattern splits a string into maximal runs of Unicode letters/digits,
// and every other rune as its own token. Unlike the ad hoc scanner this
// mirrors conceptually, the pattern is expressed as a single regexp, the way
// difflib's tokenizer builds its token class from alternatives.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+|\n|.`)

// Tokenize splits input into tokens: a token is either one maximal run of
// Unicode alphanumerics, or a single non-alphanumeric Unicode scalar
// (including "\n", which is always its own token since line boundaries
// matter to the renderer). Concatenating the result reproduces input
// byte-exactly. Empty input yields a nil slice.
func Tokenize(input string) []string {
	if input == "" {
		return nil
	}
	return tokenPattern.FindAllString(input, -1)
}
