// Package worddiff computes a token-level shortest-edit-script between two
// already-tokenized sequences, the way riff's Refiner needs it.
//
// go-diff's diffmatchpatch is a character-level Myers diff engine. The
// classic trick for turning it into a token-level diff (the same idea the
// teacher's own worddiff package used sergi/go-diff for) is to assign every
// distinct token a private-use-area rune, diff the two resulting rune
// strings, and decode the result back into tokens: since each rune stands
// for exactly one token, a Myers diff over the rune strings is a Myers diff
// over the token sequences.
package worddiff

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// EditKind is the kind of a single token edit.
type EditKind int

const (
	// EditCopy means the token is present, unchanged, in both sequences.
	EditCopy EditKind = iota
	// EditInsert means the token is present only in the new sequence.
	EditInsert
	// EditRemove means the token is present only in the old sequence.
	EditRemove
)

// Edit is one token-level edit operation.
type Edit struct {
	Kind  EditKind
	Token string
}

// tokenEncoder assigns each distinct token string a unique rune from the
// supplementary private-use area (plane 15, 0xF0000-0xFFFFD — 65,534 code
// points), so that a character-level diff over the encoded rune strings is
// equivalent to a token-level diff over the original token sequences.
type tokenEncoder struct {
	toRune map[string]rune
	toTok  map[rune]string
	next   rune
}

func newTokenEncoder() *tokenEncoder {
	return &tokenEncoder{
		toRune: make(map[string]rune),
		toTok:  make(map[rune]string),
		next:   0xF0000,
	}
}

func (e *tokenEncoder) encode(tokens []string) []rune {
	out := make([]rune, len(tokens))
	for i, tok := range tokens {
		r, ok := e.toRune[tok]
		if !ok {
			r = e.next
			e.next++
			e.toRune[tok] = r
			e.toTok[r] = tok
		}
		out[i] = r
	}
	return out
}

// Diff returns the shortest edit script that turns oldTokens into
// newTokens, as a flat sequence of Copy/Insert/Remove operations in
// document order (inserts and removes around a given position are ordered
// the way diffmatchpatch emits them: removes before inserts at the same
// position).
func Diff(oldTokens, newTokens []string) []Edit {
	enc := newTokenEncoder()
	oldRunes := enc.encode(oldTokens)
	newRunes := enc.encode(newTokens)

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(oldRunes), string(newRunes), false)

	var edits []Edit
	for _, d := range diffs {
		var kind EditKind
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			kind = EditInsert
		case diffmatchpatch.DiffDelete:
			kind = EditRemove
		default:
			kind = EditCopy
		}
		for _, r := range d.Text {
			edits = append(edits, Edit{Kind: kind, Token: enc.toTok[r]})
		}
	}
	return edits
}
