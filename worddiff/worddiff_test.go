package worddiff_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/riff/worddiff"
	"github.com/stretchr/testify/assert"
)

func apply(edits []worddiff.Edit, kinds ...worddiff.EditKind) string {
	allowed := make(map[worddiff.EditKind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}
	var b strings.Builder
	for _, e := range edits {
		if allowed[e.Kind] {
			b.WriteString(e.Token)
		}
	}
	return b.String()
}

func TestDiffIdentical(t *testing.T) {
	edits := worddiff.Diff([]string{"a", "b", "c"}, []string{"a", "b", "c"})
	for _, e := range edits {
		assert.Equal(t, worddiff.EditCopy, e.Kind)
	}
}

func TestDiffReconstructsBothSides(t *testing.T) {
	oldTokens := []string{"hello", " ", "world"}
	newTokens := []string{"hello", " ", "universe"}
	edits := worddiff.Diff(oldTokens, newTokens)

	oldSide := apply(edits, worddiff.EditCopy, worddiff.EditRemove)
	newSide := apply(edits, worddiff.EditCopy, worddiff.EditInsert)

	assert.Equal(t, strings.Join(oldTokens, ""), oldSide)
	assert.Equal(t, strings.Join(newTokens, ""), newSide)
}

func TestDiffCompletelyDifferent(t *testing.T) {
	edits := worddiff.Diff([]string{"abc"}, []string{"xyz"})
	assert.Equal(t, "abc", apply(edits, worddiff.EditRemove))
	assert.Equal(t, "xyz", apply(edits, worddiff.EditInsert))
}

func TestDiffEmptySides(t *testing.T) {
	edits := worddiff.Diff(nil, []string{"a", "b"})
	assert.Equal(t, "", apply(edits, worddiff.EditCopy, worddiff.EditRemove))
	assert.Equal(t, "ab", apply(edits, worddiff.EditInsert))

	edits = worddiff.Diff([]string{"a", "b"}, nil)
	assert.Equal(t, "ab", apply(edits, worddiff.EditRemove))
	assert.Equal(t, "", apply(edits, worddiff.EditCopy, worddiff.EditInsert))

	assert.Empty(t, worddiff.Diff(nil, nil))
}

func TestDiffInsertionInMiddle(t *testing.T) {
	oldTokens := []string{"function", " ", "calculate", "(", "x", ",", " ", "y", ")", " ", "{"}
	newTokens := []string{"function", " ", "calculate", "(", "x", ",", " ", "y", ",", " ", "z", ")", " ", "{"}
	edits := worddiff.Diff(oldTokens, newTokens)

	assert.Equal(t, strings.Join(oldTokens, ""), apply(edits, worddiff.EditCopy, worddiff.EditRemove))
	assert.Equal(t, strings.Join(newTokens, ""), apply(edits, worddiff.EditCopy, worddiff.EditInsert))
	assert.Empty(t, apply(edits, worddiff.EditRemove), "pure insertion should not remove any old tokens")
}
