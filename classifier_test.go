package riff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandlerTryStartsOrder(t *testing.T) {
	a := assert.New(t)
	a.Len(handlerTryStarts, 4)

	cases := []struct {
		line string
		want int // index into handlerTryStarts expected to claim it
	}{
		{"--- a/foo.txt", 0},
		{"rename from old.txt", 1},
		{"<<<<<<< ours", 2},
		{"-old", 3},
	}

	for _, tc := range cases {
		claimed := -1
		for i, try := range handlerTryStarts {
			if _, ok := try(tc.line, nil); ok {
				claimed = i
				break
			}
		}
		a.Equal(tc.want, claimed, "line %q", tc.line)
	}
}

func TestDispatchContextDefaultsToSinglePrefixColumn(t *testing.T) {
	var ctx dispatchContext
	h, ok := tryStartPlusMinus("-removed", &ctx)
	assert.True(t, ok)
	assert.NotNil(t, h)
}
