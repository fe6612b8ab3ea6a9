package riff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLargeByteCountChange(t *testing.T) {
	assert.False(t, isLargeByteCountChange("", ""))
	assert.False(t, isLargeByteCountChange("", strings.Repeat("x", smallCountChange)))
	assert.True(t, isLargeByteCountChange("", strings.Repeat("x", smallCountChange+1)))

	baseLen := smallCountChange * 2
	doubleLen := baseLen * 2
	almostDoubleLen := doubleLen - 1
	assert.False(t, isLargeByteCountChange(strings.Repeat("x", baseLen), strings.Repeat("y", almostDoubleLen)))
	assert.True(t, isLargeByteCountChange(strings.Repeat("x", baseLen), strings.Repeat("y", doubleLen)))
}

func TestIsLargeNewlineCountChange(t *testing.T) {
	assert.False(t, isLargeNewlineCountChange("a\n", "a\nb\n"))
	assert.True(t, isLargeNewlineCountChange("a\n", strings.Repeat("a\n", 30)))
}
