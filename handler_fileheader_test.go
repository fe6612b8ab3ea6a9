package riff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileHeaderHandlerPair(t *testing.T) {
	h, ok := tryStartFileHeader("--- a/foo.txt", nil)
	require.True(t, ok)

	resp, err := h.ConsumeLine("+++ b/foo.txt", nil)
	require.NoError(t, err)
	require.Equal(t, AcceptedDone, resp.Acceptance)
	require.Len(t, resp.Highlighted, 1)

	rendered := resp.Highlighted[0].Get()
	assert.Contains(t, rendered, "foo.txt")
}

func TestFileHeaderHandlerRejectsNonDashDash(t *testing.T) {
	_, ok := tryStartFileHeader("ordinary line", nil)
	assert.False(t, ok)
}

func TestFileHeaderHandlerMalformedWithoutPlusPlus(t *testing.T) {
	h, ok := tryStartFileHeader("--- a/foo.txt", nil)
	require.True(t, ok)

	_, err := h.ConsumeLine("not a plus plus line", nil)
	assert.Error(t, err)
}

func TestFileHeaderHandlerNewFile(t *testing.T) {
	h, ok := tryStartFileHeader("--- /dev/null", nil)
	require.True(t, ok)

	resp, err := h.ConsumeLine("+++ b/newfile.txt", nil)
	require.NoError(t, err)
	rendered := resp.Highlighted[0].Get()
	assert.Contains(t, rendered, "NEW")
	assert.Contains(t, rendered, "newfile.txt")
}

func TestFileHeaderHandlerEOFWithoutPair(t *testing.T) {
	h, ok := tryStartFileHeader("--- a/foo.txt", nil)
	require.True(t, ok)

	_, err := h.ConsumeEOF(nil)
	assert.Error(t, err)
}

func TestRenameHandlerPair(t *testing.T) {
	h, ok := tryStartRename("rename from old.txt", nil)
	require.True(t, ok)

	resp, err := h.ConsumeLine("rename to new.txt", nil)
	require.NoError(t, err)
	require.Equal(t, AcceptedDone, resp.Acceptance)

	rendered := resp.Highlighted[0].Get()
	assert.Contains(t, rendered, "old.txt")
	assert.Contains(t, rendered, "new.txt")
}

func TestRenameHandlerRejectsNonRenameFrom(t *testing.T) {
	_, ok := tryStartRename("ordinary line", nil)
	assert.False(t, ok)
}

func TestRenameHandlerMalformedWithoutRenameTo(t *testing.T) {
	h, ok := tryStartRename("rename from old.txt", nil)
	require.True(t, ok)

	_, err := h.ConsumeLine("not a rename to line", nil)
	assert.Error(t, err)
}
