package riff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConflictHandlerTwoWay(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	h, ok := tryStartConflict("<<<<<<< ours", nil)
	require.True(t, ok)

	lines := []string{"old line", "=======", "new line", ">>>>>>> theirs"}
	var emitted []*DeferredString
	for _, line := range lines {
		resp, err := h.ConsumeLine(line, pool)
		require.NoError(t, err)
		emitted = append(emitted, resp.Highlighted...)
		if resp.Acceptance == AcceptedDone {
			break
		}
	}

	require.Len(t, emitted, 4)
	assert.Equal(t, "<<<<<<< ours\n", emitted[0].Get())
	rendered := emitted[1].Get()
	assert.Contains(t, rendered, "old line")
	assert.Contains(t, rendered, "new line")
	assert.Equal(t, "=======\n", emitted[2].Get())
	assert.Equal(t, ">>>>>>> theirs\n", emitted[3].Get())
}

func TestConflictHandlerWithBase(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	h, ok := tryStartConflict("<<<<<<< ours", nil)
	require.True(t, ok)

	lines := []string{
		"old line",
		"||||||| base",
		"base line",
		"=======",
		"new line",
		">>>>>>> theirs",
	}

	var emitted []*DeferredString
	for _, line := range lines {
		resp, err := h.ConsumeLine(line, pool)
		require.NoError(t, err)
		emitted = append(emitted, resp.Highlighted...)
		if resp.Acceptance == AcceptedDone {
			break
		}
	}

	require.Len(t, emitted, 7)
	assert.Equal(t, "<<<<<<< ours\n", emitted[0].Get())
	assert.Equal(t, "||||||| base\n", emitted[2].Get())
	assert.Equal(t, "=======\n", emitted[5].Get())
	assert.Equal(t, ">>>>>>> theirs\n", emitted[6].Get())
	for _, ds := range emitted {
		assert.NotEmpty(t, ds.Get())
	}
}

func TestConflictHandlerRejectsNonConflictLine(t *testing.T) {
	_, ok := tryStartConflict("ordinary line", nil)
	assert.False(t, ok)
}

func TestConflictHandlerUnclosedIsMalformed(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()

	h, ok := tryStartConflict("<<<<<<< ours", nil)
	require.True(t, ok)

	_, err := h.ConsumeLine("old line", pool)
	require.NoError(t, err)

	_, err = h.ConsumeEOF(pool)
	require.Error(t, err)
}
