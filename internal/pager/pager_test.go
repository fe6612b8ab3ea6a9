package pager_test

import (
	"io"
	"testing"

	"github.com/fwojciec/riff/internal/pager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLaunchRefusesToRecurse(t *testing.T) {
	t.Setenv("RIFF_PAGER_RUNNING", "1")

	p, err := pager.Launch("")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestLaunchUsesPagerEnv(t *testing.T) {
	t.Setenv("PAGER", "cat")

	p, err := pager.Launch("")
	require.NoError(t, err)
	require.NotNil(t, p)

	_, err = io.WriteString(p.Stdin(), "hello from the pager test\n")
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestLaunchCustomEnvVarTakesPriorityAndFailsFatally(t *testing.T) {
	t.Setenv("RIFF_CUSTOM_PAGER", "this-command-does-not-exist-anywhere")
	t.Setenv("PAGER", "cat")

	_, err := pager.Launch("RIFF_CUSTOM_PAGER")
	assert.Error(t, err)
}
