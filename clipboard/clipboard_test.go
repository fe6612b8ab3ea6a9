package clipboard_test

import (
	"testing"

	atotto "github.com/atotto/clipboard"
	"github.com/fwojciec/riff/clipboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClipboard_Copy(t *testing.T) {
	if atotto.Unsupported {
		t.Skip("no clipboard utility available on this system")
	}

	cb := clipboard.New()
	const content = "test clipboard content from riff"

	require.NoError(t, cb.Copy(content))

	got, err := atotto.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, content, got)
}
