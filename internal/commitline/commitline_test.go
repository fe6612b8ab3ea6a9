package commitline_test

import (
	"testing"

	"github.com/fwojciec/riff/internal/commitline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPlainCommitLine(t *testing.T) {
	rendered, ok := commitline.Format("commit abc123def")
	require.True(t, ok)
	assert.Contains(t, rendered, "commit abc123def")
}

func TestFormatWithRefs(t *testing.T) {
	rendered, ok := commitline.Format("commit abc123 (HEAD -> main, origin/main, tag: v1.0.0)")
	require.True(t, ok)

	assert.Contains(t, rendered, "commit abc123")
	assert.Contains(t, rendered, "HEAD -> ")
	assert.Contains(t, rendered, "main")
	assert.Contains(t, rendered, "origin/main")
	assert.Contains(t, rendered, "tag: v1.0.0")
}

func TestFormatMalformedRefsFallsBackToPlain(t *testing.T) {
	rendered, ok := commitline.Format("commit abc123 (unterminated")
	require.True(t, ok)
	assert.Contains(t, rendered, "commit abc123 (unterminated")
}
