package riff_test

import (
	"testing"

	"github.com/fwojciec/riff"
	"github.com/stretchr/testify/assert"
)

func TestRenderBasic(t *testing.T) {
	rendered := riff.Render(riff.LineStyleNew, "+", []riff.StyledToken{
		{Text: "hej", Style: riff.StyleDiffPartMidlighted},
		{Text: "\n", Style: riff.StyleDiffPartMidlighted},
	})
	assert.Equal(t, "\x1b[32m+hej\x1b[0m\n", rendered)
}

func TestRenderRemovedTrailingWhitespaceNotHighlighted(t *testing.T) {
	actual := riff.Render(riff.LineStyleOld, "-", []riff.StyledToken{
		riff.NewStyledToken(" ", riff.StyleDiffPartMidlighted),
	})
	assert.Equal(t, "\x1b[31m- \x1b[0m", actual)
}

func TestRenderTrailingPartialLineNoNewline(t *testing.T) {
	actual := riff.Render(riff.LineStyleOld, "-", []riff.StyledToken{
		{Text: "abc", Style: riff.StyleDiffPartMidlighted},
	})
	assert.Equal(t, "\x1b[31m-abc\x1b[0m", actual)
}

func TestRenderMultiPrefixForcesFaintOnMinusLines(t *testing.T) {
	tokens := []riff.StyledToken{
		{Text: "x", Style: riff.StyleDiffPartUnchanged},
		{Text: "\n", Style: riff.StyleDiffPartUnchanged},
		{Text: "y", Style: riff.StyleDiffPartUnchanged},
		{Text: "\n", Style: riff.StyleDiffPartUnchanged},
	}
	out := riff.RenderMultiPrefix(riff.LineStyleOld, []string{"+-", "  "}, tokens)
	lines := splitLines(out)
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "\x1b[2m")
}

func splitLines(s string) []string {
	var out []string
	cur := ""
	for _, r := range s {
		if r == '\n' {
			out = append(out, cur)
			cur = ""
			continue
		}
		cur += string(r)
	}
	if cur != "" {
		out = append(out, cur)
	}
	return out
}

func TestAlignTabs(t *testing.T) {
	old := riff.Tokenize("x.txt\t2023-12-15 15:43:29")
	new := riff.Tokenize("/Users/johan/src/riff/README.md\t2024-01-29 14:56:40")

	oldStyled := toStyled(old)
	newStyled := toStyled(new)

	riff.AlignTabs(oldStyled, newStyled)

	oldRendered := riff.Render(riff.LineStyleOldFilename, "--- ", oldStyled)
	newRendered := riff.Render(riff.LineStyleNewFilename, "+++ ", newStyled)

	assert.Equal(t, "--- x.txt                            2023-12-15 15:43:29", riff.StripANSI(oldRendered))
	assert.Equal(t, "+++ /Users/johan/src/riff/README.md  2024-01-29 14:56:40", riff.StripANSI(newRendered))
}

func TestBrightenFilename(t *testing.T) {
	tokens := toStyled(riff.Tokenize("a/x/y/z.txt"))
	riff.BrightenFilename(tokens)
	assert.Equal(t, riff.StyleBright, tokens[len(tokens)-1].Style)
	assert.Equal(t, riff.StyleContext, tokens[0].Style)
}

func TestBrightenFilenameSkipsHighlighted(t *testing.T) {
	tokens := toStyled(riff.Tokenize("z.txt"))
	tokens[len(tokens)-1].Style = riff.StyleDiffPartHighlighted
	riff.BrightenFilename(tokens)
	assert.Equal(t, riff.StyleDiffPartHighlighted, tokens[len(tokens)-1].Style)
}

func TestLowlightDevNull(t *testing.T) {
	tokens := toStyled(riff.Tokenize("/dev/null"))
	riff.LowlightDevNull(tokens)
	for _, tok := range tokens {
		assert.Equal(t, riff.StyleLowlighted, tok.Style)
	}
}

func TestLowlightGitPrefix(t *testing.T) {
	tokens := toStyled(riff.Tokenize("a/x.txt"))
	riff.LowlightGitPrefix(tokens)
	assert.Equal(t, riff.StyleLowlighted, tokens[0].Style)
	assert.Equal(t, riff.StyleLowlighted, tokens[1].Style)
	assert.Equal(t, riff.StyleContext, tokens[2].Style)
}

func toStyled(tokens []string) []riff.StyledToken {
	out := make([]riff.StyledToken, len(tokens))
	for i, tok := range tokens {
		out[i] = riff.NewStyledToken(tok, riff.StyleContext)
	}
	return out
}
