package format

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denvl-lang/denvl/internal/config"
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/parser"
	"github.com/denvl-lang/denvl/internal/source"
)

func TestRenderPlainTextLayout(t *testing.T) {
	src := source.New("1 @ 2")
	_, diagnostics := parser.Parse(src)
	require.Len(t, diagnostics, 2)

	var buf strings.Builder
	f := NewFormatter(src, "input.denvl", &buf, WithColor(false))
	f.Render(&buf, diagnostics[0])

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "error at input.denvl(1:"))
	assert.Contains(t, lines[0], "unknown token")
	assert.True(t, strings.HasPrefix(lines[1], "> "))
	assert.True(t, strings.HasSuffix(lines[2], "^"))
}

func TestRenderAllSortsByPosition(t *testing.T) {
	src := source.New("1 @ = + 2")
	_, diagnostics := parser.Parse(src)
	require.Len(t, diagnostics, 2)

	var buf strings.Builder
	f := NewFormatter(src, "input.denvl", &buf, WithColor(false))
	f.RenderAll(&buf, diagnostics)

	out := buf.String()
	firstIdx := strings.Index(out, diagnostics[0].Message())
	secondIdx := strings.Index(out, diagnostics[1].Message())
	require.NotEqual(t, -1, firstIdx)
	require.NotEqual(t, -1, secondIdx)
	assert.Less(t, firstIdx, secondIdx)
}

func TestRenderColorWrapsHeaderInEscapes(t *testing.T) {
	d := diag.UnknownToken(source.Range{Start: 0, End: 1})
	src := source.New("@")

	var buf strings.Builder
	f := NewFormatter(src, "input.denvl", &buf, WithColor(true))
	f.Render(&buf, d)

	assert.Contains(t, buf.String(), "\x1b[")
}

func TestWithConfigTabWidthWidensCaretColumn(t *testing.T) {
	// "a\tb": position 2 ('b') is preceded by one literal rune ('a') and one
	// tab, so the column at pos 2 depends entirely on the tab's width.
	src := source.New("a\tb")
	d := diag.UnknownToken(source.Range{Start: 2, End: 3})

	var narrow strings.Builder
	NewFormatter(src, "f", &narrow, WithColor(false)).Render(&narrow, d)

	var wide strings.Builder
	NewFormatter(src, "f", &wide, WithColor(false), WithConfig(config.Config{TabWidth: 4})).Render(&wide, d)

	caretLine := func(out string) string {
		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		return lines[len(lines)-1]
	}

	assert.Greater(t, len(caretLine(wide.String())), len(caretLine(narrow.String())))
}

func TestWithConfigContextLinesPrecedeCaretLine(t *testing.T) {
	src := source.New("first\nsecond\nthird @ line")
	_, diagnostics := parser.Parse(src)
	require.NotEmpty(t, diagnostics)

	var buf strings.Builder
	f := NewFormatter(src, "f", &buf, WithColor(false), WithConfig(config.Config{ContextLines: 2}))
	// The first diagnostics sit on line 2 (the missing operator before
	// "second"); the last one is on line 3, below both context lines.
	f.Render(&buf, diagnostics[len(diagnostics)-1])

	out := buf.String()
	assert.Contains(t, out, "> first")
	assert.Contains(t, out, "> second")
}
