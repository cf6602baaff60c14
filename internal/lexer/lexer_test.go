package lexer

import (
	"testing"

	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRange(src *source.Source) source.Range {
	return source.Range{Start: source.Start, End: source.Position(src.Len())}
}

func TestLexNumberToken(t *testing.T) {
	src := source.New("123 ")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Number, res.Token.Kind)
	assert.Equal(t, 3, res.Token.TokenWidth)
	// source.New appends the newline the input omits, so trailing trivia
	// absorbs both the explicit space and the synthesized line ending.
	assert.Equal(t, 2, res.Token.TrailingTriviaWidth)
	assert.True(t, res.Remaining.IsEmpty())
}

func TestLexIdentToken(t *testing.T) {
	src := source.New("foo_1")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Ident, res.Token.Kind)
	assert.Equal(t, 5, res.Token.TokenWidth)
}

func TestLexKeywordTakesPrecedenceOverIdent(t *testing.T) {
	src := source.New("let ")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Let, res.Token.Kind)
	assert.Equal(t, 3, res.Token.TokenWidth)
	assert.Equal(t, 2, res.Token.TrailingTriviaWidth)
}

func TestLexIdentLookingLikeKeywordPrefixIsStillIdent(t *testing.T) {
	src := source.New("letter")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Ident, res.Token.Kind)
	assert.Equal(t, 6, res.Token.TokenWidth)
}

func TestLexMarkTokens(t *testing.T) {
	cases := map[string]token.Kind{
		"+": token.Plus,
		"-": token.Minus,
		"*": token.Ast,
		"/": token.Slash,
		"=": token.Equal,
		"(": token.OpenParen,
		")": token.CloseParen,
		";": token.Semicolon,
	}
	for text, want := range cases {
		src := source.New(text)
		res := Lex(src, fullRange(src))
		require.Equal(t, want, res.Token.Kind, text)
		assert.Equal(t, 1, res.Token.TokenWidth, text)
	}
}

func TestLexTrailingTriviaCoversCommentsAndWhitespace(t *testing.T) {
	src := source.New("1 // trailing comment\n")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Number, res.Token.Kind)
	assert.Equal(t, 1, res.Token.TokenWidth)
	assert.True(t, res.Remaining.IsEmpty())
}

func TestLexUnknownCharacterRecoversAsErrorToken(t *testing.T) {
	src := source.New("@1")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Error, res.Token.Kind)
	assert.Equal(t, 1, res.Token.TokenWidth)
	assert.Equal(t, 2, res.Remaining.Width())
}

func TestLexUnknownCharacterRunConsumesUntilNextLexeme(t *testing.T) {
	src := source.New("@@@1")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Error, res.Token.Kind)
	assert.Equal(t, 3, res.Token.TokenWidth)
	assert.Equal(t, 2, res.Remaining.Width())
}

func TestLexEmptyRangeYieldsZeroWidthErrorToken(t *testing.T) {
	src := source.New("")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Error, res.Token.Kind)
	assert.Equal(t, 0, res.Token.TokenWidth)
	assert.True(t, res.Remaining.IsEmpty())
}

func TestLexUnknownCharacterRunToEndOfSourceYieldsFullWidthErrorToken(t *testing.T) {
	src := source.New("@@@")
	res := Lex(src, fullRange(src))

	assert.Equal(t, token.Error, res.Token.Kind)
	// source.New appends a trailing newline that no sub-lexer claims, so
	// the error run swallows it too.
	assert.Equal(t, 4, res.Token.TokenWidth)
	assert.True(t, res.Remaining.IsEmpty())
}
