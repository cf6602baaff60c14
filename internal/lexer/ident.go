package lexer

import (
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// lexIdent matches [A-Za-z_][A-Za-z0-9_]*, except the exact text "let",
// which the keyword sub-lexer claims instead.
func lexIdent(src *source.Source, r source.Range) (syntax.Token, source.Range, bool) {
	start := r.Start
	if r.IsEmpty() || !isIdentStart(src.At(r.Start)) {
		return syntax.Token{}, r, false
	}
	r.Start = r.Start.Advance(1)

	for !r.IsEmpty() && isIdentContinue(src.At(r.Start)) {
		r.Start = r.Start.Advance(1)
	}

	if start == r.Start {
		return syntax.Token{}, r, false
	}

	if src.Get(source.Range{Start: start, End: r.Start}) == "let" {
		return syntax.Token{}, r, false
	}

	tokenWidth := source.Distance(r.Start, start)
	trailing := triviaWidth(src, r)
	r.Start = r.Start.Advance(trailing)

	return syntax.Token{
		Kind:                token.Ident,
		TokenWidth:          tokenWidth,
		TrailingTriviaWidth: trailing,
	}, r, true
}

func isIdentStart(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch rune) bool {
	return isIdentStart(ch) || isDigit(ch)
}
