package lexer

import (
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// lexNumber matches one or more ASCII digits.
func lexNumber(src *source.Source, r source.Range) (syntax.Token, source.Range, bool) {
	start := r.Start
	for !r.IsEmpty() && isDigit(src.At(r.Start)) {
		r.Start = r.Start.Advance(1)
	}
	if r.Start == start {
		return syntax.Token{}, r, false
	}

	tokenWidth := source.Distance(r.Start, start)
	trailing := triviaWidth(src, r)
	r.Start = r.Start.Advance(trailing)

	return syntax.Token{
		Kind:                token.Number,
		TokenWidth:          tokenWidth,
		TrailingTriviaWidth: trailing,
	}, r, true
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}
