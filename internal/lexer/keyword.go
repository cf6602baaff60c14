package lexer

import (
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

var keywords = map[string]token.Kind{
	"let": token.Let,
}

// lexKeyword matches an exact reserved word.
func lexKeyword(src *source.Source, r source.Range) (syntax.Token, source.Range, bool) {
	for literal, kind := range keywords {
		if !source.StartsWith(src, literal, r) {
			continue
		}
		r.Start = r.Start.Advance(len(literal))

		trailing := triviaWidth(src, r)
		r.Start = r.Start.Advance(trailing)

		return syntax.Token{
			Kind:                kind,
			TokenWidth:          len(literal),
			TrailingTriviaWidth: trailing,
		}, r, true
	}
	return syntax.Token{}, r, false
}
