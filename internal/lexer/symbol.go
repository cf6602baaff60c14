package lexer

import (
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

var symbols = map[string]token.Kind{
	"+": token.Plus,
	"-": token.Minus,
	"*": token.Ast,
	"/": token.Slash,
	"=": token.Equal,
	"(": token.OpenParen,
	")": token.CloseParen,
	";": token.Semicolon,
}

// lexSymbol matches one of the single-character operator/punctuation marks.
func lexSymbol(src *source.Source, r source.Range) (syntax.Token, source.Range, bool) {
	for literal, kind := range symbols {
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
