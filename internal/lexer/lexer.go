// Package lexer classifies the next lexeme in a source range into a
// syntax.Token, trying the number, identifier, keyword, and symbol
// sub-lexers in that fixed order and falling back to single-character
// error recovery when none match.
package lexer

import (
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// Result is the outcome of one Lex call.
type Result struct {
	Token     syntax.Token
	Remaining source.Range
}

type subLexer func(*source.Source, source.Range) (syntax.Token, source.Range, bool)

// order is the fixed precedence the four sub-lexers are tried in.
var order = []subLexer{lexNumber, lexIdent, lexKeyword, lexSymbol}

// Lex classifies the lexeme at range.Start. range must be non-empty and
// positioned at a lexeme boundary (leading trivia already consumed by the
// caller). Lex never fails: unrecognized input becomes a Kind == Error
// token whose TokenWidth is the number of characters skipped before a
// sub-lexer matched again (or the whole remaining range, if none ever did).
// Lex itself does not emit diagnostics for Error tokens — classifying the
// Error token as worth reporting is the skip-recovery module's job
// (internal/parser), the only place an Error-kind token is ever actually
// observed in a position that calls for a diagnostic; see DESIGN.md.
func Lex(src *source.Source, r source.Range) Result {
	init := r.Start
	for !r.IsEmpty() {
		if tok, remaining, ok := tryAll(src, r); ok {
			skipped := source.Distance(r.Start, init)
			if skipped == 0 {
				return Result{Token: tok, Remaining: remaining}
			}
			return errorResult(src, init, skipped)
		}
		r.Start = r.Start.Advance(1)
	}
	return errorResult(src, init, source.Distance(r.Start, init))
}

func tryAll(src *source.Source, r source.Range) (syntax.Token, source.Range, bool) {
	for _, lex := range order {
		if tok, remaining, ok := lex(src, r); ok {
			return tok, remaining, true
		}
	}
	return syntax.Token{}, r, false
}

func errorResult(src *source.Source, init source.Position, width int) Result {
	r := source.Range{Start: init.Advance(width), End: source.Position(src.Len())}
	trailing := triviaWidth(src, r)
	r.Start = r.Start.Advance(trailing)

	return Result{
		Token: syntax.Token{
			Kind:                token.Error,
			TokenWidth:          width,
			TrailingTriviaWidth: trailing,
		},
		Remaining: r,
	}
}
