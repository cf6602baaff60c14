package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/token"
)

// exprBeginKinds are the token kinds that can start an expr production:
// IDENT, NUMBER, "let", "(".
var exprBeginKinds = []token.Kind{token.Ident, token.Number, token.Let, token.OpenParen}

// until advances range one lexeme at a time until a token whose kind is in
// expected appears, or the range empties. Each skipped token contributes a
// diagnostic: an Error-kind token yields UnknownToken, anything else yields
// ExtraToken. Returns how many characters were skipped, the diagnostics
// raised along the way, and the range positioned at the matching token (or
// at the end of input).
func until(src *source.Source, r source.Range, expected []token.Kind) (int, []diag.Diagnostic, source.Range) {
	var diagnostics []diag.Diagnostic
	skippedWidth := 0

	for !r.IsEmpty() {
		res := lexer.Lex(src, r)

		if containsKind(expected, res.Token.Kind) {
			return skippedWidth, diagnostics, r
		}

		skippedWidth += res.Token.FullWidth()
		tokenRange := source.Range{Start: r.Start, End: r.Start.Advance(res.Token.TokenWidth)}
		r = res.Remaining

		if res.Token.Kind == token.Error {
			diagnostics = append(diagnostics, diag.UnknownToken(tokenRange))
		} else {
			diagnostics = append(diagnostics, diag.ExtraToken(tokenRange, res.Token.Kind))
		}
	}
	return skippedWidth, diagnostics, r
}

// untilExprBegin skips until a token that could start an expr production.
func untilExprBegin(src *source.Source, r source.Range) (int, []diag.Diagnostic, source.Range) {
	return until(src, r, exprBeginKinds)
}

// untilExprBeginOr skips until a token in expected, or one that could start
// an expr production, whichever comes first.
func untilExprBeginOr(src *source.Source, r source.Range, expected []token.Kind) (int, []diag.Diagnostic, source.Range) {
	set := append(append([]token.Kind{}, expected...), exprBeginKinds...)
	return until(src, r, set)
}

// untilNotError skips only Error-kind tokens (used to absorb stray garbage
// that sits in what would otherwise be trivia, e.g. right after "(").
func untilNotError(src *source.Source, r source.Range) (int, []diag.Diagnostic, source.Range) {
	var expected []token.Kind
	for _, k := range token.All {
		if k != token.Error {
			expected = append(expected, k)
		}
	}
	return until(src, r, expected)
}

func containsKind(kinds []token.Kind, k token.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
