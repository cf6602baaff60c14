package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

var primaryBeginKinds = []token.Kind{token.Ident, token.Number, token.OpenParen}

// parseMultiveExpr parses multive_expr = multive_expr ("*"|"/") primary_expr
// | primary_expr, built iteratively (left-associative) rather than by
// recursing on the left operand.
func (p *Parser) parseMultiveExpr(src *source.Source, r source.Range) Result {
	var diagnostics []diag.Diagnostic
	var expr syntax.Node

	peek := lexer.Lex(src, r)
	if isOneOf(peek.Token.Kind, primaryBeginKinds) {
		lhs := p.parsePrimaryExpr(src, r)
		r = lhs.Remaining
		expr = lhs.Node
		diagnostics = lhs.Diagnostics
	} else {
		expr = &syntax.ErrorNode{Token: syntax.EmptyToken(token.Error)}
		diagnostics = []diag.Diagnostic{
			diag.MissedToken(r.Start, primaryBeginKinds),
		}
	}

	for {
		skipped, ds, rest := untilExprBeginOr(src, r, []token.Kind{
			token.Semicolon, token.CloseParen, token.Error, token.Ast, token.Slash, token.Plus, token.Minus,
		})
		r = rest
		diagnostics = append(diagnostics, ds...)

		binop, ok, opDiags, rest := p.parseMultiveOperator(src, r)
		if !ok {
			expr.ExtendTrailingTriviaWidth(skipped)
			return Result{Node: expr, Diagnostics: diagnostics, Remaining: r}
		}
		diagnostics = append(diagnostics, opDiags...)
		r = rest
		binop.LeadingTriviaWidth += skipped

		peek := lexer.Lex(src, r)
		var rhs syntax.Node
		if isOneOf(peek.Token.Kind, primaryBeginKinds) {
			rhsResult := p.parsePrimaryExpr(src, r)
			r = rhsResult.Remaining
			diagnostics = append(diagnostics, rhsResult.Diagnostics...)
			rhs = rhsResult.Node
		} else {
			diagnostics = append(diagnostics, diag.MissedToken(r.Start, primaryBeginKinds))
			rhs = &syntax.ErrorNode{Token: syntax.EmptyToken(token.Error)}
		}

		expr = &syntax.BinOpNode{LhsExpr: expr, BinOpToken: binop, RhsExpr: rhs}
	}
}

// parseMultiveOperator peeks the next operator. Reports ok == false when
// range is empty or the next token ends the production ("+", "-", ";", ")",
// or an Error token the caller's recovery loop will deal with); otherwise it
// always returns a token, synthesizing a zero-width "+" with a MissedToken
// diagnostic when the next token begins a new operand instead (the
// forgotten-operator case, e.g. "1 2").
func (p *Parser) parseMultiveOperator(src *source.Source, r source.Range) (syntax.Token, bool, []diag.Diagnostic, source.Range) {
	if r.IsEmpty() {
		return syntax.Token{}, false, nil, r
	}

	skipped, diagnostics, r := untilExprBeginOr(src, r, []token.Kind{
		token.Plus, token.Minus, token.Ast, token.Slash, token.Semicolon, token.CloseParen,
	})
	lexed := lexer.Lex(src, r)

	switch lexed.Token.Kind {
	case token.Ast, token.Slash:
		tok := lexed.Token
		r = lexed.Remaining
		tok.LeadingTriviaWidth += skipped

		trailingSkipped, ds, rest := untilNotError(src, r)
		diagnostics = append(diagnostics, ds...)
		tok.TrailingTriviaWidth += trailingSkipped
		return tok, true, diagnostics, rest
	case token.Plus, token.Minus, token.Semicolon, token.CloseParen, token.Error:
		return syntax.Token{}, false, diagnostics, r
	default:
		// Synthesizes a Plus placeholder here, not Ast: this mirrors the
		// operator-insertion recovery at the additive level even though
		// we're in the multiplicative one.
		diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.Plus, token.Minus, token.Ast, token.Slash}))
		return syntax.Token{Kind: token.Plus, LeadingTriviaWidth: skipped}, true, diagnostics, r
	}
}

func isOneOf(k token.Kind, kinds []token.Kind) bool {
	for _, kind := range kinds {
		if kind == k {
			return true
		}
	}
	return false
}
