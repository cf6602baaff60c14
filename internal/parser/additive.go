package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// parseAdditiveExpr parses additive_expr = additive_expr ("+"|"-") multive_expr
// | multive_expr, iteratively so left-associativity falls out of the loop
// rather than recursion.
func (p *Parser) parseAdditiveExpr(src *source.Source, r source.Range) Result {
	lhs := p.parseMultiveExpr(src, r)
	r = lhs.Remaining
	diagnostics := lhs.Diagnostics
	expr := lhs.Node

	for {
		skipped, ds, rest := untilExprBeginOr(src, r, []token.Kind{
			token.Semicolon, token.CloseParen, token.Error, token.Plus, token.Minus,
		})
		r = rest
		diagnostics = append(diagnostics, ds...)

		binop, ok, opDiags, rest := p.parseAdditiveOperator(src, r)
		if !ok {
			return Result{Node: expr, Diagnostics: diagnostics, Remaining: r}
		}
		diagnostics = append(diagnostics, opDiags...)
		r = rest
		binop.LeadingTriviaWidth += skipped

		rhs := p.parseMultiveExpr(src, r)
		diagnostics = append(diagnostics, rhs.Diagnostics...)
		r = rhs.Remaining

		expr = &syntax.BinOpNode{LhsExpr: expr, BinOpToken: binop, RhsExpr: rhs.Node}
	}
}

// parseAdditiveOperator mirrors parseMultiveOperator one precedence level
// up: same shape, accept set {Plus, Minus}, give-up set {Semicolon,
// CloseParen} (Error is not in the give-up set here — an Error token simply
// falls into the insertion-recovery branch below, same as any other
// unexpected kind), synthesized placeholder kind Plus.
func (p *Parser) parseAdditiveOperator(src *source.Source, r source.Range) (syntax.Token, bool, []diag.Diagnostic, source.Range) {
	if r.IsEmpty() {
		return syntax.Token{}, false, nil, r
	}

	skipped, diagnostics, r := untilExprBeginOr(src, r, []token.Kind{
		token.Plus, token.Minus, token.Semicolon, token.CloseParen,
	})
	lexed := lexer.Lex(src, r)

	switch lexed.Token.Kind {
	case token.Plus, token.Minus:
		tok := lexed.Token
		r = lexed.Remaining
		tok.LeadingTriviaWidth += skipped

		trailingSkipped, ds, rest := untilNotError(src, r)
		diagnostics = append(diagnostics, ds...)
		tok.TrailingTriviaWidth += trailingSkipped
		return tok, true, diagnostics, rest
	case token.Semicolon, token.CloseParen:
		return syntax.Token{}, false, diagnostics, r
	default:
		diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.Plus, token.Minus, token.Ast, token.Slash}))
		return syntax.Token{Kind: token.Plus, LeadingTriviaWidth: skipped}, true, diagnostics, r
	}
}
