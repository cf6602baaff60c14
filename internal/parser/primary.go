package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// parsePrimaryExpr parses IDENT | NUMBER | "(" expr ")". Callers must only
// invoke it when the next token's kind is already known to be one of
// Ident, Number, or OpenParen.
func (p *Parser) parsePrimaryExpr(src *source.Source, r source.Range) Result {
	lexed := lexer.Lex(src, r)
	r = lexed.Remaining

	var diagnostics []diag.Diagnostic
	var node syntax.Node

	switch lexed.Token.Kind {
	case token.Number:
		node = &syntax.IntNode{Token: lexed.Token}
	case token.Ident:
		node = &syntax.VarNode{Token: lexed.Token}
	case token.OpenParen:
		openParen := lexed.Token

		skipped, ds, rest := untilNotError(src, r)
		diagnostics = append(diagnostics, ds...)
		r = rest
		openParen.TrailingTriviaWidth += skipped

		inner := p.parseExpr(src, r)
		r = inner.Remaining
		diagnostics = append(diagnostics, inner.Diagnostics...)

		closeLexed := lexer.Lex(src, r)
		var closeParen syntax.Token
		if closeLexed.Token.Kind == token.CloseParen {
			closeParen = closeLexed.Token
			r = closeLexed.Remaining
		} else {
			diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.CloseParen}))
			closeParen = syntax.EmptyToken(token.CloseParen)
		}

		node = &syntax.ParenNode{
			OpenParenToken:  openParen,
			InnerExpr:       inner.Node,
			CloseParenToken: closeParen,
		}
	default:
		panic("parsePrimaryExpr called with a token kind that cannot start primary_expr")
	}

	skipped, ds, r := untilNotError(src, r)
	diagnostics = append(diagnostics, ds...)
	node.ExtendTrailingTriviaWidth(skipped)

	return Result{Node: node, Diagnostics: diagnostics, Remaining: r}
}
