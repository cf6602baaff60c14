package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// parseLetExpr parses "let" IDENT "=" expr ";" expr. Callers must only
// invoke it when the next token's kind is already known to be Let.
func (p *Parser) parseLetExpr(src *source.Source, r source.Range) Result {
	letStart := r.Start
	lexed := lexer.Lex(src, r)
	letToken := lexed.Token
	r = lexed.Remaining

	var diagnostics []diag.Diagnostic

	skipped, ds, r := untilExprBeginOr(src, r, []token.Kind{token.Equal})
	diagnostics = append(diagnostics, ds...)

	peeked := peekTokenKinds(src, r, 2)

	var identToken, equalToken syntax.Token
	switch {
	case len(peeked) == 2 && peeked[0] == token.Ident && peeked[1] == token.Equal:
		identLexed := lexer.Lex(src, r)
		r = identLexed.Remaining
		equalLexed := lexer.Lex(src, r)
		r = equalLexed.Remaining
		identToken, equalToken = identLexed.Token, equalLexed.Token

	case len(peeked) >= 1 && peeked[0] == token.Ident:
		identLexed := lexer.Lex(src, r)
		r = identLexed.Remaining
		diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.Equal}))
		identToken, equalToken = identLexed.Token, syntax.EmptyToken(token.Equal)

	case len(peeked) >= 1 && peeked[0] == token.Equal:
		diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.Ident}))
		equalLexed := lexer.Lex(src, r)
		r = equalLexed.Remaining
		identToken, equalToken = syntax.EmptyToken(token.Ident), equalLexed.Token

	default:
		// Neither "IDENT =" nor a recoverable one-sided version of it
		// followed: the "let" was stray. Reinterpret from the current
		// position as a plain expr and blame the let keyword as an extra
		// token, rather than returning a Let node at all. The let token and
		// anything skipped after it become the expr's leading trivia.
		result := p.parseExpr(src, r)
		result.Node.ExtendLeadingTriviaWidth(letToken.FullWidth() + skipped)
		letRange := source.Range{Start: letStart, End: letStart.Advance(letToken.TokenWidth)}
		result.Diagnostics = append(result.Diagnostics, diag.ExtraToken(letRange, token.Let))
		result.Diagnostics = append(diagnostics, result.Diagnostics...)
		return result
	}
	identToken.LeadingTriviaWidth += skipped

	initResult := p.parseExpr(src, r)
	initExpr := initResult.Node
	r = initResult.Remaining
	diagnostics = append(diagnostics, initResult.Diagnostics...)

	skipped, ds, r = untilExprBeginOr(src, r, []token.Kind{token.Semicolon})
	diagnostics = append(diagnostics, ds...)

	var semicolonToken syntax.Token
	semicolonLexed := lexer.Lex(src, r)
	if semicolonLexed.Token.Kind == token.Semicolon {
		r = semicolonLexed.Remaining
		semicolonToken = semicolonLexed.Token
		semicolonToken.LeadingTriviaWidth += skipped
	} else {
		diagnostics = append(diagnostics, diag.MissedToken(r.Start, []token.Kind{token.Semicolon}))
		semicolonToken = syntax.EmptyToken(token.Semicolon)
	}

	bodyResult := p.parseExpr(src, r)
	r = bodyResult.Remaining
	diagnostics = append(diagnostics, bodyResult.Diagnostics...)
	bodyExpr := bodyResult.Node

	if semicolonToken.FullWidth() == 0 {
		bodyExpr.ExtendLeadingTriviaWidth(skipped)
	}

	return Result{
		Node: &syntax.LetNode{
			LetToken:       letToken,
			IdentToken:     identToken,
			EqualToken:     equalToken,
			InitExpr:       initExpr,
			SemicolonToken: semicolonToken,
			BodyExpr:       bodyExpr,
		},
		Diagnostics: diagnostics,
		Remaining:   r,
	}
}
