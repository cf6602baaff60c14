// Package parser turns a source range into a loss-less syntax tree plus a
// stream of diagnostics, recovering from malformed input rather than
// aborting on the first error.
//
// grammar:
//
//	expr         = "let" IDENT "=" expr ";" expr
//	             | additive_expr ;
//	additive_expr = additive_expr ("+"|"-") multive_expr
//	             | multive_expr ;
//	multive_expr = multive_expr ("*"|"/") primary_expr
//	             | primary_expr ;
//	primary_expr = IDENT | NUMBER | "(" expr ")" ;
package parser

import (
	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/lexer"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// Result is the outcome of parsing one production: the node it built, every
// diagnostic raised while building it, and the range left over for the
// caller to continue from.
type Result struct {
	Node        syntax.Node
	Diagnostics []diag.Diagnostic
	Remaining   source.Range
}

// Parser holds no mutable state today; every production is a pure function
// of (Source, Range). It exists as a type, rather than free functions, so a
// later production can grow per-parse configuration without changing every
// call site — see Option below.
type Parser struct {
	opts options
}

type options struct{}

// Option configures a Parser. None are defined yet; the type is kept so
// adding one (e.g. a recursion-depth limit) does not change New's callers.
type Option func(*options)

// New builds a Parser.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// Parse consumes an entire Source and returns its syntax tree and every
// diagnostic raised while building it. The returned tree's Width always
// equals src.Len() (the coverage invariant): leading trivia before the
// first token is folded into the tree's own leading trivia, and a
// completely blank source still yields an Error node (with empty token
// text, its width being the blank source's trivia) rather than a nil tree.
func Parse(src *source.Source) (syntax.Node, []diag.Diagnostic) {
	p := New()
	r := src.Range()
	leading := lexer.LeadingTriviaWidth(src, r)
	r.Start = r.Start.Advance(leading)

	result := p.parseToplevel(src, r)
	result.Node.ExtendLeadingTriviaWidth(leading)
	return result.Node, result.Diagnostics
}

func (p *Parser) parseToplevel(src *source.Source, r source.Range) Result {
	skipped, diagnostics, r := untilExprBegin(src, r)

	result := p.parseExpr(src, r)
	result.Node.ExtendLeadingTriviaWidth(skipped)
	result.Diagnostics = append(diagnostics, result.Diagnostics...)
	return result
}

func (p *Parser) parseExpr(src *source.Source, r source.Range) Result {
	peek := lexer.Lex(src, r)

	switch peek.Token.Kind {
	case token.Let:
		return p.parseLetExpr(src, r)
	case token.Ident, token.Number, token.OpenParen:
		return p.parseAdditiveExpr(src, r)
	default:
		return Result{
			Node: &syntax.ErrorNode{
				Token: syntax.Token{Kind: token.Error, TokenWidth: r.Width()},
			},
			Diagnostics: []diag.Diagnostic{
				diag.UnexpectedToken(r, []token.Kind{token.Let, token.Ident, token.Number, token.OpenParen}, token.Error),
			},
			Remaining: source.Range{Start: r.End, End: r.End},
		}
	}
}

// peekTokenKinds lexes n tokens ahead from r without consuming them for the
// caller (the lookahead used by parseLetExpr to tell "IDENT =" apart from
// the error-recovery cases where one or both are missing).
func peekTokenKinds(src *source.Source, r source.Range, n int) []token.Kind {
	kinds := make([]token.Kind, 0, n)
	for i := 0; i < n; i++ {
		res := lexer.Lex(src, r)
		r = res.Remaining
		kinds = append(kinds, res.Token.Kind)
	}
	return kinds
}
