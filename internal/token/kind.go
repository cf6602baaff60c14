// Package token holds the shared TokenKind vocabulary. It exists as its own
// package only so diag, syntax, lexer, and parser can all reference TokenKind
// without forming an import cycle.
package token

// Kind is the closed set of lexical token kinds the denvl grammar
// recognizes. Error represents a span the lexer could not classify.
type Kind string

const (
	Number     Kind = "Number"
	Ident      Kind = "Ident"
	Let        Kind = "Let"
	OpenParen  Kind = "OpenParen"
	CloseParen Kind = "CloseParen"
	Equal      Kind = "Equal"
	Semicolon  Kind = "Semicolon"
	Plus       Kind = "Plus"
	Minus      Kind = "Minus"
	Ast        Kind = "Ast"
	Slash      Kind = "Slash"
	Error      Kind = "Error"
)

// All enumerates every TokenKind. Used by the skip-recovery primitive to
// build "every kind except Error" recovery sets.
var All = [...]Kind{
	Number, Ident, Let, OpenParen, CloseParen, Equal, Semicolon,
	Plus, Minus, Ast, Slash, Error,
}
