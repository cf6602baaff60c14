// Package syntax defines the loss-less concrete syntax tree: tokens that
// carry their leading/trailing trivia as widths rather than as separate
// nodes, and the closed set of node shapes the denvl grammar produces.
package syntax

import "github.com/denvl-lang/denvl/internal/token"

// Token is a single lexeme plus the trivia that surrounds it, expressed as
// three widths that partition a contiguous span of the source:
// leading trivia, the token text itself, trailing trivia.
//
// The all-zero Token{Kind: k} is the empty-token sentinel used wherever a
// required token is missing from the input; it occupies zero width so the
// coverage invariant still holds.
type Token struct {
	Kind                token.Kind
	LeadingTriviaWidth  int
	TokenWidth          int
	TrailingTriviaWidth int
}

// FullWidth returns the total span the token (with its trivia) occupies.
func (t Token) FullWidth() int {
	return t.LeadingTriviaWidth + t.TokenWidth + t.TrailingTriviaWidth
}

// EmptyToken builds the zero-width placeholder for a missing token of the
// given kind.
func EmptyToken(kind token.Kind) Token {
	return Token{Kind: kind}
}
