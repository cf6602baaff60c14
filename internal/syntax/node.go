package syntax

// Node is any syntax tree node. The set of implementations is closed:
// IntNode, VarNode, ErrorNode, LetNode, BinOpNode, ParenNode. Adding a new
// node shape means updating every exhaustive switch over Node in this
// package and in the parser.
type Node interface {
	// ExtendLeadingTriviaWidth adds n to the width of the leading-most
	// token's leading trivia, following the node to its first token.
	ExtendLeadingTriviaWidth(n int)
	// ExtendTrailingTriviaWidth adds n to the width of the trailing-most
	// token's trailing trivia, following the node to its last token.
	ExtendTrailingTriviaWidth(n int)
	// Width returns the sum of full_width over every token in the node,
	// i.e. the number of source characters the node covers.
	Width() int
}

// IntNode is an integer literal leaf.
type IntNode struct {
	Token Token
}

func (n *IntNode) ExtendLeadingTriviaWidth(w int)  { n.Token.LeadingTriviaWidth += w }
func (n *IntNode) ExtendTrailingTriviaWidth(w int) { n.Token.TrailingTriviaWidth += w }
func (n *IntNode) Width() int                      { return n.Token.FullWidth() }

// VarNode is an identifier reference leaf.
type VarNode struct {
	Token Token
}

func (n *VarNode) ExtendLeadingTriviaWidth(w int)  { n.Token.LeadingTriviaWidth += w }
func (n *VarNode) ExtendTrailingTriviaWidth(w int) { n.Token.TrailingTriviaWidth += w }
func (n *VarNode) Width() int                      { return n.Token.FullWidth() }

// ErrorNode covers a span the parser could not assign grammatical meaning
// to. It carries one token (often the Error-kind lexer token, but also used
// to hold an empty placeholder when an operand is entirely missing).
type ErrorNode struct {
	Token Token
}

func (n *ErrorNode) ExtendLeadingTriviaWidth(w int)  { n.Token.LeadingTriviaWidth += w }
func (n *ErrorNode) ExtendTrailingTriviaWidth(w int) { n.Token.TrailingTriviaWidth += w }
func (n *ErrorNode) Width() int                      { return n.Token.FullWidth() }

// LetNode is "let" IDENT "=" init_expr ";" body_expr.
type LetNode struct {
	LetToken       Token
	IdentToken     Token
	EqualToken     Token
	InitExpr       Node
	SemicolonToken Token
	BodyExpr       Node
}

func (n *LetNode) ExtendLeadingTriviaWidth(w int)  { n.LetToken.LeadingTriviaWidth += w }
func (n *LetNode) ExtendTrailingTriviaWidth(w int) { n.BodyExpr.ExtendTrailingTriviaWidth(w) }
func (n *LetNode) Width() int {
	return n.LetToken.FullWidth() + n.IdentToken.FullWidth() + n.EqualToken.FullWidth() +
		n.InitExpr.Width() + n.SemicolonToken.FullWidth() + n.BodyExpr.Width()
}

// BinOpNode is lhs_expr OP rhs_expr for any of + - * /.
type BinOpNode struct {
	LhsExpr    Node
	BinOpToken Token
	RhsExpr    Node
}

func (n *BinOpNode) ExtendLeadingTriviaWidth(w int)  { n.LhsExpr.ExtendLeadingTriviaWidth(w) }
func (n *BinOpNode) ExtendTrailingTriviaWidth(w int) { n.RhsExpr.ExtendTrailingTriviaWidth(w) }
func (n *BinOpNode) Width() int {
	return n.LhsExpr.Width() + n.BinOpToken.FullWidth() + n.RhsExpr.Width()
}

// ParenNode is "(" inner_expr ")".
type ParenNode struct {
	OpenParenToken  Token
	InnerExpr       Node
	CloseParenToken Token
}

func (n *ParenNode) ExtendLeadingTriviaWidth(w int)  { n.OpenParenToken.LeadingTriviaWidth += w }
func (n *ParenNode) ExtendTrailingTriviaWidth(w int) { n.CloseParenToken.TrailingTriviaWidth += w }
func (n *ParenNode) Width() int {
	return n.OpenParenToken.FullWidth() + n.InnerExpr.Width() + n.CloseParenToken.FullWidth()
}
