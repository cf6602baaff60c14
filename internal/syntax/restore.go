package syntax

import "github.com/denvl-lang/denvl/internal/source"

// Restore concatenates every token's leading-trivia+token+trailing-trivia
// text, in tree order, reconstructing the exact source span the node covers.
// For a fully parsed toplevel tree, Restore(src, tree) == src.Get(src.Range()).
func Restore(src *source.Source, node Node) string {
	pos, text := restoreNode(src, source.Start, node)
	_ = pos
	return text
}

func restoreNode(src *source.Source, pos source.Position, node Node) (source.Position, string) {
	switch n := node.(type) {
	case *IntNode:
		return restoreToken(src, pos, n.Token)
	case *VarNode:
		return restoreToken(src, pos, n.Token)
	case *ErrorNode:
		return restoreToken(src, pos, n.Token)
	case *LetNode:
		var out string
		var s string
		pos, s = restoreToken(src, pos, n.LetToken)
		out += s
		pos, s = restoreToken(src, pos, n.IdentToken)
		out += s
		pos, s = restoreToken(src, pos, n.EqualToken)
		out += s
		pos, s = restoreNode(src, pos, n.InitExpr)
		out += s
		pos, s = restoreToken(src, pos, n.SemicolonToken)
		out += s
		pos, s = restoreNode(src, pos, n.BodyExpr)
		out += s
		return pos, out
	case *BinOpNode:
		var out string
		var s string
		pos, s = restoreNode(src, pos, n.LhsExpr)
		out += s
		pos, s = restoreToken(src, pos, n.BinOpToken)
		out += s
		pos, s = restoreNode(src, pos, n.RhsExpr)
		out += s
		return pos, out
	case *ParenNode:
		var out string
		var s string
		pos, s = restoreToken(src, pos, n.OpenParenToken)
		out += s
		pos, s = restoreNode(src, pos, n.InnerExpr)
		out += s
		pos, s = restoreToken(src, pos, n.CloseParenToken)
		out += s
		return pos, out
	default:
		panic("syntax: Restore: unhandled node type")
	}
}

func restoreToken(src *source.Source, pos source.Position, tok Token) (source.Position, string) {
	start := pos
	end := pos.Advance(tok.FullWidth())
	return end, src.Get(source.Range{Start: start, End: end})
}
