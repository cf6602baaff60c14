package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denvl-lang/denvl/internal/diag"
	"github.com/denvl-lang/denvl/internal/source"
	"github.com/denvl-lang/denvl/internal/syntax"
	"github.com/denvl-lang/denvl/internal/token"
)

// roundTrip reparses text and asserts the universal coverage and
// round-trip invariants hold regardless of what node shape comes out.
func roundTrip(t *testing.T, text string) (syntax.Node, []diag.Diagnostic, *source.Source) {
	t.Helper()
	src := source.New(text)
	node, diagnostics := Parse(src)

	assert.Equal(t, src.Len(), node.Width(), "coverage: tree width must equal source length")
	assert.Equal(t, src.Get(src.Range()), syntax.Restore(src, node), "round-trip: restored text must equal source text")

	return node, diagnostics, src
}

func TestIntLiteral(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "1")
	require.Empty(t, diagnostics)
	require.IsType(t, &syntax.IntNode{}, node)
}

func TestVarReference(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "a")
	require.Empty(t, diagnostics)
	require.IsType(t, &syntax.VarNode{}, node)
}

func TestAdditiveIsLeftAssociative(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "1 + 2 - 3")
	require.Empty(t, diagnostics)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Minus, top.BinOpToken.Kind)

	lhs, ok := top.LhsExpr.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Plus, lhs.BinOpToken.Kind)
}

func TestMultiveBindsTighterThanAdditive(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "1 + 2 * 3")
	require.Empty(t, diagnostics)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Plus, top.BinOpToken.Kind)

	rhs, ok := top.RhsExpr.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Ast, rhs.BinOpToken.Kind)
}

func TestParensOverridePrecedence(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "(1 + 2) * 3")
	require.Empty(t, diagnostics)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Ast, top.BinOpToken.Kind)

	lhs, ok := top.LhsExpr.(*syntax.ParenNode)
	require.True(t, ok)
	inner, ok := lhs.InnerExpr.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Plus, inner.BinOpToken.Kind)
}

func TestLetExpr(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "let a = 1; a")
	require.Empty(t, diagnostics)

	let, ok := node.(*syntax.LetNode)
	require.True(t, ok)
	assert.IsType(t, &syntax.IntNode{}, let.InitExpr)
	assert.IsType(t, &syntax.VarNode{}, let.BodyExpr)
}

func TestNestedLetInsideParens(t *testing.T) {
	_, diagnostics, _ := roundTrip(t, "(let a = 1; a) + 2")
	require.Empty(t, diagnostics)
}

func TestUnknownTokenBetweenOperandsRecovers(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "a @ + 1")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.KindUnknownToken, diagnostics[0].Kind)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.IsType(t, &syntax.VarNode{}, top.LhsExpr)
	assert.IsType(t, &syntax.IntNode{}, top.RhsExpr)
}

func TestMissingOperatorInsertsOne(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "1 2")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.KindMissedToken, diagnostics[0].Kind)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.Equal(t, token.Plus, top.BinOpToken.Kind)
	assert.Equal(t, 0, top.BinOpToken.TokenWidth)
}

func TestUnknownTokenAndMissingOperatorTogether(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "1 @ 2")
	require.Len(t, diagnostics, 2)
	assert.Equal(t, diag.KindUnknownToken, diagnostics[0].Kind)
	assert.Equal(t, diag.KindMissedToken, diagnostics[1].Kind)

	top, ok := node.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.IsType(t, &syntax.IntNode{}, top.LhsExpr)
	assert.IsType(t, &syntax.IntNode{}, top.RhsExpr)
}

func TestMissingRhsOperandInsertsErrorNode(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "(1+)")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.KindMissedToken, diagnostics[0].Kind)

	paren, ok := node.(*syntax.ParenNode)
	require.True(t, ok)
	inner, ok := paren.InnerExpr.(*syntax.BinOpNode)
	require.True(t, ok)
	assert.IsType(t, &syntax.ErrorNode{}, inner.RhsExpr)
}

func TestStrayLetIsReclassifiedAsExtraToken(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "let 1")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.KindExtraToken, diagnostics[0].Kind)
	assert.Equal(t, token.Let, diagnostics[0].Extra)
	assert.IsType(t, &syntax.IntNode{}, node)
}

func TestMissingEqualInLetBinding(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "let a 1; a")
	require.Len(t, diagnostics, 1)
	assert.Equal(t, diag.KindMissedToken, diagnostics[0].Kind)
	assert.Equal(t, []token.Kind{token.Equal}, diagnostics[0].Expected)

	let, ok := node.(*syntax.LetNode)
	require.True(t, ok)
	assert.Equal(t, 0, let.EqualToken.FullWidth())
}

func TestOnlyWhitespaceYieldsSingleDiagnostic(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, " ")
	require.Len(t, diagnostics, 1)
	assert.IsType(t, &syntax.ErrorNode{}, node)
}

func TestEmptySourceYieldsErrorNode(t *testing.T) {
	node, diagnostics, _ := roundTrip(t, "")
	require.Len(t, diagnostics, 1)
	assert.IsType(t, &syntax.ErrorNode{}, node)
}

func TestParseIsDeterministic(t *testing.T) {
	text := "let a = 1 + 2 * (3 - 4); a / b"
	src1 := source.New(text)
	src2 := source.New(text)

	node1, diagnostics1 := Parse(src1)
	node2, diagnostics2 := Parse(src2)

	if diff := cmp.Diff(node1, node2); diff != "" {
		t.Errorf("parsing the same text twice produced different trees (-first +second):\n%s", diff)
	}
	assert.Equal(t, diagnostics1, diagnostics2)
}

func TestDiagnosticsAreSortedByPosition(t *testing.T) {
	_, diagnostics, _ := roundTrip(t, "1 @ = + 2")
	require.Len(t, diagnostics, 2)

	sorted := append([]diag.Diagnostic{}, diagnostics...)
	diag.SortByPosition(sorted)
	assert.Equal(t, diagnostics, sorted)
}
