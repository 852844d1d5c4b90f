package interpret

import "strings"

// Render writes expr back out as source text. Only GroupingExpr nodes add
// parentheses, so a parse of a minimally spaced expression renders to the
// same string.
func Render(expr Expr) string {
	var b strings.Builder
	render(&b, expr)
	return b.String()
}

func render(b *strings.Builder, expr Expr) {
	switch e := expr.(type) {
	case *IdentifierExpr:
		b.WriteString(e.Name.Lexeme)
	case *LiteralExpr:
		b.WriteString(e.Value.Lexeme)
	case *GroupingExpr:
		b.WriteByte('(')
		render(b, e.Inner)
		b.WriteByte(')')
	case *UnaryExpr:
		b.WriteString(e.Operator.Lexeme)
		render(b, e.Operand)
	case *BinaryExpr:
		render(b, e.Left)
		b.WriteString(e.Operator.Lexeme)
		render(b, e.Right)
	}
}
