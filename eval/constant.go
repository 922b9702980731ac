package eval

import "github.com/hwcore/vlsim/ast"

// IsConstant reports whether an expression's value cannot change across
// the lifetime of the simulation: normally true only for a tree built
// from parameter, localparam, or genvar references.
//
// This AST has no separate declaration kind for those; the stand-in rule
// is purely structural: a tree is constant iff it contains no *ast.Ident
// at all, i.e. it is built only from literals and operators over them.
// This is intentionally conservative — it under-approximates rather than
// risk trusting a value that can change — and is wired into
// ForStatement/RepeatStatement's one-shot bound capture: a non-constant
// bound is still captured once per execution, but a constant one is safe
// to treat as if it could be hoisted by a future optimization pass.
func IsConstant(e ast.Expr) bool {
	switch x := e.(type) {
	case nil:
		return true
	case *ast.Literal:
		return true
	case *ast.Ident:
		return false
	case *ast.UnaryExpr:
		return IsConstant(x.X)
	case *ast.BinaryExpr:
		return IsConstant(x.X) && IsConstant(x.Y)
	case *ast.BitSelect:
		return false
	case *ast.IndexSelect:
		return false
	default:
		return false
	}
}
