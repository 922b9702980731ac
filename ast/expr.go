package ast

import "github.com/hwcore/vlsim/bits"

// UnaryOp enumerates the unary expression operators this core evaluates.
type UnaryOp int

const (
	OpNot UnaryOp = iota // bitwise ~
	OpLogicalNot         // !
	OpNeg                // unary -
)

// BinaryOp enumerates the binary expression operators this core evaluates.
type BinaryOp int

const (
	OpAnd BinaryOp = iota
	OpOr
	OpXor
	OpAdd
	OpSub
	OpLt
	OpLe
	OpGt
	OpGe
	OpEq
	OpNe
	OpLogicalAnd
	OpLogicalOr
)

// Ident is a leaf expression naming a variable binding. Values are stored
// per Ident node, so two distinct Ident nodes are distinct storage even if
// they share a Name or a VId; in this minimal tree a reference is its own
// declaration, so Resolve (eval.Resolve) is a pass-through rather than a
// lookup.
type Ident struct {
	base
	Name  string
	Width int
}

func (i *Ident) exprNode() {}

// NewIdent returns an unbound (ID()==0 until Build runs) identifier
// expression of the given bit width.
func NewIdent(name string, width int) *Ident {
	return &Ident{Name: name, Width: width}
}

// Literal is a constant bit-vector expression.
type Literal struct {
	base
	Value bits.Bits
}

func (l *Literal) exprNode() {}

// NewLiteral wraps a constant value as an expression node.
func NewLiteral(v bits.Bits) *Literal { return &Literal{Value: v} }

// UnaryExpr applies a unary operator to X.
type UnaryExpr struct {
	base
	Op UnaryOp
	X  Expr
}

func (u *UnaryExpr) exprNode() {}

// BinaryExpr applies a binary operator to X and Y.
type BinaryExpr struct {
	base
	Op BinaryOp
	X  Expr
	Y  Expr
}

func (b *BinaryExpr) exprNode() {}

// BitSelect reads a single bit of X at a (possibly non-constant) Index.
type BitSelect struct {
	base
	X     *Ident
	Index Expr
}

func (s *BitSelect) exprNode() {}

// IndexSelect reads one element of a memory-typed identifier, e.g. mem[addr].
// It is the array-valued counterpart of BitSelect.
type IndexSelect struct {
	base
	X     *Ident
	Index Expr
}

func (s *IndexSelect) exprNode() {}
