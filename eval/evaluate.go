// Package eval implements the small pure-function collaborators the core
// interpreter calls out to but does not itself own: expression evaluation,
// identifier resolution, module port introspection, $display/$write
// formatting, and a constant-expression predicate (IsConstant).
//
// None of these hold scheduling state; they are given a Storage (the
// core's VId-keyed value storage) and an ast.Expr and return a value.
package eval

import (
	"github.com/pkg/errors"

	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
)

// Storage is the minimal read/write surface Evaluate needs from the core's
// binding table. vlsim.Binding implements it; tests can fake it.
type Storage interface {
	GetValue(id *ast.Ident) bits.Bits
	SetValue(id *ast.Ident, v bits.Bits)
	GetArrayValue(id *ast.Ident) bits.ArrayValue
	SetArrayElem(id *ast.Ident, index int, v bits.Bits)
}

// GetValue evaluates an expression to a scalar Bits value.
func GetValue(s Storage, e ast.Expr) bits.Bits {
	switch x := e.(type) {
	case nil:
		return bits.Zero(1)
	case *ast.Literal:
		return x.Value
	case *ast.Ident:
		return s.GetValue(x)
	case *ast.BitSelect:
		v := s.GetValue(x.X)
		i := int(GetValue(s, x.Index).ToInt64())
		return bits.Bool(v.Bit(i))
	case *ast.IndexSelect:
		arr := s.GetArrayValue(x.X)
		i := int(GetValue(s, x.Index).ToInt64())
		if i < 0 || i >= len(arr.Elems) {
			panic(errors.Errorf("eval: array index %d out of range for %q (len %d)", i, x.X.Name, len(arr.Elems)))
		}
		return arr.Elems[i]
	case *ast.UnaryExpr:
		v := GetValue(s, x.X)
		switch x.Op {
		case ast.OpNot:
			return bits.Not(v)
		case ast.OpLogicalNot:
			return bits.LogicalNot(v)
		case ast.OpNeg:
			return bits.Sub(bits.Zero(v.Width()), v)
		}
	case *ast.BinaryExpr:
		a := GetValue(s, x.X)
		c := GetValue(s, x.Y)
		switch x.Op {
		case ast.OpAnd:
			return bits.And(a, c)
		case ast.OpOr:
			return bits.Or(a, c)
		case ast.OpXor:
			return bits.Xor(a, c)
		case ast.OpAdd:
			return bits.Add(a, c)
		case ast.OpSub:
			return bits.Sub(a, c)
		case ast.OpLt:
			return bits.Bool(bits.Lt(a, c))
		case ast.OpLe:
			return bits.Bool(bits.Lt(a, c) || bits.Eq(a, c))
		case ast.OpGt:
			return bits.Bool(bits.Lt(c, a))
		case ast.OpGe:
			return bits.Bool(bits.Lt(c, a) || bits.Eq(a, c))
		case ast.OpEq:
			return bits.Bool(bits.Eq(a, c))
		case ast.OpNe:
			return bits.Bool(!bits.Eq(a, c))
		case ast.OpLogicalAnd:
			return bits.LogicalAnd(a, c)
		case ast.OpLogicalOr:
			return bits.LogicalOr(a, c)
		}
	}
	panic(errors.Errorf("eval: unhandled expression node %T", e))
}

// AssignValue deposits the already-evaluated value v at lhs's binding (a
// scalar Ident, a BitSelect of one, or an IndexSelect of a memory). It
// does not notify; the caller (the
// statement interpreter) owns the notify-after-write ordering.
func AssignValue(s Storage, lhs ast.Expr, v bits.Bits) {
	switch x := lhs.(type) {
	case *ast.Ident:
		s.SetValue(x, v)
	case *ast.BitSelect:
		cur := s.GetValue(x.X)
		i := int(GetValue(s, x.Index).ToInt64())
		s.SetValue(x.X, cur.WithBit(i, v.ToBool()))
	case *ast.IndexSelect:
		i := int(GetValue(s, x.Index).ToInt64())
		s.SetArrayElem(x.X, i, v)
	default:
		panic(errors.Errorf("eval: %T is not assignable", lhs))
	}
}

// GetArrayValue returns the full array value bound to a memory identifier.
func GetArrayValue(s Storage, id *ast.Ident) bits.ArrayValue {
	return s.GetArrayValue(id)
}

// AssignArrayValue overwrites every element of a memory identifier's array.
func AssignArrayValue(s Storage, id *ast.Ident, v bits.ArrayValue) {
	for i, e := range v.Elems {
		s.SetArrayElem(id, i, e)
	}
}

// Dereference walks an lvalue expression down to the *ast.Ident it
// ultimately writes through, the identifier notify must be called on
// after a write completes.
func Dereference(e ast.Expr) *ast.Ident {
	switch x := e.(type) {
	case *ast.Ident:
		return x
	case *ast.BitSelect:
		return x.X
	case *ast.IndexSelect:
		return x.X
	default:
		panic(errors.Errorf("eval: %T has no identifier to dereference", e))
	}
}
