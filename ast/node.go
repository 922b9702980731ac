// Package ast defines the AST node variants the interpreter core walks:
// declarations, constructs (initial/always/continuous-assign), statements,
// expressions, and events.
//
// AST construction itself — turning Verilog source into one of these
// trees — is out of scope: nodes are built directly with Go composite
// literals rather than parsed from source. Build assigns each node a
// dense NodeID so the interpreter can keep its mutable per-node
// scheduling state in a side table instead of on the nodes themselves.
package ast

// NodeID densely identifies a node within one Module's tree. IDs are
// assigned by Build and are only meaningful relative to that one tree.
type NodeID int

// Node is implemented by every AST node that can carry scheduling
// decorations (on_active/ctrl) or be the target of a monitor relation.
type Node interface {
	ID() NodeID
}

type base struct {
	id NodeID
}

// ID returns the node's dense id, valid after Build.
func (b *base) ID() NodeID { return b.id }

func (b *base) setID(id NodeID) { b.id = id }

// Expr is implemented by every expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement node, including the assignment
// constructs, which are statements too (they can be schedule_now'd).
type Stmt interface {
	Node
	stmtNode()
}

// Item is implemented by every top-level module item: AlwaysConstruct,
// InitialConstruct, ContinuousAssign.
type Item interface {
	Node
	itemNode()
}
