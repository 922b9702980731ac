package ast

// Build assigns every node in the tree rooted at items (plus the module's
// declared inputs) a dense NodeID and returns the finished Module. It does
// not parse anything: it finalizes a tree that was built by hand into
// something the interpreter can size its decoration tables against.
func Build(items []Item, inputs []*Ident) *Module {
	m := &Module{Items: items, Inputs: inputs}
	var next NodeID
	var nodes []Node
	seen := make(map[Node]bool)
	assign := func(n Node) {
		if seen[n] {
			return
		}
		if setter, ok := n.(interface{ setID(NodeID) }); ok {
			setter.setID(next)
			next++
			nodes = append(nodes, n)
			seen[n] = true
		}
	}

	var walkExpr func(e Expr)
	walkExpr = func(e Expr) {
		if e == nil {
			return
		}
		assign(e)
		switch x := e.(type) {
		case *Ident, *Literal:
		case *UnaryExpr:
			walkExpr(x.X)
		case *BinaryExpr:
			walkExpr(x.X)
			walkExpr(x.Y)
		case *BitSelect:
			walkExpr(x.X)
			walkExpr(x.Index)
		case *IndexSelect:
			walkExpr(x.X)
			walkExpr(x.Index)
		}
	}

	var walkEventControl func(ec *EventControl)
	var walkStmt func(s Stmt)
	walkStmt = func(s Stmt) {
		if s == nil {
			return
		}
		assign(s)
		switch x := s.(type) {
		case *Nop:
		case *VariableAssign:
			walkExpr(x.Lhs)
			walkExpr(x.Rhs)
		case *BlockingAssign:
			walkStmt(x.Assign)
		case *NonblockingAssign:
			walkExpr(x.Lhs)
			walkExpr(x.Rhs)
		case *ContinuousAssign:
			walkStmt(x.Assign)
		case *SeqBlock:
			for _, c := range x.Stmts {
				walkStmt(c)
			}
		case *ParBlock:
			for _, c := range x.Stmts {
				walkStmt(c)
			}
		case *ConditionalStatement:
			walkExpr(x.If)
			walkStmt(x.Then)
			walkStmt(x.Else)
		case *CaseStatement:
			walkExpr(x.Cond)
			for _, it := range x.Items {
				for _, e := range it.Exprs {
					walkExpr(e)
				}
				walkStmt(it.Stmt)
			}
		case *ForStatement:
			walkStmt(x.Init)
			walkExpr(x.Cond)
			walkStmt(x.Update)
			walkStmt(x.Stmt)
		case *RepeatStatement:
			walkExpr(x.Cond)
			walkStmt(x.Stmt)
		case *WhileStatement:
			walkExpr(x.Cond)
			walkStmt(x.Stmt)
		case *WaitStatement:
			walkExpr(x.Cond)
			walkStmt(x.Stmt)
		case *TimingControlStatement:
			walkEventControl(x.Ctrl)
			walkStmt(x.Stmt)
		case *DisplayStatement:
			for _, e := range x.Args {
				walkExpr(e)
			}
		case *WriteStatement:
			for _, e := range x.Args {
				walkExpr(e)
			}
		case *FinishStatement:
			walkExpr(x.Arg)
		}
	}

	walkEventControl = func(ec *EventControl) {
		if ec == nil {
			return
		}
		assign(ec)
		for _, ev := range ec.Events {
			assign(ev)
			walkExpr(ev.Expr)
		}
	}

	for _, id := range inputs {
		walkExpr(id)
	}
	for _, it := range items {
		assign(it)
		switch x := it.(type) {
		case *AlwaysConstruct:
			walkStmt(x.Stmt)
		case *InitialConstruct:
			walkStmt(x.Stmt)
		case *ContinuousAssign:
			walkStmt(x.Assign)
		}
	}

	m.numNodes = int(next)
	m.Nodes = nodes
	return m
}
