package vlsim

import (
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/eval"
)

// dispatch is the statement interpreter: a single node-dispatched visitor
// over every AST node variant that can be scheduled. It is a Go type
// switch rather than a class hierarchy.
func (in *Interpreter) dispatch(n ast.Node) {
	in.log("dispatch", n)
	switch x := n.(type) {
	case *ast.AlwaysConstruct:
		in.visitAlwaysConstruct(x)
	case *ast.InitialConstruct:
		in.visitInitialConstruct(x)
	case *ast.ContinuousAssign:
		in.visitContinuousAssign(x)
	case *ast.BlockingAssign:
		in.visitBlockingAssign(x)
	case *ast.NonblockingAssign:
		in.visitNonblockingAssign(x)
	case *ast.VariableAssign:
		in.visitVariableAssign(x)
	case *ast.SeqBlock:
		in.visitSeqBlock(x)
	case *ast.ParBlock:
		in.visitParBlock(x)
	case *ast.ConditionalStatement:
		in.visitConditionalStatement(x)
	case *ast.CaseStatement:
		in.visitCaseStatement(x)
	case *ast.ForStatement:
		in.visitForStatement(x)
	case *ast.RepeatStatement:
		in.visitRepeatStatement(x)
	case *ast.WhileStatement:
		in.visitWhileStatement(x)
	case *ast.WaitStatement:
		in.visitWaitStatement(x)
	case *ast.TimingControlStatement:
		in.visitTimingControlStatement(x)
	case *ast.DisplayStatement:
		in.visitDisplayStatement(x)
	case *ast.WriteStatement:
		in.visitWriteStatement(x)
	case *ast.FinishStatement:
		in.visitFinishStatement(x)
	case *ast.Event:
		in.visitEvent(x)
	case *ast.EventControl:
		in.visitEventControl(x)
	case *ast.DelayControl:
		fatalf("vlsim: DelayControl is unsynthesizable")
	case *ast.Nop:
		in.notify(x)
	default:
		fatalf("vlsim: dispatch: unhandled node type %T", n)
	}
}

func (in *Interpreter) visitAlwaysConstruct(n *ast.AlwaysConstruct) {
	in.scheduleNow(n.Stmt)
}

func (in *Interpreter) visitInitialConstruct(n *ast.InitialConstruct) {
	if n.Ignored() {
		return
	}
	// An initial block's own completion notifies this node back (the same
	// structural link that lets AlwaysConstruct reloop forever), but unlike
	// always it must run exactly once: the ctrl cursor here isn't stepping
	// through children, it's a ran-already latch.
	if in.dec.getCtrl(n) != 0 {
		return
	}
	in.dec.setCtrl(n, 1)
	in.scheduleActive(n.Stmt)
}

func (in *Interpreter) visitContinuousAssign(n *ast.ContinuousAssign) {
	in.scheduleNow(n.Assign)
}

func (in *Interpreter) visitBlockingAssign(n *ast.BlockingAssign) {
	in.scheduleNow(n.Assign)
	in.notify(n)
}

func (in *Interpreter) visitNonblockingAssign(n *ast.NonblockingAssign) {
	if !in.silent {
		v := eval.GetValue(in.binding, n.Rhs)
		in.updates.push(n.Lhs, v)
	}
	in.notify(n)
}

func (in *Interpreter) visitVariableAssign(n *ast.VariableAssign) {
	v := eval.GetValue(in.binding, n.Rhs)
	eval.AssignValue(in.binding, n.Lhs, v)
	in.notify(eval.Dereference(n.Lhs))
}

func (in *Interpreter) visitSeqBlock(n *ast.SeqBlock) {
	ctrl := in.dec.getCtrl(n)
	if int(ctrl) < len(n.Stmts) {
		child := n.Stmts[ctrl]
		in.dec.setCtrl(n, ctrl+1)
		in.scheduleNow(child)
		return
	}
	in.dec.setCtrl(n, 0)
	in.notify(n)
}

// visitParBlock starts every substatement concurrently by pushing each onto
// the active queue rather than running them synchronously in declaration
// order: fork/join requires the last-declared child to observe effects
// before earlier-declared ones under LIFO active-queue draining, which
// pushing each child directly onto the queue reproduces — see DESIGN.md.
func (in *Interpreter) visitParBlock(n *ast.ParBlock) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		if len(n.Stmts) == 0 {
			in.notify(n)
			return
		}
		in.dec.setCtrl(n, uint(len(n.Stmts)))
		for _, c := range n.Stmts {
			in.scheduleActive(c)
		}
		return
	}
	ctrl--
	in.dec.setCtrl(n, ctrl)
	if ctrl == 0 {
		in.notify(n)
	}
}

func (in *Interpreter) visitConditionalStatement(n *ast.ConditionalStatement) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		in.dec.setCtrl(n, 1)
		if eval.GetValue(in.binding, n.If).ToBool() {
			in.scheduleNow(n.Then)
		} else {
			in.scheduleNow(n.Else)
		}
		return
	}
	in.dec.setCtrl(n, 0)
	in.notify(n)
}

func (in *Interpreter) visitCaseStatement(n *ast.CaseStatement) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		sel := eval.GetValue(in.binding, n.Cond)
		var def *ast.CaseItem
		for _, item := range n.Items {
			if len(item.Exprs) == 0 {
				def = item
				continue
			}
			for _, e := range item.Exprs {
				if eval.GetValue(in.binding, e).ToInt64() == sel.ToInt64() {
					in.dec.setCtrl(n, 1)
					in.scheduleNow(item.Stmt)
					return
				}
			}
		}
		if def != nil {
			in.dec.setCtrl(n, 1)
			in.scheduleNow(def.Stmt)
			return
		}
		fatalf("vlsim: case statement matched no item and has no default")
	}
	in.dec.setCtrl(n, 0)
	in.notify(n)
}

func (in *Interpreter) visitForStatement(n *ast.ForStatement) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		in.scheduleNow(n.Init)
		ctrl = 1
	}
	if ctrl == 1 {
		if !eval.GetValue(in.binding, n.Cond).ToBool() {
			in.dec.setCtrl(n, 0)
			in.notify(n)
			return
		}
		in.dec.setCtrl(n, 2)
		in.scheduleNow(n.Stmt)
		return
	}
	in.dec.setCtrl(n, 1)
	in.scheduleNow(n.Update)
	in.scheduleNow(n)
}

func (in *Interpreter) visitRepeatStatement(n *ast.RepeatStatement) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		count := eval.GetValue(in.binding, n.Cond).ToInt64()
		if count < 0 {
			count = 0
		}
		ctrl = uint(count) + 1
	}
	ctrl--
	if ctrl == 0 {
		in.dec.setCtrl(n, 0)
		in.notify(n)
		return
	}
	in.dec.setCtrl(n, ctrl)
	in.scheduleNow(n.Stmt)
}

func (in *Interpreter) visitWhileStatement(n *ast.WhileStatement) {
	if !eval.GetValue(in.binding, n.Cond).ToBool() {
		in.notify(n)
		return
	}
	in.scheduleNow(n.Stmt)
}

func (in *Interpreter) visitWaitStatement(n *ast.WaitStatement) {
	ctrl := in.dec.getCtrl(n)
	if ctrl == 0 {
		if !eval.GetValue(in.binding, n.Cond).ToBool() {
			return
		}
		in.dec.setCtrl(n, 1)
		in.scheduleNow(n.Stmt)
		return
	}
	in.dec.setCtrl(n, 0)
	in.notify(n)
}

func (in *Interpreter) visitTimingControlStatement(n *ast.TimingControlStatement) {
	ctrl := in.dec.getCtrl(n)
	switch ctrl {
	case 0:
		in.dec.setCtrl(n, 1)
	case 1:
		in.dec.setCtrl(n, 2)
		in.scheduleNow(n.Stmt)
	default:
		in.dec.setCtrl(n, 0)
		in.notify(n)
	}
}

func (in *Interpreter) visitDisplayStatement(n *ast.DisplayStatement) {
	in.doDisplay(eval.Format(in.binding, n.Format, n.Args))
	in.notify(n)
}

func (in *Interpreter) visitWriteStatement(n *ast.WriteStatement) {
	in.doWrite(eval.Format(in.binding, n.Format, n.Args))
	in.notify(n)
}

func (in *Interpreter) visitFinishStatement(n *ast.FinishStatement) {
	code := 0
	if n.Arg != nil {
		code = int(eval.GetValue(in.binding, n.Arg).ToInt64())
	}
	in.doFinish(code)
	in.notify(n)
}

func (in *Interpreter) visitEvent(n *ast.Event) {
	v := eval.GetValue(in.binding, n.Expr).ToBool()
	switch n.Type {
	case ast.Posedge:
		if v {
			in.notify(n)
		}
	case ast.Negedge:
		if !v {
			in.notify(n)
		}
	case ast.Anyedge:
		in.notify(n)
	default:
		fatalf("vlsim: event: unhandled edge type %v", n.Type)
	}
}

func (in *Interpreter) visitEventControl(n *ast.EventControl) {
	in.notify(n)
}
