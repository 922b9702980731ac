package vlsim

import "github.com/hwcore/vlsim/ast"

// Monitor installs, once per module item at construction, the back-
// reference fan-out notify() walks at runtime. It installs two kinds of
// relation into the same decorations.monitors table:
//
//   - structural: a container statement registers itself as the monitor
//     of each of its direct dispatch-children (except a ForStatement's
//     Init and Update, which it runs itself), so that when a child
//     finishes (calls notify(self)), the container is reactivated to
//     advance its ctrl cursor. This is what makes a gated AlwaysConstruct
//     re-arm for its next event and what makes SeqBlock/ParBlock/loops/
//     conditionals resume across active-queue round trips instead of
//     only within one synchronous call.
//   - value-based: an event-sensitive node (an Event watching an
//     identifier, a WaitStatement's condition, a ContinuousAssign's RHS,
//     or — for an AlwaysConstruct body with no intervening event/wait
//     gate — any expression read at all) registers itself, or the
//     enclosing AlwaysConstruct, as the monitor of every identifier leaf
//     it reads, so a change to that identifier re-dispatches it.
type Monitor struct {
	dec *decorations
}

// Init installs monitor fan-out for every item in m.
func (mon *Monitor) Init(m *ast.Module) {
	for _, item := range m.Items {
		mon.initItem(item)
	}
}

func (mon *Monitor) initItem(item ast.Item) {
	switch x := item.(type) {
	case *ast.AlwaysConstruct:
		// The structural self-link is what lets AlwaysConstruct re-arm for
		// the next real event once its body finishes a cycle — but that
		// only makes sense when the body itself pauses for a real event
		// somewhere (a TimingControlStatement/WaitStatement's own ctrl has
		// an idle "armed, waiting" state that absorbs repeat dispatch
		// without notifying). A body with no gate at all completes the
		// instant it's dispatched and would notify straight back into
		// itself forever with nothing to block re-entry, so an ungated
		// body skips the self-link entirely and relies solely on the
		// value monitors installed below to re-dispatch it on an actual
		// read-value change.
		if isGated(x.Stmt) {
			mon.structural(x, x.Stmt)
		}
		mon.walkStmt(x.Stmt, alwaysCtx{always: x, gated: false})
	case *ast.InitialConstruct:
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Stmt, alwaysCtx{always: nil, gated: true})
	case *ast.ContinuousAssign:
		mon.valueMonitor(x.Assign.Rhs, x)
		mon.walkStmt(x.Assign, alwaysCtx{always: nil, gated: true})
	}
}

// alwaysCtx threads the "am I still in the ungated prefix of an
// AlwaysConstruct's body" state down the walk: every expression read
// before the first EventControl/WaitStatement boundary monitors the
// enclosing AlwaysConstruct directly, since nothing else will ever
// re-trigger it. See DESIGN.md for the reasoning.
type alwaysCtx struct {
	always *ast.AlwaysConstruct
	gated  bool
}

// isGated reports whether s has its own idle "armed, waiting for a real
// event" ctrl state that absorbs a dispatch without notifying — the
// property AlwaysConstruct's top-level self-link depends on to rearm
// rather than busy-loop. See the AlwaysConstruct case in initItem.
func isGated(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.TimingControlStatement, *ast.WaitStatement:
		return true
	default:
		return false
	}
}

func (mon *Monitor) structural(parent, child ast.Node) {
	if child == nil {
		return
	}
	mon.dec.addMonitor(child, parent)
}

// valueMonitor registers watcher against every identifier leaf reached
// while reading e.
func (mon *Monitor) valueMonitor(e ast.Expr, watcher ast.Node) {
	switch x := e.(type) {
	case nil, *ast.Literal:
	case *ast.Ident:
		mon.dec.addMonitor(x, watcher)
	case *ast.UnaryExpr:
		mon.valueMonitor(x.X, watcher)
	case *ast.BinaryExpr:
		mon.valueMonitor(x.X, watcher)
		mon.valueMonitor(x.Y, watcher)
	case *ast.BitSelect:
		mon.dec.addMonitor(x.X, watcher)
		mon.valueMonitor(x.Index, watcher)
	case *ast.IndexSelect:
		mon.dec.addMonitor(x.X, watcher)
		mon.valueMonitor(x.Index, watcher)
	}
}

func (mon *Monitor) walkStmt(s ast.Stmt, ctx alwaysCtx) {
	if s == nil {
		return
	}
	switch x := s.(type) {
	case *ast.Nop:
	case *ast.VariableAssign:
		if ctx.always != nil && !ctx.gated {
			mon.valueMonitor(x.Rhs, ctx.always)
		}
	case *ast.BlockingAssign:
		mon.walkStmt(x.Assign, ctx)
	case *ast.NonblockingAssign:
		// NBA is only ever reached from a gated (event/timing-controlled)
		// context in practice; no value-based monitor is installed for it
		// directly — its re-evaluation is driven by the gating event.
	case *ast.ContinuousAssign:
		mon.valueMonitor(x.Assign.Rhs, x)
	case *ast.SeqBlock:
		for _, c := range x.Stmts {
			mon.structural(x, c)
			mon.walkStmt(c, ctx)
		}
	case *ast.ParBlock:
		for _, c := range x.Stmts {
			mon.structural(x, c)
			mon.walkStmt(c, ctx)
		}
	case *ast.ConditionalStatement:
		if ctx.always != nil && !ctx.gated {
			mon.valueMonitor(x.If, ctx.always)
		}
		mon.structural(x, x.Then)
		mon.structural(x, x.Else)
		mon.walkStmt(x.Then, ctx)
		mon.walkStmt(x.Else, ctx)
	case *ast.CaseStatement:
		if ctx.always != nil && !ctx.gated {
			mon.valueMonitor(x.Cond, ctx.always)
		}
		for _, it := range x.Items {
			mon.structural(x, it.Stmt)
			mon.walkStmt(it.Stmt, ctx)
		}
	case *ast.ForStatement:
		// Init and Update are run synchronously by the ForStatement itself,
		// which then tail-chains its next iteration; only the body reports
		// completion back to it.
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Init, ctx)
		mon.walkStmt(x.Update, ctx)
		mon.walkStmt(x.Stmt, ctx)
	case *ast.RepeatStatement:
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Stmt, ctx)
	case *ast.WhileStatement:
		if ctx.always != nil && !ctx.gated {
			mon.valueMonitor(x.Cond, ctx.always)
		}
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Stmt, ctx)
	case *ast.WaitStatement:
		mon.valueMonitor(x.Cond, x)
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Stmt, alwaysCtx{always: ctx.always, gated: true})
	case *ast.TimingControlStatement:
		if x.Ctrl != nil {
			mon.structural(x, x.Ctrl)
			for _, ev := range x.Ctrl.Events {
				mon.structural(x.Ctrl, ev)
				mon.valueMonitor(ev.Expr, ev)
			}
		}
		mon.structural(x, x.Stmt)
		mon.walkStmt(x.Stmt, alwaysCtx{always: ctx.always, gated: true})
	case *ast.DisplayStatement, *ast.WriteStatement, *ast.FinishStatement:
	}
}
