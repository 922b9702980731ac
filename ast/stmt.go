package ast

// Nop is a statement that does nothing and completes immediately. It
// stands in for an absent else-branch so ConditionalStatement never needs
// a nil Stmt field.
type Nop struct{ base }

func (n *Nop) stmtNode() {}

// VariableAssign pairs a write target with the expression computing its
// new value. It backs both BlockingAssign and ContinuousAssign.
type VariableAssign struct {
	base
	Lhs Expr // *Ident, *BitSelect, or *IndexSelect
	Rhs Expr
}

func (v *VariableAssign) stmtNode() {}

// BlockingAssign performs its VariableAssign immediately and synchronously:
// evaluate Rhs, deposit into Lhs's binding, notify the written identifier.
type BlockingAssign struct {
	base
	Assign *VariableAssign
}

func (b *BlockingAssign) stmtNode() {}

// NonblockingAssign snapshots Rhs now but defers the write to the next
// update-buffer flush: the classic <= operator.
type NonblockingAssign struct {
	base
	Lhs Expr
	Rhs Expr
}

func (n *NonblockingAssign) stmtNode() {}

// ContinuousAssign is a standing `assign` statement: always active, with
// no explicit sensitivity list. It is both a Stmt and an Item: it can
// appear as a module item (scheduled at resync) and is dispatched as an
// ordinary node when one of its Assign.Rhs identifiers changes.
type ContinuousAssign struct {
	base
	Assign *VariableAssign
}

func (c *ContinuousAssign) stmtNode() {}
func (c *ContinuousAssign) itemNode() {}

// SeqBlock runs its statements in order, one at a time (begin/end).
type SeqBlock struct {
	base
	Stmts []Stmt
}

func (s *SeqBlock) stmtNode() {}

// ParBlock starts all of its statements concurrently (fork/join): every
// child is scheduled onto the active queue in one call, LIFO order, rather
// than run to completion before the next starts.
type ParBlock struct {
	base
	Stmts []Stmt
}

func (p *ParBlock) stmtNode() {}

// ConditionalStatement is if/else. Else is never nil; use &Nop{} for an
// absent else-branch.
type ConditionalStatement struct {
	base
	If   Expr
	Then Stmt
	Else Stmt
}

func (c *ConditionalStatement) stmtNode() {}

// CaseItem is one arm of a CaseStatement. A CaseItem with no Exprs is the
// default arm.
type CaseItem struct {
	Exprs []Expr
	Stmt  Stmt
}

// CaseStatement dispatches on Cond against each Items entry in order,
// falling through to a default arm (an Items entry with empty Exprs) if
// none of the value arms match.
type CaseStatement struct {
	base
	Cond  Expr
	Items []*CaseItem
}

func (c *CaseStatement) stmtNode() {}

// ForStatement is a bounded loop: Init once, then while Cond holds, run
// Stmt then Update.
type ForStatement struct {
	base
	Init   Stmt
	Cond   Expr
	Update Stmt
	Stmt   Stmt
}

func (f *ForStatement) stmtNode() {}

// RepeatStatement runs Stmt a fixed number of times, with the repeat count
// captured from Cond once, at entry — re-evaluating Cond per iteration
// would let a loop body's own side effects change its own trip count.
type RepeatStatement struct {
	base
	Cond Expr
	Stmt Stmt
}

func (r *RepeatStatement) stmtNode() {}

// WhileStatement runs Stmt for as long as Cond holds, re-checked on every
// iteration (not captured once like RepeatStatement's count).
type WhileStatement struct {
	base
	Cond Expr
	Stmt Stmt
}

func (w *WhileStatement) stmtNode() {}

// WaitStatement blocks until Cond holds, then runs Stmt once. Unlike
// WhileStatement it does not loop; it is level-sensitive and re-checks Cond
// only when one of Cond's identifiers changes (via its Monitor-installed
// identifier fan-out), not on every active-queue drain.
type WaitStatement struct {
	base
	Cond Expr
	Stmt Stmt
}

func (w *WaitStatement) stmtNode() {}

// TimingControlStatement is `@(...) stmt;`: Ctrl gates Stmt. Ctrl is an
// EventControl, so a `#n stmt;` delay cannot be expressed with it.
type TimingControlStatement struct {
	base
	Ctrl *EventControl
	Stmt Stmt
}

func (t *TimingControlStatement) stmtNode() {}

// DisplayStatement is $display: format Args and emit with a trailing newline.
type DisplayStatement struct {
	base
	Format string
	Args   []Expr
}

func (d *DisplayStatement) stmtNode() {}

// WriteStatement is $write: format Args and emit with no trailing newline.
type WriteStatement struct {
	base
	Format string
	Args   []Expr
}

func (w *WriteStatement) stmtNode() {}

// FinishStatement is $finish: ends the simulation.
type FinishStatement struct {
	base
	Arg Expr // exit code; may be nil
}

func (f *FinishStatement) stmtNode() {}
