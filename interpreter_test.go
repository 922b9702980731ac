package vlsim_test

import (
	"testing"

	"github.com/pkg/errors"

	"github.com/hwcore/vlsim"
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
	"github.com/hwcore/vlsim/vsimtest"
)

// trace logs a panic's stack trace frame-by-frame, mirroring the idiom this
// core's own FatalError is built to support: walk the StackTrace()
// interface rather than assume a concrete error type.
func trace(t *testing.T, err error) {
	t.Helper()
	if e, ok := err.(interface{ StackTrace() errors.StackTrace }); ok {
		for _, f := range e.StackTrace() {
			t.Logf("%+v", f)
		}
	}
}

func boolBits(v bool) bits.Bits { return bits.Bool(v) }

func buildDFF() (*ast.Module, *vlsim.Binding, ast.Expr, ast.Expr, ast.Expr) {
	clk := ast.NewIdent("clk", 1)
	d := ast.NewIdent("d", 1)
	q := ast.NewIdent("q", 1)
	always := &ast.AlwaysConstruct{
		Stmt: &ast.TimingControlStatement{
			Ctrl: &ast.EventControl{Events: []*ast.Event{{Type: ast.Posedge, Expr: clk}}},
			Stmt: &ast.NonblockingAssign{Lhs: q, Rhs: d},
		},
	}
	module := ast.Build([]ast.Item{always}, []*ast.Ident{clk, d})

	binding := vlsim.NewBinding()
	binding.SetRead(clk, 0)
	binding.SetRead(d, 1)
	binding.SetWrite(q, 2)
	binding.SetState(q, 2)
	return module, binding, clk, d, q
}

func TestFlipFlopCapturesNBAOnlyAtUpdate(t *testing.T) {
	module, binding, _, _, _ := buildDFF()
	const (
		vClk vlsim.VId = 0
		vD   vlsim.VId = 1
		vQ   vlsim.VId = 2
	)

	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)
	vsimtest.AssertOutput(t, rec, vQ, bits.Bool(false))

	in.Read(vClk, boolBits(false))
	in.Read(vD, boolBits(true))
	in.Evaluate(rec)
	if in.ThereAreUpdates() {
		t.Fatal("no posedge occurred; no NBA should be pending")
	}

	in.Read(vClk, boolBits(true))
	in.Evaluate(rec)
	if !in.ThereAreUpdates() {
		t.Fatal("a posedge should have captured a pending NBA")
	}
	vsimtest.AssertOutput(t, rec, vQ, bits.Bool(false))

	in.Update(rec)
	if in.ThereAreUpdates() {
		t.Fatal("Update should have flushed the NBA buffer")
	}
	vsimtest.AssertOutput(t, rec, vQ, bits.Bool(true))
}

func TestFlipFlopIgnoresNegedge(t *testing.T) {
	module, binding, _, _, _ := buildDFF()
	const vClk, vD vlsim.VId = 0, 1

	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	in.Read(vClk, boolBits(true))
	in.Read(vD, boolBits(true))
	in.Evaluate(rec)
	if in.ThereAreUpdates() {
		in.Update(rec)
	}

	in.Read(vClk, boolBits(false))
	in.Evaluate(rec)
	if in.ThereAreUpdates() {
		t.Fatal("a negedge should not capture an NBA for a posedge-sensitive always block")
	}
}

func TestContinuousAssignRecomputesCombinationally(t *testing.T) {
	a := ast.NewIdent("a", 1)
	b := ast.NewIdent("b", 1)
	y := ast.NewIdent("y", 1)
	ca := &ast.ContinuousAssign{
		Assign: &ast.VariableAssign{Lhs: y, Rhs: &ast.BinaryExpr{Op: ast.OpAnd, X: a, Y: b}},
	}
	module := ast.Build([]ast.Item{ca}, []*ast.Ident{a, b})

	binding := vlsim.NewBinding()
	const vA, vB, vY vlsim.VId = 0, 1, 2
	binding.SetRead(a, vA)
	binding.SetRead(b, vB)
	binding.SetWrite(y, vY)

	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	for _, av := range []bool{false, true} {
		for _, bv := range []bool{false, true} {
			in.Read(vA, boolBits(av))
			in.Read(vB, boolBits(bv))
			in.Evaluate(rec)
			vsimtest.AssertOutput(t, rec, vY, bits.Bool(av && bv))
		}
	}
}

func TestForLoopDisplayUnrollsBoundOnce(t *testing.T) {
	i := ast.NewIdent("i", 8)
	forStmt := &ast.ForStatement{
		Init:   &ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: i, Rhs: ast.NewLiteral(bits.New(8, 0))}},
		Cond:   &ast.BinaryExpr{Op: ast.OpLt, X: i, Y: ast.NewLiteral(bits.New(8, 3))},
		Update: &ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: i, Rhs: &ast.BinaryExpr{Op: ast.OpAdd, X: i, Y: ast.NewLiteral(bits.New(8, 1))}}},
		Stmt:   &ast.DisplayStatement{Format: "%d", Args: []ast.Expr{i}},
	}
	init := &ast.InitialConstruct{Stmt: forStmt}
	module := ast.Build([]ast.Item{init}, nil)

	in := vlsim.NewInterpreter(module, vlsim.NewBinding())
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	vsimtest.AssertDisplays(t, rec, "0", "1", "2")
}

func TestParBlockRunsLastDeclaredChildFirst(t *testing.T) {
	a := &ast.DisplayStatement{Format: "a"}
	b := &ast.DisplayStatement{Format: "b"}
	par := &ast.ParBlock{Stmts: []ast.Stmt{a, b}}
	init := &ast.InitialConstruct{Stmt: par}
	module := ast.Build([]ast.Item{init}, nil)

	in := vlsim.NewInterpreter(module, vlsim.NewBinding())
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	vsimtest.AssertDisplays(t, rec, "b", "a")
}

func TestCaseStatementFallsThroughToDefault(t *testing.T) {
	sel := ast.NewIdent("sel", 2)
	cs := &ast.CaseStatement{
		Cond: sel,
		Items: []*ast.CaseItem{
			{Exprs: []ast.Expr{ast.NewLiteral(bits.New(2, 1))}, Stmt: &ast.DisplayStatement{Format: "one"}},
			{Exprs: nil, Stmt: &ast.DisplayStatement{Format: "default"}},
		},
	}
	init := &ast.InitialConstruct{Stmt: cs}
	module := ast.Build([]ast.Item{init}, nil)

	binding := vlsim.NewBinding()
	binding.SetValue(sel, bits.New(2, 2))
	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	vsimtest.AssertDisplays(t, rec, "default")
}

func TestCaseStatementMatchesExactItem(t *testing.T) {
	sel := ast.NewIdent("sel", 2)
	cs := &ast.CaseStatement{
		Cond: sel,
		Items: []*ast.CaseItem{
			{Exprs: []ast.Expr{ast.NewLiteral(bits.New(2, 1))}, Stmt: &ast.DisplayStatement{Format: "one"}},
			{Exprs: nil, Stmt: &ast.DisplayStatement{Format: "default"}},
		},
	}
	init := &ast.InitialConstruct{Stmt: cs}
	module := ast.Build([]ast.Item{init}, nil)

	binding := vlsim.NewBinding()
	binding.SetValue(sel, bits.New(2, 1))
	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	vsimtest.AssertDisplays(t, rec, "one")
}

func TestInitialBlockRunsExactlyOnceAcrossResync(t *testing.T) {
	init := &ast.InitialConstruct{Stmt: &ast.DisplayStatement{Format: "hi"}}
	module := ast.Build([]ast.Item{init}, nil)

	in := vlsim.NewInterpreter(module, vlsim.NewBinding())
	rec := vsimtest.NewRecorder()
	in.Resync(rec)
	vsimtest.AssertDisplays(t, rec, "hi")

	rec.Reset()
	in.Resync(rec)
	if len(rec.Displays) != 0 {
		t.Fatalf("a second Resync should not re-run a completed initial block, got %v", rec.Displays)
	}
}

func TestResyncPrimesWireStateBeforeInitialBlockReadsIt(t *testing.T) {
	a := ast.NewIdent("a", 1)
	y := ast.NewIdent("y", 1)
	ca := &ast.ContinuousAssign{Assign: &ast.VariableAssign{Lhs: y, Rhs: a}}
	init := &ast.InitialConstruct{Stmt: &ast.DisplayStatement{Format: "%d", Args: []ast.Expr{y}}}
	module := ast.Build([]ast.Item{ca, init}, []*ast.Ident{a})

	binding := vlsim.NewBinding()
	binding.SetValue(a, bits.Bool(true))
	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	// y = a was never assigned through in.Read (the normal input path);
	// resync's priming drain must still have run the continuous assign
	// against a's already-bound value before the initial block's display
	// read y, or the initial block would see y's zero default instead.
	vsimtest.AssertDisplays(t, rec, "1")
}

func TestSnapshotRestoreRoundTripAcrossAClockedMutation(t *testing.T) {
	module, binding, _, _, _ := buildDFF()
	const vClk, vD vlsim.VId = 0, 1

	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	vsimtest.AssertSnapshotRoundTrip(t, in, func() {
		in.Read(vClk, boolBits(false))
		in.Read(vD, boolBits(true))
		in.Evaluate(rec)
		in.Read(vClk, boolBits(true))
		in.Evaluate(rec)
		for in.ThereAreUpdates() {
			in.Update(rec)
		}
	})
}

func TestReadOfUnregisteredVIdIsFatal(t *testing.T) {
	module := ast.Build(nil, nil)
	in := vlsim.NewInterpreter(module, vlsim.NewBinding())

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic reading an unregistered VId")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value is not an error: %T", r)
		}
		trace(t, err)
	}()
	in.Read(99, bits.Bool(true))
}

func TestResyncPanicsWithCauseFatalErrorOnUnmatchedCase(t *testing.T) {
	sel := ast.NewIdent("sel", 2)
	cs := &ast.CaseStatement{
		Cond:  sel,
		Items: []*ast.CaseItem{{Exprs: []ast.Expr{ast.NewLiteral(bits.New(2, 1))}, Stmt: &ast.Nop{}}},
	}
	init := &ast.InitialConstruct{Stmt: cs}
	module := ast.Build([]ast.Item{init}, nil)

	binding := vlsim.NewBinding()
	binding.SetValue(sel, bits.New(2, 3))
	in := vlsim.NewInterpreter(module, binding)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic on an unmatched case with no default")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value is not an error: %T", r)
		}
		trace(t, err)
		type causer interface{ Cause() error }
		c, ok := err.(causer)
		if !ok {
			t.Fatalf("panic value %T does not implement Cause()", err)
		}
		if _, ok := c.Cause().(*vlsim.FatalError); !ok {
			t.Fatalf("Cause() = %T, want *vlsim.FatalError", c.Cause())
		}
	}()
	in.Resync(vsimtest.NewRecorder())
}

// TestNonblockingAssignCapturesRhsBeforeLaterBlockingMutation builds
// `begin b <= a; a = 1; end` and checks that the value deposited into b is
// the value a held when the nonblocking assign was scheduled, not the value
// a is left holding after the blocking assign later in the same region.
func TestNonblockingAssignCapturesRhsBeforeLaterBlockingMutation(t *testing.T) {
	a := ast.NewIdent("a", 1)
	b := ast.NewIdent("b", 1)
	seq := &ast.SeqBlock{Stmts: []ast.Stmt{
		&ast.NonblockingAssign{Lhs: b, Rhs: a},
		&ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: a, Rhs: ast.NewLiteral(bits.Bool(true))}},
	}}
	init := &ast.InitialConstruct{Stmt: seq}
	module := ast.Build([]ast.Item{init}, nil)

	binding := vlsim.NewBinding()
	binding.SetValue(a, bits.Bool(false))
	in := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	in.Resync(rec)

	if !in.ThereAreUpdates() {
		t.Fatal("the nonblocking assign should have captured a pending update")
	}
	if binding.GetValue(a).ToBool() != true {
		t.Fatal("the blocking assign later in the region should already be visible on a")
	}

	in.Update(rec)
	if binding.GetValue(b).ToBool() {
		t.Fatal("b should have been deposited with a's pre-mutation value (false), not the value a holds after the later blocking assign")
	}
}

// TestUngatedAlwaysReactsOnlyToInputReads builds an AlwaysConstruct whose
// body is a bare blocking assign with no EventControl/WaitStatement at
// all — an `always r = in;`-style combinational block — and checks that
// it settles after Resync's priming instead of busy-looping, then
// re-executes exactly when Read delivers a new value for the input it
// reads, per the ungated branch of the monitor installer.
func TestUngatedAlwaysReactsOnlyToInputReads(t *testing.T) {
	in_ := ast.NewIdent("in", 1)
	r := ast.NewIdent("r", 1)
	always := &ast.AlwaysConstruct{
		Stmt: &ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: r, Rhs: in_}},
	}
	module := ast.Build([]ast.Item{always}, []*ast.Ident{in_})

	binding := vlsim.NewBinding()
	binding.SetRead(in_, 0)
	const vIn vlsim.VId = 0

	sim := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	sim.Resync(rec)

	if binding.GetValue(r).ToBool() {
		t.Fatal("r should track in's initial (zero) value after Resync")
	}

	sim.Read(vIn, boolBits(true))
	sim.Evaluate(rec)
	if !binding.GetValue(r).ToBool() {
		t.Fatal("a Read on the block's only input should re-dispatch its ungated body")
	}
}

// TestUngatedAlwaysWithConditionalBodyReactsToInputReads is the same
// scenario with a ConditionalStatement body instead of a bare assign,
// since ConditionalStatement notifies its container on every completed
// pass the same way a bare assign does and must be equally safe from
// self-retriggering when ungated.
func TestUngatedAlwaysWithConditionalBodyReactsToInputReads(t *testing.T) {
	sel := ast.NewIdent("sel", 1)
	r := ast.NewIdent("r", 1)
	always := &ast.AlwaysConstruct{
		Stmt: &ast.ConditionalStatement{
			If:   sel,
			Then: &ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: r, Rhs: ast.NewLiteral(bits.Bool(true))}},
			Else: &ast.BlockingAssign{Assign: &ast.VariableAssign{Lhs: r, Rhs: ast.NewLiteral(bits.Bool(false))}},
		},
	}
	module := ast.Build([]ast.Item{always}, []*ast.Ident{sel})

	binding := vlsim.NewBinding()
	binding.SetRead(sel, 0)
	const vSel vlsim.VId = 0

	sim := vlsim.NewInterpreter(module, binding)
	rec := vsimtest.NewRecorder()
	sim.Resync(rec)

	if binding.GetValue(r).ToBool() {
		t.Fatal("r should follow sel's initial (zero/false) value after Resync")
	}

	sim.Read(vSel, boolBits(true))
	sim.Evaluate(rec)
	if !binding.GetValue(r).ToBool() {
		t.Fatal("a Read on sel should re-dispatch the ungated conditional body")
	}
}
