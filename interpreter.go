package vlsim

import (
	"github.com/inconshreveable/log15"
	"github.com/pkg/errors"

	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
)

// Interface is the host-supplied callback surface the core drives output,
// $display/$write, and $finish through. A test harness or a CLI driver
// implements this; the core never assumes anything about where values go.
type Interface interface {
	WriteOutput(v VId, b bits.Bits)
	Display(s string)
	WriteText(s string) // $write: no trailing newline
	Finish(code int)
}

// Interpreter is the event-driven software interpreter for one elaborated
// module. It owns its AST, the binding table, the decoration side table,
// the active queue, and the nonblocking-assign update buffer. It is not
// safe for concurrent use: all public operations mutate shared scheduling
// state and must be called from one goroutine.
type Interpreter struct {
	module  *ast.Module
	binding *Binding
	dec     *decorations

	queue []ast.Node

	updates updateBuffer

	silent        bool
	thereWereTask bool
	iface         Interface

	logger log15.Logger
}

// NewInterpreter builds an interpreter over module, sizing the decoration
// side table to module.NumNodes() and installing monitor fan-out. binding
// must already be populated via SetRead/SetWrite/SetState.
func NewInterpreter(module *ast.Module, binding *Binding) *Interpreter {
	in := &Interpreter{
		module:  module,
		binding: binding,
		dec:     newDecorations(module),
		logger:  discardLogger(),
	}
	(&Monitor{dec: in.dec}).Init(module)
	return in
}

// SetLogger installs a structured logger for scheduling and dispatch
// tracing. Passing nil restores the discard logger.
func (in *Interpreter) SetLogger(l log15.Logger) {
	if l == nil {
		l = discardLogger()
	}
	in.logger = l
}

// recoverFatal is deferred by Read, Evaluate, Update and Resync: it attaches a stack
// trace to a *FatalError panic and re-panics, rather than swallowing it —
// a structural violation is a bug in whatever produced the AST, never a
// recoverable condition.
func (in *Interpreter) recoverFatal() {
	if r := recover(); r != nil {
		if fe, ok := r.(*FatalError); ok {
			in.logger.Crit("fatal", "err", fe.Error())
			panic(errors.WithStack(fe))
		}
		panic(r)
	}
}

// Read assigns bits to input VId v and notifies its identifier, waking any
// logic sensitive to it. Called by the outer scheduler before Evaluate.
func (in *Interpreter) Read(v VId, b bits.Bits) {
	defer in.recoverFatal()
	id := in.binding.Read(v)
	if id == nil {
		fatalf("vlsim: read of unregistered VId %d", v)
	}
	in.binding.SetValue(id, b)
	in.notify(id)
}

// Evaluate clears there_were_tasks, drains the active queue to fixpoint,
// then writes every registered output to the Interface.
func (in *Interpreter) Evaluate(iface Interface) {
	defer in.recoverFatal()
	in.iface = iface
	in.thereWereTask = false
	in.drain()
	in.emitOutputs(iface)
}

// ThereAreUpdates reports whether the NBA buffer holds pending writes.
func (in *Interpreter) ThereAreUpdates() bool { return in.updates.len() > 0 }

// Update flushes the NBA buffer in insertion order, drains the active
// queue to fixpoint again, then re-emits outputs.
func (in *Interpreter) Update(iface Interface) {
	defer in.recoverFatal()
	in.iface = iface
	in.flushUpdates()
	in.drain()
	in.emitOutputs(iface)
}

// ThereWereTasks reports whether a system task executed during the most
// recent Evaluate/Update.
func (in *Interpreter) ThereWereTasks() bool { return in.thereWereTask }

func (in *Interpreter) emitOutputs(iface Interface) {
	for _, w := range in.binding.Writes() {
		iface.WriteOutput(w.vid, in.binding.GetValue(w.id))
	}
}
