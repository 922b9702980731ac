package vlsim

import "github.com/hwcore/vlsim/ast"

// Resync re-establishes a coherent internal signal state after an external
// event such as a backend swap. Always/continuous
// logic is primed silently first so wire values are consistent with
// current state before any initial block's side effects (a $display, a
// $finish) are allowed to fire. Every registered output is then written to
// iface, as Evaluate does.
func (in *Interpreter) Resync(iface Interface) {
	defer in.recoverFatal()
	in.iface = iface
	in.logger.Debug("resync: begin")

	for _, item := range in.module.Items {
		switch item.(type) {
		case *ast.AlwaysConstruct, *ast.ContinuousAssign:
			in.scheduleNow(item)
		}
	}

	for _, id := range in.module.Inputs {
		in.notify(id)
	}

	in.setSilent(true)
	in.drain()
	in.setSilent(false)
	in.logger.Debug("resync: priming drain complete")

	for _, item := range in.module.Items {
		if ic, ok := item.(*ast.InitialConstruct); ok {
			in.scheduleNow(ic)
		}
	}
	// Scheduling an InitialConstruct only pushes its body onto the active
	// queue (schedule_active); draining here is what actually runs it
	// under normal (non-silent) semantics, matching "now running under
	// normal semantics" rather than leaving the work merely queued.
	in.drain()
	in.logger.Debug("resync: initial blocks complete")
	in.emitOutputs(iface)
}
