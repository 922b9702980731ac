package vlsim

import "github.com/hwcore/vlsim/ast"

// scheduleActive pushes n onto the active queue unless it is already
// there, preserving at-most-once membership: on_active(n) iff n is
// queued, no duplicates.
func (in *Interpreter) scheduleActive(n ast.Node) {
	if in.dec.isActive(n) {
		return
	}
	in.dec.setActive(n, true)
	in.queue = append(in.queue, n)
}

// scheduleNow dispatches n to the statement interpreter immediately,
// without queueing.
func (in *Interpreter) scheduleNow(n ast.Node) {
	in.dispatch(n)
}

// notify schedules every node registered as a monitor of n.
func (in *Interpreter) notify(n ast.Node) {
	for _, id := range in.dec.monitorsOf(n) {
		in.scheduleActive(in.dec.node(id))
	}
}

// drain pops the active queue LIFO until empty, clearing each node's
// on_active flag before dispatching it so a re-activation during dispatch
// is observed as fresh work rather than dropped.
func (in *Interpreter) drain() {
	for len(in.queue) > 0 {
		last := len(in.queue) - 1
		n := in.queue[last]
		in.queue = in.queue[:last]
		in.dec.setActive(n, false)
		in.dispatch(n)
	}
}
