package vlsim

import (
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
	"github.com/hwcore/vlsim/eval"
)

// pendingUpdate is one captured nonblocking assignment: the lvalue to
// deposit into and the RHS value already evaluated at schedule time —
// the snapshot has to happen now, not at flush time, or a later active-queue
// write to the same RHS identifiers would change the deposited value.
type pendingUpdate struct {
	lhs   ast.Expr
	value bits.Bits
}

// updateBuffer is the nonblocking-assign update buffer flushed between
// active-queue drains. A Go slice's append already amortizes to geometric
// growth, so this is a direct, idiomatic rendering rather than a hand-rolled
// pool.
type updateBuffer struct {
	pending []pendingUpdate
}

func (u *updateBuffer) len() int { return len(u.pending) }

func (u *updateBuffer) push(lhs ast.Expr, v bits.Bits) {
	u.pending = append(u.pending, pendingUpdate{lhs: lhs, value: v})
}

// flush returns the captured updates in insertion order and empties the
// buffer. The caller deposits and notifies each one.
func (u *updateBuffer) flush() []pendingUpdate {
	out := u.pending
	u.pending = nil
	return out
}

func (in *Interpreter) flushUpdates() {
	for _, p := range in.updates.flush() {
		eval.AssignValue(in.binding, p.lhs, p.value)
		in.notify(eval.Dereference(p.lhs))
	}
}
