package vlsim

import "github.com/hwcore/vlsim/bits"

// Snapshot emits every registered state identifier's current value keyed
// by its VId. Decorations (on_active, ctrl, monitors) are deliberately
// excluded — they are scheduling machinery, not module state.
func (in *Interpreter) Snapshot() map[VId]bits.ArrayValue {
	out := make(map[VId]bits.ArrayValue)
	for _, v := range in.binding.StateVIds() {
		id, _ := in.binding.State(v)
		out[v] = in.binding.GetArrayValue(id).Clone()
	}
	return out
}

// Restore assigns every VId present in snap back to its bound identifier.
// VIds in snap that are no longer registered, and registered VIds absent
// from snap, are both silently skipped — this is what lets a snapshot
// taken against one AST revision restore cleanly against another with a
// partially overlapping state set.
func (in *Interpreter) Restore(snap map[VId]bits.ArrayValue) {
	for v, av := range snap {
		id, ok := in.binding.State(v)
		if !ok {
			continue
		}
		in.binding.SetArrayValue(id, av)
	}
}
