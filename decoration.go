package vlsim

import "github.com/hwcore/vlsim/ast"

// decorations is the per-node mutable scheduling state the AST itself does
// not carry, kept in a side table keyed by node ID instead of fields on
// the nodes: whether a node currently sits on the active queue, its
// cooperative-execution cursor, and the set of nodes to wake when it is
// notified. It is sized once per NewInterpreter, to ast.Module.NumNodes(),
// and never resized afterward — the AST's node-id space does not change
// during a session.
type decorations struct {
	onActive []bool
	ctrl     []uint
	monitors [][]ast.NodeID
	nodes    []ast.Node
}

func newDecorations(m *ast.Module) *decorations {
	n := m.NumNodes()
	d := &decorations{
		onActive: make([]bool, n),
		ctrl:     make([]uint, n),
		monitors: make([][]ast.NodeID, n),
		nodes:    make([]ast.Node, n),
	}
	for _, node := range m.Nodes {
		d.nodes[node.ID()] = node
	}
	return d
}

func (d *decorations) node(id ast.NodeID) ast.Node { return d.nodes[id] }

func (d *decorations) isActive(n ast.Node) bool { return d.onActive[n.ID()] }

func (d *decorations) setActive(n ast.Node, v bool) { d.onActive[n.ID()] = v }

func (d *decorations) getCtrl(n ast.Node) uint { return d.ctrl[n.ID()] }

func (d *decorations) setCtrl(n ast.Node, v uint) { d.ctrl[n.ID()] = v }

// addMonitor registers watcher as a node to wake whenever notify(n) runs.
func (d *decorations) addMonitor(n, watcher ast.Node) {
	id := n.ID()
	for _, existing := range d.monitors[id] {
		if existing == watcher.ID() {
			return
		}
	}
	d.monitors[id] = append(d.monitors[id], watcher.ID())
}

func (d *decorations) monitorsOf(n ast.Node) []ast.NodeID { return d.monitors[n.ID()] }
