package ast

// AlwaysConstruct is `always <stmt>`. Dispatching it always re-runs Stmt
// from the top; looping forever comes from the monitor installer wiring
// Stmt (or something nested under it) back to AlwaysConstruct, not from
// any loop in AlwaysConstruct's own dispatch.
type AlwaysConstruct struct {
	base
	Stmt Stmt
}

func (a *AlwaysConstruct) itemNode() {}

// InitialConstruct is `initial <stmt>`, run once at resync. Attrs carries
// free-form AST attributes; the one this core interprets is "__ignore",
// which resync's initial-block phase uses to skip blocks a higher layer has
// already accounted for.
type InitialConstruct struct {
	base
	Stmt  Stmt
	Attrs map[string]string
}

func (i *InitialConstruct) itemNode() {}

// Ignored reports whether this construct carries the "__ignore" attribute.
func (i *InitialConstruct) Ignored() bool {
	return i.Attrs != nil && i.Attrs["__ignore"] == "true"
}

// Module is one elaborated module's worth of top-level items and declared
// input ports. Inputs backs eval.Inputs: resync notifies every one of them
// as part of priming.
type Module struct {
	Items  []Item
	Inputs []*Ident

	// Nodes is every node Build assigned an id to, indexed by NodeID: the
	// flat table the interpreter's decoration side table is built over.
	Nodes []Node

	numNodes int
}

// NumNodes returns the number of distinct nodes Build assigned an id to,
// i.e. the size the interpreter's decoration side table must be allocated
// to.
func (m *Module) NumNodes() int { return m.numNodes }
