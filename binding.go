package vlsim

import (
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
)

type writeEntry struct {
	id  *ast.Ident
	vid VId
}

// Binding is the VId-keyed table recording which AST identifiers are
// module-visible inputs, outputs, and state elements, plus the actual
// value storage the eval package reads and writes through. Values live
// here rather than on the AST nodes themselves, for the same reason
// scheduling decorations live in a side table: the AST stays value-like,
// and Binding is what ties a set of identifiers to one running module.
type Binding struct {
	reads  []*ast.Ident
	writes []writeEntry
	state  map[VId]*ast.Ident

	values map[*ast.Ident]bits.ArrayValue
}

// NewBinding returns an empty binding table.
func NewBinding() *Binding {
	return &Binding{
		state:  make(map[VId]*ast.Ident),
		values: make(map[*ast.Ident]bits.ArrayValue),
	}
}

// SetRead registers id as the module input addressed by VId v, resizing
// the dense reads array to at least v+1 entries.
func (b *Binding) SetRead(id *ast.Ident, v VId) {
	b.reads = growIdents(b.reads, int(v))
	b.reads[v] = id
}

// SetWrite registers id as a module output addressed by VId v. Duplicates
// are permitted; the caller is responsible for not double-registering.
func (b *Binding) SetWrite(id *ast.Ident, v VId) {
	b.writes = append(b.writes, writeEntry{id: id, vid: v})
}

// SetState registers id as a snapshot-visible state element addressed by
// VId v. A second call with the same v overwrites the first.
func (b *Binding) SetState(id *ast.Ident, v VId) {
	b.state[v] = id
}

// Read returns the identifier bound to input VId v, or nil if v was never
// registered via SetRead.
func (b *Binding) Read(v VId) *ast.Ident {
	if int(v) >= len(b.reads) {
		return nil
	}
	return b.reads[v]
}

// Writes returns the registered outputs in declaration order.
func (b *Binding) Writes() []writeEntry { return b.writes }

// State returns the identifier bound to state VId v, and whether it exists.
func (b *Binding) State(v VId) (*ast.Ident, bool) {
	id, ok := b.state[v]
	return id, ok
}

// StateVIds returns every registered state VId, in no particular order.
func (b *Binding) StateVIds() []VId {
	out := make([]VId, 0, len(b.state))
	for v := range b.state {
		out = append(out, v)
	}
	return out
}

// GetValue implements eval.Storage: reads id's current scalar value,
// defaulting to zero for an identifier never written.
func (b *Binding) GetValue(id *ast.Ident) bits.Bits {
	if av, ok := b.values[id]; ok && len(av.Elems) > 0 {
		return av.Elems[0]
	}
	return bits.Zero(id.Width)
}

// SetValue implements eval.Storage: overwrites id's scalar value.
func (b *Binding) SetValue(id *ast.Ident, v bits.Bits) {
	b.values[id] = bits.Scalar(v)
}

// GetArrayValue implements eval.Storage: reads id's full memory contents.
func (b *Binding) GetArrayValue(id *ast.Ident) bits.ArrayValue {
	return b.values[id]
}

// SetArrayElem implements eval.Storage: writes one element of id's memory,
// growing the backing array as needed.
func (b *Binding) SetArrayElem(id *ast.Ident, index int, v bits.Bits) {
	av := b.values[id]
	if index >= len(av.Elems) {
		grown := make([]bits.Bits, index+1)
		copy(grown, av.Elems)
		av.Elems = grown
	}
	av.Elems[index] = v
	b.values[id] = av
}

// SetArrayValue overwrites id's entire memory contents at once, used by
// state snapshot restore.
func (b *Binding) SetArrayValue(id *ast.Ident, v bits.ArrayValue) {
	b.values[id] = v.Clone()
}
