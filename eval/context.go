package eval

import (
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
)

// Context is an optional memoization cache for GetValue, keyed by NodeID
// rather than carried as a field on the expression node itself: an
// expression's value only needs recomputing when one of the identifiers it
// reads has changed, and a caller evaluating the same subtree repeatedly
// within one region (e.g. a CaseStatement selector reused across items)
// can reuse Context to skip the recomputation.
//
// A Context is scoped to whatever the caller decides — one evaluate()
// region, one statement, or the whole interpreter lifetime — and is never
// touched by the core itself; the interpreter drives entirely through the
// package-level GetValue/AssignValue instead.
type Context struct {
	values map[ast.NodeID]bits.Bits
	dirty  map[ast.NodeID]bool
}

// NewContext returns an empty cache with nothing marked stale.
func NewContext() *Context {
	return &Context{values: make(map[ast.NodeID]bits.Bits), dirty: make(map[ast.NodeID]bool)}
}

// Invalidate marks id's cached value stale, forcing the next GetValue
// through it to recompute. Only id itself is marked: GetValue checks the
// dirty flag of the expression it is given and nothing beneath it, so a
// cached composite expression that reads an invalidated identifier keeps
// returning its cached value until its own id is invalidated too.
func (c *Context) Invalidate(id ast.NodeID) {
	c.dirty[id] = true
}

// GetValue evaluates e, returning a cached value if present and not
// invalidated, recomputing and caching it otherwise. A nil Context always
// recomputes, so callers can pass one in only where memoization is worth
// the bookkeeping.
func (c *Context) GetValue(s Storage, e ast.Expr) bits.Bits {
	if c == nil || e == nil {
		return GetValue(s, e)
	}
	id := e.ID()
	if v, ok := c.values[id]; ok && !c.dirty[id] {
		return v
	}
	v := GetValue(s, e)
	c.values[id] = v
	delete(c.dirty, id)
	return v
}
