package vlsim

import "github.com/hwcore/vlsim/ast"

// VId is a dense, host-allocated identifier for an externally visible
// input, output, or state element. The core treats it opaquely except
// for densely indexing reads.
type VId int

// growIdents grows s so that index i is valid, a resize-on-demand idiom
// for registering a VId out of order without pre-sizing the slice.
func growIdents(s []*ast.Ident, i int) []*ast.Ident {
	if i < len(s) {
		return s
	}
	grown := make([]*ast.Ident, i+1)
	copy(grown, s)
	return grown
}
