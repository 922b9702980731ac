package eval

import "github.com/hwcore/vlsim/ast"

// Resolve returns the identifier a reference ultimately denotes. This tree
// never separates a reference from its declaration — there is no scoping
// pass — so resolution is an identity pass-through; it exists as its own
// named step so a future declaration-aware AST builder has a single seam
// to change.
func Resolve(id *ast.Ident) *ast.Ident { return id }
