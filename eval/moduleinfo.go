package eval

import "github.com/hwcore/vlsim/ast"

// Inputs returns a module's declared input ports, the set resync notifies
// as part of silent priming before any initial block runs.
func Inputs(m *ast.Module) []*ast.Ident { return m.Inputs }
