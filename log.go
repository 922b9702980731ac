package vlsim

import "github.com/inconshreveable/log15"

// discardLogger is installed by default so an Interpreter never panics on
// a nil logger; cmd/vsim wires in a real one.
func discardLogger() log15.Logger {
	l := log15.New()
	l.SetHandler(log15.DiscardHandler())
	return l
}

// log traces one node dispatch. Kept at Debug since a running simulation
// dispatches a great many nodes.
func (in *Interpreter) log(op string, n interface{}) {
	in.logger.Debug("dispatch", "op", op, "node", n)
}
