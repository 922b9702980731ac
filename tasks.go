package vlsim

// silent gates nonblocking-assign capture and all three system tasks
// during resync's priming drain. While true, scheduling and state
// propagation proceed exactly as normal; only these four effects are
// suppressed.
func (in *Interpreter) setSilent(v bool) { in.silent = v }

func (in *Interpreter) isSilent() bool { return in.silent }

func (in *Interpreter) doDisplay(s string) {
	if in.silent {
		return
	}
	in.iface.Display(s)
	in.thereWereTask = true
}

func (in *Interpreter) doWrite(s string) {
	if in.silent {
		return
	}
	in.iface.WriteText(s)
	in.thereWereTask = true
}

func (in *Interpreter) doFinish(code int) {
	if in.silent {
		return
	}
	in.iface.Finish(code)
	in.thereWereTask = true
}
