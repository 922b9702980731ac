// Package hostio provides concrete vlsim.Interface implementations: a
// console sink for the CLI demo, and a closure-based Interface for
// embedding vlsim into a larger program without writing a new type.
//
// FuncInterface wraps four plain Go closures as the entire host boundary,
// so a caller can plug in behavior without declaring a new type.
package hostio

import (
	"fmt"
	"io"

	"github.com/hwcore/vlsim"
	"github.com/hwcore/vlsim/bits"
)

// FuncInterface implements vlsim.Interface by forwarding each callback to
// a user-supplied closure. A nil closure is a no-op, so callers only need
// to fill in the callbacks they care about.
type FuncInterface struct {
	OnWrite   func(v vlsim.VId, b bits.Bits)
	OnDisplay func(s string)
	OnWrite_  func(s string)
	OnFinish  func(code int)
}

func (f *FuncInterface) WriteOutput(v vlsim.VId, b bits.Bits) {
	if f.OnWrite != nil {
		f.OnWrite(v, b)
	}
}

func (f *FuncInterface) Display(s string) {
	if f.OnDisplay != nil {
		f.OnDisplay(s)
	}
}

func (f *FuncInterface) WriteText(s string) {
	if f.OnWrite_ != nil {
		f.OnWrite_(s)
	}
}

func (f *FuncInterface) Finish(code int) {
	if f.OnFinish != nil {
		f.OnFinish(code)
	}
}

// Console implements vlsim.Interface by printing $display/$write/$finish
// to an io.Writer. Output writes are not printed; the latest value of each
// output VId is recorded in Outputs, where a CLI demo reads it.
type Console struct {
	w       io.Writer
	Outputs map[vlsim.VId]bits.Bits
}

// NewConsole returns a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w, Outputs: make(map[vlsim.VId]bits.Bits)}
}

func (c *Console) WriteOutput(v vlsim.VId, b bits.Bits) { c.Outputs[v] = b }

func (c *Console) Display(s string) { fmt.Fprintln(c.w, s) }

func (c *Console) WriteText(s string) { fmt.Fprint(c.w, s) }

func (c *Console) Finish(code int) { fmt.Fprintf(c.w, "$finish(%d)\n", code) }
