// Command vsim is a small demo driver for the vlsim interpreter: it builds
// one of a few canned modules by hand (no Verilog source is parsed),
// resyncs it, and drives it for a fixed number of clock cycles, printing
// $display output and register state as it goes.
package main

import (
	"fmt"
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/pflag"

	"github.com/hwcore/vlsim"
	"github.com/hwcore/vlsim/ast"
	"github.com/hwcore/vlsim/bits"
	"github.com/hwcore/vlsim/hostio"
)

func boolBits(v bool) bits.Bits { return bits.Bool(v) }

func main() {
	demo := pflag.StringP("demo", "d", "dff", "canned demo module to run: dff|comb")
	cycles := pflag.IntP("cycles", "c", 4, "number of clock cycles to drive")
	verbose := pflag.BoolP("verbose", "v", false, "enable debug logging")
	pflag.Parse()

	logger := log15.New()
	if *verbose {
		logger.SetHandler(log15.StreamHandler(os.Stderr, log15.LogfmtFormat()))
	} else {
		logger.SetHandler(log15.DiscardHandler())
	}

	switch *demo {
	case "dff":
		runDFF(logger, *cycles)
	case "comb":
		runComb(logger)
	default:
		fmt.Fprintf(os.Stderr, "vsim: unknown demo %q\n", *demo)
		os.Exit(1)
	}
}

// runDFF builds `reg q; always @(posedge clk) q <= d;` and toggles clk once
// per requested cycle, printing q after every toggle (posedge and negedge).
func runDFF(logger log15.Logger, cycles int) {
	clk := ast.NewIdent("clk", 1)
	d := ast.NewIdent("d", 1)
	q := ast.NewIdent("q", 1)

	always := &ast.AlwaysConstruct{
		Stmt: &ast.TimingControlStatement{
			Ctrl: &ast.EventControl{Events: []*ast.Event{{Type: ast.Posedge, Expr: clk}}},
			Stmt: &ast.NonblockingAssign{Lhs: q, Rhs: d},
		},
	}
	module := ast.Build([]ast.Item{always}, []*ast.Ident{clk, d})

	const (
		vClk vlsim.VId = 0
		vD   vlsim.VId = 1
		vQ   vlsim.VId = 2
	)
	binding := vlsim.NewBinding()
	binding.SetRead(clk, vClk)
	binding.SetRead(d, vD)
	binding.SetWrite(q, vQ)
	binding.SetState(q, vQ)

	in := vlsim.NewInterpreter(module, binding)
	in.SetLogger(logger)

	console := hostio.NewConsole(os.Stdout)
	in.Resync(console)

	clkVal := false
	dVal := true
	for i := 0; i < cycles; i++ {
		clkVal = !clkVal
		in.Read(vClk, boolBits(clkVal))
		in.Read(vD, boolBits(dVal))
		in.Evaluate(console)
		for in.ThereAreUpdates() {
			in.Update(console)
		}
		fmt.Printf("cycle %d: clk=%v d=%v q=%s\n", i, clkVal, dVal, console.Outputs[vQ])
		dVal = !dVal
	}
}

// runComb builds `assign y = a & b;` and prints y for every combination of
// a and b.
func runComb(logger log15.Logger) {
	a := ast.NewIdent("a", 1)
	b := ast.NewIdent("b", 1)
	y := ast.NewIdent("y", 1)

	ca := &ast.ContinuousAssign{
		Assign: &ast.VariableAssign{
			Lhs: y,
			Rhs: &ast.BinaryExpr{Op: ast.OpAnd, X: a, Y: b},
		},
	}
	module := ast.Build([]ast.Item{ca}, []*ast.Ident{a, b})

	const (
		vA vlsim.VId = 0
		vB vlsim.VId = 1
		vY vlsim.VId = 2
	)
	binding := vlsim.NewBinding()
	binding.SetRead(a, vA)
	binding.SetRead(b, vB)
	binding.SetWrite(y, vY)

	in := vlsim.NewInterpreter(module, binding)
	in.SetLogger(logger)

	console := hostio.NewConsole(os.Stdout)
	in.Resync(console)

	for _, av := range []bool{false, true} {
		for _, bv := range []bool{false, true} {
			in.Read(vA, boolBits(av))
			in.Read(vB, boolBits(bv))
			in.Evaluate(console)
			fmt.Printf("a=%v b=%v y=%s\n", av, bv, console.Outputs[vY])
		}
	}
}
