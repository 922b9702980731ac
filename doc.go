// Package vlsim implements an event-driven software interpreter for a
// single elaborated Verilog module: given an AST built from ast.Item
// values and a Binding of its module-visible inputs, outputs, and state,
// it drives the module through Verilog's two-phase simulation cycle
// (active event evaluation, then nonblocking-assign flush), dispatches
// $display/$write/$finish to a host-supplied Interface, and exposes
// VId-keyed snapshot/restore over the module's state.
//
// It does not parse Verilog, evaluate expressions on its own (see package
// eval), or orchestrate more than one module at a time.
package vlsim
