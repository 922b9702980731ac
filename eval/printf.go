package eval

import (
	"strconv"
	"strings"

	"github.com/hwcore/vlsim/ast"
)

// Format renders a $display/$write format string against its evaluated
// arguments. It supports the handful of Verilog format specifiers a
// synthesizable testbench actually uses: %d (unsigned decimal), %b (binary), %h
// (hex), %o (octal), %s (here: the raw decimal value; this core does not
// model string-valued registers) and %% for a literal percent.
func Format(s Storage, format string, args []ast.Expr) string {
	var b strings.Builder
	ai := 0
	runes := []rune(format)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		if c != '%' || i == len(runes)-1 {
			b.WriteRune(c)
			continue
		}
		i++
		spec := runes[i]
		if spec == '%' {
			b.WriteByte('%')
			continue
		}
		if ai >= len(args) {
			b.WriteRune('%')
			b.WriteRune(spec)
			continue
		}
		val := GetValue(s, args[ai])
		ai++
		switch spec {
		case 'd', 'D':
			b.WriteString(strconv.FormatUint(val.ToUint64(), 10))
		case 'b', 'B':
			b.WriteString(strconv.FormatUint(val.ToUint64(), 2))
		case 'h', 'H', 'x', 'X':
			b.WriteString(strconv.FormatUint(val.ToUint64(), 16))
		case 'o', 'O':
			b.WriteString(strconv.FormatUint(val.ToUint64(), 8))
		case 's', 'S':
			b.WriteString(strconv.FormatUint(val.ToUint64(), 10))
		default:
			b.WriteRune('%')
			b.WriteRune(spec)
		}
	}
	return b.String()
}
