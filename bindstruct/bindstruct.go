// Package bindstruct discovers a module's VId bindings from a tagged Go
// struct instead of a sequence of manual SetRead/SetWrite/SetState calls.
// Bind turns a struct's `vlsim:"in,name"`/`vlsim:"out,name"`/
// `vlsim:"state,name"` tags into a vlsim.Binding's reads/writes/state
// registrations.
package bindstruct

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"

	"github.com/hwcore/vlsim"
	"github.com/hwcore/vlsim/ast"
)

// Bind walks ports (a pointer to a struct of vlsim.VId fields) and, for
// each field tagged `vlsim:"role,name"`, looks name up in byName and
// registers it against b under the field's VId value and role ("in",
// "out", or "state"). ports' field values are the VIds themselves — the
// caller decides numbering, the same way a chip's Socket.Pin index is
// assigned by the caller's wiring, not by MakePart.
func Bind(b *vlsim.Binding, byName map[string]*ast.Ident, ports interface{}) error {
	v := reflect.ValueOf(ports)
	if v.Kind() != reflect.Ptr || v.Elem().Kind() != reflect.Struct {
		return errors.Errorf("bindstruct: Bind wants a pointer to a struct, got %T", ports)
	}
	v = v.Elem()
	typ := v.Type()

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("vlsim")
		if !ok {
			continue
		}
		parts := strings.SplitN(tag, ",", 2)
		if len(parts) != 2 || parts[1] == "" {
			return errors.Errorf("bindstruct: malformed tag %q on field %q", tag, f.Name)
		}
		role, name := parts[0], parts[1]

		id, ok := byName[name]
		if !ok {
			return errors.Errorf("bindstruct: no identifier named %q for field %q", name, f.Name)
		}

		fv := v.Field(i)
		if fv.Kind() != reflect.Int && fv.Kind() != reflect.Int64 {
			return errors.Errorf("bindstruct: field %q must be a vlsim.VId (int), got %s", f.Name, fv.Kind())
		}
		vid := vlsim.VId(fv.Int())

		switch role {
		case "in":
			b.SetRead(id, vid)
		case "out":
			b.SetWrite(id, vid)
		case "state":
			b.SetState(id, vid)
		default:
			return errors.Errorf("bindstruct: unsupported role %q on field %q", role, f.Name)
		}
	}
	return nil
}
