package vlsim

import "github.com/hwcore/vlsim/bits"

// spyInterface is a minimal Interface used by white-box tests that need to
// observe dispatch side effects without pulling in vsimtest (which lives in
// its own package and would make this an import cycle from here).
type spyInterface struct {
	displays []string
	writes   []string
	finishes []int
	outputs  map[VId]bits.Bits
}

func newSpyInterface() *spyInterface {
	return &spyInterface{outputs: make(map[VId]bits.Bits)}
}

func (s *spyInterface) WriteOutput(v VId, b bits.Bits) { s.outputs[v] = b }
func (s *spyInterface) Display(text string)            { s.displays = append(s.displays, text) }
func (s *spyInterface) WriteText(text string)          { s.writes = append(s.writes, text) }
func (s *spyInterface) Finish(code int)                { s.finishes = append(s.finishes, code) }
