// Package vsimtest provides a golden-trace recording vlsim.Interface and
// testify-based assertions for the scenarios this core is expected to
// reproduce exactly. Recorder wraps an interpreter's entire host boundary
// into slices a test can assert against.
package vsimtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hwcore/vlsim"
	"github.com/hwcore/vlsim/bits"
)

// Recorder implements vlsim.Interface, appending every callback to a
// golden trace instead of acting on it.
type Recorder struct {
	Displays []string
	Writes   []string
	Finishes []int
	Outputs  map[vlsim.VId]bits.Bits
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{Outputs: make(map[vlsim.VId]bits.Bits)}
}

func (r *Recorder) WriteOutput(v vlsim.VId, b bits.Bits) { r.Outputs[v] = b }

func (r *Recorder) Display(s string) { r.Displays = append(r.Displays, s) }

func (r *Recorder) WriteText(s string) { r.Writes = append(r.Writes, s) }

func (r *Recorder) Finish(code int) { r.Finishes = append(r.Finishes, code) }

// Reset clears every recorded trace without discarding Outputs, matching
// the common per-cycle idiom: assert on one cycle's displays, then Reset
// before driving the next.
func (r *Recorder) Reset() {
	r.Displays = nil
	r.Writes = nil
	r.Finishes = nil
}

// AssertDisplays asserts the recorded $display trace equals want, in order.
func AssertDisplays(t *testing.T, r *Recorder, want ...string) {
	t.Helper()
	assert.Equal(t, want, r.Displays)
}

// AssertOutput asserts output VId v currently equals want.
func AssertOutput(t *testing.T, r *Recorder, v vlsim.VId, want bits.Bits) {
	t.Helper()
	got, ok := r.Outputs[v]
	require.True(t, ok, "output VId %d was never written", v)
	assert.True(t, bits.Eq(got, want), "output VId %d: got %s, want %s", v, got, want)
}

// AssertSnapshotRoundTrip snapshots in, mutates via mutate, restores the
// snapshot, and asserts the state-VId-keyed values it owns are bitwise
// identical to what they were before mutate ran.
func AssertSnapshotRoundTrip(t *testing.T, in *vlsim.Interpreter, mutate func()) {
	t.Helper()
	before := in.Snapshot()
	mutate()
	in.Restore(before)
	after := in.Snapshot()
	require.Equal(t, len(before), len(after), "snapshot VId set changed across restore")
	for v, want := range before {
		got, ok := after[v]
		require.True(t, ok, "VId %d missing after restore", v)
		assert.True(t, got.Equal(want), "VId %d: restore produced %v, want %v", v, got, want)
	}
}
